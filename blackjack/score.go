package blackjack

import "github.com/lazharichir/blackjack/cards"

// Target is the best possible hand total; anything above it is a bust.
const Target = 21

// HandValue calculates the best blackjack total for a hand. Court cards
// count 10, every ace starts at 1 and is promoted to 11 one at a time
// while the running total stays at or under 21. The result does not
// depend on card order, an empty hand scores 0, and a bust total is
// returned as-is rather than clamped.
func HandValue(hand cards.Stack) int {
	total := 0
	aces := 0

	for _, card := range hand {
		if card.Value == cards.Ace {
			aces++
			continue
		}
		points := card.Rank()
		if points > 10 {
			points = 10
		}
		total += points
	}

	total += aces
	for i := 0; i < aces; i++ {
		if total+10 <= Target {
			total += 10
		}
	}

	return total
}

// IsBust reports whether a total exceeds the target.
func IsBust(total int) bool {
	return total > Target
}
