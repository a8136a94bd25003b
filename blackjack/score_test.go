package blackjack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lazharichir/blackjack/cards"
)

func hand(t *testing.T, shorthand ...string) cards.Stack {
	t.Helper()
	var stack cards.Stack
	for _, s := range shorthand {
		card, err := cards.CardFromString(s)
		require.NoError(t, err, "bad shorthand %q", s)
		stack = append(stack, card)
	}
	return stack
}

func TestHandValue(t *testing.T) {
	tests := []struct {
		name string
		hand []string
		want int
	}{
		{"empty hand", nil, 0},
		{"single card", []string{"7♠"}, 7},
		{"court cards count ten", []string{"J♠", "Q♥", "K♦"}, 30},
		{"ace and king is blackjack", []string{"A♠", "K♥"}, 21},
		{"two aces", []string{"A♠", "A♥"}, 12},
		{"four aces", []string{"A♠", "A♥", "A♦", "A♣"}, 14},
		{"soft seventeen", []string{"A♠", "6♥"}, 17},
		{"ace demoted after hit", []string{"A♠", "6♥", "9♦"}, 16},
		{"raw bust total", []string{"10♠", "10♥", "5♦"}, 25},
		{"three aces and eight", []string{"A♠", "A♥", "A♦", "8♣"}, 21},
		{"twenty one with three cards", []string{"7♠", "7♥", "7♦"}, 21},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HandValue(hand(t, tt.hand...)))
		})
	}
}

func TestHandValueOrderIndependent(t *testing.T) {
	forward := hand(t, "A♠", "9♥", "A♦")
	backward := hand(t, "A♦", "9♥", "A♠")
	shuffledAgain := hand(t, "9♥", "A♠", "A♦")

	assert.Equal(t, HandValue(forward), HandValue(backward))
	assert.Equal(t, HandValue(forward), HandValue(shuffledAgain))
}

// With k aces and a non-busting rest, HandValue must equal the maximum
// total at or under 21 over every independent 1-or-11 ace assignment,
// or the minimum total when every assignment busts.
func TestHandValueBestAceAssignment(t *testing.T) {
	tests := []struct {
		rest []string
		aces int
	}{
		{nil, 1},
		{nil, 2},
		{nil, 4},
		{[]string{"9♥"}, 2},
		{[]string{"5♥", "5♦"}, 3},
		{[]string{"K♥", "9♦"}, 2},
		{[]string{"K♥", "Q♦"}, 1},
	}

	for _, tt := range tests {
		stack := hand(t, tt.rest...)
		base := HandValue(stack)
		for i := 0; i < tt.aces; i++ {
			stack = append(stack, cards.Card{Suit: cards.Spades, Value: cards.Ace})
		}

		best := -1
		minimum := -1
		for mask := 0; mask < 1<<tt.aces; mask++ {
			total := base
			for bit := 0; bit < tt.aces; bit++ {
				if mask&(1<<bit) != 0 {
					total += 11
				} else {
					total++
				}
			}
			if minimum == -1 || total < minimum {
				minimum = total
			}
			if total <= Target && total > best {
				best = total
			}
		}
		if best == -1 {
			best = minimum
		}

		assert.Equal(t, best, HandValue(stack), "%d aces on top of %v", tt.aces, tt.rest)
	}
}

func TestIsBust(t *testing.T) {
	assert.False(t, IsBust(21))
	assert.False(t, IsBust(2))
	assert.True(t, IsBust(22))
}
