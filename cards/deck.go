package cards

import (
	"math/rand"
	"time"
)

// Stack represents multiple cards
type Stack []Card

// NewStack creates a new stack with the given cards
func NewStack(cards ...Card) Stack {
	return cards
}

// NewDeck creates a standard deck of 52 cards
func NewDeck() Stack {
	var deck Stack
	suits := []Suit{Spades, Hearts, Diamonds, Clubs}
	values := []Value{Ace, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King}

	for _, suit := range suits {
		for _, value := range values {
			deck = append(deck, Card{Suit: suit, Value: value})
		}
	}

	return deck
}

// ShuffleCards shuffles a stack of cards into a uniform random permutation
func ShuffleCards(deck Stack) Stack {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	shuffled := make(Stack, len(deck))
	copy(shuffled, deck)

	r.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	return shuffled
}
