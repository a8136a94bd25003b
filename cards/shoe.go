package cards

import "errors"

// ErrEmptyShoe is returned when a draw is attempted with no cards left.
// With a single deck and a single seat it is structurally unreachable;
// seeing it means the card population invariant has been broken.
var ErrEmptyShoe = errors.New("shoe is empty")

// Shoe is the pool of cards available to be dealt. Cards cycle between
// the shoe and the hands at the table: Draw removes from the front,
// Discard returns to the back. The card population never changes.
type Shoe struct {
	cards Stack
}

// NewShoe creates a shoe with the given number of decks, shuffled
// exactly once at construction.
func NewShoe(numDecks int) *Shoe {
	var cards Stack
	for i := 0; i < numDecks; i++ {
		cards = append(cards, NewDeck()...)
	}
	return &Shoe{cards: ShuffleCards(cards)}
}

// NewShoeFrom creates a shoe holding exactly the given cards in the
// given order, without shuffling.
func NewShoeFrom(cards ...Card) *Shoe {
	return &Shoe{cards: NewStack(cards...)}
}

// Draw removes and returns the card at the front of the shoe
func (s *Shoe) Draw() (Card, error) {
	if len(s.cards) == 0 {
		return Card{}, ErrEmptyShoe
	}

	card := s.cards[0]
	s.cards = s.cards[1:]
	return card, nil
}

// Discard appends the given cards to the back of the shoe in the order
// given. The shoe is not reshuffled.
func (s *Shoe) Discard(cards ...Card) {
	s.cards = append(s.cards, cards...)
}

// Size returns the number of cards left in the shoe
func (s *Shoe) Size() int {
	return len(s.cards)
}
