package cards

// HeldCard represents a card that's in play with its table orientation
type HeldCard struct {
	Card
	FaceUp bool
}

// NewHeldCard creates a new held card with the specified orientation
func NewHeldCard(card Card, faceUp bool) HeldCard {
	return HeldCard{
		Card:   card,
		FaceUp: faceUp,
	}
}

// Flip toggles the card's orientation and returns it for chaining
func (c HeldCard) Flip() HeldCard {
	c.FaceUp = !c.FaceUp
	return c
}

// HeldStack represents an ordered hand of cards in play
type HeldStack []HeldCard

// Add appends a card to the hand
func (s *HeldStack) Add(card HeldCard) {
	*s = append(*s, card)
}

// Cards returns the bare cards in the hand, stripping orientation.
// Discarding through Cards guarantees no face-down flag survives into
// the next deal.
func (s HeldStack) Cards() Stack {
	stack := make(Stack, len(s))
	for i, c := range s {
		stack[i] = c.Card
	}
	return stack
}
