package console

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lazharichir/blackjack/cards"
)

func TestRenderCardFaceUp(t *testing.T) {
	card := cards.NewHeldCard(cards.Card{Suit: cards.Hearts, Value: cards.Five}, true)

	art := renderCard(card)
	assert.Equal(t, " ___ ", art[0])
	assert.Equal(t, "|5  |", art[1])
	assert.Equal(t, "| ♥ |", art[2])
	assert.Equal(t, "|_ 5|", art[3])
}

func TestRenderCardTenKeepsWidth(t *testing.T) {
	card := cards.NewHeldCard(cards.Card{Suit: cards.Spades, Value: cards.Ten}, true)

	art := renderCard(card)
	assert.Equal(t, "|10 |", art[1])
	assert.Equal(t, "|_10|", art[3])
}

func TestRenderCardFaceDownHidesEverything(t *testing.T) {
	card := cards.NewHeldCard(cards.Card{Suit: cards.Spades, Value: cards.Ace}, false)

	art := renderCard(card)
	for _, row := range art[1:] {
		assert.NotContains(t, row, "A")
		assert.NotContains(t, row, "♠")
	}
}

func TestRenderHandJoinsRowWise(t *testing.T) {
	var hand cards.HeldStack
	hand.Add(cards.NewHeldCard(cards.Card{Suit: cards.Hearts, Value: cards.Ace}, true))
	hand.Add(cards.NewHeldCard(cards.Card{Suit: cards.Clubs, Value: cards.King}, false))

	out := renderHand(hand)
	assert.Contains(t, out, " ___   ___ ")
	assert.Contains(t, out, "|A  | |## |")
	assert.Contains(t, out, "| ♥ | |###|")
	assert.Contains(t, out, "|_ A| |_##|")
}
