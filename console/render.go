package console

import (
	"fmt"
	"strings"

	"github.com/lazharichir/blackjack/cards"
)

// renderCard returns the four-row ASCII art for a held card.
// A face-up 5 of hearts looks like:
//
//	 ___
//	|5  |
//	| ♥ |
//	|__5|
func renderCard(card cards.HeldCard) [4]string {
	if !card.FaceUp {
		return [4]string{" ___ ", "|## |", "|###|", "|_##|"}
	}
	value := string(card.Value)
	return [4]string{
		" ___ ",
		fmt.Sprintf("|%-3s|", value),
		fmt.Sprintf("| %s |", card.Suit),
		fmt.Sprintf("|_%2s|", value),
	}
}

// renderHand lays a hand out side by side, row-wise.
func renderHand(hand cards.HeldStack) string {
	var rows [4][]string
	for _, card := range hand {
		art := renderCard(card)
		for i := range rows {
			rows[i] = append(rows[i], art[i])
		}
	}

	var b strings.Builder
	for _, row := range rows {
		b.WriteString(strings.Join(row, " "))
		b.WriteString("\n")
	}
	return b.String()
}
