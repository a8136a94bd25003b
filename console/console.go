package console

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"

	"github.com/lazharichir/blackjack/blackjack"
	"github.com/lazharichir/blackjack/cards"
	"github.com/lazharichir/blackjack/game"
)

// Console implements the game's input and display collaborators on top
// of an interactive terminal.
type Console struct{}

var _ game.Input = (*Console)(nil)
var _ game.Display = (*Console)(nil)

// New creates a console attached to the current terminal.
func New() *Console {
	return &Console{}
}

var moveLabels = map[game.Move]string{
	game.MoveHit:    "(H)it",
	game.MoveStand:  "(S)tand",
	game.MoveDouble: "(D)ouble down",
}

// AskBet prompts for a bet within [min, max], re-prompting until the
// player enters a valid amount or QUIT.
func (c *Console) AskBet(min, max decimal.Decimal) (decimal.Decimal, bool) {
	prompt := fmt.Sprintf("How much do you want to bet? ($%s - $%s, or QUIT)",
		min.StringFixed(2), max.StringFixed(2))

	for {
		raw, _ := pterm.DefaultInteractiveTextInput.WithDefaultText(prompt).Show()
		raw = strings.ToUpper(strings.TrimSpace(raw))
		if raw == "QUIT" {
			return decimal.Zero, true
		}

		amount, err := decimal.NewFromString(raw)
		if err != nil || amount.LessThan(min) || amount.GreaterThan(max) {
			pterm.Warning.Println("Please enter an amount in the specified range.")
			continue
		}
		return amount, false
	}
}

// AskMove offers the allowed moves and returns the chosen one.
func (c *Console) AskMove(allowed []game.Move) game.Move {
	options := make([]string, 0, len(allowed))
	for _, move := range allowed {
		options = append(options, moveLabels[move])
	}

	for {
		choice, _ := pterm.DefaultInteractiveSelect.
			WithOptions(options).
			WithDefaultText("It's your move").
			Show()
		for _, move := range allowed {
			if moveLabels[move] == choice {
				return move
			}
		}
	}
}

// AskYesNo asks a yes/no question.
func (c *Console) AskYesNo(prompt string) bool {
	answer, _ := pterm.DefaultInteractiveConfirm.WithDefaultText(prompt).Show()
	return answer
}

// AskAmount prompts for a dollar amount of at least min.
func (c *Console) AskAmount(prompt string, min decimal.Decimal) decimal.Decimal {
	for {
		raw, _ := pterm.DefaultInteractiveTextInput.WithDefaultText(prompt).Show()
		amount, err := decimal.NewFromString(strings.TrimSpace(raw))
		if err != nil || amount.LessThan(min) {
			pterm.Warning.Printfln("Minimum is $%s.", min.StringFixed(2))
			continue
		}
		return amount
	}
}

// AskName prompts for the player's name.
func (c *Console) AskName() string {
	name, _ := pterm.DefaultInteractiveTextInput.
		WithDefaultText("What's your name, player?").
		Show()
	if name = strings.TrimSpace(name); name == "" {
		name = "Player"
	}
	return name
}

// WaitForAcknowledgement blocks until the player presses enter.
func (c *Console) WaitForAcknowledgement(prompt string) {
	pterm.DefaultInteractiveTextInput.WithDefaultText(prompt).Show()
}

// ShowHands renders both hands, hiding the dealer's total until reveal.
func (c *Console) ShowHands(dealer, player cards.HeldStack, revealDealer bool) {
	if revealDealer {
		pterm.Printfln("DEALER HAND: %d", blackjack.HandValue(dealer.Cards()))
	} else {
		pterm.Println("DEALER HAND: ???")
	}
	pterm.Print(renderHand(dealer))

	pterm.Printfln("\nYOUR HAND: %d", blackjack.HandValue(player.Cards()))
	pterm.Print(renderHand(player))
	pterm.Println()
}

// ShowMessage prints a game message.
func (c *Console) ShowMessage(text string) {
	pterm.Println(text)
}
