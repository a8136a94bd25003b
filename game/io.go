package game

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/lazharichir/blackjack/cards"
)

var (
	// ErrInvalidInput flags a bet or amount outside its allowed range.
	// It is recovered by re-prompting and never reaches the session.
	ErrInvalidInput = errors.New("invalid input")

	// ErrIllegalMove flags a move the current hand is not eligible for.
	// The move is rejected at the selection boundary and asked again.
	ErrIllegalMove = errors.New("illegal move")
)

// Move is an action available to the player during their turn.
type Move string

const (
	MoveHit    Move = "hit"
	MoveStand  Move = "stand"
	MoveDouble Move = "double"
)

// Input gathers decisions from the player. Implementations own the
// re-prompting: every method blocks until it can return a value that
// satisfies the constraints it was given.
type Input interface {
	// AskBet returns a bet within [min, max], or quit=true if the
	// player asked to leave the table.
	AskBet(min, max decimal.Decimal) (amount decimal.Decimal, quit bool)

	// AskMove returns one of the allowed moves.
	AskMove(allowed []Move) Move

	AskYesNo(prompt string) bool

	// AskAmount returns an amount of at least min.
	AskAmount(prompt string, min decimal.Decimal) decimal.Decimal

	// WaitForAcknowledgement blocks until the player is ready to go on.
	WaitForAcknowledgement(prompt string)
}

// Display renders game state for the player. Implementations must not
// mutate the hands they are given.
type Display interface {
	ShowHands(dealer, player cards.HeldStack, revealDealer bool)
	ShowMessage(text string)
}
