package blackjack

import "github.com/shopspring/decimal"

// Outcome is the result of a settled round from the player's side.
type Outcome string

const (
	OutcomeWin  Outcome = "win"
	OutcomeLoss Outcome = "loss"
	OutcomePush Outcome = "push"
)

// Settle resolves a round from the two final totals. A busted player
// always loses, even when the dealer busts too; only then does a dealer
// bust pay the player. Equal totals push and the bet is returned.
func Settle(playerTotal, dealerTotal int) Outcome {
	switch {
	case IsBust(playerTotal):
		return OutcomeLoss
	case IsBust(dealerTotal):
		return OutcomeWin
	case playerTotal > dealerTotal:
		return OutcomeWin
	case playerTotal < dealerTotal:
		return OutcomeLoss
	default:
		return OutcomePush
	}
}

// Delta returns the signed bankroll change for a bet settled with this
// outcome.
func (o Outcome) Delta(bet decimal.Decimal) decimal.Decimal {
	switch o {
	case OutcomeWin:
		return bet
	case OutcomeLoss:
		return bet.Neg()
	default:
		return decimal.Zero
	}
}
