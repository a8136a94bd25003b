package blackjack

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSettle(t *testing.T) {
	tests := []struct {
		name        string
		playerTotal int
		dealerTotal int
		want        Outcome
	}{
		{"dealer busts", 18, 22, OutcomeWin},
		{"player busts", 23, 18, OutcomeLoss},
		{"player outscores dealer", 20, 18, OutcomeWin},
		{"dealer outscores player", 17, 19, OutcomeLoss},
		{"equal totals push", 20, 20, OutcomePush},
		{"twenty one beats twenty", 21, 20, OutcomeWin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Settle(tt.playerTotal, tt.dealerTotal))
		})
	}
}

// A busted player cannot be rescued by a dealer bust.
func TestSettle_BothBust(t *testing.T) {
	assert.Equal(t, OutcomeLoss, Settle(23, 24))
	assert.Equal(t, OutcomeLoss, Settle(30, 22))
}

func TestOutcomeDelta(t *testing.T) {
	bet := decimal.RequireFromString("2.50")

	assert.True(t, OutcomeWin.Delta(bet).Equal(bet))
	assert.True(t, OutcomeLoss.Delta(bet).Equal(bet.Neg()))
	assert.True(t, OutcomePush.Delta(bet).IsZero())
}
