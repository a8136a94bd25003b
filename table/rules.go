package table

import "github.com/shopspring/decimal"

// Rules defines the house rules for a blackjack table
type Rules struct {
	MinBet         decimal.Decimal
	DealerStandsAt int
	NumDecks       int
}

// DefaultRules returns the standard single-deck table: $0.50 minimum,
// dealer stands at 17.
func DefaultRules() Rules {
	return Rules{
		MinBet:         decimal.New(50, -2),
		DealerStandsAt: 17,
		NumDecks:       1,
	}
}
