package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// Config holds the table settings read from the environment.
type Config struct {
	MinBet         decimal.Decimal
	NumDecks       int
	DealerStandsAt int
	Debug          bool
}

// Load reads settings from .env and the process environment, falling
// back to the standard single-deck table.
func Load() (*Config, error) {
	_ = godotenv.Load()

	minBet := decimal.New(50, -2) // $0.50
	if raw := os.Getenv("BLACKJACK_MIN_BET"); raw != "" {
		value, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid BLACKJACK_MIN_BET: %w", err)
		}
		if value.IsPositive() {
			minBet = value
		}
	}

	decks := 1
	if raw := os.Getenv("BLACKJACK_DECKS"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			decks = n
		}
	}

	standsAt := 17
	if raw := os.Getenv("BLACKJACK_DEALER_STANDS_AT"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 && n <= 21 {
			standsAt = n
		}
	}

	debug := false
	if raw := os.Getenv("BLACKJACK_DEBUG"); raw != "" {
		if b, err := strconv.ParseBool(raw); err == nil {
			debug = b
		}
	}

	return &Config{
		MinBet:         minBet,
		NumDecks:       decks,
		DealerStandsAt: standsAt,
		Debug:          debug,
	}, nil
}
