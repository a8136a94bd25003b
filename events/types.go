package events

import (
	"github.com/shopspring/decimal"

	"github.com/lazharichir/blackjack/cards"
)

// Session lifecycle events

type SessionStarted struct {
	SessionID  string
	PlayerName string
	Bankroll   decimal.Decimal
}

func (s SessionStarted) Name() string { return "SESSION_STARTED" }

type SessionEnded struct {
	SessionID    string
	RoundsPlayed int
	Bankroll     decimal.Decimal
}

func (s SessionEnded) Name() string { return "SESSION_ENDED" }

type PlayerBoughtIn struct {
	SessionID string
	Amount    decimal.Decimal
}

func (p PlayerBoughtIn) Name() string { return "PLAYER_BOUGHT_IN" }

type BankrollChanged struct {
	SessionID string
	Before    decimal.Decimal
	After     decimal.Decimal
	Change    decimal.Decimal
}

func (b BankrollChanged) Name() string { return "BANKROLL_CHANGED" }

// Round structure events

type RoundStarted struct {
	SessionID string
	RoundID   string
	Number    int
}

func (r RoundStarted) Name() string { return "ROUND_STARTED" }

type PhaseChanged struct {
	SessionID     string
	RoundID       string
	PreviousPhase string
	NewPhase      string
}

func (p PhaseChanged) Name() string { return "PHASE_CHANGED" }

type RoundSettled struct {
	SessionID   string
	RoundID     string
	Outcome     string
	Bet         decimal.Decimal
	PlayerTotal int
	DealerTotal int
}

func (r RoundSettled) Name() string { return "ROUND_SETTLED" }

// Betting events

type BetPlaced struct {
	SessionID string
	RoundID   string
	Amount    decimal.Decimal
}

func (b BetPlaced) Name() string { return "BET_PLACED" }

type PlayerDoubledDown struct {
	SessionID string
	RoundID   string
	Raise     decimal.Decimal
	NewBet    decimal.Decimal
}

func (p PlayerDoubledDown) Name() string { return "PLAYER_DOUBLED_DOWN" }

// Dealing and turn events

type CardDealt struct {
	SessionID string
	RoundID   string
	To        string // "dealer" or "player"
	Card      cards.Card
	FaceUp    bool
}

func (c CardDealt) Name() string { return "CARD_DEALT" }

type PlayerHit struct {
	SessionID string
	RoundID   string
	Card      cards.Card
	Total     int
}

func (p PlayerHit) Name() string { return "PLAYER_HIT" }

type PlayerStood struct {
	SessionID string
	RoundID   string
	Total     int
}

func (p PlayerStood) Name() string { return "PLAYER_STOOD" }

type PlayerBusted struct {
	SessionID string
	RoundID   string
	Total     int
}

func (p PlayerBusted) Name() string { return "PLAYER_BUSTED" }

type DealerRevealed struct {
	SessionID string
	RoundID   string
	Card      cards.Card
	Total     int
}

func (d DealerRevealed) Name() string { return "DEALER_REVEALED" }

type DealerHit struct {
	SessionID string
	RoundID   string
	Card      cards.Card
	Total     int
}

func (d DealerHit) Name() string { return "DEALER_HIT" }
