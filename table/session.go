package table

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lazharichir/blackjack/cards"
	"github.com/lazharichir/blackjack/events"
	"github.com/lazharichir/blackjack/game"
)

// Session represents one sitting at the table. It owns the bankroll,
// the round counter and the shoe, and plays rounds until the player
// quits or declines to buy back in.
type Session struct {
	ID       string
	Name     string
	Bankroll decimal.Decimal
	RoundNum int
	Rules    Rules
	Shoe     *cards.Shoe

	input         game.Input
	display       game.Display
	eventHandlers []events.EventHandler
}

// NewSession creates a session with a freshly shuffled shoe.
func NewSession(name string, bankroll decimal.Decimal, rules Rules, input game.Input, display game.Display) *Session {
	return &Session{
		ID:       uuid.NewString(),
		Name:     name,
		Bankroll: bankroll,
		RoundNum: 1,
		Rules:    rules,
		Shoe:     cards.NewShoe(rules.NumDecks),
		input:    input,
		display:  display,
	}
}

// RegisterEventHandler registers a callback function that will be called when events occur
func (s *Session) RegisterEventHandler(handler events.EventHandler) {
	s.eventHandlers = append(s.eventHandlers, handler)
}

// emitEvent notifies all registered handlers of a new event
func (s *Session) emitEvent(event events.Event) {
	for _, handler := range s.eventHandlers {
		handler(event)
	}
}

// Run plays rounds until the player quits at a bet prompt or declines
// to buy back in. It returns an error only when the shoe breaks.
func (s *Session) Run() error {
	s.emitEvent(events.SessionStarted{SessionID: s.ID, PlayerName: s.Name, Bankroll: s.Bankroll})

	for {
		// A bankroll below the table minimum cannot cover any legal
		// bet, so it counts as broke.
		if s.Bankroll.LessThan(s.Rules.MinBet) {
			if !s.buyBackIn() {
				return s.end()
			}
		}

		s.display.ShowMessage(fmt.Sprintf("--- ROUND %d ---", s.RoundNum))
		s.display.ShowMessage(fmt.Sprintf("YOUR FUNDS: $%s", s.Bankroll.StringFixed(2)))

		round := game.NewRound(game.RoundConfig{
			SessionID:      s.ID,
			Number:         s.RoundNum,
			Bankroll:       s.Bankroll,
			MinBet:         s.Rules.MinBet,
			DealerStandsAt: s.Rules.DealerStandsAt,
			Shoe:           s.Shoe,
			Input:          s.input,
			Display:        s.display,
			Events:         s.emitEvent,
		})

		result, err := round.Play()
		if err != nil {
			return fmt.Errorf("round %d: %w", s.RoundNum, err)
		}
		if result.Quit {
			return s.end()
		}

		s.applyResult(result)
		s.RoundNum++
		s.input.WaitForAcknowledgement("Press Enter to continue.")
	}
}

func (s *Session) end() error {
	s.emitEvent(events.SessionEnded{SessionID: s.ID, RoundsPlayed: s.RoundNum - 1, Bankroll: s.Bankroll})
	return nil
}

// applyResult settles the round's bankroll change.
func (s *Session) applyResult(result game.Result) {
	before := s.Bankroll
	s.Bankroll = s.Bankroll.Add(result.Delta)
	s.emitEvent(events.BankrollChanged{
		SessionID: s.ID,
		Before:    before,
		After:     s.Bankroll,
		Change:    result.Delta,
	})
}

// buyBackIn offers a fresh stake to a broke player. Returns false when
// the player is done.
func (s *Session) buyBackIn() bool {
	s.display.ShowMessage("You're out of money!")
	if !s.input.AskYesNo("Do you want to buy back in to keep playing?") {
		return false
	}

	amount := s.input.AskAmount("How much money would you like to add to your funds?", s.Rules.MinBet)
	before := s.Bankroll
	s.Bankroll = s.Bankroll.Add(amount)

	s.emitEvent(events.PlayerBoughtIn{SessionID: s.ID, Amount: amount})
	s.emitEvent(events.BankrollChanged{
		SessionID: s.ID,
		Before:    before,
		After:     s.Bankroll,
		Change:    amount,
	})
	return true
}
