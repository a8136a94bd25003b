package events

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/lazharichir/blackjack/cards"
)

func TestInMemoryEventStore(t *testing.T) {
	store := NewInMemoryEventStore()

	sessionID := "session-123"

	t.Run("Append and load events", func(t *testing.T) {
		roundStarted := RoundStarted{
			SessionID: sessionID,
			RoundID:   "round-456",
			Number:    1,
		}

		betPlaced := BetPlaced{
			SessionID: sessionID,
			RoundID:   "round-456",
			Amount:    decimal.RequireFromString("2.00"),
		}

		cardDealt := CardDealt{
			SessionID: sessionID,
			RoundID:   "round-456",
			To:        "dealer",
			Card:      cards.Card{Suit: cards.Spades, Value: cards.Ace},
			FaceUp:    false,
		}

		if err := store.Append(roundStarted); err != nil {
			t.Errorf("Failed to append RoundStarted event: %v", err)
		}
		if err := store.Append(betPlaced); err != nil {
			t.Errorf("Failed to append BetPlaced event: %v", err)
		}
		if err := store.Append(cardDealt); err != nil {
			t.Errorf("Failed to append CardDealt event: %v", err)
		}

		events, err := store.LoadEvents(sessionID)
		if err != nil {
			t.Errorf("Failed to load events: %v", err)
		}

		if len(events) != 3 {
			t.Errorf("Expected 3 events, got %d", len(events))
		}

		// Check event types and ordering
		if events[0].Name() != "ROUND_STARTED" {
			t.Errorf("Expected first event to be ROUND_STARTED, got %s", events[0].Name())
		}
		if events[1].Name() != "BET_PLACED" {
			t.Errorf("Expected second event to be BET_PLACED, got %s", events[1].Name())
		}
		if events[2].Name() != "CARD_DEALT" {
			t.Errorf("Expected third event to be CARD_DEALT, got %s", events[2].Name())
		}
	})

	t.Run("Load events for non-existent session", func(t *testing.T) {
		events, err := store.LoadEvents("non-existent-session")
		if err != nil {
			t.Errorf("Expected no error for non-existent session, got %v", err)
		}
		if len(events) != 0 {
			t.Errorf("Expected 0 events for non-existent session, got %d", len(events))
		}
	})

	t.Run("GetEvents spans sessions", func(t *testing.T) {
		otherSession := SessionStarted{
			SessionID:  "session-789",
			PlayerName: "Anna",
			Bankroll:   decimal.RequireFromString("20.00"),
		}
		if err := store.Append(otherSession); err != nil {
			t.Errorf("Failed to append SessionStarted event: %v", err)
		}

		all := store.GetEvents()
		if len(all) != 4 {
			t.Errorf("Expected 4 events across all sessions, got %d", len(all))
		}

		found := false
		for _, e := range all {
			if e.Name() == "SESSION_STARTED" {
				found = true
			}
		}
		if !found {
			t.Error("Expected GetEvents to include the other session's SESSION_STARTED")
		}
	})

	t.Run("Append event without sessionID", func(t *testing.T) {
		if err := store.Append(RoundStarted{}); err == nil {
			t.Error("Expected an error appending an event with no sessionID")
		}
	})
}

func TestGetSessionID(t *testing.T) {
	event := PlayerBoughtIn{SessionID: "session-abc", Amount: decimal.RequireFromString("5.00")}
	if got := GetSessionID(event); got != "session-abc" {
		t.Errorf("Expected session-abc, got %q", got)
	}
}
