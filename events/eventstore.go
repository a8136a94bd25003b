package events

import (
	"fmt"
	"sync"
)

// EventStore is the interface for storing and retrieving events.
type EventStore interface {
	Append(event Event) error
	LoadEvents(sessionID string) ([]Event, error)
}

// InMemoryEventStore is an in-memory implementation of the EventStore interface.
type InMemoryEventStore struct {
	events map[string][]Event
	mutex  sync.RWMutex
}

// NewInMemoryEventStore creates a new in-memory event store.
func NewInMemoryEventStore() *InMemoryEventStore {
	return &InMemoryEventStore{
		events: make(map[string][]Event),
	}
}

// Append adds a new event to the store.
func (s *InMemoryEventStore) Append(event Event) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	sessionID := GetSessionID(event)
	if sessionID == "" {
		return fmt.Errorf("event has no sessionID")
	}

	s.events[sessionID] = append(s.events[sessionID], event)
	return nil
}

// LoadEvents retrieves all events for the given sessionID.
func (s *InMemoryEventStore) LoadEvents(sessionID string) ([]Event, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if events, exists := s.events[sessionID]; exists {
		result := make([]Event, len(events))
		copy(result, events)
		return result, nil
	}

	return []Event{}, nil
}

// GetEvents returns every stored event across all sessions.
func (s *InMemoryEventStore) GetEvents() []Event {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	var events []Event
	for _, e := range s.events {
		events = append(events, e...)
	}
	return events
}
