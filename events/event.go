package events

import "reflect"

// Event is the interface that all domain events must implement.
type Event interface {
	Name() string // Returns a unique name for the event type
}

// EventHandler receives every event emitted by a session.
type EventHandler func(event Event)

// GetSessionID extracts the SessionID field from an event, if present.
func GetSessionID(event Event) string {
	val := reflect.ValueOf(event)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}
	field := val.FieldByName("SessionID")
	if field.IsValid() && field.Kind() == reflect.String {
		return field.String()
	}
	return ""
}
