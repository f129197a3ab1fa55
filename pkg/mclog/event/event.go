// Package event defines the classified log event type shared by the
// classifier, the watcher, and downstream sinks.
package event

import "time"

// Type identifies the kind of a classified event.
type Type string

// Built-in event types produced by the default classifier.
const (
	Death       Type = "death"
	Advancement Type = "advancement"
	Challenge   Type = "challenge"
	Goal        Type = "goal"
	Join        Type = "join"
	Leave       Type = "leave"
	Chat        Type = "chat"
	Login       Type = "login"
	ServerStart Type = "server_start"
)

// ServerActor is the sentinel player value for server-level events such as
// server_start, which have no associated player.
const ServerActor = "server"

// BuiltinTypes returns the closed set of event types the default classifier
// can produce, in a stable order.
func BuiltinTypes() []Type {
	return []Type{
		Death, Advancement, Challenge, Goal,
		Join, Leave, Chat, Login, ServerStart,
	}
}

// Event is one classified occurrence extracted from a single log line.
// Field names form the wire contract with downstream sinks and must not
// change.
type Event struct {
	// Timestamp combines the log-local time of day with an externally
	// supplied calendar date; server logs do not carry a date themselves.
	Timestamp time.Time `json:"timestamp"`

	// Player is the player name associated with the event, or ServerActor
	// for server-level events. Never empty for recognized events.
	Player string `json:"player"`

	// Type is the event kind.
	Type Type `json:"event_type"`

	// Details is the kind-specific payload: death reason text,
	// advancement/challenge/goal title, chat body, formatted login
	// coordinates, or empty. Always present on the wire, even when empty.
	Details string `json:"details"`

	// RawMessage is the original log message, retained for audit.
	// Always present on the wire, even when empty.
	RawMessage string `json:"raw_message"`

	// Data holds named captures from custom pattern classifiers.
	// The built-in classifier never sets it.
	Data map[string]string `json:"data,omitempty"`
}
