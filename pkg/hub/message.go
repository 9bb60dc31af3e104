// Package hub provides a thread-safe websocket broadcast hub
// using the idiomatic Go channel-based fan-out pattern.
//
// The conversation hub streams one TurnEvent per dispatched turn so web
// clients can render the transcript live.
package hub

import "time"

// Event types carried by TurnEvent.
const (
	// EventTurn is a new transcript entry.
	EventTurn = "turn"

	// EventCleared signals that the transcript was cleared.
	EventCleared = "cleared"

	// EventTerminated signals that the session ended.
	EventTerminated = "terminated"
)

// TurnEvent is the JSON payload broadcast for conversation updates.
type TurnEvent struct {
	Event     string    `json:"event"`
	ID        string    `json:"id,omitempty"`
	Role      string    `json:"role,omitempty"`
	Text      string    `json:"text,omitempty"`
	Timestamp time.Time `json:"timestamp,omitempty"`
}

// Message represents a JSON message to be broadcast to clients.
type Message struct {
	Data []byte
}
