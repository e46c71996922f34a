package entities

import "time"

// ActivityEvent is an append-only audit row. Writing one is always a
// non-critical side effect: failures are logged and never abort the
// operation that produced the event.
type ActivityEvent struct {
	ID         string    `json:"id"`
	DocumentID string    `json:"document_id,omitempty"`
	Actor      string    `json:"actor"`
	Action     string    `json:"action"`
	Detail     string    `json:"detail,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
