package bus

import "time"

// Event is a domain event delivered over the in-process bus. User identifies
// the conversation the event belongs to; it is empty for global events.
type Event struct {
	Kind      string
	User      string
	Timestamp time.Time
	Payload   any
}
