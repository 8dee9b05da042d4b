package dialog

import (
	"time"

	"courier/internal/bus"
)

// Spoken is the payload of a speak.dialog event.
type Spoken struct {
	Name           string
	Text           string
	ExpectResponse bool
}

// BusSpeaker renders dialog and publishes it as speak.dialog events for
// whatever output channel is attached to the bus.
type BusSpeaker struct {
	renderer *Renderer
	bus      *bus.Bus
}

// NewBusSpeaker creates a speaker publishing on the given bus.
func NewBusSpeaker(r *Renderer, b *bus.Bus) *BusSpeaker {
	return &BusSpeaker{renderer: r, bus: b}
}

// SpeakDialog renders the named template and publishes it toward the user.
func (s *BusSpeaker) SpeakDialog(user, name string, subs map[string]string, expectResponse bool) {
	s.bus.Publish(bus.Event{
		Kind:      "speak.dialog",
		User:      user,
		Timestamp: time.Now(),
		Payload: Spoken{
			Name:           name,
			Text:           s.renderer.Render(name, subs),
			ExpectResponse: expectResponse,
		},
	})
}
