package delivery

import (
	"context"
	"time"

	"courier/internal/bus"
	"courier/internal/draft"
)

// BusBridge is the default side channel: it forwards outbound items to the
// device bridge as mobile.* bus events and reports them delivered. The
// device side owns actual transmission and any retries.
type BusBridge struct {
	bus *bus.Bus
}

// NewBusBridge creates a bridge publishing on the given bus.
func NewBusBridge(b *bus.Bus) *BusBridge {
	return &BusBridge{bus: b}
}

// Deliver publishes the outbound item toward the device bridge.
func (br *BusBridge) Deliver(_ context.Context, o *Outbound) (string, error) {
	var kind string
	switch o.Kind {
	case draft.Email:
		kind = "mobile.email"
	case draft.SMS:
		kind = "mobile.sms"
	case draft.Call:
		kind = "mobile.call"
	default:
		kind = "mobile.unknown"
	}
	br.bus.Publish(bus.Event{
		Kind:      kind,
		User:      o.User,
		Timestamp: time.Now(),
		Payload:   o,
	})
	return o.MsgID, nil
}

// DefaultChannels wires the bus bridge as the channel for every kind.
func DefaultChannels(b *bus.Bus) map[draft.Kind]Channel {
	br := NewBusBridge(b)
	return map[draft.Kind]Channel{
		draft.Email: br,
		draft.SMS:   br,
		draft.Call:  br,
	}
}
