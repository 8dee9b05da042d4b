package contacts

import (
	"context"
	"time"

	"courier/internal/bus"
	"go.uber.org/zap"
)

// BusRequester publishes lookup requests toward whatever contact service is
// attached to the bus. It is fire-and-forget: the reply arrives later as a
// messaging.confirmation event.
type BusRequester struct {
	bus *bus.Bus
}

// NewBusRequester creates a requester publishing on the given bus.
func NewBusRequester(b *bus.Bus) *BusRequester {
	return &BusRequester{bus: b}
}

// RequestContact asks for candidates matching a spoken recipient name.
func (r *BusRequester) RequestContact(user, recipient, kind string) {
	r.bus.Publish(bus.Event{
		Kind:      "contacts.lookup",
		User:      user,
		Timestamp: time.Now(),
		Payload:   LookupRequest{User: user, Recipient: recipient, Kind: kind},
	})
}

// Service answers contacts.lookup requests from the local directory and
// publishes the result on the messaging confirmation channel. It stands in
// for the device-side directory when courierd runs standalone.
type Service struct {
	dir    *Directory
	bus    *bus.Bus
	logger *zap.Logger
	cancel context.CancelFunc
}

// NewService creates a loopback contact service.
func NewService(dir *Directory, b *bus.Bus, logger *zap.Logger) *Service {
	return &Service{dir: dir, bus: b, logger: logger}
}

// Start subscribes to contacts.lookup events on the bus.
func (s *Service) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)
	ch, unsub := s.bus.Subscribe("contacts.", 64)

	go func() {
		defer unsub()
		for {
			select {
			case evt := <-ch:
				s.handleEvent(evt)
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Stop stops the service.
func (s *Service) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
}

func (s *Service) handleEvent(evt bus.Event) {
	req, ok := evt.Payload.(LookupRequest)
	if !ok {
		return
	}
	results := s.dir.Find(req.Recipient)
	s.logger.Debug("contact lookup",
		zap.String("user", req.User),
		zap.String("recipient", req.Recipient),
		zap.Int("candidates", len(results)))
	s.bus.Publish(bus.Event{
		Kind:      "messaging.confirmation",
		User:      req.User,
		Timestamp: time.Now(),
		Payload:   &LookupResult{User: req.User, Results: results},
	})
}
