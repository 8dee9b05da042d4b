// Package delivery hands confirmed drafts to their delivery channels through
// a durable outbox. Transmission itself belongs to the channel; the
// dispatcher only records the handoff and its outcome.
package delivery

import (
	"context"
	"time"

	"courier/internal/bus"
	"courier/internal/draft"
	"courier/internal/store"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Outbound is a confirmed message on its way to a delivery channel.
type Outbound struct {
	MsgID   string
	User    string
	Kind    draft.Kind
	Address string
	Subject string
	Body    string
}

// Channel delivers an outbound item over an external transport. A returned
// error marks the item failed; any retry policy belongs to the channel.
type Channel interface {
	Deliver(ctx context.Context, o *Outbound) (providerMsgID string, err error)
}

// Dispatcher queues confirmed drafts to the outbox and drains it to per-kind
// channels.
type Dispatcher struct {
	db       *store.DB
	channels map[draft.Kind]Channel
	bus      *bus.Bus
	logger   *zap.Logger
	cancel   context.CancelFunc
}

// NewDispatcher creates a dispatcher.
func NewDispatcher(db *store.DB, channels map[draft.Kind]Channel, b *bus.Bus, logger *zap.Logger) *Dispatcher {
	return &Dispatcher{
		db:       db,
		channels: channels,
		bus:      b,
		logger:   logger,
	}
}

// SendEmail queues a confirmed email for delivery.
func (d *Dispatcher) SendEmail(_ context.Context, user, recipient, subject, body string) error {
	return d.queue(&Outbound{
		User:    user,
		Kind:    draft.Email,
		Address: recipient,
		Subject: subject,
		Body:    body,
	})
}

// SendSMS queues a confirmed text message for delivery.
func (d *Dispatcher) SendSMS(_ context.Context, user, number, text string) error {
	return d.queue(&Outbound{
		User:    user,
		Kind:    draft.SMS,
		Address: number,
		Body:    text,
	})
}

// PlaceCall queues a confirmed call for the device bridge.
func (d *Dispatcher) PlaceCall(_ context.Context, user, number string) error {
	return d.queue(&Outbound{
		User:    user,
		Kind:    draft.Call,
		Address: number,
	})
}

func (d *Dispatcher) queue(o *Outbound) error {
	o.MsgID = uuid.New().String()
	if err := d.db.QueueOutbox(&store.OutboxEntry{
		MsgID:   o.MsgID,
		User:    o.User,
		Kind:    string(o.Kind),
		Address: o.Address,
		Subject: o.Subject,
		Body:    o.Body,
	}); err != nil {
		return err
	}
	d.bus.Publish(bus.Event{
		Kind:      "delivery.queued",
		User:      o.User,
		Timestamp: time.Now(),
		Payload:   map[string]string{"msg_id": o.MsgID, "kind": string(o.Kind)},
	})
	return nil
}

// Start begins polling the outbox for pending messages.
func (d *Dispatcher) Start(ctx context.Context) {
	ctx, d.cancel = context.WithCancel(ctx)
	go d.loop(ctx)
}

// Stop stops the dispatcher loop.
func (d *Dispatcher) Stop() {
	if d.cancel != nil {
		d.cancel()
	}
}

func (d *Dispatcher) loop(ctx context.Context) {
	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			d.processPending(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (d *Dispatcher) processPending(ctx context.Context) {
	pending, err := d.db.PendingOutbox()
	if err != nil {
		d.logger.Error("failed to read outbox", zap.Error(err))
		return
	}

	for _, entry := range pending {
		if err := d.db.MarkOutboxSending(entry.MsgID); err != nil {
			d.logger.Error("failed to mark sending", zap.Error(err), zap.String("msg_id", entry.MsgID))
			continue
		}

		o := &Outbound{
			MsgID:   entry.MsgID,
			User:    entry.User,
			Kind:    draft.Kind(entry.Kind),
			Address: entry.Address,
			Subject: entry.Subject,
			Body:    entry.Body,
		}

		ch, ok := d.channels[o.Kind]
		if !ok {
			d.logger.Error("no channel for kind", zap.String("kind", entry.Kind), zap.String("msg_id", entry.MsgID))
			_ = d.db.MarkOutboxFailed(entry.MsgID, "no channel for kind "+entry.Kind)
			continue
		}

		providerMsgID, err := ch.Deliver(ctx, o)
		if err != nil {
			d.logger.Error("delivery failed", zap.Error(err), zap.String("msg_id", entry.MsgID))
			_ = d.db.MarkOutboxFailed(entry.MsgID, err.Error())
			d.bus.Publish(bus.Event{
				Kind:      "delivery.failed",
				User:      entry.User,
				Timestamp: time.Now(),
				Payload: map[string]string{
					"msg_id": entry.MsgID,
					"error":  err.Error(),
				},
			})
			continue
		}

		if err := d.db.MarkOutboxSent(entry.MsgID, providerMsgID); err != nil {
			d.logger.Error("failed to mark sent", zap.Error(err), zap.String("msg_id", entry.MsgID))
		}
		if err := d.db.InsertTranscript(&store.Transcript{
			User:    entry.User,
			Kind:    entry.Kind,
			Address: entry.Address,
			Preview: preview(entry),
			SentAt:  time.Now().UnixMilli(),
		}); err != nil {
			d.logger.Error("failed to archive transcript", zap.Error(err), zap.String("msg_id", entry.MsgID))
		}

		d.logger.Info("message handed off",
			zap.String("msg_id", entry.MsgID),
			zap.String("kind", entry.Kind),
			zap.String("provider_msg_id", providerMsgID))
		d.bus.Publish(bus.Event{
			Kind:      "delivery.sent",
			User:      entry.User,
			Timestamp: time.Now(),
			Payload: map[string]string{
				"msg_id":          entry.MsgID,
				"provider_msg_id": providerMsgID,
			},
		})
	}
}

func preview(e store.OutboxEntry) string {
	text := e.Subject
	if text == "" {
		text = e.Body
	}
	return truncate(text, 100)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen]
}
