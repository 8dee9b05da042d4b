// Package router is the miniature arbitration layer for locally attached
// channels: it gives open drafts first claim on each utterance, then runs
// the skill's phrase matchers, and forwards contact lookup results back into
// confirmation handling.
package router

import (
	"context"
	"strings"
	"time"

	"courier/internal/bus"
	"courier/internal/contacts"
	"courier/internal/skill"
	"courier/internal/vocab"
	"go.uber.org/zap"
)

// Router dispatches bus events into the skill facade.
type Router struct {
	skill  *skill.Skill
	vocab  *vocab.Matcher
	bus    *bus.Bus
	logger *zap.Logger
	cancel context.CancelFunc
}

// New creates a router.
func New(sk *skill.Skill, matcher *vocab.Matcher, b *bus.Bus, logger *zap.Logger) *Router {
	return &Router{skill: sk, vocab: matcher, bus: b, logger: logger}
}

// Start subscribes to utterance and messaging events on the bus.
func (r *Router) Start(ctx context.Context) {
	ctx, r.cancel = context.WithCancel(ctx)
	utterances, unsubU := r.bus.Subscribe("utterance.", 256)
	confirmations, unsubC := r.bus.Subscribe("messaging.", 64)

	go func() {
		defer unsubU()
		defer unsubC()
		for {
			select {
			case evt := <-utterances:
				r.handleUtteranceEvent(evt)
			case evt := <-confirmations:
				r.handleConfirmationEvent(evt)
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Stop stops the router.
func (r *Router) Stop() {
	if r.cancel != nil {
		r.cancel()
	}
}

func (r *Router) handleUtteranceEvent(evt bus.Event) {
	if evt.Kind != "utterance.received" {
		return
	}
	utterance, ok := evt.Payload.(string)
	if !ok {
		return
	}
	r.HandleUtterance(evt.User, utterance)
}

func (r *Router) handleConfirmationEvent(evt bus.Event) {
	if evt.Kind != "messaging.confirmation" {
		return
	}
	result, ok := evt.Payload.(*contacts.LookupResult)
	if !ok {
		return
	}
	r.skill.HandleConfirmation(result.User, result.Results)
}

// HandleUtterance arbitrates one inbound utterance. Locally attached
// channels count as the device bridge, so requests are marked mobile-origin.
func (r *Router) HandleUtterance(user, utterance string) {
	utterance = strings.TrimSpace(utterance)
	if utterance == "" {
		return
	}

	if r.skill.Converse(user, utterance) {
		return
	}

	if contact, ok := r.callContact(utterance); ok {
		m := skill.MatchCallPhrase(contact)
		r.skill.HandlePlaceCall(&skill.CallRequest{
			User:       user,
			Recipient:  m.Recipient,
			Number:     m.Number,
			FromMobile: true,
		})
		return
	}

	if m := r.skill.MatchMessagePhrase(utterance); m != nil {
		r.skill.HandleMessageMatch(user, m, utterance, true, nil)
		return
	}

	r.logger.Debug("utterance not handled", zap.String("user", user))
	r.bus.Publish(bus.Event{
		Kind:      "utterance.unhandled",
		User:      user,
		Timestamp: time.Now(),
		Payload:   utterance,
	})
}

// callContact strips a leading call keyword, returning the contact portion.
func (r *Router) callContact(utterance string) (string, bool) {
	lower := strings.ToLower(utterance)
	if !r.vocab.Match(lower, "call") {
		return "", false
	}
	for _, kw := range []string{"call ", "dial ", "phone "} {
		if rest, ok := strings.CutPrefix(lower, kw); ok {
			return strings.TrimSpace(rest), rest != ""
		}
	}
	return "", false
}
