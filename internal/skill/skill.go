// Package skill implements the draft/confirm messaging conversation: the
// per-user state machine that turns a send intent plus follow-up answers
// into a confirmed, fully addressed message handed off for delivery.
package skill

import (
	"context"

	"courier/internal/draft"
	"courier/internal/resolve"
	"courier/internal/vocab"
	"go.uber.org/zap"
)

// Speaker renders a named dialog toward the user. The hosting framework owns
// the actual TTS/output channel.
type Speaker interface {
	SpeakDialog(user, name string, subs map[string]string, expectResponse bool)
}

// ContactRequester asks the external contact service for candidates matching
// a spoken recipient. Fire-and-forget; the reply arrives later as a
// confirmation event.
type ContactRequester interface {
	RequestContact(user, recipient, kind string)
}

// Delivery hands confirmed drafts to their delivery channels.
type Delivery interface {
	SendEmail(ctx context.Context, user, recipient, subject, body string) error
	SendSMS(ctx context.Context, user, number, text string) error
	PlaceCall(ctx context.Context, user, number string) error
}

// Skill is the messaging skill: facade handlers for send intents, the
// converse loop advancing open drafts, and confirmation resolution.
type Skill struct {
	drafts   *draft.Store
	resolver *resolve.Resolver
	vocab    *vocab.Matcher
	speaker  Speaker
	lookup   ContactRequester
	delivery Delivery
	logger   *zap.Logger
}

// New creates the skill.
func New(
	drafts *draft.Store,
	resolver *resolve.Resolver,
	matcher *vocab.Matcher,
	speaker Speaker,
	lookup ContactRequester,
	delivery Delivery,
	logger *zap.Logger,
) *Skill {
	return &Skill{
		drafts:   drafts,
		resolver: resolver,
		vocab:    matcher,
		speaker:  speaker,
		lookup:   lookup,
		delivery: delivery,
		logger:   logger,
	}
}

// Drafts exposes the draft store, mainly for lifecycle management.
func (s *Skill) Drafts() *draft.Store {
	return s.drafts
}
