// Package draft holds the in-progress message entity and the per-user store
// that owns its lifecycle. A user has at most one open draft; a new send
// intent silently replaces it.
package draft

import (
	"fmt"
	"strings"
	"time"
)

// Kind is the delivery channel a draft targets.
type Kind string

const (
	Email Kind = "email"
	SMS   Kind = "text message"
	Call  Kind = "call"

	// Klat is the internal chat channel. Drafting private chat messages is
	// recognized by the matcher but not implemented yet.
	Klat Kind = "klat"
)

// Stage is the cursor over what the next user turn must supply.
type Stage string

const (
	StageRecipient    Stage = "recipient"
	StageSubject      Stage = "subject"
	StageBody         Stage = "body"
	StageMessage      Stage = "message"
	StageConfirmation Stage = "confirmation"
)

// stageOrder fixes the forward-only progression per kind. A call draft is
// created address-complete and starts at confirmation.
var stageOrder = map[Kind][]Stage{
	Email: {StageRecipient, StageSubject, StageBody, StageConfirmation},
	SMS:   {StageRecipient, StageMessage, StageConfirmation},
	Call:  {StageConfirmation},
}

// Draft is one in-progress message for one user.
type Draft struct {
	Kind      Kind
	Recipient string
	Subject   string
	Body      string
	Message   string

	// Number and Name are the resolved call target (call kind only).
	Number string
	Name   string

	Stage Stage

	// Context is opaque conversational context carried through to the
	// confirmation layer; the core never interprets it.
	Context map[string]any

	CreatedAt time.Time
}

// New creates a draft of the given kind at its first stage.
func New(kind Kind, ctx map[string]any) *Draft {
	stages := stageOrder[kind]
	var first Stage
	if len(stages) > 0 {
		first = stages[0]
	}
	return &Draft{
		Kind:      kind,
		Stage:     first,
		Context:   ctx,
		CreatedAt: time.Now(),
	}
}

// Advance moves the stage cursor forward. The cursor never regresses; a
// restart requires a new draft.
func (d *Draft) Advance(to Stage) error {
	stages := stageOrder[d.Kind]
	cur := indexOf(stages, d.Stage)
	next := indexOf(stages, to)
	if next < 0 {
		return fmt.Errorf("stage %q not valid for kind %q", to, d.Kind)
	}
	if next <= cur {
		return fmt.Errorf("cannot move stage backward from %q to %q", d.Stage, to)
	}
	d.Stage = to
	return nil
}

// AppendBody adds one spoken line to the email body.
func (d *Draft) AppendBody(line string) {
	d.Body += line + "\n"
}

// ContentPreview returns the part of the draft spoken back during
// confirmation: the subject for email, the message for text messages.
func (d *Draft) ContentPreview() string {
	switch d.Kind {
	case Email:
		return d.Subject
	case SMS:
		return d.Message
	default:
		return ""
	}
}

// Expired reports whether the draft is older than ttl. A zero ttl disables
// expiry.
func (d *Draft) Expired(ttl time.Duration, now time.Time) bool {
	return ttl > 0 && now.Sub(d.CreatedAt) > ttl
}

func indexOf(stages []Stage, s Stage) int {
	for i, st := range stages {
		if st == s {
			return i
		}
	}
	return -1
}

// ParseKind maps a wire kind string to a Kind, accepting the short "sms"
// spelling used by match vocabulary.
func ParseKind(s string) (Kind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "email":
		return Email, true
	case "sms", "text message", "text":
		return SMS, true
	case "call":
		return Call, true
	case "klat":
		return Klat, true
	default:
		return "", false
	}
}
