package skill

import (
	"courier/internal/contacts"
	"courier/internal/draft"
	"courier/internal/resolve"
	"go.uber.org/zap"
)

// HandleConfirmation resolves the draft's recipient once contact lookup
// results arrive (results may be empty when the recipient was already a
// concrete address) and speaks the kind-specific confirmation prompt. An
// unresolvable recipient discards the draft with a user-visible notice.
func (s *Skill) HandleConfirmation(user string, results contacts.Results) {
	defer func() {
		if r := recover(); r != nil {
			// The draft may be left dangling here; the user can start over
			// with a new send intent, which replaces it.
			s.logger.Error("confirmation handling panicked", zap.String("user", user), zap.Any("panic", r))
			s.speaker.SpeakDialog(user, "ErrorDialog", nil, false)
		}
	}()

	d, ok := s.drafts.Get(user)
	if !ok {
		s.logger.Warn("confirmation for unknown draft", zap.String("user", user))
		return
	}

	if cand, ok := results.First(); ok {
		d.Recipient = cand.Name
	}

	res := s.resolver.Resolve(d, results)
	switch res.Outcome {
	case resolve.Resolved:
		s.speakConfirmation(user, d, res)
	case resolve.PartiallyUnresolved:
		s.speaker.SpeakDialog(user, "ContactNotFound", map[string]string{
			"kind":      resolve.AddressTypeLabel(d.Kind),
			"recipient": d.Recipient,
		}, false)
		s.drafts.Remove(user)
	default:
		s.logger.Warn("no recipient found", zap.String("user", user), zap.String("kind", string(d.Kind)))
		s.speaker.SpeakDialog(user, "ErrorDialog", nil, false)
		s.drafts.Remove(user)
	}
}

func (s *Skill) speakConfirmation(user string, d *draft.Draft, res resolve.Resolution) {
	d.Recipient = res.Address

	// Only speak the raw address when it differs from the display name.
	spokenAddr := ""
	if res.DisplayName != res.Address {
		spokenAddr = "(" + res.Address + ")"
	}

	if d.Kind == draft.Call {
		d.Number = res.Address
		d.Name = res.DisplayName
		s.speaker.SpeakDialog(user, "ConfirmCall", map[string]string{
			"name":   res.DisplayName,
			"number": spokenAddr,
		}, true)
		return
	}

	s.speaker.SpeakDialog(user, "ConfirmMessage", map[string]string{
		"kind":    string(d.Kind),
		"name":    res.DisplayName,
		"address": spokenAddr,
		"message": d.ContentPreview(),
	}, false)
	if d.Kind == draft.Email {
		s.speaker.SpeakDialog(user, "ConfirmEmail", nil, true)
	} else {
		s.speaker.SpeakDialog(user, "ConfirmSend", nil, true)
	}
}
