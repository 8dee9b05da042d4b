package skill

import (
	"strings"

	"courier/internal/draft"
)

// Converse gives the user's open draft first claim on an utterance. It
// returns false when the turn was not consumed, signalling the host that
// another skill may handle it.
func (s *Skill) Converse(user, utterance string) bool {
	d, ok := s.drafts.Get(user)
	if !ok {
		return false
	}

	switch d.Kind {
	case draft.Email:
		return s.converseEmail(user, d, utterance)
	case draft.SMS:
		return s.converseSMS(user, d, utterance)
	case draft.Call:
		return s.confirmationReply(user, d, utterance, s.placeCall)
	default:
		return false
	}
}

func (s *Skill) converseEmail(user string, d *draft.Draft, utterance string) bool {
	switch d.Stage {
	case draft.StageRecipient:
		// Spoken names become dotted address locals ("john smith" -> "john.smith").
		d.Recipient = strings.ReplaceAll(strings.TrimSpace(utterance), " ", ".")
		_ = d.Advance(draft.StageSubject)
		s.speaker.SpeakDialog(user, "GetEmailSubject", nil, true)
	case draft.StageSubject:
		d.Subject = strings.TrimSpace(utterance)
		_ = d.Advance(draft.StageBody)
		s.speaker.SpeakDialog(user, "GetEmailBody", nil, true)
	case draft.StageBody:
		if utterance == "done" {
			_ = d.Advance(draft.StageConfirmation)
			s.lookup.RequestContact(user, d.Recipient, string(draft.Email))
		} else {
			d.AppendBody(utterance)
		}
	case draft.StageConfirmation:
		return s.confirmationReply(user, d, utterance, s.sendEmail)
	}
	return true
}

func (s *Skill) converseSMS(user string, d *draft.Draft, utterance string) bool {
	switch d.Stage {
	case draft.StageRecipient:
		d.Recipient = strings.TrimSpace(utterance)
		_ = d.Advance(draft.StageMessage)
		s.speaker.SpeakDialog(user, "GetMessage", nil, true)
	case draft.StageMessage:
		d.Message = strings.TrimSpace(utterance)
		_ = d.Advance(draft.StageConfirmation)
		s.lookup.RequestContact(user, d.Recipient, string(draft.SMS))
	case draft.StageConfirmation:
		return s.confirmationReply(user, d, utterance, s.sendSMS)
	}
	return true
}

// confirmationReply resolves a yes/no answer at the confirmation stage. The
// draft is removed before the send runs, so replaying the same confirmation
// is a no-op rather than a double send.
func (s *Skill) confirmationReply(user string, d *draft.Draft, utterance string, send func(user string, d *draft.Draft)) bool {
	switch {
	case s.vocab.Match(utterance, "no"):
		s.speaker.SpeakDialog(user, "DiscardDraft", nil, false)
		s.drafts.Remove(user)
	case s.vocab.Match(utterance, "yes"):
		s.drafts.Remove(user)
		send(user, d)
	default:
		return false
	}
	return true
}
