package skill

import (
	"courier/internal/draft"
	"courier/internal/extract"
	"go.uber.org/zap"
)

// HandleMessageMatch is the common-message callback: the arbitration layer
// hands over an accepted match and the handler for its kind takes it from
// there.
func (s *Skill) HandleMessageMatch(user string, m *MessageMatch, utterance string, fromMobile bool, ctx map[string]any) {
	if m == nil || m.Kind == "" {
		s.logger.Error("message match callback with no kind", zap.String("user", user))
		return
	}
	switch m.Kind {
	case draft.SMS:
		s.HandleSendSMS(&SMSRequest{
			User:       user,
			Utterance:  utterance,
			Recipient:  m.Recipient,
			Message:    m.Message,
			FromMobile: fromMobile,
			Context:    ctx,
		})
	case draft.Email:
		s.HandleSendEmail(&EmailRequest{
			User:       user,
			Utterance:  utterance,
			Recipient:  m.Recipient,
			Subject:    m.Subject,
			FromMobile: fromMobile,
			Context:    ctx,
		})
	case draft.Klat:
		// Private chat drafting is recognized but not built yet.
		s.logger.Warn("private chat messages not supported", zap.String("user", user))
	default:
		s.logger.Error("message match with unknown kind", zap.String("kind", string(m.Kind)))
	}
}

// HandleSendEmail opens an email draft, skipping any questions the first
// utterance already answered.
func (s *Skill) HandleSendEmail(req *EmailRequest) {
	if !req.FromMobile {
		s.speaker.SpeakDialog(req.User, "OnlyMobile", map[string]string{"action": "send emails"}, false)
		return
	}

	d := draft.New(draft.Email, req.Context)
	s.drafts.Put(req.User, d)

	recipient, subject := req.Recipient, req.Subject
	if recipient == "" && subject == "" {
		recipient, subject = extract.Email(req.Utterance)
	}

	switch {
	case recipient != "" && subject != "":
		d.Recipient = recipient
		d.Subject = subject
		_ = d.Advance(draft.StageBody)
		s.speaker.SpeakDialog(req.User, "GetEmailBody", nil, true)
	case recipient != "":
		d.Recipient = recipient
		_ = d.Advance(draft.StageSubject)
		s.speaker.SpeakDialog(req.User, "GetEmailSubject", nil, true)
	default:
		s.speaker.SpeakDialog(req.User, "GetRecipientAddress", map[string]string{"kind": "email"}, true)
	}
}

// HandleSendSMS opens a text message draft. With recipient and message both
// present in one shot the draft goes straight to confirmation and a contact
// lookup is requested.
func (s *Skill) HandleSendSMS(req *SMSRequest) {
	if !req.FromMobile {
		s.speaker.SpeakDialog(req.User, "OnlyMobile", map[string]string{"action": "send text messages"}, false)
		return
	}

	recipient, sms := req.Recipient, req.Message
	if recipient == "" && sms == "" {
		recipient, sms, _ = extract.SMS(req.Utterance)
	}

	d := draft.New(draft.SMS, req.Context)
	s.drafts.Put(req.User, d)

	switch {
	case recipient != "" && sms != "":
		d.Recipient = recipient
		d.Message = sms
		_ = d.Advance(draft.StageConfirmation)
		s.lookup.RequestContact(req.User, recipient, string(draft.SMS))
	case recipient != "":
		d.Recipient = recipient
		_ = d.Advance(draft.StageMessage)
		s.speaker.SpeakDialog(req.User, "GetMessage", nil, true)
	default:
		s.speaker.SpeakDialog(req.User, "GetRecipientAddress", map[string]string{"kind": string(draft.SMS)}, true)
	}
}

// HandlePlaceCall opens a call draft. Call drafts are created
// address-complete: with a number in hand the confirmation runs immediately,
// otherwise a contact lookup supplies it.
func (s *Skill) HandlePlaceCall(req *CallRequest) {
	if !req.FromMobile {
		s.speaker.SpeakDialog(req.User, "OnlyMobile", map[string]string{"action": "call phone numbers"}, false)
		return
	}

	d := draft.New(draft.Call, req.Context)
	d.Recipient = req.Recipient
	d.Number = req.Number
	s.drafts.Put(req.User, d)

	if req.Number != "" {
		s.HandleConfirmation(req.User, nil)
		return
	}
	s.lookup.RequestContact(req.User, req.Recipient, string(draft.Call))
}
