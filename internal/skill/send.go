package skill

import (
	"context"
	"strings"

	"courier/internal/draft"
	"go.uber.org/zap"
)

// sendEmail hands a confirmed email draft to the delivery facade.
func (s *Skill) sendEmail(user string, d *draft.Draft) {
	s.speaker.SpeakDialog(user, "EmailSent", nil, false)
	if err := s.delivery.SendEmail(context.Background(), user, d.Recipient, d.Subject, d.Body); err != nil {
		s.logger.Error("email handoff failed", zap.Error(err), zap.String("user", user))
		s.speaker.SpeakDialog(user, "ErrorDialog", nil, false)
	}
}

// sendSMS hands a confirmed text message to the delivery facade. A resolved
// recipient should be a number by now; anything else is logged and passed
// through untouched.
func (s *Skill) sendSMS(user string, d *draft.Draft) {
	s.speaker.SpeakDialog(user, "TextSent", nil, false)
	number := d.Recipient
	if strings.ContainsFunc(number, func(r rune) bool { return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' }) {
		s.logger.Error("sms recipient is not a number", zap.String("recipient", number))
	} else {
		number = digitsOf(number)
	}
	if err := s.delivery.SendSMS(context.Background(), user, number, d.Message); err != nil {
		s.logger.Error("sms handoff failed", zap.Error(err), zap.String("user", user))
		s.speaker.SpeakDialog(user, "ErrorDialog", nil, false)
	}
}

// placeCall hands a confirmed call target to the delivery facade.
func (s *Skill) placeCall(user string, d *draft.Draft) {
	s.speaker.SpeakDialog(user, "CallPlaced", map[string]string{"name": d.Name}, false)
	if err := s.delivery.PlaceCall(context.Background(), user, digitsOf(d.Number)); err != nil {
		s.logger.Error("call handoff failed", zap.Error(err), zap.String("user", user))
		s.speaker.SpeakDialog(user, "ErrorDialog", nil, false)
	}
}
