package skill

import (
	"strings"

	"courier/internal/draft"
	"courier/internal/extract"
)

// MessageMatch is the skill's bid for an ambiguous send-message utterance.
// Kind may be empty when extraction found a recipient without deciding the
// channel.
type MessageMatch struct {
	Confidence extract.MatchLevel
	Kind       draft.Kind
	Recipient  string
	Message    string
	Subject    string
}

// MatchMessagePhrase evaluates whether this skill should own an utterance.
// Explicit channel keywords win at Exact confidence; otherwise SMS
// extraction is tried first, then email extraction, with confidence degraded
// to Loose when only a recipient was found. Returns nil for no match.
func (s *Skill) MatchMessagePhrase(request string) *MessageMatch {
	switch {
	case s.vocab.Match(request, "klat"):
		return &MessageMatch{Confidence: extract.Exact, Kind: draft.Klat}
	case s.vocab.Match(request, "email"):
		return &MessageMatch{Confidence: extract.Exact, Kind: draft.Email}
	case s.vocab.Match(request, "sms"):
		return &MessageMatch{Confidence: extract.Exact, Kind: draft.SMS}
	}

	recipient, message, conf := extract.SMS(request)
	m := &MessageMatch{}
	if conf == extract.Media {
		m.Kind = draft.SMS
	}
	switch {
	case recipient != "" && message != "":
		m.Confidence = conf
		m.Recipient = recipient
		m.Message = message
	case recipient != "":
		m.Confidence = extract.Loose
		m.Recipient = recipient
	default:
		recipient, subject := extract.Email(request)
		m.Kind = draft.Email
		switch {
		case recipient != "" && subject != "":
			m.Confidence = extract.Media
			m.Recipient = recipient
			m.Subject = subject
		case recipient != "":
			m.Confidence = extract.Loose
			m.Recipient = recipient
		default:
			return nil
		}
	}
	return m
}

// CallMatch is the skill's bid for a call phrase.
type CallMatch struct {
	Confidence extract.MatchLevel
	Recipient  string
	Number     string
}

// MatchCallPhrase evaluates the contact portion of a call request. Seven or
// more digit characters make a fully specified number at Exact confidence;
// anything else is a name needing contact resolution, at Media.
func MatchCallPhrase(contact string) CallMatch {
	digits := digitsOf(contact)
	if len(digits) >= 7 {
		return CallMatch{Confidence: extract.Exact, Recipient: contact, Number: digits}
	}
	return CallMatch{Confidence: extract.Media, Recipient: contact}
}

func digitsOf(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
