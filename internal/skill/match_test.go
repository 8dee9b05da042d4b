package skill

import (
	"testing"

	"courier/internal/draft"
	"courier/internal/extract"
)

func TestMatchMessagePhrase(t *testing.T) {
	s, _, _, _ := newTestSkill()

	tests := []struct {
		name    string
		request string
		want    *MessageMatch
	}{
		{
			name:    "email keyword",
			request: "send an email to jane",
			want:    &MessageMatch{Confidence: extract.Exact, Kind: draft.Email},
		},
		{
			name:    "sms keyword",
			request: "send a text message to bob",
			want:    &MessageMatch{Confidence: extract.Exact, Kind: draft.SMS},
		},
		{
			name:    "klat keyword wins over everything",
			request: "send a private message to bob saying hi",
			want:    &MessageMatch{Confidence: extract.Exact, Kind: draft.Klat},
		},
		{
			name:    "saying marker extracts at media",
			request: "send a text to bob saying pick up milk",
			want: &MessageMatch{
				Confidence: extract.Media,
				Kind:       draft.SMS,
				Recipient:  "bob",
				Message:    "pick up milk",
			},
		},
		{
			name:    "no marker degrades to loose without a kind",
			request: "send a message to bob pick up milk",
			want: &MessageMatch{
				Confidence: extract.Loose,
				Recipient:  "bob",
				Message:    "pick up milk",
			},
		},
		{
			name:    "recipient only",
			request: "send a message to bob",
			want: &MessageMatch{
				Confidence: extract.Loose,
				Kind:       draft.SMS,
				Recipient:  "bob",
			},
		},
		{
			name:    "no recipient at all",
			request: "what time is it",
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.MatchMessagePhrase(tt.request)
			if tt.want == nil {
				if got != nil {
					t.Fatalf("got %+v, want nil", got)
				}
				return
			}
			if got == nil {
				t.Fatal("got nil match")
			}
			if *got != *tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestMatchCallPhrase(t *testing.T) {
	tests := []struct {
		name    string
		contact string
		want    CallMatch
	}{
		{
			name:    "full number",
			contact: "555-123-4567",
			want:    CallMatch{Confidence: extract.Exact, Recipient: "555-123-4567", Number: "5551234567"},
		},
		{
			name:    "seven digits is enough",
			contact: "123 4567",
			want:    CallMatch{Confidence: extract.Exact, Recipient: "123 4567", Number: "1234567"},
		},
		{
			name:    "six digits is a name",
			contact: "123456",
			want:    CallMatch{Confidence: extract.Media, Recipient: "123456"},
		},
		{
			name:    "plain name",
			contact: "mom",
			want:    CallMatch{Confidence: extract.Media, Recipient: "mom"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MatchCallPhrase(tt.contact); got != tt.want {
				t.Errorf("MatchCallPhrase(%q) = %+v, want %+v", tt.contact, got, tt.want)
			}
		})
	}
}
