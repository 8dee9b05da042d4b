package extract

import "testing"

func TestSMS(t *testing.T) {
	tests := []struct {
		name      string
		utterance string
		recipient string
		message   string
		conf      MatchLevel
	}{
		{
			name:      "saying marker",
			utterance: "text to bob saying pick up milk",
			recipient: "bob",
			message:   "pick up milk",
			conf:      Media,
		},
		{
			name:      "that says marker with multi-word name",
			utterance: "send a text to bob smith that says see you soon",
			recipient: "bob smith",
			message:   "see you soon",
			conf:      Media,
		},
		{
			name:      "no marker falls back to loose",
			utterance: "send a message to bob pick up milk",
			recipient: "bob",
			message:   "pick up milk",
			conf:      Loose,
		},
		{
			name:      "recipient only",
			utterance: "send a text to bob",
			recipient: "bob",
			message:   "",
			conf:      Media,
		},
		{
			name:      "no to token",
			utterance: "text bob saying hello",
			recipient: "",
			message:   "",
			conf:      None,
		},
		{
			name:      "to inside word does not count",
			utterance: "send tomorrow's update",
			recipient: "",
			message:   "",
			conf:      None,
		},
		{
			name:      "nothing after to",
			utterance: "send a text to ",
			recipient: "",
			message:   "",
			conf:      None,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recipient, message, conf := SMS(tt.utterance)
			if recipient != tt.recipient {
				t.Errorf("recipient = %q, want %q", recipient, tt.recipient)
			}
			if message != tt.message {
				t.Errorf("message = %q, want %q", message, tt.message)
			}
			if conf != tt.conf {
				t.Errorf("conf = %v, want %v", conf, tt.conf)
			}
		})
	}
}

func TestEmail(t *testing.T) {
	tests := []struct {
		name      string
		utterance string
		recipient string
		subject   string
	}{
		{
			name:      "spoken address",
			utterance: "send a message to john dot smith at example dot com",
			recipient: "john.smith@example.com",
			subject:   "",
		},
		{
			name:      "name with subject",
			utterance: "email to jane smith subject meeting notes",
			recipient: "jane smith",
			subject:   "meeting notes",
		},
		{
			name:      "with trims recipient",
			utterance: "email to jane with the subject meeting notes",
			recipient: "jane",
			subject:   "meeting notes",
		},
		{
			name:      "spoken address with subject",
			utterance: "email to jane at example dot com subject lunch plans",
			recipient: "jane@example.com",
			subject:   "lunch plans",
		},
		{
			name:      "multi label domain",
			utterance: "email to bob at mail dot example dot co dot uk",
			recipient: "bob@mail.example.co.uk",
			subject:   "",
		},
		{
			name:      "no to token",
			utterance: "email jane about the meeting",
			recipient: "",
			subject:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recipient, subject := Email(tt.utterance)
			if recipient != tt.recipient {
				t.Errorf("recipient = %q, want %q", recipient, tt.recipient)
			}
			if subject != tt.subject {
				t.Errorf("subject = %q, want %q", subject, tt.subject)
			}
		})
	}
}

func TestEmailRepairsSpacedDomain(t *testing.T) {
	// Speech-to-text sometimes keeps spaces around the dots.
	recipient, _ := Email("send an email to john at example dot com please")
	if recipient != "john@example.com" {
		t.Errorf("recipient = %q, want john@example.com", recipient)
	}
}

func TestMatchLevelString(t *testing.T) {
	if Exact.String() != "exact" || None.String() != "none" {
		t.Errorf("unexpected MatchLevel strings: %v %v", Exact, None)
	}
}
