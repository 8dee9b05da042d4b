package skill

// SMSRequest is a typed send-text-message intent. Recipient and Message may
// be pre-extracted by the arbitration matcher; when both are empty the
// handler parses Utterance itself.
type SMSRequest struct {
	User       string
	Utterance  string
	Recipient  string
	Message    string
	FromMobile bool
	Context    map[string]any
}

// EmailRequest is a typed send-email intent.
type EmailRequest struct {
	User       string
	Utterance  string
	Recipient  string
	Subject    string
	FromMobile bool
	Context    map[string]any
}

// CallRequest is a typed place-call intent. Number is already extracted when
// the caller spoke digits; otherwise Recipient is a name needing lookup.
type CallRequest struct {
	User       string
	Recipient  string
	Number     string
	FromMobile bool
	Context    map[string]any
}
