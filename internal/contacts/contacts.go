// Package contacts models the result of a contact-directory lookup. The
// directory itself is an external collaborator; the skill only consumes the
// candidate list delivered on the messaging confirmation channel.
package contacts

// phonePriority orders address types for call and text message delivery.
// The first type present on a candidate wins.
var phonePriority = []string{"mobile", "work mobile", "home", "work", "other", "phone"}

// Candidate is one contact returned by the lookup service: a display name
// plus a map of address type to address.
type Candidate struct {
	Name      string
	Addresses map[string]string
}

// Phone returns the candidate's phone number in priority order.
func (c Candidate) Phone() (string, bool) {
	for _, kind := range phonePriority {
		if addr, ok := c.Addresses[kind]; ok && addr != "" {
			return addr, true
		}
	}
	return "", false
}

// Email returns the candidate's email address, if any.
func (c Candidate) Email() (string, bool) {
	addr, ok := c.Addresses["email"]
	return addr, ok && addr != ""
}

// Results is an ordered candidate list. When multiple contacts match, the
// first one wins; disambiguation is deliberately not attempted.
// TODO: surface multiple candidates to the user for disambiguation.
type Results []Candidate

// First returns the winning candidate.
func (r Results) First() (Candidate, bool) {
	if len(r) == 0 {
		return Candidate{}, false
	}
	return r[0], true
}

// LookupRequest asks the contact service for candidates matching a spoken
// name. The reply arrives asynchronously as a messaging.confirmation event
// carrying a LookupResult.
type LookupRequest struct {
	User      string
	Recipient string
	Kind      string
}

// LookupResult is the payload of a messaging.confirmation event.
type LookupResult struct {
	User    string
	Results Results
}
