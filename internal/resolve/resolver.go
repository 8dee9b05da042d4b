// Package resolve reconciles a draft's spoken recipient against contact
// lookup results to produce the final delivery address and a display name
// for the spoken confirmation.
package resolve

import (
	"strings"

	"courier/internal/contacts"
	"courier/internal/draft"
	"github.com/nyaruka/phonenumbers"
	"go.uber.org/zap"
)

// Outcome classifies a resolution attempt.
type Outcome int

const (
	// Unresolved means the draft had no recipient at all.
	Unresolved Outcome = iota
	// PartiallyUnresolved means a recipient exists but no usable address
	// was found for the draft's kind.
	PartiallyUnresolved
	// Resolved means the address and display name are final.
	Resolved
)

// Resolution is the result of resolving a draft's recipient.
type Resolution struct {
	Outcome     Outcome
	Address     string
	DisplayName string
}

// Resolver resolves draft recipients. region is the default phone-number
// region for formatting (e.g. "US").
type Resolver struct {
	region string
	logger *zap.Logger
}

// New creates a resolver.
func New(region string, logger *zap.Logger) *Resolver {
	if region == "" {
		region = "US"
	}
	return &Resolver{region: region, logger: logger}
}

// Resolve determines the delivery address for a draft. With candidates the
// first one wins and its address is picked by fixed priority per kind; with
// none, the raw recipient is accepted only when it is already a usable
// address for the kind.
func (r *Resolver) Resolve(d *draft.Draft, results contacts.Results) Resolution {
	var address, display string

	if cand, ok := results.First(); ok {
		if len(results) > 1 {
			r.logger.Warn("multiple contact candidates, using first",
				zap.String("recipient", d.Recipient),
				zap.Int("candidates", len(results)))
		}
		display = cand.Name
		switch d.Kind {
		case draft.SMS, draft.Call:
			address, _ = cand.Phone()
		case draft.Email:
			address, _ = cand.Email()
		default:
			r.logger.Warn("unsupported draft kind", zap.String("kind", string(d.Kind)))
		}
		if address == "" {
			// A matched contact with no usable address still counts as a
			// named recipient for the not-found dialog.
			return Resolution{Outcome: PartiallyUnresolved}
		}
		return Resolution{Outcome: Resolved, Address: address, DisplayName: display}
	}

	switch {
	case d.Kind == draft.Email && strings.Contains(d.Recipient, "@"):
		address = d.Recipient
		display = address
	case d.Kind == draft.SMS && isNumeric(strings.ReplaceAll(d.Recipient, "-", "")):
		address = d.Recipient
		display = r.FormatNational(d.Recipient)
	case d.Kind == draft.Call:
		address = strings.TrimSpace(d.Number)
		display = r.FormatNational(d.Recipient)
		if address == d.Recipient {
			address = display
		}
	}

	if address == "" {
		if d.Recipient != "" {
			return Resolution{Outcome: PartiallyUnresolved}
		}
		return Resolution{Outcome: Unresolved}
	}
	if display == "" {
		display = address
	}
	return Resolution{Outcome: Resolved, Address: address, DisplayName: display}
}

// FormatNational formats a phone number to the national display form for the
// spoken confirmation. Formatting failure falls back to the raw string.
func (r *Resolver) FormatNational(raw string) string {
	num, err := phonenumbers.Parse(raw, r.region)
	if err != nil {
		r.logger.Debug("phone format fallback", zap.String("raw", raw), zap.Error(err))
		return raw
	}
	return phonenumbers.Format(num, phonenumbers.NATIONAL)
}

// AddressTypeLabel is the spoken label for a kind's missing address.
func AddressTypeLabel(kind draft.Kind) string {
	switch kind {
	case draft.Email:
		return "email address"
	case draft.SMS:
		return "phone number"
	default:
		return "contact info"
	}
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
