// Package extract holds the best-effort natural-language parsers that pull a
// recipient and message content out of a single send-message utterance. The
// parsers are pure functions; a failed parse returns empty strings rather
// than an error so callers can fall back to prompting.
package extract

import (
	"slices"
	"strings"
)

// MatchLevel grades how confidently an utterance matched a messaging phrase.
// The host arbitration layer compares levels across competing skills.
type MatchLevel int

const (
	None MatchLevel = iota
	Loose
	Media
	Exact
)

func (l MatchLevel) String() string {
	switch l {
	case Loose:
		return "loose"
	case Media:
		return "media"
	case Exact:
		return "exact"
	default:
		return "none"
	}
}

// SMS parses an utterance like "text to bob saying pick up milk" into a
// recipient and message. The literal token "to" must be present as a
// standalone word; everything after the first " to " is the remainder, whose
// first token seeds the recipient. A "that says"/"saying" marker splits a
// multi-word recipient from the message at Media confidence; without a
// marker the whole remainder becomes the message at Loose confidence.
func SMS(utterance string) (recipient, message string, conf MatchLevel) {
	if !hasWord(utterance, "to") {
		return "", "", None
	}
	_, remainder, ok := strings.Cut(utterance, " to ")
	if !ok {
		return "", "", None
	}
	fields := strings.Fields(remainder)
	if len(fields) == 0 {
		return "", "", None
	}
	recipient = fields[0]
	rest := strings.Join(fields[1:], " ")

	switch {
	case strings.Contains(rest, "that says "):
		extra, msg, _ := strings.Cut(rest, "that says ")
		return strings.TrimSpace(recipient + " " + extra), msg, Media
	case strings.Contains(rest, "saying "):
		extra, msg, _ := strings.Cut(rest, "saying ")
		return strings.TrimSpace(recipient + " " + extra), msg, Media
	case len(rest) <= 1:
		// No message; the recipient absorbs the leftover.
		return strings.TrimSpace(recipient + " " + rest), "", Media
	default:
		return recipient, rest, Loose
	}
}

// Email parses an utterance like "email to jane smith subject meeting notes"
// into a recipient and subject line. Spoken addresses ("john dot smith at
// example dot com") are normalized into real addresses, repairing the
// spurious spaces speech-to-text inserts around dots.
func Email(utterance string) (recipient, subject string) {
	if !hasWord(utterance, "to") {
		return "", ""
	}
	_, remainder, ok := strings.Cut(utterance, " to ")
	if !ok {
		return "", ""
	}

	recipient = remainder
	if hasWord(remainder, "subject") {
		left, right, found := strings.Cut(remainder, " subject ")
		if found {
			subject = right
			recipient = left
			if hasWord(left, "with") {
				recipient, _, _ = strings.Cut(left, " with")
			}
		}
	}
	return normalizeSpokenAddress(recipient), subject
}

// normalizeSpokenAddress turns spoken "dot"/"at" words into punctuation and
// reassembles the address around the "@" so each domain label keeps only its
// first whitespace-delimited token.
func normalizeSpokenAddress(recipient string) string {
	if hasWord(recipient, "dot") {
		recipient = strings.ReplaceAll(recipient, " dot ", ".")
	}
	if hasWord(recipient, "at") {
		recipient = strings.ToLower(strings.ReplaceAll(recipient, " at ", "@"))
	}
	if !strings.Contains(recipient, "@") {
		return recipient
	}

	local, domain, _ := strings.Cut(recipient, "@")
	local = strings.ReplaceAll(local, " ", "")
	labels := strings.Split(domain, ".")
	host := strings.ReplaceAll(labels[0], " ", "")
	var tldParts []string
	for _, part := range labels[1:] {
		if f := strings.Fields(part); len(f) > 0 {
			tldParts = append(tldParts, f[0])
		}
	}
	return local + "@" + host + "." + strings.Join(tldParts, ".")
}

func hasWord(s, word string) bool {
	return slices.Contains(strings.Fields(s), word)
}
