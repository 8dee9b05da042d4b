// Package vocab implements word-list matching for short voice replies. One
// matcher serves every kind, including email confirmation, which historically
// used a raw substring list.
package vocab

import (
	"regexp"
	"strings"
)

// defaults are the built-in word lists, keyed by list name. Config may
// override or extend them.
var defaults = map[string][]string{
	"yes":   {"yes", "confirm", "affirmative", "send", "okay", "go", "sure", "ok"},
	"no":    {"no", "cancel", "discard", "nope", "stop", "don't"},
	"email": {"email", "e-mail"},
	"sms":   {"sms", "text message"},
	"klat":  {"klat", "private message"},
	"call":  {"call", "dial", "phone"},
}

// Matcher matches utterances against named vocabulary lists. Entries match
// on word boundaries: "no" matches "no thanks" but not "know".
type Matcher struct {
	lists map[string][]*regexp.Regexp
}

// NewMatcher builds a matcher from the defaults plus per-list overrides.
// An override replaces the whole list.
func NewMatcher(overrides map[string][]string) *Matcher {
	m := &Matcher{lists: make(map[string][]*regexp.Regexp)}
	for name, words := range defaults {
		if custom, ok := overrides[name]; ok {
			words = custom
		}
		m.compile(name, words)
	}
	for name, words := range overrides {
		if _, ok := defaults[name]; !ok {
			m.compile(name, words)
		}
	}
	return m
}

func (m *Matcher) compile(name string, words []string) {
	patterns := make([]*regexp.Regexp, 0, len(words))
	for _, w := range words {
		w = strings.TrimSpace(strings.ToLower(w))
		if w == "" {
			continue
		}
		patterns = append(patterns, regexp.MustCompile(`\b`+regexp.QuoteMeta(w)+`\b`))
	}
	m.lists[name] = patterns
}

// Match reports whether any entry of the named list occurs in text.
func (m *Matcher) Match(text, list string) bool {
	text = strings.ToLower(text)
	for _, p := range m.lists[list] {
		if p.MatchString(text) {
			return true
		}
	}
	return false
}
