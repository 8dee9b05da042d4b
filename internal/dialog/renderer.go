// Package dialog renders the skill's spoken prompts. The hosting framework
// normally owns dialog files; the renderer carries equivalent defaults so
// locally attached channels can speak them too.
package dialog

import "strings"

var defaults = map[string]string{
	"ConfirmMessage":      "Your {kind} to {name} {address} says: {message}.",
	"ConfirmEmail":        "Would you like to send this email?",
	"ConfirmSend":         "Would you like to send it?",
	"ConfirmCall":         "Calling {name} {number}. Should I place the call?",
	"DiscardDraft":        "Okay, I won't send it.",
	"TextSent":            "Your text message has been sent.",
	"EmailSent":           "Your email has been sent.",
	"CallPlaced":          "Calling {name}.",
	"ContactNotFound":     "I couldn't find a {kind} for {recipient}.",
	"ErrorDialog":         "I'm sorry, something went wrong.",
	"GetEmailSubject":     "What is the subject of your email?",
	"GetEmailBody":        "Say your message, then say done when you are finished.",
	"GetRecipientAddress": "Who would you like to send the {kind} to?",
	"GetMessage":          "What is the message?",
	"OnlyMobile":          "I can only {action} from a mobile device right now.",
}

// Renderer substitutes values into named dialog templates.
type Renderer struct {
	templates map[string]string
}

// NewRenderer builds a renderer from the defaults plus per-name overrides.
func NewRenderer(overrides map[string]string) *Renderer {
	templates := make(map[string]string, len(defaults))
	for name, text := range defaults {
		templates[name] = text
	}
	for name, text := range overrides {
		templates[name] = text
	}
	return &Renderer{templates: templates}
}

// Render fills {placeholder} slots in the named template. An unknown name
// renders as itself so a missing template is audible rather than silent.
// Empty substitutions collapse the surrounding double spaces.
func (r *Renderer) Render(name string, subs map[string]string) string {
	tmpl, ok := r.templates[name]
	if !ok {
		return name
	}
	for key, val := range subs {
		tmpl = strings.ReplaceAll(tmpl, "{"+key+"}", val)
	}
	return strings.Join(strings.Fields(tmpl), " ")
}
