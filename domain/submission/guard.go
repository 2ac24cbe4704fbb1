package submission

import (
	"strings"
	"unicode"
)

const GuardNotice = "Please enter an email address"

// GuardDecision is the outcome of the submit-time check on the email field.
type GuardDecision struct {
	Value   string
	Allowed bool
	Notice  string
}

// GuardSubmission blocks a form submission whose email field is missing or
// blank after trimming. It mirrors the check the browser runs in main.js so
// clients without JavaScript get the same answer.
func GuardSubmission(value string, present bool) GuardDecision {
	if !present {
		value = ""
	}

	trimmed := trimEdges(value)
	if trimmed == "" {
		return GuardDecision{Value: trimmed, Allowed: false, Notice: GuardNotice}
	}

	return GuardDecision{Value: trimmed, Allowed: true}
}

// trimEdges strips what String.prototype.trim strips: Unicode white space
// plus the byte order mark.
func trimEdges(value string) string {
	return strings.TrimFunc(value, func(r rune) bool {
		return unicode.IsSpace(r) || r == '\uFEFF'
	})
}
