package log

import (
	"strings"
	"unicode/utf8"
)

// RedactEmail keeps the first character of the local part and the domain,
// so "jane.doe@example.com" is logged as "j***@example.com".
func RedactEmail(email string) string {
	email = strings.TrimSpace(email)
	at := strings.LastIndex(email, "@")
	if at <= 0 {
		if email == "" {
			return ""
		}
		return "***"
	}

	first, size := utf8.DecodeRuneInString(email)
	if first == utf8.RuneError && size <= 1 {
		return "***" + email[at:]
	}
	return email[:size] + "***" + email[at:]
}
