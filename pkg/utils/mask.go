package utils

import "strings"

// MaskEmail obscures the local part of an email address for log output,
// keeping the first character and the domain.
func MaskEmail(email string) string {
	at := strings.IndexByte(email, '@')
	if at <= 0 {
		return "***"
	}
	return email[:1] + strings.Repeat("*", at-1) + email[at:]
}
