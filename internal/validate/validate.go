// Package validate holds the advisory format checks applied before any
// credential work happens. The checks are pure functions with no failure
// modes beyond returning false; they gate obviously malformed input and do
// not attempt full RFC 5322 compliance.
package validate

import "strings"

// MinPasswordLength is the minimum accepted password length after trimming.
const MinPasswordLength = 6

// NormalizeEmail returns the canonical form of an email used as the identity
// key: trimmed and lower-cased. The function is idempotent.
func NormalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Email reports whether s has the general shape local-part@domain.tld:
// no whitespace, at least one '@' with a non-empty local part, and at least
// one '.' after the last '@' with non-empty labels around it.
func Email(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" || strings.ContainsAny(s, " \t\r\n") {
		return false
	}
	at := strings.LastIndex(s, "@")
	if at <= 0 {
		return false
	}
	domain := s[at+1:]
	dot := strings.LastIndex(domain, ".")
	if dot <= 0 || dot == len(domain)-1 {
		return false
	}
	return true
}

// Password reports whether s is long enough to be accepted, ignoring
// surrounding whitespace.
func Password(s string) bool {
	return len(strings.TrimSpace(s)) >= MinPasswordLength
}
