package domain

import (
	"regexp"
	"strings"
)

// NormalizeHumanName trims leading/trailing whitespace and collapses
// internal whitespace runs. Used for full_name and applicant names.
func NormalizeHumanName(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// emailPattern mirrors the client-side check: something@something.tld with
// no whitespace. Deliverability is not our problem; shape is.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail reports whether s looks like a bare email address.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}
