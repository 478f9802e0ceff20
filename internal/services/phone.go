package services

import "strings"

// NormPhone canonicalizes a phone number to the local form used as the
// trainee identity key everywhere in the app:
// - keeps digits only (spaces, dashes, parens, '+' all dropped)
// - "972..." (international prefix) -> "0..."
// Garbage input with no digits normalizes to "".
func NormPhone(p string) string {
	s := digitsOnly(p)
	if s == "" {
		return ""
	}
	if strings.HasPrefix(s, "972") {
		s = "0" + s[3:]
	}
	return s
}

// DialablePhone returns the international dialing form ("972...") used for
// building messaging links.
func DialablePhone(p string) string {
	s := NormPhone(p)
	if strings.HasPrefix(s, "0") {
		s = "972" + s[1:]
	}
	return s
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
