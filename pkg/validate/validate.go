package validate

import (
	"net/mail"
	"strings"
	"time"
)

// IsEmail reports whether s is a bare address such as user@example.com.
// Display-name forms like "User <user@example.com>" are rejected.
func IsEmail(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	addr, err := mail.ParseAddress(s)
	if err != nil {
		return false
	}
	return addr.Address == s && addr.Name == ""
}

// ParseDate parses a calendar date in layout, interpreted in loc.
func ParseDate(layout, s string, loc *time.Location) (time.Time, bool) {
	t, err := time.ParseInLocation(layout, strings.TrimSpace(s), loc)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
