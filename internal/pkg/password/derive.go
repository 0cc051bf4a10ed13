package password

import (
	"fmt"
	"strings"
	"time"
)

// UnknownYear replaces the birth year when the date of birth is missing or unreadable.
const UnknownYear = "0000"

var birthDateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
}

// Derive builds the login password of an employee from profile fields:
// last 3 characters of the employee code, "#", last 4 characters of the
// phone, "@", four-digit year of birth. Short inputs are used whole.
func Derive(employeeCode, phone, dateOfBirth string) string {
	return tail(employeeCode, 3) + "#" + tail(phone, 4) + "@" + birthYear(dateOfBirth)
}

// DeriveForProfile is Derive for a stored profile whose birth date may be unset.
// The year is the calendar year in dateOfBirth's own location.
func DeriveForProfile(employeeCode, phone string, dateOfBirth *time.Time) string {
	if dateOfBirth == nil || dateOfBirth.IsZero() {
		return Derive(employeeCode, phone, "")
	}
	return Derive(employeeCode, phone, dateOfBirth.Format("2006-01-02"))
}

func tail(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[len(r)-n:])
}

func birthYear(dateOfBirth string) string {
	value := strings.TrimSpace(dateOfBirth)
	if value == "" {
		return UnknownYear
	}
	for _, layout := range birthDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return fmt.Sprintf("%04d", t.Year())
		}
	}
	return UnknownYear
}
