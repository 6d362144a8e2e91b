package validate

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	emailRe    = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	phoneRe    = regexp.MustCompile(`^\+?[1-9][0-9]{0,15}$`)
	usernameRe = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
	spaceRe    = regexp.MustCompile(`\s+`)
	invalidRe  = regexp.MustCompile(`[^a-zA-Z0-9_]`)
)

// MinPasswordLength mirrors the server-side minimum.
const MinPasswordLength = 6

// Email reports whether the value looks like a well-formed address.
func Email(email string) bool {
	return emailRe.MatchString(email)
}

// Phone reports whether the value is a plausible phone number once
// spaces are stripped.
func Phone(phone string) bool {
	return phoneRe.MatchString(strings.ReplaceAll(phone, " ", ""))
}

// Username reports whether the value satisfies the upstream character
// set: letters, digits, and underscores only.
func Username(username string) bool {
	return usernameRe.MatchString(username)
}

// NormalizeUsername coerces free-form input into the upstream character
// set: whitespace runs become single underscores, everything else
// outside [A-Za-z0-9_] is dropped.
func NormalizeUsername(raw string) string {
	s := spaceRe.ReplaceAllString(strings.TrimSpace(raw), "_")
	return invalidRe.ReplaceAllString(s, "")
}

// PasswordStrength is the breakdown shown beside a password field.
type PasswordStrength struct {
	Valid          bool
	MinLength      bool
	HasUpperCase   bool
	HasLowerCase   bool
	HasNumber      bool
	HasSpecialChar bool
}

// Password evaluates a candidate password. Only the minimum length is
// binding; the rest of the breakdown is advisory.
func Password(password string) PasswordStrength {
	s := PasswordStrength{
		MinLength:      len(password) >= MinPasswordLength,
		HasUpperCase:   strings.ContainsAny(password, "ABCDEFGHIJKLMNOPQRSTUVWXYZ"),
		HasLowerCase:   strings.ContainsAny(password, "abcdefghijklmnopqrstuvwxyz"),
		HasNumber:      strings.ContainsAny(password, "0123456789"),
		HasSpecialChar: strings.ContainsAny(password, `!@#$%^&*(),.?":{}|<>`),
	}
	s.Valid = s.MinLength
	return s
}

// Required reports whether the value is non-empty after trimming.
func Required(value string) bool {
	return strings.TrimSpace(value) != ""
}

// MinLength reports whether the value has at least n characters.
func MinLength(value string, n int) bool {
	return len(value) >= n
}

// MaxLength reports whether the value has at most n characters. An
// empty value always passes.
func MaxLength(value string, n int) bool {
	return value == "" || len(value) <= n
}

// PositiveNumber reports whether the value parses as a number greater
// than zero.
func PositiveNumber(value string) bool {
	f, err := strconv.ParseFloat(value, 64)
	return err == nil && f > 0
}

// DateRange reports whether start is strictly before end.
func DateRange(start, end time.Time) bool {
	return start.Before(end)
}

// FutureDate reports whether the value lies after now.
func FutureDate(t, now time.Time) bool {
	return t.After(now)
}

// TimeRange reports whether two "HH:MM" clock strings form a valid
// range on the same day. Lexicographic comparison is correct for the
// zero-padded 24h form the booking form submits.
func TimeRange(start, end string) bool {
	return start != "" && end != "" && start < end
}
