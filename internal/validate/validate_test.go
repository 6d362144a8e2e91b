package validate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEmail(t *testing.T) {
	assert.True(t, Email("user@example.com"))
	assert.True(t, Email("first.last+tag@sub.domain.org"))
	assert.False(t, Email("not-an-email"))
	assert.False(t, Email("missing@tld"))
	assert.False(t, Email("@example.com"))
}

func TestNormalizeUsername(t *testing.T) {
	assert.Equal(t, "john_doe", NormalizeUsername("john doe"))
	assert.Equal(t, "john_doe", NormalizeUsername("  john   doe  "))
	assert.Equal(t, "johndoe42", NormalizeUsername("john-doe!42"))
	assert.Equal(t, "jane_roe", NormalizeUsername("jane_roe"))
}

func TestUsername(t *testing.T) {
	assert.True(t, Username("john_doe"))
	assert.True(t, Username("Admin42"))
	assert.False(t, Username("john doe"))
	assert.False(t, Username("john-doe"))
	assert.False(t, Username(""))
}

func TestPassword(t *testing.T) {
	weak := Password("abc")
	assert.False(t, weak.Valid)
	assert.False(t, weak.MinLength)

	ok := Password("Secr3t!")
	assert.True(t, ok.Valid)
	assert.True(t, ok.HasUpperCase)
	assert.True(t, ok.HasNumber)
	assert.True(t, ok.HasSpecialChar)
}

func TestPhone(t *testing.T) {
	assert.True(t, Phone("+61 412 345 678"))
	assert.True(t, Phone("61412345678"))
	assert.False(t, Phone("0412"))
	assert.False(t, Phone("phone"))
}

func TestTimeRange(t *testing.T) {
	assert.True(t, TimeRange("09:00", "10:30"))
	assert.False(t, TimeRange("10:30", "09:00"))
	assert.False(t, TimeRange("09:00", "09:00"))
	assert.False(t, TimeRange("", "10:00"))
}

func TestDateRange(t *testing.T) {
	now := time.Now()
	assert.True(t, DateRange(now, now.Add(time.Hour)))
	assert.False(t, DateRange(now.Add(time.Hour), now))
	assert.False(t, DateRange(now, now))
}
