package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMonthCode(t *testing.T) {
	assert.Equal(t, "JAN", MonthCode(time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "DEC", MonthCode(time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC)))
}

func TestIsValidMonthCode(t *testing.T) {
	assert.True(t, IsValidMonthCode("OCT"))
	assert.False(t, IsValidMonthCode("oct"))
	assert.False(t, IsValidMonthCode("OCTOBER"))
	assert.False(t, IsValidMonthCode(""))
}

func TestIsWeekend(t *testing.T) {
	assert.True(t, IsWeekend(time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)))  // Saturday
	assert.True(t, IsWeekend(time.Date(2026, 1, 11, 0, 0, 0, 0, time.UTC)))  // Sunday
	assert.False(t, IsWeekend(time.Date(2026, 1, 12, 0, 0, 0, 0, time.UTC))) // Monday
}

func TestParseDateIST(t *testing.T) {
	d := ParseDateIST("2026-03-10")
	assert.Equal(t, 2026, d.Year())
	assert.Equal(t, time.March, d.Month())
	assert.Equal(t, 10, d.Day())

	rfc := ParseDateIST("2026-03-10T18:30:00Z")
	assert.False(t, rfc.IsZero())

	assert.True(t, ParseDateIST("").IsZero())
	assert.True(t, ParseDateIST("10/03/2026").IsZero())
}

func TestFormatDateIST(t *testing.T) {
	assert.Equal(t, "", FormatDateIST(time.Time{}))
	assert.Equal(t, "2026-03-10", FormatDateIST(ParseDateIST("2026-03-10")))
}
