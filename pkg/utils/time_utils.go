package utils

import "time"

// India time location (IST, +05:30)
var istLoc = func() *time.Location {
	if loc, err := time.LoadLocation("Asia/Kolkata"); err == nil {
		return loc
	}
	return time.FixedZone("IST", 5*3600+1800)
}()

var monthCodes = [12]string{"JAN", "FEB", "MAR", "APR", "MAY", "JUN", "JUL", "AUG", "SEP", "OCT", "NOV", "DEC"}

// MonthCode returns the three-letter month code used by the place season data.
func MonthCode(t time.Time) string {
	return monthCodes[int(t.Month())-1]
}

// IsValidMonthCode reports whether s is one of the twelve codes.
func IsValidMonthCode(s string) bool {
	for _, m := range monthCodes {
		if m == s {
			return true
		}
	}
	return false
}

// IsWeekend reports whether t falls on a Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

func NowIST() time.Time { return time.Now().In(istLoc) }

// ParseDateIST parses a YYYY-MM-DD or RFC3339 date string in IST.
// Returns the zero time when the input is empty or unparseable so
// callers can fall back to "no start date".
func ParseDateIST(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	if t, err := time.ParseInLocation("2006-01-02", s, istLoc); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.In(istLoc)
	}
	return time.Time{}
}

// FormatDateIST renders a calendar date, or "" for the zero time.
func FormatDateIST(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(istLoc).Format("2006-01-02")
}
