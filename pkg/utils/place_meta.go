package utils

import "encoding/json"

// CrowdCalendar is the decoded form of the per-place crowd JSON column,
// e.g. {"weekday":"medium","weekend":"high"}.
type CrowdCalendar struct {
	Weekday string `json:"weekday"`
	Weekend string `json:"weekend"`
}

// ParseMonthScores decodes a month-code -> 0..100 suitability map.
// Returns nil on empty or malformed input; scoring falls back to its
// documented default instead of failing.
func ParseMonthScores(raw string) map[string]int {
	if raw == "" {
		return nil
	}
	var scores map[string]int
	if err := json.Unmarshal([]byte(raw), &scores); err != nil {
		return nil
	}
	return scores
}

// ParseCrowdCalendar decodes the crowd calendar column. ok is false on
// empty or malformed input.
func ParseCrowdCalendar(raw string) (CrowdCalendar, bool) {
	if raw == "" {
		return CrowdCalendar{}, false
	}
	var cal CrowdCalendar
	if err := json.Unmarshal([]byte(raw), &cal); err != nil {
		return CrowdCalendar{}, false
	}
	return cal, true
}
