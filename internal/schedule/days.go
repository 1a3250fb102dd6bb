// Package schedule implements the planner core: conflict detection between
// course sections, normalization of manual time blocks, and descriptive
// schedule insights. Every operation is a pure function over its inputs; no
// function mutates or retains references to its arguments.
package schedule

import (
	"strings"

	"github.com/uniplan/course-planner-api/internal/models"
)

// Upstream day strings use two-letter codes, e.g. "Mo, We, Fr". Two-character
// tokens must be matched before any single-character fallback so "Th" is never
// misread via its "T" prefix and "Su" never collides with "Sa".
var dayCodes = map[string]models.Weekday{
	"Mo": models.Monday,
	"Tu": models.Tuesday,
	"We": models.Wednesday,
	"Th": models.Thursday,
	"Fr": models.Friday,
	"Sa": models.Saturday,
	"Su": models.Sunday,
}

// ParseDays converts a comma-separated day-code string into an unordered
// day-set. Tokens that do not match a known two-letter code contribute no day
// membership and are dropped silently.
func ParseDays(raw string) []models.Weekday {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	seen := make(map[models.Weekday]bool, 7)
	var days []models.Weekday
	for _, token := range strings.Split(raw, ",") {
		token = strings.TrimSpace(token)
		if len(token) < 2 {
			continue
		}
		day, ok := dayCodes[token[:2]]
		if !ok || seen[day] {
			continue
		}
		seen[day] = true
		days = append(days, day)
	}
	return days
}

// ParseClock converts an "HH:MM" 24-hour string to a minute-of-day value.
// Returns nil for anything malformed or out of range.
func ParseClock(raw string) *int {
	raw = strings.TrimSpace(raw)
	if len(raw) != 5 || raw[2] != ':' {
		return nil
	}
	hours, okH := twoDigits(raw[:2])
	minutes, okM := twoDigits(raw[3:])
	if !okH || !okM || hours > 23 || minutes > 59 {
		return nil
	}
	value := hours*60 + minutes
	return &value
}

func twoDigits(s string) (int, bool) {
	if s[0] < '0' || s[0] > '9' || s[1] < '0' || s[1] > '9' {
		return 0, false
	}
	return int(s[0]-'0')*10 + int(s[1]-'0'), true
}

func daysIntersect(a, b []models.Weekday) bool {
	for _, dayA := range a {
		for _, dayB := range b {
			if dayA == dayB {
				return true
			}
		}
	}
	return false
}
