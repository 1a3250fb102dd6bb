package schedule

import (
	"sort"
	"time"

	"github.com/uniplan/course-planner-api/internal/models"
)

// WeekEntry is one meeting occurrence placed on a weekday in the weekly view.
type WeekEntry struct {
	Dept        string `json:"dept"`
	Number      string `json:"number"`
	Section     string `json:"section"`
	SectionCode string `json:"sectionCode,omitempty"`
	Campus      string `json:"campus,omitempty"`
	StartMinute int    `json:"startMinute"`
	EndMinute   int    `json:"endMinute"`
}

// WeekBounds returns the Monday and Sunday of the week containing date.
func WeekBounds(date time.Time) (time.Time, time.Time) {
	day := date.Truncate(24 * time.Hour)
	offset := int(day.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset += 7
	}
	monday := day.AddDate(0, 0, -offset)
	return monday, monday.AddDate(0, 0, 6)
}

// MeetingActiveInWeek applies the display-time date-range narrowing: a meeting
// whose date range does not intersect the shown week is excluded from that
// week's rendering and conflict pass. Missing or unparseable bounds leave the
// meeting unbounded on that side.
func MeetingActiveInWeek(meeting models.Meeting, weekStart, weekEnd time.Time) bool {
	if start, ok := parseDate(meeting.StartDate); ok && start.After(weekEnd) {
		return false
	}
	if end, ok := parseDate(meeting.EndDate); ok && end.Before(weekStart) {
		return false
	}
	return true
}

// WeekView lays the selection out per weekday for the week containing date,
// sorted by start time within each day.
func WeekView(selected []models.Section, date time.Time) map[models.Weekday][]WeekEntry {
	weekStart, weekEnd := WeekBounds(date)
	view := make(map[models.Weekday][]WeekEntry)
	for _, section := range selected {
		for _, meeting := range section.Meetings {
			if !meeting.Scheduled() || !MeetingActiveInWeek(meeting, weekStart, weekEnd) {
				continue
			}
			for _, day := range meeting.Days {
				view[day] = append(view[day], WeekEntry{
					Dept:        section.Dept,
					Number:      section.Number,
					Section:     section.Section,
					SectionCode: meeting.SectionCode,
					Campus:      meeting.Campus,
					StartMinute: *meeting.StartMinute,
					EndMinute:   *meeting.EndMinute,
				})
			}
		}
	}
	for day := range view {
		entries := view[day]
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].StartMinute < entries[j].StartMinute
		})
		view[day] = entries
	}
	return view
}

func parseDate(raw string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}
	if len(raw) > 10 {
		raw = raw[:10]
	}
	parsed, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, false
	}
	return parsed, true
}
