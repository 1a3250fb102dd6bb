package export

import (
	"fmt"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/uniplan/course-planner-api/internal/models"
)

// ICSExporter renders a selection of course sections into an iCalendar file
// with one weekly-recurring VEVENT per meeting-day.
type ICSExporter struct{}

// NewICSExporter constructs an ICS exporter.
func NewICSExporter() *ICSExporter {
	return &ICSExporter{}
}

var icsWeekdays = map[models.Weekday]time.Weekday{
	models.Monday:    time.Monday,
	models.Tuesday:   time.Tuesday,
	models.Wednesday: time.Wednesday,
	models.Thursday:  time.Thursday,
	models.Friday:    time.Friday,
	models.Saturday:  time.Saturday,
	models.Sunday:    time.Sunday,
}

// Render serializes the selection. Unscheduled meetings are skipped, matching
// the planner's exclusion rule.
func (e *ICSExporter) Render(selection []models.Section, term string) ([]byte, error) {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId("-//course-planner//EN")

	now := time.Now().UTC()
	for _, section := range selection {
		for meetingIdx, meeting := range section.Meetings {
			if !meeting.Scheduled() {
				continue
			}
			for _, day := range meeting.Days {
				first := firstOccurrence(meeting.StartDate, icsWeekdays[day])
				start := first.Add(time.Duration(*meeting.StartMinute) * time.Minute)
				end := first.Add(time.Duration(*meeting.EndMinute) * time.Minute)

				uid := fmt.Sprintf("%s-%s-%s-%d-%s@course-planner", section.Dept, section.Number, section.Section, meetingIdx, day)
				event := cal.AddEvent(uid)
				event.SetDtStampTime(now)
				event.SetStartAt(start)
				event.SetEndAt(end)
				event.SetSummary(fmt.Sprintf("%s %s %s", section.Dept, section.Number, section.Section))
				if meeting.Campus != "" {
					event.SetLocation(meeting.Campus)
				}
				if term != "" {
					event.SetDescription(term)
				}
				if until, ok := parseExportDate(meeting.EndDate); ok {
					event.AddRrule(fmt.Sprintf("FREQ=WEEKLY;UNTIL=%s", until.Format("20060102T235959Z")))
				}
			}
		}
	}

	return []byte(cal.Serialize()), nil
}

// firstOccurrence returns midnight of the first date on or after the range
// start that falls on the given weekday. A missing or malformed start date
// anchors to the current week.
func firstOccurrence(startDate string, weekday time.Weekday) time.Time {
	anchor, ok := parseExportDate(startDate)
	if !ok {
		now := time.Now().UTC()
		anchor = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	}
	offset := (int(weekday) - int(anchor.Weekday()) + 7) % 7
	return anchor.AddDate(0, 0, offset)
}

func parseExportDate(raw string) (time.Time, bool) {
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
