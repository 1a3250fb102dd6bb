package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uniplan/course-planner-api/internal/models"
)

func TestWeekBounds(t *testing.T) {
	// 2025-09-10 is a Wednesday.
	start, end := WeekBounds(time.Date(2025, 9, 10, 15, 0, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2025, 9, 8, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 9, 14, 0, 0, 0, 0, time.UTC), end)

	// A Monday maps to itself.
	start, _ = WeekBounds(time.Date(2025, 9, 8, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2025, 9, 8, 0, 0, 0, 0, time.UTC), start)

	// Sunday belongs to the week that started the previous Monday.
	start, _ = WeekBounds(time.Date(2025, 9, 14, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2025, 9, 8, 0, 0, 0, 0, time.UTC), start)
}

func TestMeetingActiveInWeek(t *testing.T) {
	weekStart := time.Date(2025, 9, 8, 0, 0, 0, 0, time.UTC)
	weekEnd := time.Date(2025, 9, 14, 0, 0, 0, 0, time.UTC)

	inRange := models.Meeting{StartDate: "2025-09-01", EndDate: "2025-12-05"}
	assert.True(t, MeetingActiveInWeek(inRange, weekStart, weekEnd))

	finished := models.Meeting{StartDate: "2025-05-01", EndDate: "2025-08-01"}
	assert.False(t, MeetingActiveInWeek(finished, weekStart, weekEnd))

	notStarted := models.Meeting{StartDate: "2025-10-01", EndDate: "2025-12-05"}
	assert.False(t, MeetingActiveInWeek(notStarted, weekStart, weekEnd))

	unbounded := models.Meeting{}
	assert.True(t, MeetingActiveInWeek(unbounded, weekStart, weekEnd))

	// Timestamp-style dates narrow on the date part only.
	timestamped := models.Meeting{StartDate: "2025-09-01T00:00:00Z", EndDate: "2025-12-05T00:00:00Z"}
	assert.True(t, MeetingActiveInWeek(timestamped, weekStart, weekEnd))
}

func TestWeekViewNarrowsAndSorts(t *testing.T) {
	selection := []models.Section{
		sectionWith("CMPT", "225", "D100", models.Meeting{
			Days:        []models.Weekday{models.Monday},
			StartMinute: intPtr(720),
			EndMinute:   intPtr(770),
			StartDate:   "2025-09-01",
			EndDate:     "2025-12-05",
		}),
		sectionWith("MATH", "150", "D100", models.Meeting{
			Days:        []models.Weekday{models.Monday},
			StartMinute: intPtr(540),
			EndMinute:   intPtr(590),
			StartDate:   "2025-09-01",
			EndDate:     "2025-12-05",
		}),
		// Summer-only meeting must not appear in a fall week.
		sectionWith("PHYS", "101", "D100", models.Meeting{
			Days:        []models.Weekday{models.Monday},
			StartMinute: intPtr(600),
			EndMinute:   intPtr(660),
			StartDate:   "2025-05-01",
			EndDate:     "2025-08-01",
		}),
	}

	view := WeekView(selection, time.Date(2025, 9, 10, 0, 0, 0, 0, time.UTC))

	monday := view[models.Monday]
	require.Len(t, monday, 2)
	assert.Equal(t, "MATH", monday[0].Dept, "entries sorted by start time")
	assert.Equal(t, "CMPT", monday[1].Dept)
}

func intPtr(v int) *int { return &v }
