package schedule

import (
	"fmt"
	"math"

	"github.com/uniplan/course-planner-api/internal/models"
)

// ReasonSeparator joins quality reasoning entries for one-line display.
const ReasonSeparator = " • "

const (
	earlyStartMinute = 9 * 60
	lateEndMinute    = 17 * 60
)

type dayStats struct {
	hours     float64
	locations map[string]bool
}

// CalculateScheduleInsights derives descriptive metrics and a 0-100 quality
// score for the selected sections. The result is built fresh on every call.
func CalculateScheduleInsights(selected []models.Section) models.Insights {
	days := make(map[models.Weekday]*dayStats)
	var earliest, latest *int
	totalWeekly := 0.0

	for _, section := range selected {
		for _, meeting := range section.Meetings {
			if !meeting.Scheduled() {
				continue
			}
			duration := float64(*meeting.EndMinute-*meeting.StartMinute) / 60
			for _, day := range meeting.Days {
				stats := days[day]
				if stats == nil {
					stats = &dayStats{locations: make(map[string]bool)}
					days[day] = stats
				}
				stats.hours += duration
				if meeting.Campus != "" {
					stats.locations[meeting.Campus] = true
				}
				totalWeekly += duration
			}
			if earliest == nil || *meeting.StartMinute < *earliest {
				start := *meeting.StartMinute
				earliest = &start
			}
			if latest == nil || *meeting.EndMinute > *latest {
				end := *meeting.EndMinute
				latest = &end
			}
		}
	}

	// The general formula divides by the day count, so the empty case returns
	// a fixed sentinel instead.
	if len(days) == 0 {
		return models.Insights{
			QualityScore:     100,
			QualityLabel:     "No Schedule",
			QualityReasoning: []string{"No courses selected or no schedules available"},
		}
	}

	maxDaily := 0.0
	commuteFactor := 0
	for _, stats := range days {
		if stats.hours > maxDaily {
			maxDaily = stats.hours
		}
		// A day with no location data counts as one location, same as the
		// single-campus case.
		switch locations := len(stats.locations); {
		case locations <= 1:
			commuteFactor += 2
		default:
			commuteFactor += locations + 1
		}
	}
	averageDaily := totalWeekly / float64(len(days))

	score := 100.0
	var reasons []string

	earlyPenalty := *earliest <= earlyStartMinute
	if earlyPenalty {
		score -= 15
		reasons = append(reasons, "Early morning classes starting at or before 9:00 AM")
	}
	latePenalty := *latest >= lateEndMinute
	if latePenalty {
		score -= 10
		reasons = append(reasons, "Late classes ending at or after 5:00 PM")
	}
	if maxDaily > 6 {
		score -= 5 * (maxDaily - 6)
		reasons = append(reasons, fmt.Sprintf("Long days with up to %s hours of class", formatHours(maxDaily)))
	}
	minimalCommute := 2 * len(days)
	if commuteFactor > minimalCommute {
		score -= 3 * float64(commuteFactor-minimalCommute)
		reasons = append(reasons, "Heavy commute between campuses on the same day")
	}
	if len(days) > 1 {
		if hoursVariance(days, averageDaily) > 4 {
			score -= 10
			reasons = append(reasons, "Unbalanced schedule with uneven daily hours")
		} else {
			reasons = append(reasons, "Well-balanced distribution of hours across days")
		}
	}
	switch {
	case totalWeekly < 8:
		score -= 2 * (12 - totalWeekly)
		reasons = append(reasons, "Light course load this week")
	case totalWeekly > 15:
		score -= 1.5 * (totalWeekly - 15)
		reasons = append(reasons, "Heavy course load this week")
	default:
		reasons = append(reasons, "Weekly hours in the optimal range")
	}
	if !earlyPenalty && !latePenalty {
		reasons = append(reasons, "Classes within optimal daytime hours")
	}
	if commuteFactor == minimalCommute {
		reasons = append(reasons, "Minimal commuting between campuses")
	}

	score = math.Max(0, math.Min(100, score))

	return models.Insights{
		MaxDailyHours:       roundHours(maxDaily),
		AverageDailyHours:   roundHours(averageDaily),
		TotalWeeklyHours:    roundHours(totalWeekly),
		CommuteFactor:       commuteFactor,
		EarliestStartMinute: earliest,
		LatestEndMinute:     latest,
		QualityScore:        int(math.Round(score)),
		QualityLabel:        qualityLabel(score),
		QualityReasoning:    reasons,
	}
}

func hoursVariance(days map[models.Weekday]*dayStats, mean float64) float64 {
	var sum float64
	for _, stats := range days {
		diff := stats.hours - mean
		sum += diff * diff
	}
	return sum / float64(len(days))
}

func qualityLabel(score float64) string {
	switch rounded := math.Round(score); {
	case rounded >= 90:
		return "Excellent"
	case rounded >= 80:
		return "Good"
	case rounded >= 70:
		return "Fair"
	case rounded >= 60:
		return "Poor"
	default:
		return "Very Poor"
	}
}

func roundHours(hours float64) float64 {
	return math.Round(hours*10) / 10
}

func formatHours(hours float64) string {
	return fmt.Sprintf("%.1f", roundHours(hours))
}
