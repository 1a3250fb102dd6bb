package schedule

import "github.com/uniplan/course-planner-api/internal/models"

// MeetingsConflict reports whether two meetings collide: their day-sets share
// at least one day and their half-open [start, end) minute intervals overlap.
// Back-to-back meetings (one ending exactly when the other starts) do not
// conflict. Unscheduled meetings never conflict with anything.
func MeetingsConflict(a, b models.Meeting) bool {
	if !a.Scheduled() || !b.Scheduled() {
		return false
	}
	if !daysIntersect(a.Days, b.Days) {
		return false
	}
	return *a.StartMinute < *b.EndMinute && *b.StartMinute < *a.EndMinute
}

// HasConflict reports whether any meeting of candidate collides with any
// meeting of any selected section. The pairwise scan is fine at realistic
// sizes: a handful of meetings per section, a few dozen selected sections.
func HasConflict(candidate models.Section, selected []models.Section) bool {
	for _, candidateMeeting := range candidate.Meetings {
		if !candidateMeeting.Scheduled() {
			continue
		}
		for _, section := range selected {
			for _, selectedMeeting := range section.Meetings {
				if MeetingsConflict(candidateMeeting, selectedMeeting) {
					return true
				}
			}
		}
	}
	return false
}

// FilterConflicting keeps only candidates with no conflict against the selected
// set, preserving the candidates' relative order. The selected set is fixed for
// the whole pass and is never modified. A section with zero scheduled meetings
// is always retained.
func FilterConflicting(candidates, selected []models.Section) []models.Section {
	result := make([]models.Section, 0, len(candidates))
	for _, candidate := range candidates {
		if !HasConflict(candidate, selected) {
			result = append(result, candidate)
		}
	}
	return result
}
