package dto

import "github.com/uniplan/course-planner-api/internal/models"

// FilterRequest asks which candidates fit the current selection. Manual blocks
// ride along and are folded in as pseudo-sections before the conflict pass.
type FilterRequest struct {
	Candidates []models.Section   `json:"candidates" validate:"required"`
	Selected   []models.Section   `json:"selected"`
	Blocks     []models.TimeBlock `json:"blocks"`
}

// FilterResponse returns the conflict-free subset in candidate order.
type FilterResponse struct {
	Sections []models.Section `json:"sections"`
}

// MergeBlocksRequest carries blocks either structured or in the compact
// day-start-duration encoding; structured wins when both are present.
type MergeBlocksRequest struct {
	Blocks  []models.TimeBlock `json:"blocks"`
	Encoded string             `json:"encoded"`
}

// MergeBlocksResponse returns the normalized set in both representations.
type MergeBlocksResponse struct {
	Blocks  []models.TimeBlock `json:"blocks"`
	Encoded string             `json:"encoded"`
}

// InsightsRequest asks for the quality summary of the current selection.
type InsightsRequest struct {
	Selected []models.Section `json:"selected"`
}

// InsightsResponse wraps the computed snapshot with the display form of the
// reasoning list.
type InsightsResponse struct {
	Insights models.Insights `json:"insights"`
	Summary  string          `json:"summary"`
}

// WeekViewRequest lays the selection out for the week containing Date.
type WeekViewRequest struct {
	Selected []models.Section   `json:"selected"`
	Blocks   []models.TimeBlock `json:"blocks"`
	Date     string             `json:"date" validate:"required"`
}

// WeekViewResponse maps weekday labels to their sorted entries.
type WeekViewResponse struct {
	Days map[string][]WeekViewEntry `json:"days"`
}

// WeekViewEntry is one placed meeting or block in the weekly layout.
type WeekViewEntry struct {
	Dept        string `json:"dept"`
	Number      string `json:"number"`
	Section     string `json:"section"`
	SectionCode string `json:"sectionCode,omitempty"`
	Campus      string `json:"campus,omitempty"`
	StartMinute int    `json:"startMinute"`
	EndMinute   int    `json:"endMinute"`
}
