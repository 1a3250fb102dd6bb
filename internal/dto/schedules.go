package dto

import "github.com/uniplan/course-planner-api/internal/models"

// SaveScheduleRequest persists the current selection under a name for the
// requesting device.
type SaveScheduleRequest struct {
	Term     string             `json:"term" validate:"required"`
	Name     string             `json:"name" validate:"required,max=120"`
	Sections []models.Section   `json:"sections"`
	Blocks   []models.TimeBlock `json:"blocks"`
}

// SavedScheduleResponse is the stored schedule with its selection decoded.
type SavedScheduleResponse struct {
	ID        string             `json:"id"`
	Term      string             `json:"term"`
	Name      string             `json:"name"`
	Sections  []models.Section   `json:"sections"`
	Blocks    []models.TimeBlock `json:"blocks"`
	IsDefault bool               `json:"isDefault"`
	CreatedAt string             `json:"createdAt"`
	UpdatedAt string             `json:"updatedAt"`
}

// SavedScheduleQuery filters the device's schedules by term.
type SavedScheduleQuery struct {
	Term string `form:"term" json:"term"`
}
