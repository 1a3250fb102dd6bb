package dto

// OutlinePayload mirrors the upstream course-outline API response for one
// course offering.
type OutlinePayload struct {
	Dept     string           `json:"dept"`
	Number   string           `json:"number"`
	Title    string           `json:"title"`
	Term     string           `json:"term"`
	Sections []OutlineSection `json:"sections"`
}

// OutlineSection is one enrollable section as delivered upstream.
type OutlineSection struct {
	Section        string              `json:"section"`
	ClassNumber    string              `json:"classNumber"`
	DeliveryMethod string              `json:"deliveryMethod"`
	Instructors    []OutlineInstructor `json:"instructors"`
	Schedules      []OutlineSchedule   `json:"schedules"`
}

// OutlineInstructor carries the instructor display name.
type OutlineInstructor struct {
	Name string `json:"name"`
}

// OutlineSchedule is one raw meeting record: days as a comma-separated
// two-letter-code string, times as "HH:MM" 24-hour strings.
type OutlineSchedule struct {
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Campus      string `json:"campus"`
	Days        string `json:"days"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	SectionCode string `json:"sectionCode"`
}
