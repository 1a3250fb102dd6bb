package models

// Weekday is a day of the instructional week.
type Weekday int

// Weekday values follow ISO ordering, Monday first.
const (
	Monday Weekday = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = map[Weekday]string{
	Monday:    "Mon",
	Tuesday:   "Tue",
	Wednesday: "Wed",
	Thursday:  "Thu",
	Friday:    "Fri",
	Saturday:  "Sat",
	Sunday:    "Sun",
}

var weekdayByName = map[string]Weekday{
	"Mon": Monday,
	"Tue": Tuesday,
	"Wed": Wednesday,
	"Thu": Thursday,
	"Fri": Friday,
	"Sat": Saturday,
	"Sun": Sunday,
}

// String returns the three-letter label used in API payloads.
func (d Weekday) String() string {
	if name, ok := weekdayNames[d]; ok {
		return name
	}
	return ""
}

// WeekdayFromName resolves a three-letter label back to a Weekday. Returns 0 when unknown.
func WeekdayFromName(name string) Weekday {
	return weekdayByName[name]
}

// Meeting is the atomic schedulable unit: a recurring weekly time range on a set of days.
// StartMinute and EndMinute are minutes from midnight; nil means the meeting carries no
// usable time data and is excluded from all conflict and insight computations.
type Meeting struct {
	Days        []Weekday `json:"days"`
	StartMinute *int      `json:"startMinute"`
	EndMinute   *int      `json:"endMinute"`
	StartDate   string    `json:"startDate,omitempty"`
	EndDate     string    `json:"endDate,omitempty"`
	Campus      string    `json:"campus,omitempty"`
	SectionCode string    `json:"sectionCode,omitempty"`
}

// Scheduled reports whether the meeting has enough data to participate in
// conflict checks and hour aggregation.
func (m Meeting) Scheduled() bool {
	return m.StartMinute != nil && m.EndMinute != nil && len(m.Days) > 0 &&
		*m.EndMinute > *m.StartMinute
}

// Section is the unit a user selects. Lecture, lab and tutorial meetings sit
// side by side in Meetings.
type Section struct {
	Dept           string    `json:"dept"`
	Number         string    `json:"number"`
	Section        string    `json:"section"`
	ClassNumber    string    `json:"classNumber,omitempty"`
	DeliveryMethod string    `json:"deliveryMethod,omitempty"`
	Instructors    []string  `json:"instructors,omitempty"`
	Meetings       []Meeting `json:"meetings"`
}

// Course groups the sections of one (department, number) offering in a term.
type Course struct {
	Dept     string    `json:"dept"`
	Number   string    `json:"number"`
	Title    string    `json:"title,omitempty"`
	Term     string    `json:"term"`
	Sections []Section `json:"sections"`
}
