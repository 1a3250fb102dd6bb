package models

// Insights is an immutable snapshot of descriptive schedule metrics, recomputed
// from scratch on every call.
type Insights struct {
	MaxDailyHours       float64  `json:"maxDailyHours"`
	AverageDailyHours   float64  `json:"averageDailyHours"`
	TotalWeeklyHours    float64  `json:"totalWeeklyHours"`
	CommuteFactor       int      `json:"commuteFactor"`
	EarliestStartMinute *int     `json:"earliestStartMinute"`
	LatestEndMinute     *int     `json:"latestEndMinute"`
	QualityScore        int      `json:"qualityScore"`
	QualityLabel        string   `json:"qualityLabel"`
	QualityReasoning    []string `json:"qualityReasoning"`
}
