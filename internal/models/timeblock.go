package models

import (
	"fmt"
	"strconv"
	"strings"
)

// TimeBlock is a user-authored manual reservation on a single day. It is not
// tied to any course; the planner treats it as a degenerate one-meeting section
// so blocks flow through the same conflict machinery as real meetings.
type TimeBlock struct {
	ID          string  `json:"id"`
	Day         Weekday `json:"day"`
	StartMinute int     `json:"startMinute"`
	Duration    int     `json:"duration"`
}

// EndMinute returns the exclusive end of the block.
func (b TimeBlock) EndMinute() int {
	return b.StartMinute + b.Duration
}

// AsSection wraps the block in a one-meeting pseudo-section so it can be fed to
// the conflict engine alongside real course sections.
func (b TimeBlock) AsSection() Section {
	start := b.StartMinute
	end := b.EndMinute()
	return Section{
		Dept:    "BLOCK",
		Number:  b.ID,
		Section: "BLOCK",
		Meetings: []Meeting{{
			Days:        []Weekday{b.Day},
			StartMinute: &start,
			EndMinute:   &end,
		}},
	}
}

// EncodeTimeBlocks renders blocks in the compact day-start-duration form used
// for URL sharing, e.g. "Mon-480-60,Wed-600-90".
func EncodeTimeBlocks(blocks []TimeBlock) string {
	parts := make([]string, 0, len(blocks))
	for _, b := range blocks {
		parts = append(parts, fmt.Sprintf("%s-%d-%d", b.Day, b.StartMinute, b.Duration))
	}
	return strings.Join(parts, ",")
}

// DecodeTimeBlocks parses the compact encoding. Malformed tuples are skipped
// rather than failing the whole string.
func DecodeTimeBlocks(raw string) []TimeBlock {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var blocks []TimeBlock
	for _, part := range strings.Split(raw, ",") {
		fields := strings.Split(strings.TrimSpace(part), "-")
		if len(fields) != 3 {
			continue
		}
		day := WeekdayFromName(fields[0])
		start, errStart := strconv.Atoi(fields[1])
		duration, errDuration := strconv.Atoi(fields[2])
		if day == 0 || errStart != nil || errDuration != nil || duration <= 0 {
			continue
		}
		blocks = append(blocks, TimeBlock{Day: day, StartMinute: start, Duration: duration})
	}
	return blocks
}
