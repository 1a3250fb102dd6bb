package schedule

import (
	"sort"

	"github.com/uniplan/course-planner-api/internal/models"
)

// MergeOverlappingBlocks normalizes a block set so no two blocks on the same
// day overlap or touch. Unlike the conflict rule, exactly adjacent blocks DO
// merge. The survivor of a merge keeps the earlier block's id. Merging is
// idempotent and preserves the union of covered minutes per day.
func MergeOverlappingBlocks(blocks []models.TimeBlock) []models.TimeBlock {
	byDay := make(map[models.Weekday][]models.TimeBlock)
	var dayOrder []models.Weekday
	for _, block := range blocks {
		if _, seen := byDay[block.Day]; !seen {
			dayOrder = append(dayOrder, block.Day)
		}
		byDay[block.Day] = append(byDay[block.Day], block)
	}

	merged := make([]models.TimeBlock, 0, len(blocks))
	for _, day := range dayOrder {
		merged = append(merged, mergeDay(byDay[day])...)
	}
	return merged
}

// AddBlock appends a raw block to an already-merged list and re-merges, so the
// stored set stays normalized after every single add.
func AddBlock(blocks []models.TimeBlock, block models.TimeBlock) []models.TimeBlock {
	combined := make([]models.TimeBlock, 0, len(blocks)+1)
	combined = append(combined, blocks...)
	combined = append(combined, block)
	return MergeOverlappingBlocks(combined)
}

func mergeDay(blocks []models.TimeBlock) []models.TimeBlock {
	sorted := make([]models.TimeBlock, len(blocks))
	copy(sorted, blocks)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartMinute < sorted[j].StartMinute
	})

	var result []models.TimeBlock
	current := sorted[0]
	for _, next := range sorted[1:] {
		if next.StartMinute <= current.EndMinute() {
			if next.EndMinute() > current.EndMinute() {
				current.Duration = next.EndMinute() - current.StartMinute
			}
			continue
		}
		result = append(result, current)
		current = next
	}
	return append(result, current)
}
