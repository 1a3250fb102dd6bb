package service

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/uniplan/course-planner-api/internal/dto"
	"github.com/uniplan/course-planner-api/internal/models"
	"github.com/uniplan/course-planner-api/internal/schedule"
	appErrors "github.com/uniplan/course-planner-api/pkg/errors"
)

// PlannerService exposes the scheduling core: conflict filtering, block
// merging, insight computation and the weekly layout.
type PlannerService struct {
	validator *validator.Validate
	logger    *zap.Logger
}

// NewPlannerService constructs a planner service.
func NewPlannerService(validate *validator.Validate, logger *zap.Logger) *PlannerService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PlannerService{validator: validate, logger: logger}
}

// Filter returns the candidates that fit around the current selection. Manual
// blocks count as occupied time.
func (s *PlannerService) Filter(req dto.FilterRequest) (*dto.FilterResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payload")
	}

	occupied := combineSelection(req.Selected, req.Blocks)
	filtered := schedule.FilterConflicting(req.Candidates, occupied)

	return &dto.FilterResponse{Sections: filtered}, nil
}

// MergeBlocks normalizes a block list into its canonical non-overlapping form.
// Blocks arrive either structured or in the compact encoding; structured wins.
func (s *PlannerService) MergeBlocks(req dto.MergeBlocksRequest) *dto.MergeBlocksResponse {
	blocks := req.Blocks
	if len(blocks) == 0 && req.Encoded != "" {
		blocks = models.DecodeTimeBlocks(req.Encoded)
	}
	for i := range blocks {
		if blocks[i].ID == "" {
			blocks[i].ID = uuid.NewString()
		}
	}

	merged := schedule.MergeOverlappingBlocks(blocks)

	return &dto.MergeBlocksResponse{
		Blocks:  merged,
		Encoded: models.EncodeTimeBlocks(merged),
	}
}

// Insights computes the descriptive quality snapshot for a selection.
func (s *PlannerService) Insights(req dto.InsightsRequest) *dto.InsightsResponse {
	insights := schedule.CalculateScheduleInsights(req.Selected)
	return &dto.InsightsResponse{
		Insights: insights,
		Summary:  strings.Join(insights.QualityReasoning, schedule.ReasonSeparator),
	}
}

// WeekView lays out the selection, blocks included, for the week containing
// the requested date.
func (s *PlannerService) WeekView(req dto.WeekViewRequest) (*dto.WeekViewResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payload")
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "date must be formatted YYYY-MM-DD")
	}

	layout := schedule.WeekView(combineSelection(req.Selected, req.Blocks), date)

	days := make(map[string][]dto.WeekViewEntry, len(layout))
	for day, entries := range layout {
		converted := make([]dto.WeekViewEntry, 0, len(entries))
		for _, entry := range entries {
			converted = append(converted, dto.WeekViewEntry{
				Dept:        entry.Dept,
				Number:      entry.Number,
				Section:     entry.Section,
				SectionCode: entry.SectionCode,
				Campus:      entry.Campus,
				StartMinute: entry.StartMinute,
				EndMinute:   entry.EndMinute,
			})
		}
		days[day.String()] = converted
	}

	return &dto.WeekViewResponse{Days: days}, nil
}

// combineSelection folds manual blocks into the selection as pseudo-sections
// so both feed the same conflict machinery.
func combineSelection(selected []models.Section, blocks []models.TimeBlock) []models.Section {
	if len(blocks) == 0 {
		return selected
	}
	combined := make([]models.Section, 0, len(selected)+len(blocks))
	combined = append(combined, selected...)
	for _, block := range blocks {
		combined = append(combined, block.AsSection())
	}
	return combined
}
