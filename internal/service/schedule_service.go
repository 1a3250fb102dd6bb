package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/uniplan/course-planner-api/internal/dto"
	"github.com/uniplan/course-planner-api/internal/models"
	"github.com/uniplan/course-planner-api/internal/schedule"
	appErrors "github.com/uniplan/course-planner-api/pkg/errors"
)

type savedScheduleRepository interface {
	ListByDeviceTerm(ctx context.Context, deviceID, term string) ([]models.SavedSchedule, error)
	FindByID(ctx context.Context, deviceID, id string) (*models.SavedSchedule, error)
	Create(ctx context.Context, schedule *models.SavedSchedule) (*models.SavedSchedule, error)
	Delete(ctx context.Context, deviceID, id string) error
	SetDefault(ctx context.Context, deviceID, id string) error
}

// ScheduleService manages named schedule snapshots for anonymous devices.
type ScheduleService struct {
	repo      savedScheduleRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewScheduleService constructs a schedule service.
func NewScheduleService(repo savedScheduleRepository, validate *validator.Validate, logger *zap.Logger) *ScheduleService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScheduleService{repo: repo, validator: validate, logger: logger}
}

// List returns the device's schedules for a term, newest first.
func (s *ScheduleService) List(ctx context.Context, deviceID, term string) ([]dto.SavedScheduleResponse, error) {
	if term == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "term is required")
	}

	schedules, err := s.repo.ListByDeviceTerm(ctx, deviceID, term)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.SavedScheduleResponse, 0, len(schedules))
	for i := range schedules {
		resp, err := toSavedScheduleResponse(&schedules[i])
		if err != nil {
			s.logger.Warn("skipping unreadable saved schedule", zap.String("id", schedules[i].ID), zap.Error(err))
			continue
		}
		responses = append(responses, *resp)
	}

	return responses, nil
}

// Get returns one schedule owned by the device.
func (s *ScheduleService) Get(ctx context.Context, deviceID, id string) (*dto.SavedScheduleResponse, error) {
	stored, err := s.repo.FindByID(ctx, deviceID, id)
	if err != nil {
		return nil, err
	}
	return toSavedScheduleResponse(stored)
}

// Save persists the selection under a name. Blocks are merged into canonical
// form before storage.
func (s *ScheduleService) Save(ctx context.Context, deviceID string, req dto.SaveScheduleRequest) (*dto.SavedScheduleResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payload")
	}

	sections, err := json.Marshal(req.Sections)
	if err != nil {
		return nil, fmt.Errorf("marshal sections: %w", err)
	}

	merged := schedule.MergeOverlappingBlocks(req.Blocks)

	stored, err := s.repo.Create(ctx, &models.SavedSchedule{
		ID:       uuid.NewString(),
		DeviceID: deviceID,
		Term:     req.Term,
		Name:     req.Name,
		Sections: sections,
		Blocks:   models.EncodeTimeBlocks(merged),
	})
	if err != nil {
		return nil, err
	}

	return toSavedScheduleResponse(stored)
}

// Delete removes a schedule owned by the device.
func (s *ScheduleService) Delete(ctx context.Context, deviceID, id string) error {
	return s.repo.Delete(ctx, deviceID, id)
}

// SetDefault marks the schedule as the device default for its term.
func (s *ScheduleService) SetDefault(ctx context.Context, deviceID, id string) error {
	return s.repo.SetDefault(ctx, deviceID, id)
}

func toSavedScheduleResponse(stored *models.SavedSchedule) (*dto.SavedScheduleResponse, error) {
	sections := []models.Section{}
	if len(stored.Sections) > 0 {
		if err := json.Unmarshal(stored.Sections, &sections); err != nil {
			return nil, fmt.Errorf("unmarshal sections: %w", err)
		}
	}

	blocks := models.DecodeTimeBlocks(stored.Blocks)
	for i := range blocks {
		if blocks[i].ID == "" {
			blocks[i].ID = uuid.NewString()
		}
	}

	return &dto.SavedScheduleResponse{
		ID:        stored.ID,
		Term:      stored.Term,
		Name:      stored.Name,
		Sections:  sections,
		Blocks:    blocks,
		IsDefault: stored.IsDefault,
		CreatedAt: stored.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: stored.UpdatedAt.UTC().Format(time.RFC3339),
	}, nil
}
