package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uniplan/course-planner-api/internal/dto"
	"github.com/uniplan/course-planner-api/internal/models"
	appErrors "github.com/uniplan/course-planner-api/pkg/errors"
)

type stubSavedScheduleRepo struct {
	schedules map[string]*models.SavedSchedule
	created   *models.SavedSchedule
	deleted   []string
	defaulted []string
}

func newStubSavedScheduleRepo() *stubSavedScheduleRepo {
	return &stubSavedScheduleRepo{schedules: map[string]*models.SavedSchedule{}}
}

func (r *stubSavedScheduleRepo) ListByDeviceTerm(_ context.Context, deviceID, term string) ([]models.SavedSchedule, error) {
	var out []models.SavedSchedule
	for _, s := range r.schedules {
		if s.DeviceID == deviceID && s.Term == term {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *stubSavedScheduleRepo) FindByID(_ context.Context, deviceID, id string) (*models.SavedSchedule, error) {
	s, ok := r.schedules[id]
	if !ok || s.DeviceID != deviceID {
		return nil, appErrors.ErrNotFound
	}
	return s, nil
}

func (r *stubSavedScheduleRepo) Create(_ context.Context, s *models.SavedSchedule) (*models.SavedSchedule, error) {
	now := time.Now()
	stored := *s
	stored.CreatedAt = now
	stored.UpdatedAt = now
	r.schedules[stored.ID] = &stored
	r.created = &stored
	return &stored, nil
}

func (r *stubSavedScheduleRepo) Delete(_ context.Context, deviceID, id string) error {
	s, ok := r.schedules[id]
	if !ok || s.DeviceID != deviceID {
		return appErrors.ErrNotFound
	}
	delete(r.schedules, id)
	r.deleted = append(r.deleted, id)
	return nil
}

func (r *stubSavedScheduleRepo) SetDefault(_ context.Context, deviceID, id string) error {
	s, ok := r.schedules[id]
	if !ok || s.DeviceID != deviceID {
		return appErrors.ErrNotFound
	}
	s.IsDefault = true
	r.defaulted = append(r.defaulted, id)
	return nil
}

func TestScheduleServiceSaveMergesBlocksBeforeStorage(t *testing.T) {
	repo := newStubSavedScheduleRepo()
	svc := NewScheduleService(repo, nil, nil)

	resp, err := svc.Save(context.Background(), "device-1", dto.SaveScheduleRequest{
		Term: "2026-fall",
		Name: "Plan A",
		Sections: []models.Section{
			plannerSection("CMPT", "120", plannerMeeting(models.Monday, 600, 690)),
		},
		Blocks: []models.TimeBlock{
			{ID: "b1", Day: models.Monday, StartMinute: 480, Duration: 60},
			{ID: "b2", Day: models.Monday, StartMinute: 510, Duration: 60},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "Mon-480-90", repo.created.Blocks)
	require.Len(t, resp.Blocks, 1)
	assert.Equal(t, 90, resp.Blocks[0].Duration)
	require.Len(t, resp.Sections, 1)
	assert.Equal(t, "CMPT", resp.Sections[0].Dept)
	assert.NotEmpty(t, resp.ID)
}

func TestScheduleServiceSaveRequiresName(t *testing.T) {
	svc := NewScheduleService(newStubSavedScheduleRepo(), nil, nil)

	_, err := svc.Save(context.Background(), "device-1", dto.SaveScheduleRequest{Term: "2026-fall"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestScheduleServiceListRequiresTerm(t *testing.T) {
	svc := NewScheduleService(newStubSavedScheduleRepo(), nil, nil)

	_, err := svc.List(context.Background(), "device-1", "")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestScheduleServiceListDecodesStoredPayloads(t *testing.T) {
	repo := newStubSavedScheduleRepo()
	sections, err := json.Marshal([]models.Section{plannerSection("MATH", "151", plannerMeeting(models.Friday, 540, 630))})
	require.NoError(t, err)
	repo.schedules["sched-1"] = &models.SavedSchedule{
		ID:        "sched-1",
		DeviceID:  "device-1",
		Term:      "2026-fall",
		Name:      "Plan B",
		Sections:  sections,
		Blocks:    "Fri-720-45",
		IsDefault: true,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	svc := NewScheduleService(repo, nil, nil)

	list, err := svc.List(context.Background(), "device-1", "2026-fall")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Plan B", list[0].Name)
	assert.True(t, list[0].IsDefault)
	require.Len(t, list[0].Sections, 1)
	assert.Equal(t, "MATH", list[0].Sections[0].Dept)
	require.Len(t, list[0].Blocks, 1)
	assert.Equal(t, models.Friday, list[0].Blocks[0].Day)
	assert.NotEmpty(t, list[0].Blocks[0].ID)
}

func TestScheduleServiceGetAssignsBlockIDs(t *testing.T) {
	repo := newStubSavedScheduleRepo()
	repo.schedules["sched-1"] = &models.SavedSchedule{
		ID:        "sched-1",
		DeviceID:  "device-1",
		Term:      "2026-fall",
		Name:      "Plan C",
		Blocks:    "Mon-480-60,Wed-600-30",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	svc := NewScheduleService(repo, nil, nil)

	resp, err := svc.Get(context.Background(), "device-1", "sched-1")
	require.NoError(t, err)
	require.Len(t, resp.Blocks, 2)
	assert.NotEmpty(t, resp.Blocks[0].ID)
	assert.NotEmpty(t, resp.Blocks[1].ID)
	assert.NotEqual(t, resp.Blocks[0].ID, resp.Blocks[1].ID)
}

func TestScheduleServiceDeleteScopedToDevice(t *testing.T) {
	repo := newStubSavedScheduleRepo()
	repo.schedules["sched-1"] = &models.SavedSchedule{ID: "sched-1", DeviceID: "device-1", Term: "2026-fall"}
	svc := NewScheduleService(repo, nil, nil)

	err := svc.Delete(context.Background(), "device-2", "sched-1")
	assert.ErrorIs(t, err, appErrors.ErrNotFound)
	require.NoError(t, svc.Delete(context.Background(), "device-1", "sched-1"))
}

func TestScheduleServiceSetDefault(t *testing.T) {
	repo := newStubSavedScheduleRepo()
	repo.schedules["sched-1"] = &models.SavedSchedule{ID: "sched-1", DeviceID: "device-1", Term: "2026-fall"}
	svc := NewScheduleService(repo, nil, nil)

	require.NoError(t, svc.SetDefault(context.Background(), "device-1", "sched-1"))
	assert.Equal(t, []string{"sched-1"}, repo.defaulted)
}
