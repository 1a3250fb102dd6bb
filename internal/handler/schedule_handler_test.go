package handler

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uniplan/course-planner-api/internal/dto"
	"github.com/uniplan/course-planner-api/internal/middleware"
	"github.com/uniplan/course-planner-api/internal/models"
	"github.com/uniplan/course-planner-api/internal/service"
	appErrors "github.com/uniplan/course-planner-api/pkg/errors"
)

type savedScheduleRepoMock struct {
	schedules map[string]*models.SavedSchedule
}

func newSavedScheduleRepoMock() *savedScheduleRepoMock {
	return &savedScheduleRepoMock{schedules: map[string]*models.SavedSchedule{}}
}

func (m *savedScheduleRepoMock) ListByDeviceTerm(_ context.Context, deviceID, term string) ([]models.SavedSchedule, error) {
	var out []models.SavedSchedule
	for _, s := range m.schedules {
		if s.DeviceID == deviceID && s.Term == term {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (m *savedScheduleRepoMock) FindByID(_ context.Context, deviceID, id string) (*models.SavedSchedule, error) {
	s, ok := m.schedules[id]
	if !ok || s.DeviceID != deviceID {
		return nil, appErrors.ErrNotFound
	}
	return s, nil
}

func (m *savedScheduleRepoMock) Create(_ context.Context, s *models.SavedSchedule) (*models.SavedSchedule, error) {
	stored := *s
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	m.schedules[stored.ID] = &stored
	return &stored, nil
}

func (m *savedScheduleRepoMock) Delete(_ context.Context, deviceID, id string) error {
	s, ok := m.schedules[id]
	if !ok || s.DeviceID != deviceID {
		return appErrors.ErrNotFound
	}
	delete(m.schedules, id)
	return nil
}

func (m *savedScheduleRepoMock) SetDefault(_ context.Context, deviceID, id string) error {
	s, ok := m.schedules[id]
	if !ok || s.DeviceID != deviceID {
		return appErrors.ErrNotFound
	}
	s.IsDefault = true
	return nil
}

func withDevice(c *gin.Context, deviceID string) {
	c.Set(middleware.ContextDeviceKey, &models.DeviceClaims{DeviceID: deviceID})
}

func TestScheduleHandlerSave(t *testing.T) {
	repo := newSavedScheduleRepoMock()
	h := NewScheduleHandler(service.NewScheduleService(repo, nil, nil))

	c, w := jsonContext(t, http.MethodPost, "/schedules", dto.SaveScheduleRequest{
		Term: "2026-fall",
		Name: "Plan A",
		Sections: []models.Section{
			handlerSection("CMPT", "120", handlerMeeting(models.Monday, 600, 690)),
		},
	})
	withDevice(c, "device-1")

	h.Save(c)

	require.Equal(t, http.StatusCreated, w.Code)
	var resp dto.SavedScheduleResponse
	decodeEnvelope(t, w, &resp)
	assert.Equal(t, "Plan A", resp.Name)
	assert.NotEmpty(t, resp.ID)
	assert.Len(t, repo.schedules, 1)
}

func TestScheduleHandlerSaveRequiresDevice(t *testing.T) {
	h := NewScheduleHandler(service.NewScheduleService(newSavedScheduleRepoMock(), nil, nil))

	c, w := jsonContext(t, http.MethodPost, "/schedules", dto.SaveScheduleRequest{Term: "2026-fall", Name: "Plan A"})

	h.Save(c)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestScheduleHandlerListRequiresTerm(t *testing.T) {
	h := NewScheduleHandler(service.NewScheduleService(newSavedScheduleRepoMock(), nil, nil))

	c, w := jsonContext(t, http.MethodGet, "/schedules", nil)
	withDevice(c, "device-1")

	h.List(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestScheduleHandlerList(t *testing.T) {
	repo := newSavedScheduleRepoMock()
	repo.schedules["sched-1"] = &models.SavedSchedule{
		ID: "sched-1", DeviceID: "device-1", Term: "2026-fall", Name: "Plan A",
		Blocks: "Mon-480-60", CreatedAt: time.Now(), UpdatedAt: time.Now(),
	}
	h := NewScheduleHandler(service.NewScheduleService(repo, nil, nil))

	c, w := jsonContext(t, http.MethodGet, "/schedules?term=2026-fall", nil)
	withDevice(c, "device-1")

	h.List(c)

	require.Equal(t, http.StatusOK, w.Code)
	var resp []dto.SavedScheduleResponse
	decodeEnvelope(t, w, &resp)
	require.Len(t, resp, 1)
	assert.Equal(t, "Plan A", resp[0].Name)
}

func TestScheduleHandlerDeleteForeignSchedule(t *testing.T) {
	repo := newSavedScheduleRepoMock()
	repo.schedules["sched-1"] = &models.SavedSchedule{ID: "sched-1", DeviceID: "device-1", Term: "2026-fall"}
	h := NewScheduleHandler(service.NewScheduleService(repo, nil, nil))

	c, w := jsonContext(t, http.MethodDelete, "/schedules/sched-1", nil)
	c.Params = gin.Params{{Key: "id", Value: "sched-1"}}
	withDevice(c, "device-2")

	h.Delete(c)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Len(t, repo.schedules, 1)
}

func TestScheduleHandlerSetDefault(t *testing.T) {
	repo := newSavedScheduleRepoMock()
	repo.schedules["sched-1"] = &models.SavedSchedule{ID: "sched-1", DeviceID: "device-1", Term: "2026-fall"}
	h := NewScheduleHandler(service.NewScheduleService(repo, nil, nil))

	c, w := jsonContext(t, http.MethodPut, "/schedules/sched-1/default", nil)
	c.Params = gin.Params{{Key: "id", Value: "sched-1"}}
	withDevice(c, "device-1")

	h.SetDefault(c)
	c.Writer.WriteHeaderNow()

	require.Equal(t, http.StatusNoContent, w.Code)
	assert.True(t, repo.schedules["sched-1"].IsDefault)
}
