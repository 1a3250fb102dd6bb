package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/uniplan/course-planner-api/internal/dto"
	"github.com/uniplan/course-planner-api/internal/service"
	appErrors "github.com/uniplan/course-planner-api/pkg/errors"
	"github.com/uniplan/course-planner-api/pkg/response"
)

// ScheduleHandler manages saved schedules for the requesting device.
type ScheduleHandler struct {
	schedules *service.ScheduleService
}

// NewScheduleHandler constructs a schedule handler.
func NewScheduleHandler(schedules *service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{schedules: schedules}
}

// List godoc
// @Summary List the device's saved schedules for a term
// @Tags Schedules
// @Produce json
// @Param term query string true "Term"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /schedules [get]
func (h *ScheduleHandler) List(c *gin.Context) {
	device := deviceFromContext(c)
	if device == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	var query dto.SavedScheduleQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid query"))
		return
	}
	schedules, err := h.schedules.List(c.Request.Context(), device.DeviceID, query.Term)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, schedules, nil)
}

// Get godoc
// @Summary Fetch one saved schedule
// @Tags Schedules
// @Produce json
// @Param id path string true "Schedule ID"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /schedules/{id} [get]
func (h *ScheduleHandler) Get(c *gin.Context) {
	device := deviceFromContext(c)
	if device == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	schedule, err := h.schedules.Get(c.Request.Context(), device.DeviceID, c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, schedule, nil)
}

// Save godoc
// @Summary Save the current selection under a name
// @Tags Schedules
// @Accept json
// @Produce json
// @Param payload body dto.SaveScheduleRequest true "Schedule snapshot"
// @Success 201 {object} response.Envelope
// @Security BearerAuth
// @Router /schedules [post]
func (h *ScheduleHandler) Save(c *gin.Context) {
	device := deviceFromContext(c)
	if device == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	var req dto.SaveScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	schedule, err := h.schedules.Save(c.Request.Context(), device.DeviceID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, schedule)
}

// Delete godoc
// @Summary Delete a saved schedule
// @Tags Schedules
// @Param id path string true "Schedule ID"
// @Success 204
// @Security BearerAuth
// @Router /schedules/{id} [delete]
func (h *ScheduleHandler) Delete(c *gin.Context) {
	device := deviceFromContext(c)
	if device == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	if err := h.schedules.Delete(c.Request.Context(), device.DeviceID, c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// SetDefault godoc
// @Summary Mark a saved schedule as the term default
// @Tags Schedules
// @Param id path string true "Schedule ID"
// @Success 204
// @Security BearerAuth
// @Router /schedules/{id}/default [put]
func (h *ScheduleHandler) SetDefault(c *gin.Context) {
	device := deviceFromContext(c)
	if device == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	if err := h.schedules.SetDefault(c.Request.Context(), device.DeviceID, c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
