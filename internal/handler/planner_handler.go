package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/uniplan/course-planner-api/internal/dto"
	"github.com/uniplan/course-planner-api/internal/service"
	appErrors "github.com/uniplan/course-planner-api/pkg/errors"
	"github.com/uniplan/course-planner-api/pkg/response"
)

// PlannerHandler exposes the scheduling core over HTTP.
type PlannerHandler struct {
	planner *service.PlannerService
}

// NewPlannerHandler constructs a planner handler.
func NewPlannerHandler(planner *service.PlannerService) *PlannerHandler {
	return &PlannerHandler{planner: planner}
}

// Filter godoc
// @Summary Filter candidate sections against the current selection
// @Tags Planner
// @Accept json
// @Produce json
// @Param payload body dto.FilterRequest true "Candidates, selection and blocks"
// @Success 200 {object} response.Envelope
// @Router /planner/filter [post]
func (h *PlannerHandler) Filter(c *gin.Context) {
	var req dto.FilterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	resp, err := h.planner.Filter(req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, resp, nil)
}

// MergeBlocks godoc
// @Summary Merge manual time blocks into canonical non-overlapping form
// @Tags Planner
// @Accept json
// @Produce json
// @Param payload body dto.MergeBlocksRequest true "Blocks, structured or encoded"
// @Success 200 {object} response.Envelope
// @Router /planner/blocks/merge [post]
func (h *PlannerHandler) MergeBlocks(c *gin.Context) {
	var req dto.MergeBlocksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	response.JSON(c, http.StatusOK, h.planner.MergeBlocks(req), nil)
}

// Insights godoc
// @Summary Compute quality insights for a selection
// @Tags Planner
// @Accept json
// @Produce json
// @Param payload body dto.InsightsRequest true "Current selection"
// @Success 200 {object} response.Envelope
// @Router /planner/insights [post]
func (h *PlannerHandler) Insights(c *gin.Context) {
	var req dto.InsightsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	response.JSON(c, http.StatusOK, h.planner.Insights(req), nil)
}

// WeekView godoc
// @Summary Lay out the selection for the week containing a date
// @Tags Planner
// @Accept json
// @Produce json
// @Param payload body dto.WeekViewRequest true "Selection, blocks and date"
// @Success 200 {object} response.Envelope
// @Router /planner/week [post]
func (h *PlannerHandler) WeekView(c *gin.Context) {
	var req dto.WeekViewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	resp, err := h.planner.WeekView(req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, resp, nil)
}
