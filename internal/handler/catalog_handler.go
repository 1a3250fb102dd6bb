package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/uniplan/course-planner-api/internal/service"
	"github.com/uniplan/course-planner-api/pkg/response"
)

// CatalogHandler exposes the upstream course catalog.
type CatalogHandler struct {
	catalog *service.CatalogService
}

// NewCatalogHandler constructs a catalog handler.
func NewCatalogHandler(catalog *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// ListCourses godoc
// @Summary List courses for a department in a term
// @Tags Catalog
// @Produce json
// @Param term path string true "Term"
// @Param dept path string true "Department"
// @Success 200 {object} response.Envelope
// @Router /catalog/{term}/{dept} [get]
func (h *CatalogHandler) ListCourses(c *gin.Context) {
	courses, err := h.catalog.ListCourses(c.Request.Context(), c.Param("term"), c.Param("dept"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, courses, nil)
}

// GetCourse godoc
// @Summary Fetch one course with its sections
// @Tags Catalog
// @Produce json
// @Param term path string true "Term"
// @Param dept path string true "Department"
// @Param number path string true "Course number"
// @Success 200 {object} response.Envelope
// @Router /catalog/{term}/{dept}/{number} [get]
func (h *CatalogHandler) GetCourse(c *gin.Context) {
	course, err := h.catalog.GetCourse(c.Request.Context(), c.Param("term"), c.Param("dept"), c.Param("number"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, course, nil)
}
