package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/uniplan/course-planner-api/internal/dto"
	"github.com/uniplan/course-planner-api/internal/service"
	appErrors "github.com/uniplan/course-planner-api/pkg/errors"
	"github.com/uniplan/course-planner-api/pkg/response"
)

var exportContentTypes = map[string]string{
	dto.ExportFormatICS: "text/calendar",
	dto.ExportFormatPDF: "application/pdf",
	dto.ExportFormatCSV: "text/csv",
}

// ExportHandler queues schedule exports and serves their downloads.
type ExportHandler struct {
	exports *service.ExportService
}

// NewExportHandler constructs an export handler.
func NewExportHandler(exports *service.ExportService) *ExportHandler {
	return &ExportHandler{exports: exports}
}

// Create godoc
// @Summary Queue an export of the current selection
// @Tags Exports
// @Accept json
// @Produce json
// @Param payload body dto.ExportRequest true "Format and selection"
// @Success 202 {object} response.Envelope
// @Security BearerAuth
// @Router /exports [post]
func (h *ExportHandler) Create(c *gin.Context) {
	device := deviceFromContext(c)
	if device == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	var req dto.ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	status, err := h.exports.CreateExport(device.DeviceID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusAccepted, status, nil)
}

// Status godoc
// @Summary Report export progress
// @Tags Exports
// @Produce json
// @Param id path string true "Export ID"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /exports/{id} [get]
func (h *ExportHandler) Status(c *gin.Context) {
	device := deviceFromContext(c)
	if device == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	status, err := h.exports.GetStatus(device.DeviceID, c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, status, nil)
}

// Download godoc
// @Summary Download a rendered export via its signed token
// @Tags Exports
// @Param token query string true "Signed download token"
// @Success 200
// @Router /exports/download [get]
func (h *ExportHandler) Download(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "token required"))
		return
	}

	file, name, err := h.exports.OpenDownload(token)
	if err != nil {
		response.Error(c, err)
		return
	}
	defer file.Close()

	contentType := "application/octet-stream"
	for format, ct := range exportContentTypes {
		if len(name) > len(format) && name[len(name)-len(format):] == format {
			contentType = ct
			break
		}
	}

	c.Header("Content-Disposition", `attachment; filename="`+name+`"`)
	c.Header("Content-Type", contentType)
	c.File(file.Name())
}
