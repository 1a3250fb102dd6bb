package dto

import "github.com/uniplan/course-planner-api/internal/models"

// Export formats accepted by the export endpoint.
const (
	ExportFormatICS = "ics"
	ExportFormatPDF = "pdf"
	ExportFormatCSV = "csv"
)

// ExportRequest queues the rendering of the selection in the given format.
type ExportRequest struct {
	Format   string           `json:"format" validate:"required,oneof=ics pdf csv"`
	Term     string           `json:"term"`
	Selected []models.Section `json:"selected" validate:"required"`
	Date     string           `json:"date"`
}

// ExportStatusResponse reports export progress; DownloadURL is set once the
// file is rendered.
type ExportStatusResponse struct {
	ID          string `json:"id"`
	Status      string `json:"status"`
	Format      string `json:"format"`
	DownloadURL string `json:"downloadUrl,omitempty"`
	ExpiresAt   string `json:"expiresAt,omitempty"`
	Error       string `json:"error,omitempty"`
}
