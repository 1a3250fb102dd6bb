package service

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/uniplan/course-planner-api/internal/dto"
	"github.com/uniplan/course-planner-api/internal/models"
	"github.com/uniplan/course-planner-api/pkg/export"
	appErrors "github.com/uniplan/course-planner-api/pkg/errors"
	"github.com/uniplan/course-planner-api/pkg/jobs"
	"github.com/uniplan/course-planner-api/pkg/storage"
)

// Export job lifecycle states.
const (
	ExportStatusPending    = "pending"
	ExportStatusProcessing = "processing"
	ExportStatusCompleted  = "completed"
	ExportStatusFailed     = "failed"
)

type exportRecord struct {
	ID        string
	DeviceID  string
	Format    string
	Status    string
	FileName  string
	Token     string
	ExpiresAt time.Time
	Err       string
	CreatedAt time.Time
}

type exportJobPayload struct {
	RecordID string
	Request  dto.ExportRequest
}

// ExportService renders schedule exports asynchronously through a worker
// queue and serves the results behind signed URLs.
type ExportService struct {
	storage   *storage.LocalStorage
	signer    *storage.SignedURLSigner
	ics       *export.ICSExporter
	pdf       *export.PDFExporter
	csv       *export.CSVExporter
	metrics   *MetricsService
	validator *validator.Validate
	logger    *zap.Logger

	queue *jobs.Queue

	mu      sync.RWMutex
	records map[string]*exportRecord
	ttl     time.Duration
}

// ExportServiceConfig carries queue and retention tuning.
type ExportServiceConfig struct {
	Workers    int
	MaxRetries int
	RecordTTL  time.Duration
}

// NewExportService constructs an export service. Call Start before enqueueing.
func NewExportService(store *storage.LocalStorage, signer *storage.SignedURLSigner, metrics *MetricsService, validate *validator.Validate, logger *zap.Logger, cfg ExportServiceConfig) *ExportService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.RecordTTL <= 0 {
		cfg.RecordTTL = 24 * time.Hour
	}

	s := &ExportService{
		storage:   store,
		signer:    signer,
		ics:       export.NewICSExporter(),
		pdf:       export.NewPDFExporter(),
		csv:       export.NewCSVExporter(),
		metrics:   metrics,
		validator: validate,
		logger:    logger,
		records:   map[string]*exportRecord{},
		ttl:       cfg.RecordTTL,
	}
	s.queue = jobs.NewQueue("exports", s.process, jobs.QueueConfig{
		Workers:    cfg.Workers,
		MaxRetries: cfg.MaxRetries,
		Logger:     logger,
	})
	return s
}

// Start launches the export workers.
func (s *ExportService) Start(ctx context.Context) {
	s.queue.Start(ctx)
}

// Stop drains the export workers.
func (s *ExportService) Stop() {
	s.queue.Stop()
}

// CreateExport queues a new export job and returns its initial status.
func (s *ExportService) CreateExport(deviceID string, req dto.ExportRequest) (*dto.ExportStatusResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payload")
	}

	record := &exportRecord{
		ID:        uuid.NewString(),
		DeviceID:  deviceID,
		Format:    req.Format,
		Status:    ExportStatusPending,
		CreatedAt: time.Now().UTC(),
	}

	s.mu.Lock()
	s.records[record.ID] = record
	s.mu.Unlock()

	err := s.queue.Enqueue(jobs.Job{
		ID:      record.ID,
		Type:    "export." + req.Format,
		Payload: exportJobPayload{RecordID: record.ID, Request: req},
	})
	if err != nil {
		s.mu.Lock()
		delete(s.records, record.ID)
		s.mu.Unlock()
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "export queue unavailable")
	}

	return s.statusResponse(record), nil
}

// GetStatus reports export progress for a job owned by the device.
func (s *ExportService) GetStatus(deviceID, id string) (*dto.ExportStatusResponse, error) {
	s.mu.RLock()
	record, ok := s.records[id]
	s.mu.RUnlock()

	if !ok || record.DeviceID != deviceID {
		return nil, appErrors.ErrNotFound
	}

	return s.statusResponse(record), nil
}

// OpenDownload validates the signed token and opens the rendered file.
func (s *ExportService) OpenDownload(token string) (*os.File, string, error) {
	exportID, relPath, _, err := s.signer.Parse(token)
	if err != nil {
		return nil, "", appErrors.Wrap(err, appErrors.ErrForbidden.Code, appErrors.ErrForbidden.Status, "invalid or expired download token")
	}

	s.mu.RLock()
	record, ok := s.records[exportID]
	s.mu.RUnlock()
	if !ok || record.Status != ExportStatusCompleted {
		return nil, "", appErrors.ErrNotFound
	}

	file, err := s.storage.Open(relPath)
	if err != nil {
		return nil, "", appErrors.ErrNotFound
	}

	return file, record.FileName, nil
}

// Cleanup drops expired records and removes rendered files past their TTL.
// Wired to the cron scheduler.
func (s *ExportService) Cleanup(ctx context.Context) {
	removed, err := s.storage.CleanupOlderThan(s.ttl)
	if err != nil {
		s.logger.Warn("export cleanup failed", zap.Error(err))
	} else if len(removed) > 0 {
		s.logger.Info("removed expired export files", zap.Int("count", len(removed)))
	}

	cutoff := time.Now().UTC().Add(-s.ttl)
	s.mu.Lock()
	for id, record := range s.records {
		if record.CreatedAt.Before(cutoff) {
			delete(s.records, id)
		}
	}
	s.mu.Unlock()
}

func (s *ExportService) process(ctx context.Context, job jobs.Job) error {
	payload, ok := job.Payload.(exportJobPayload)
	if !ok {
		return fmt.Errorf("unexpected export payload type %T", job.Payload)
	}

	s.setStatus(payload.RecordID, ExportStatusProcessing, "")

	data, err := s.render(payload.Request)
	if err != nil {
		s.setStatus(payload.RecordID, ExportStatusFailed, err.Error())
		if s.metrics != nil {
			s.metrics.RecordExport(payload.Request.Format, false)
		}
		return err
	}

	fileName := fmt.Sprintf("schedule-%s.%s", payload.RecordID, payload.Request.Format)
	relPath, err := s.storage.Save(fileName, data)
	if err != nil {
		s.setStatus(payload.RecordID, ExportStatusFailed, "failed to store export")
		if s.metrics != nil {
			s.metrics.RecordExport(payload.Request.Format, false)
		}
		return err
	}

	token, expiresAt, err := s.signer.Generate(payload.RecordID, relPath)
	if err != nil {
		s.setStatus(payload.RecordID, ExportStatusFailed, "failed to sign download link")
		return err
	}

	s.mu.Lock()
	if record, ok := s.records[payload.RecordID]; ok {
		record.Status = ExportStatusCompleted
		record.FileName = fileName
		record.Token = token
		record.ExpiresAt = expiresAt
	}
	s.mu.Unlock()

	if s.metrics != nil {
		s.metrics.RecordExport(payload.Request.Format, true)
	}
	s.logger.Info("export completed",
		zap.String("export_id", payload.RecordID),
		zap.String("format", payload.Request.Format),
	)

	return nil
}

func (s *ExportService) render(req dto.ExportRequest) ([]byte, error) {
	switch req.Format {
	case dto.ExportFormatICS:
		return s.ics.Render(req.Selected, req.Term)
	case dto.ExportFormatCSV:
		return s.csv.Render(buildScheduleDataset(req.Selected))
	case dto.ExportFormatPDF:
		title := "Weekly Schedule"
		if req.Term != "" {
			title = fmt.Sprintf("Weekly Schedule %s", req.Term)
		}
		return s.pdf.Render(buildScheduleDataset(req.Selected), title)
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported export format %q", req.Format))
	}
}

func (s *ExportService) setStatus(id, status, errMsg string) {
	s.mu.Lock()
	if record, ok := s.records[id]; ok {
		record.Status = status
		record.Err = errMsg
	}
	s.mu.Unlock()
}

func (s *ExportService) statusResponse(record *exportRecord) *dto.ExportStatusResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()

	resp := &dto.ExportStatusResponse{
		ID:     record.ID,
		Status: record.Status,
		Format: record.Format,
		Error:  record.Err,
	}
	if record.Status == ExportStatusCompleted && record.Token != "" {
		resp.DownloadURL = "/exports/download?token=" + record.Token
		resp.ExpiresAt = record.ExpiresAt.UTC().Format(time.RFC3339)
	}
	return resp
}

// buildScheduleDataset flattens the selection into one row per meeting for
// tabular exports.
func buildScheduleDataset(selection []models.Section) export.Dataset {
	dataset := export.Dataset{
		Headers: []string{"Course", "Section", "Days", "Start", "End", "Campus", "Instructors"},
	}

	for _, section := range selection {
		for _, meeting := range section.Meetings {
			if !meeting.Scheduled() {
				continue
			}
			dataset.Rows = append(dataset.Rows, map[string]string{
				"Course":      fmt.Sprintf("%s %s", section.Dept, section.Number),
				"Section":     section.Section,
				"Days":        formatDays(meeting.Days),
				"Start":       formatClock(*meeting.StartMinute),
				"End":         formatClock(*meeting.EndMinute),
				"Campus":      meeting.Campus,
				"Instructors": strings.Join(section.Instructors, "; "),
			})
		}
	}

	sort.SliceStable(dataset.Rows, func(i, j int) bool {
		return dataset.Rows[i]["Course"] < dataset.Rows[j]["Course"]
	})

	return dataset
}

func formatDays(days []models.Weekday) string {
	labels := make([]string, 0, len(days))
	for _, day := range days {
		labels = append(labels, day.String())
	}
	return strings.Join(labels, ", ")
}

func formatClock(minute int) string {
	return fmt.Sprintf("%02d:%02d", minute/60, minute%60)
}
