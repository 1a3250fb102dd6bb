package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/uniplan/course-planner-api/internal/dto"
	"github.com/uniplan/course-planner-api/internal/models"
	"github.com/uniplan/course-planner-api/internal/schedule"
	appErrors "github.com/uniplan/course-planner-api/pkg/errors"
)

// CatalogService fetches course outlines from the upstream catalog API and
// normalizes them into minute-of-day meetings.
type CatalogService struct {
	baseURL  string
	client   *http.Client
	cache    *CacheService
	cacheTTL time.Duration
	metrics  *MetricsService
	logger   *zap.Logger
}

// NewCatalogService constructs a catalog service. A nil cache disables caching.
func NewCatalogService(baseURL string, timeout time.Duration, cache *CacheService, cacheTTL time.Duration, metrics *MetricsService, logger *zap.Logger) *CatalogService {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &CatalogService{
		baseURL:  strings.TrimRight(baseURL, "/"),
		client:   &http.Client{Timeout: timeout},
		cache:    cache,
		cacheTTL: cacheTTL,
		metrics:  metrics,
		logger:   logger,
	}
}

// ListCourses returns every course offered by a department in a term.
func (s *CatalogService) ListCourses(ctx context.Context, term, dept string) ([]models.Course, error) {
	cacheKey := fmt.Sprintf("catalog:%s:%s", strings.ToLower(term), strings.ToLower(dept))

	var cached []models.Course
	if hit, err := s.cache.Get(ctx, cacheKey, &cached); err == nil && hit {
		return cached, nil
	}

	var payloads []dto.OutlinePayload
	if err := s.fetch(ctx, s.endpoint(term, dept), &payloads); err != nil {
		return nil, err
	}

	courses := make([]models.Course, 0, len(payloads))
	for _, payload := range payloads {
		courses = append(courses, parseOutline(payload))
	}

	if err := s.cache.Set(ctx, cacheKey, courses, s.cacheTTL); err != nil && s.logger != nil {
		s.logger.Warn("catalog cache write failed", zap.String("key", cacheKey), zap.Error(err))
	}

	return courses, nil
}

// GetCourse returns one course with all of its sections.
func (s *CatalogService) GetCourse(ctx context.Context, term, dept, number string) (*models.Course, error) {
	cacheKey := fmt.Sprintf("catalog:%s:%s:%s", strings.ToLower(term), strings.ToLower(dept), strings.ToLower(number))

	var cached models.Course
	if hit, err := s.cache.Get(ctx, cacheKey, &cached); err == nil && hit {
		return &cached, nil
	}

	var payload dto.OutlinePayload
	if err := s.fetch(ctx, s.endpoint(term, dept, number), &payload); err != nil {
		return nil, err
	}

	course := parseOutline(payload)
	if err := s.cache.Set(ctx, cacheKey, course, s.cacheTTL); err != nil && s.logger != nil {
		s.logger.Warn("catalog cache write failed", zap.String("key", cacheKey), zap.Error(err))
	}

	return &course, nil
}

// InvalidateTerm drops every cached catalog entry for a term.
func (s *CatalogService) InvalidateTerm(ctx context.Context, term string) error {
	return s.cache.Invalidate(ctx, fmt.Sprintf("catalog:%s:*", strings.ToLower(term)))
}

func (s *CatalogService) endpoint(parts ...string) string {
	escaped := make([]string, 0, len(parts))
	for _, part := range parts {
		escaped = append(escaped, url.PathEscape(part))
	}
	return s.baseURL + "/" + strings.Join(escaped, "/")
}

func (s *CatalogService) fetch(ctx context.Context, endpoint string, dest interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("build catalog request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := s.client.Do(req)
	if err != nil {
		if s.metrics != nil {
			s.metrics.ObserveUpstreamFetch(false, time.Since(start))
		}
		return appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, appErrors.ErrUpstream.Message)
	}
	defer resp.Body.Close()

	if s.metrics != nil {
		s.metrics.ObserveUpstreamFetch(resp.StatusCode < 400, time.Since(start))
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return appErrors.ErrNotFound
	case resp.StatusCode >= 400:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return appErrors.Clone(appErrors.ErrUpstream, fmt.Sprintf("catalog upstream returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body))))
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return appErrors.Wrap(fmt.Errorf("decode catalog response: %w", err), appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, appErrors.ErrUpstream.Message)
	}

	return nil
}

// parseOutline converts an upstream outline payload into the normalized model,
// resolving day tokens and clock strings into minute-of-day meetings.
func parseOutline(payload dto.OutlinePayload) models.Course {
	course := models.Course{
		Dept:     payload.Dept,
		Number:   payload.Number,
		Title:    payload.Title,
		Term:     payload.Term,
		Sections: make([]models.Section, 0, len(payload.Sections)),
	}

	for _, raw := range payload.Sections {
		section := models.Section{
			Dept:           payload.Dept,
			Number:         payload.Number,
			Section:        raw.Section,
			ClassNumber:    raw.ClassNumber,
			DeliveryMethod: raw.DeliveryMethod,
			Meetings:       make([]models.Meeting, 0, len(raw.Schedules)),
		}
		for _, instructor := range raw.Instructors {
			if instructor.Name != "" {
				section.Instructors = append(section.Instructors, instructor.Name)
			}
		}
		for _, sched := range raw.Schedules {
			section.Meetings = append(section.Meetings, models.Meeting{
				Days:        schedule.ParseDays(sched.Days),
				StartMinute: schedule.ParseClock(sched.StartTime),
				EndMinute:   schedule.ParseClock(sched.EndTime),
				StartDate:   sched.StartDate,
				EndDate:     sched.EndDate,
				Campus:      sched.Campus,
				SectionCode: sched.SectionCode,
			})
		}
		course.Sections = append(course.Sections, section)
	}

	return course
}
