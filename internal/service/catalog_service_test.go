package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/uniplan/course-planner-api/internal/models"
	appErrors "github.com/uniplan/course-planner-api/pkg/errors"
)

type memoryCacheRepo struct {
	entries map[string][]byte
}

func newMemoryCacheRepo() *memoryCacheRepo {
	return &memoryCacheRepo{entries: map[string][]byte{}}
}

func (r *memoryCacheRepo) Get(_ context.Context, key string, dest interface{}) error {
	raw, ok := r.entries[key]
	if !ok {
		return appErrors.ErrCacheMiss
	}
	return json.Unmarshal(raw, dest)
}

func (r *memoryCacheRepo) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	r.entries[key] = raw
	return nil
}

func (r *memoryCacheRepo) DeleteByPattern(_ context.Context, _ string) error {
	r.entries = map[string][]byte{}
	return nil
}

const outlineFixture = `{
	"dept": "CMPT",
	"number": "120",
	"title": "Introduction to Computing",
	"term": "2026-fall",
	"sections": [
		{
			"section": "D100",
			"classNumber": "6541",
			"deliveryMethod": "In Person",
			"instructors": [{"name": "A. Tremblay"}],
			"schedules": [
				{
					"startDate": "2026-09-08",
					"endDate": "2026-12-07",
					"campus": "Burnaby",
					"days": "Mo, We, Fr",
					"startTime": "10:30",
					"endTime": "11:20",
					"sectionCode": "LEC"
				}
			]
		}
	]
}`

func TestCatalogServiceGetCourseParsesOutline(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/2026-fall/cmpt/120", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(outlineFixture))
	}))
	defer server.Close()

	svc := NewCatalogService(server.URL, time.Second, nil, 0, nil, zap.NewNop())
	course, err := svc.GetCourse(context.Background(), "2026-fall", "cmpt", "120")
	require.NoError(t, err)

	assert.Equal(t, "CMPT", course.Dept)
	require.Len(t, course.Sections, 1)
	section := course.Sections[0]
	assert.Equal(t, []string{"A. Tremblay"}, section.Instructors)
	require.Len(t, section.Meetings, 1)

	meeting := section.Meetings[0]
	assert.Equal(t, []models.Weekday{models.Monday, models.Wednesday, models.Friday}, meeting.Days)
	require.NotNil(t, meeting.StartMinute)
	require.NotNil(t, meeting.EndMinute)
	assert.Equal(t, 630, *meeting.StartMinute)
	assert.Equal(t, 680, *meeting.EndMinute)
	assert.Equal(t, "Burnaby", meeting.Campus)
	assert.True(t, meeting.Scheduled())
}

func TestCatalogServiceListCoursesUsesCache(t *testing.T) {
	var hits int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&hits, 1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("[" + outlineFixture + "]"))
	}))
	defer server.Close()

	cache := NewCacheService(newMemoryCacheRepo(), nil, time.Minute, zap.NewNop(), true)
	svc := NewCatalogService(server.URL, time.Second, cache, time.Minute, nil, zap.NewNop())

	first, err := svc.ListCourses(context.Background(), "2026-fall", "cmpt")
	require.NoError(t, err)
	second, err := svc.ListCourses(context.Background(), "2026-fall", "cmpt")
	require.NoError(t, err)

	assert.Equal(t, int64(1), atomic.LoadInt64(&hits))
	assert.Equal(t, first, second)
}

func TestCatalogServiceGetCourseNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	svc := NewCatalogService(server.URL, time.Second, nil, 0, nil, zap.NewNop())
	_, err := svc.GetCourse(context.Background(), "2026-fall", "cmpt", "999")
	assert.ErrorIs(t, err, appErrors.ErrNotFound)
}

func TestCatalogServiceUpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	svc := NewCatalogService(server.URL, time.Second, nil, 0, nil, zap.NewNop())
	_, err := svc.ListCourses(context.Background(), "2026-fall", "cmpt")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrUpstream.Code, appErrors.FromError(err).Code)
}

func TestCatalogServiceUnscheduledMeetingSurvivesParsing(t *testing.T) {
	payload := `{
		"dept": "CMPT", "number": "415", "title": "Special Research Project", "term": "2026-fall",
		"sections": [{"section": "D100", "classNumber": "7001", "deliveryMethod": "In Person",
			"instructors": [], "schedules": [{"days": "", "startTime": "", "endTime": "", "campus": ""}]}]
	}`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(payload))
	}))
	defer server.Close()

	svc := NewCatalogService(server.URL, time.Second, nil, 0, nil, zap.NewNop())
	course, err := svc.GetCourse(context.Background(), "2026-fall", "cmpt", "415")
	require.NoError(t, err)
	require.Len(t, course.Sections, 1)
	require.Len(t, course.Sections[0].Meetings, 1)
	assert.False(t, course.Sections[0].Meetings[0].Scheduled())
}
