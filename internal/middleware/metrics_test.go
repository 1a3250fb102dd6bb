package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/uniplan/course-planner-api/internal/service"
)

func newMetricsTestRouter(metrics *service.MetricsService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Metrics(metrics))
	router.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/planner/:term", func(c *gin.Context) { c.Status(http.StatusOK) })
	return router
}

func TestMetricsObservesPlannerRoutes(t *testing.T) {
	metrics := service.NewMetricsService()
	router := newMetricsTestRouter(metrics)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/planner/2026-fall", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, uint64(1), metrics.Snapshot().RequestsTotal)
}

func TestMetricsSkipsProbeEndpoints(t *testing.T) {
	metrics := service.NewMetricsService()
	router := newMetricsTestRouter(metrics)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, uint64(0), metrics.Snapshot().RequestsTotal)
}

func TestMetricsCollapsesUnmatchedRoutes(t *testing.T) {
	metrics := service.NewMetricsService()
	router := newMetricsTestRouter(metrics)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/no-such-route", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, uint64(1), metrics.Snapshot().RequestsTotal)
}
