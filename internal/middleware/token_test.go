package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uniplan/course-planner-api/internal/models"
	"github.com/uniplan/course-planner-api/internal/service"
)

func newTokenTestRouter(tokens *service.TokenService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", DeviceToken(tokens), func(c *gin.Context) {
		claims := c.MustGet(ContextDeviceKey).(*models.DeviceClaims)
		c.JSON(http.StatusOK, gin.H{"deviceId": claims.DeviceID})
	})
	return router
}

func TestDeviceTokenAllowsValidToken(t *testing.T) {
	tokens := service.NewTokenService("secret", time.Hour)
	router := newTokenTestRouter(tokens)

	token, claims, err := tokens.IssueDeviceToken("")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), claims.DeviceID)
}

func TestDeviceTokenRejectsMissingHeader(t *testing.T) {
	router := newTokenTestRouter(service.NewTokenService("secret", time.Hour))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestDeviceTokenRejectsMalformedHeader(t *testing.T) {
	router := newTokenTestRouter(service.NewTokenService("secret", time.Hour))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Token abc")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestDeviceTokenRejectsForeignSignature(t *testing.T) {
	router := newTokenTestRouter(service.NewTokenService("secret-a", time.Hour))

	foreign, _, err := service.NewTokenService("secret-b", time.Hour).IssueDeviceToken("")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+foreign)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
