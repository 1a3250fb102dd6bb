package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/uniplan/course-planner-api/internal/service"
	"github.com/uniplan/course-planner-api/pkg/response"
)

// TokenHandler issues anonymous device tokens.
type TokenHandler struct {
	tokens *service.TokenService
}

// NewTokenHandler constructs a token handler.
func NewTokenHandler(tokens *service.TokenService) *TokenHandler {
	return &TokenHandler{tokens: tokens}
}

// Issue godoc
// @Summary Issue a device token for anonymous schedule storage
// @Tags Tokens
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /token [post]
func (h *TokenHandler) Issue(c *gin.Context) {
	// Renew the existing identity when the caller already holds a token.
	deviceID := ""
	if device := deviceFromContext(c); device != nil {
		deviceID = device.DeviceID
	}

	token, claims, err := h.tokens.IssueDeviceToken(deviceID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, gin.H{
		"token":     token,
		"deviceId":  claims.DeviceID,
		"expiresAt": claims.ExpiresAt.UTC().Format(time.RFC3339),
	}, nil)
}
