package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/uniplan/course-planner-api/internal/models"
	appErrors "github.com/uniplan/course-planner-api/pkg/errors"
)

// TokenService issues and validates anonymous device tokens. A device token is
// the only identity in the system; it scopes saved schedules and exports.
type TokenService struct {
	secret     []byte
	expiration time.Duration
}

// NewTokenService constructs a token service.
func NewTokenService(secret string, expiration time.Duration) *TokenService {
	if expiration <= 0 {
		expiration = 30 * 24 * time.Hour
	}
	return &TokenService{secret: []byte(secret), expiration: expiration}
}

// IssueDeviceToken mints a token for a fresh device id. When deviceID is empty
// a new one is generated, otherwise the existing identity is renewed.
func (s *TokenService) IssueDeviceToken(deviceID string) (string, *models.DeviceClaims, error) {
	if deviceID == "" {
		deviceID = uuid.NewString()
	}

	now := time.Now().UTC()
	claims := &models.DeviceClaims{
		DeviceID: deviceID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   deviceID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiration)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to sign device token")
	}

	return token, claims, nil
}

// ValidateToken parses and verifies a device token.
func (s *TokenService) ValidateToken(raw string) (*models.DeviceClaims, error) {
	claims := &models.DeviceClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, appErrors.ErrUnauthorized
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid || claims.DeviceID == "" {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "invalid device token")
	}
	return claims, nil
}
