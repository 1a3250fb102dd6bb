package models

import "github.com/golang-jwt/jwt/v5"

// DeviceClaims identifies an anonymous planner device. There are no user
// accounts; saved schedules are scoped to the device id carried here.
type DeviceClaims struct {
	DeviceID string `json:"deviceId"`
	jwt.RegisteredClaims
}
