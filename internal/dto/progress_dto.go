package dto

import (
	"time"

	"github.com/google/uuid"
)

type ResolveSessionRequest struct {
	DeviceFingerprint string `json:"device_fingerprint" validate:"required"`
}

type ResolveSessionResponse struct {
	SessionId string `json:"session_id"`
}

type RecordStepRequest struct {
	SessionId         string `json:"session_id" validate:"required"`
	DeviceFingerprint string `json:"device_fingerprint" validate:"required"`
	UserAgent         string `json:"user_agent"`
	Step              int    `json:"step" validate:"min=0"`
	TotalSteps        int    `json:"total_steps" validate:"omitempty,min=1"`
}

type ResetProgressRequest struct {
	SessionId         string `json:"session_id" validate:"required"`
	DeviceFingerprint string `json:"device_fingerprint" validate:"required"`
}

type ProgressRecordResponse struct {
	Id                uuid.UUID `json:"id"`
	SessionId         string    `json:"session_id"`
	DeviceFingerprint string    `json:"device_fingerprint"`
	UserAgent         string    `json:"user_agent,omitempty"`
	CurrentStep       int       `json:"current_step"`
	TotalSteps        int       `json:"total_steps"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// UserProgressEntry is one device's latest record in the admin stats view.
type UserProgressEntry struct {
	DeviceFingerprint string    `json:"device_fingerprint"`
	SessionId         string    `json:"session_id"`
	UserAgent         string    `json:"user_agent,omitempty"`
	CurrentStep       int       `json:"current_step"`
	TotalSteps        int       `json:"total_steps"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type ProgressStatsResponse struct {
	TotalConnections  int                 `json:"total_connections"`
	OnlineConnections int                 `json:"online_connections"`
	UsersProgress     []UserProgressEntry `json:"users_progress"`
}
