package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProgressRecord is unique per (SessionId, DeviceFingerprint). Writes with an
// existing key replace the row (upsert), CurrentStep stays within
// 0..TotalSteps, and a reset deletes the row entirely.
type ProgressRecord struct {
	Id                uuid.UUID
	SessionId         string
	DeviceFingerprint string
	UserAgent         string
	CurrentStep       int
	TotalSteps        int
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
