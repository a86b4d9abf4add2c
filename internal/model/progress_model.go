package model

import (
	"time"

	"github.com/google/uuid"
)

// ProgressTracking holds at most one row per (session_id, device_fingerprint);
// the unique index is what the upsert conflicts on.
type ProgressTracking struct {
	Id                uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SessionId         string    `gorm:"type:varchar(100);not null;uniqueIndex:uq_progress_session_device,priority:1"`
	DeviceFingerprint string    `gorm:"type:varchar(64);not null;uniqueIndex:uq_progress_session_device,priority:2;index:idx_progress_device"`
	UserAgent         string    `gorm:"type:text"`
	CurrentStep       int       `gorm:"not null;default:0"`
	TotalSteps        int       `gorm:"not null"`
	CreatedAt         time.Time `gorm:"autoCreateTime"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime"`
}

func (ProgressTracking) TableName() string {
	return "progress_tracking"
}
