package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// SurveySubmission rows are write-once: nothing updates them after insert.
type SurveySubmission struct {
	Id                uuid.UUID          `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SurveyId          string             `gorm:"type:varchar(100);not null;index:idx_submissions_survey_device,priority:1"`
	DeviceFingerprint string             `gorm:"type:varchar(64);not null;index:idx_submissions_survey_device,priority:2"`
	UserAgent         string             `gorm:"type:text"`
	IpAddress         string             `gorm:"type:varchar(45)"`
	ScreenResolution  string             `gorm:"type:varchar(20)"`
	Timezone          string             `gorm:"type:varchar(64)"`
	Language          string             `gorm:"type:varchar(16)"`
	Answers           datatypes.JSONMap  `gorm:"type:jsonb;not null"`
	SubmittedAt       time.Time          `gorm:"not null;index"`
	CreatedAt         time.Time          `gorm:"autoCreateTime"`
	UpdatedAt         time.Time          `gorm:"autoUpdateTime"`
}

func (SurveySubmission) TableName() string {
	return "survey_submissions"
}
