package entity

import (
	"time"

	"github.com/google/uuid"
)

// SurveySubmission is immutable once stored; the id is assigned by the store.
type SurveySubmission struct {
	Id                uuid.UUID
	SurveyId          string
	DeviceFingerprint string
	UserAgent         string
	IpAddress         string
	ScreenResolution  string
	Timezone          string
	Language          string
	Answers           map[string]interface{}
	SubmittedAt       time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
