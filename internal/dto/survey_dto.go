package dto

import (
	"time"

	"course-portal-be/pkg/fingerprint"
	"course-portal-be/pkg/stats"

	"github.com/google/uuid"
)

type SubmitSurveyRequest struct {
	SurveyId   string                 `json:"surveyId" validate:"required"`
	DeviceInfo fingerprint.Attributes `json:"deviceInfo"`
	Answers    map[string]interface{} `json:"answers" validate:"required"`
}

type SubmitSurveyResponse struct {
	Success      bool      `json:"success"`
	SubmissionId uuid.UUID `json:"submissionId"`
	SubmittedAt  time.Time `json:"submittedAt"`
}

type SubmissionResponse struct {
	Id                uuid.UUID              `json:"id"`
	SurveyId          string                 `json:"survey_id"`
	DeviceFingerprint string                 `json:"device_fingerprint"`
	UserAgent         string                 `json:"user_agent,omitempty"`
	IpAddress         string                 `json:"ip_address,omitempty"`
	ScreenResolution  string                 `json:"screen_resolution,omitempty"`
	Timezone          string                 `json:"timezone,omitempty"`
	Language          string                 `json:"language,omitempty"`
	Answers           map[string]interface{} `json:"answers"`
	SubmittedAt       time.Time              `json:"submitted_at"`
}

// SubmissionSummary is the per-group view: the device metadata lives on the
// group, so only id/time/answers repeat here.
type SubmissionSummary struct {
	Id          uuid.UUID              `json:"id"`
	SubmittedAt time.Time              `json:"submitted_at"`
	Answers     map[string]interface{} `json:"answers"`
}

type DeviceGroupResponse struct {
	DeviceInfo  stats.DeviceInfo    `json:"device_info"`
	Submissions []SubmissionSummary `json:"submissions"`
}

type SurveyStatistics struct {
	TotalSubmissions int             `json:"total_submissions"`
	UniqueDevices    int             `json:"unique_devices"`
	SubmissionsByDay map[string]int  `json:"submissions_by_day"`
	DateRange        stats.DateRange `json:"date_range"`
}

type SurveyResultsResponse struct {
	Success        bool                  `json:"success"`
	SurveyId       string                `json:"survey_id"`
	Statistics     SurveyStatistics      `json:"statistics"`
	DeviceGroups   []DeviceGroupResponse `json:"device_groups"`
	AllSubmissions []SubmissionResponse  `json:"all_submissions"`
}
