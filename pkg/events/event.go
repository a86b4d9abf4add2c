package events

import "time"

// Event defines the contract for everything published on the event bus.
type Event interface {
	// EventType returns the unique code for this event (e.g., "PROGRESS_UPDATED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// Event type codes published by the portal.
const (
	TypeSurveySubmitted = "SURVEY_SUBMITTED"
	TypeProgressUpdated = "PROGRESS_UPDATED"
	TypeProgressReset   = "PROGRESS_RESET"
)

// BaseEvent is the generic implementation used both for publishing and for
// events reconstructed on the subscribe side.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// SurveySubmitted records a stored survey submission.
func SurveySubmitted(surveyId, deviceFingerprint, submissionId string) Event {
	return BaseEvent{
		Type: TypeSurveySubmitted,
		Data: map[string]interface{}{
			"survey_id":          surveyId,
			"device_fingerprint": deviceFingerprint,
			"submission_id":      submissionId,
		},
		OccurredAt: time.Now(),
	}
}

// ProgressUpdated records an insert-or-replace of a progress row.
func ProgressUpdated(sessionId, deviceFingerprint string, currentStep, totalSteps int) Event {
	return BaseEvent{
		Type: TypeProgressUpdated,
		Data: map[string]interface{}{
			"session_id":         sessionId,
			"device_fingerprint": deviceFingerprint,
			"current_step":       currentStep,
			"total_steps":        totalSteps,
		},
		OccurredAt: time.Now(),
	}
}

// ProgressReset records the deletion of a progress row.
func ProgressReset(sessionId, deviceFingerprint string) Event {
	return BaseEvent{
		Type: TypeProgressReset,
		Data: map[string]interface{}{
			"session_id":         sessionId,
			"device_fingerprint": deviceFingerprint,
		},
		OccurredAt: time.Now(),
	}
}
