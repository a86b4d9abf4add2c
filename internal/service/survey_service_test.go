package service

import (
	"context"
	"testing"

	"course-portal-be/internal/dto"
	"course-portal-be/internal/pkg/apperr"
	"course-portal-be/pkg/fingerprint"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func submitReq(surveyId, userAgent string) *dto.SubmitSurveyRequest {
	return &dto.SubmitSurveyRequest{
		SurveyId: surveyId,
		DeviceInfo: fingerprint.Attributes{
			UserAgent:        userAgent,
			ScreenResolution: "1920x1080",
			Timezone:         "Europe/Berlin",
			Language:         "de-DE",
		},
		Answers: map[string]interface{}{"q1": "yes", "q2": float64(4)},
	}
}

func TestSubmitStoresFingerprintedSubmission(t *testing.T) {
	repo := newFakeSubmissionRepo()
	svc := NewSurveyService(repo, nil, nopLogger{})

	res, err := svc.Submit(context.Background(), submitReq("course-feedback", "agent-a"), "203.0.113.9")
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.NotZero(t, res.SubmissionId)

	require.Len(t, repo.rows, 1)
	stored := repo.rows[0]
	assert.Equal(t, "course-feedback", stored.SurveyId)
	assert.Equal(t, "203.0.113.9", stored.IpAddress)
	assert.Equal(t, "agent-a", stored.UserAgent)
	assert.NotEmpty(t, stored.DeviceFingerprint)

	// The fingerprint is derived from the attributes, nothing else.
	want := fingerprint.FromAttributes(fingerprint.Attributes{
		UserAgent:        "agent-a",
		ScreenResolution: "1920x1080",
		Timezone:         "Europe/Berlin",
		Language:         "de-DE",
	})
	assert.Equal(t, want, stored.DeviceFingerprint)
}

func TestSubmitAllowsRepeatsFromSameDevice(t *testing.T) {
	repo := newFakeSubmissionRepo()
	svc := NewSurveyService(repo, nil, nopLogger{})
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := svc.Submit(ctx, submitReq("course-feedback", "agent-a"), "203.0.113.9")
		require.NoError(t, err)
	}
	assert.Len(t, repo.rows, 3)
}

func TestSubmitSurfacesStoreFailure(t *testing.T) {
	repo := newFakeSubmissionRepo()
	repo.failNext = assert.AnError
	svc := NewSurveyService(repo, nil, nopLogger{})

	_, err := svc.Submit(context.Background(), submitReq("course-feedback", "agent-a"), "")
	require.Error(t, err)
	assert.Equal(t, 500, apperr.StatusOf(err))
}

func TestResultsAggregatesPerDevice(t *testing.T) {
	repo := newFakeSubmissionRepo()
	svc := NewSurveyService(repo, nil, nopLogger{})
	ctx := context.Background()

	_, err := svc.Submit(ctx, submitReq("course-feedback", "agent-a"), "")
	require.NoError(t, err)
	_, err = svc.Submit(ctx, submitReq("course-feedback", "agent-a"), "")
	require.NoError(t, err)
	_, err = svc.Submit(ctx, submitReq("course-feedback", "agent-b"), "")
	require.NoError(t, err)
	_, err = svc.Submit(ctx, submitReq("other-survey", "agent-a"), "")
	require.NoError(t, err)

	res, err := svc.Results(ctx, "course-feedback")
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, "course-feedback", res.SurveyId)
	assert.Equal(t, 3, res.Statistics.TotalSubmissions)
	assert.Equal(t, 2, res.Statistics.UniqueDevices)
	assert.Len(t, res.AllSubmissions, 3)
	require.Len(t, res.DeviceGroups, 2)

	counted := 0
	for _, group := range res.DeviceGroups {
		assert.Equal(t, group.DeviceInfo.SubmissionCount, len(group.Submissions))
		counted += len(group.Submissions)
	}
	assert.Equal(t, 3, counted)
}

func TestResultsEmptySurvey(t *testing.T) {
	svc := NewSurveyService(newFakeSubmissionRepo(), nil, nopLogger{})

	res, err := svc.Results(context.Background(), "never-used")
	require.NoError(t, err)
	assert.Equal(t, 0, res.Statistics.TotalSubmissions)
	assert.Empty(t, res.DeviceGroups)
	assert.Empty(t, res.AllSubmissions)
	assert.Nil(t, res.Statistics.DateRange.Earliest)
}

func TestResultsRequiresSurveyId(t *testing.T) {
	svc := NewSurveyService(newFakeSubmissionRepo(), nil, nopLogger{})

	_, err := svc.Results(context.Background(), "")
	require.Error(t, err)
	assert.Equal(t, 400, apperr.StatusOf(err))
}
