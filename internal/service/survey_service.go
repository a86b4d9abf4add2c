package service

import (
	"context"
	"time"

	"course-portal-be/internal/dto"
	"course-portal-be/internal/entity"
	"course-portal-be/internal/pkg/apperr"
	"course-portal-be/internal/pkg/logger"
	"course-portal-be/internal/repository/contract"
	"course-portal-be/internal/repository/specification"
	"course-portal-be/pkg/events"
	"course-portal-be/pkg/fingerprint"
	pktNats "course-portal-be/pkg/nats"
	"course-portal-be/pkg/stats"
)

type ISurveyService interface {
	Submit(ctx context.Context, req *dto.SubmitSurveyRequest, ipAddress string) (*dto.SubmitSurveyResponse, error)
	Results(ctx context.Context, surveyId string) (*dto.SurveyResultsResponse, error)
}

type surveyService struct {
	submissions    contract.SubmissionRepository
	eventPublisher *pktNats.Publisher
	logger         logger.ILogger
}

func NewSurveyService(
	submissions contract.SubmissionRepository,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) ISurveyService {
	return &surveyService{
		submissions:    submissions,
		eventPublisher: eventPublisher,
		logger:         log,
	}
}

func (s *surveyService) Submit(ctx context.Context, req *dto.SubmitSurveyRequest, ipAddress string) (*dto.SubmitSurveyResponse, error) {
	fp := fingerprint.FromAttributes(req.DeviceInfo)

	submission := &entity.SurveySubmission{
		SurveyId:          req.SurveyId,
		DeviceFingerprint: fp,
		UserAgent:         req.DeviceInfo.UserAgent,
		IpAddress:         ipAddress,
		ScreenResolution:  req.DeviceInfo.ScreenResolution,
		Timezone:          req.DeviceInfo.Timezone,
		Language:          req.DeviceInfo.Language,
		Answers:           req.Answers,
		SubmittedAt:       time.Now().UTC(),
	}

	if err := s.submissions.Create(ctx, submission); err != nil {
		return nil, apperr.Upstream("failed to store survey submission", err)
	}

	s.logger.Info("SURVEY", "submission stored", map[string]interface{}{
		"survey_id":          submission.SurveyId,
		"device_fingerprint": submission.DeviceFingerprint,
	})

	if s.eventPublisher != nil {
		evt := events.SurveySubmitted(submission.SurveyId, submission.DeviceFingerprint, submission.Id.String())
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			// Telemetry only; the submission is already durable.
			s.logger.Warn("SURVEY", "failed to publish submission event", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	return &dto.SubmitSurveyResponse{
		Success:      true,
		SubmissionId: submission.Id,
		SubmittedAt:  submission.SubmittedAt,
	}, nil
}

func (s *surveyService) Results(ctx context.Context, surveyId string) (*dto.SurveyResultsResponse, error) {
	if surveyId == "" {
		return nil, apperr.Validation("surveyId query parameter is required")
	}

	rows, err := s.submissions.FindAll(ctx,
		specification.BySurveyId{SurveyId: surveyId},
		specification.OrderBy{Field: "submitted_at", Desc: true},
	)
	if err != nil {
		return nil, apperr.Upstream("failed to load survey submissions", err)
	}

	flat := make([]entity.SurveySubmission, 0, len(rows))
	for _, row := range rows {
		flat = append(flat, *row)
	}
	result := stats.Aggregate(flat)

	groups := make([]dto.DeviceGroupResponse, 0, len(result.DeviceGroups))
	for _, group := range result.DeviceGroups {
		summaries := make([]dto.SubmissionSummary, 0, len(group.Submissions))
		for _, sub := range group.Submissions {
			summaries = append(summaries, dto.SubmissionSummary{
				Id:          sub.Id,
				SubmittedAt: sub.SubmittedAt,
				Answers:     sub.Answers,
			})
		}
		groups = append(groups, dto.DeviceGroupResponse{
			DeviceInfo:  group.DeviceInfo,
			Submissions: summaries,
		})
	}

	all := make([]dto.SubmissionResponse, 0, len(flat))
	for _, sub := range flat {
		all = append(all, dto.SubmissionResponse{
			Id:                sub.Id,
			SurveyId:          sub.SurveyId,
			DeviceFingerprint: sub.DeviceFingerprint,
			UserAgent:         sub.UserAgent,
			IpAddress:         sub.IpAddress,
			ScreenResolution:  sub.ScreenResolution,
			Timezone:          sub.Timezone,
			Language:          sub.Language,
			Answers:           sub.Answers,
			SubmittedAt:       sub.SubmittedAt,
		})
	}

	return &dto.SurveyResultsResponse{
		Success:  true,
		SurveyId: surveyId,
		Statistics: dto.SurveyStatistics{
			TotalSubmissions: result.TotalCount,
			UniqueDevices:    result.UniqueDeviceCount,
			SubmissionsByDay: result.ByDay,
			DateRange:        result.DateRange,
		},
		DeviceGroups:   groups,
		AllSubmissions: all,
	}, nil
}
