package mapper

import (
	"course-portal-be/internal/entity"
	"course-portal-be/internal/model"

	"gorm.io/datatypes"
)

type SurveyMapper struct{}

func NewSurveyMapper() *SurveyMapper {
	return &SurveyMapper{}
}

func (m *SurveyMapper) ToEntity(s *model.SurveySubmission) *entity.SurveySubmission {
	if s == nil {
		return nil
	}
	return &entity.SurveySubmission{
		Id:                s.Id,
		SurveyId:          s.SurveyId,
		DeviceFingerprint: s.DeviceFingerprint,
		UserAgent:         s.UserAgent,
		IpAddress:         s.IpAddress,
		ScreenResolution:  s.ScreenResolution,
		Timezone:          s.Timezone,
		Language:          s.Language,
		Answers:           map[string]interface{}(s.Answers),
		SubmittedAt:       s.SubmittedAt,
		CreatedAt:         s.CreatedAt,
		UpdatedAt:         s.UpdatedAt,
	}
}

func (m *SurveyMapper) ToModel(s *entity.SurveySubmission) *model.SurveySubmission {
	if s == nil {
		return nil
	}
	return &model.SurveySubmission{
		Id:                s.Id,
		SurveyId:          s.SurveyId,
		DeviceFingerprint: s.DeviceFingerprint,
		UserAgent:         s.UserAgent,
		IpAddress:         s.IpAddress,
		ScreenResolution:  s.ScreenResolution,
		Timezone:          s.Timezone,
		Language:          s.Language,
		Answers:           datatypes.JSONMap(s.Answers),
		SubmittedAt:       s.SubmittedAt,
		CreatedAt:         s.CreatedAt,
		UpdatedAt:         s.UpdatedAt,
	}
}

func (m *SurveyMapper) ToEntities(models []*model.SurveySubmission) []*entity.SurveySubmission {
	entities := make([]*entity.SurveySubmission, 0, len(models))
	for _, s := range models {
		entities = append(entities, m.ToEntity(s))
	}
	return entities
}
