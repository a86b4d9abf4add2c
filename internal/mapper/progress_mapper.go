package mapper

import (
	"course-portal-be/internal/entity"
	"course-portal-be/internal/model"
)

type ProgressMapper struct{}

func NewProgressMapper() *ProgressMapper {
	return &ProgressMapper{}
}

func (m *ProgressMapper) ToEntity(p *model.ProgressTracking) *entity.ProgressRecord {
	if p == nil {
		return nil
	}
	return &entity.ProgressRecord{
		Id:                p.Id,
		SessionId:         p.SessionId,
		DeviceFingerprint: p.DeviceFingerprint,
		UserAgent:         p.UserAgent,
		CurrentStep:       p.CurrentStep,
		TotalSteps:        p.TotalSteps,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

func (m *ProgressMapper) ToModel(p *entity.ProgressRecord) *model.ProgressTracking {
	if p == nil {
		return nil
	}
	return &model.ProgressTracking{
		Id:                p.Id,
		SessionId:         p.SessionId,
		DeviceFingerprint: p.DeviceFingerprint,
		UserAgent:         p.UserAgent,
		CurrentStep:       p.CurrentStep,
		TotalSteps:        p.TotalSteps,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

func (m *ProgressMapper) ToEntities(models []*model.ProgressTracking) []*entity.ProgressRecord {
	entities := make([]*entity.ProgressRecord, 0, len(models))
	for _, p := range models {
		entities = append(entities, m.ToEntity(p))
	}
	return entities
}
