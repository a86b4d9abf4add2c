package mapper

import (
	"course-portal-be/internal/entity"
	"course-portal-be/internal/model"
)

type ApiKeyMapper struct{}

func NewApiKeyMapper() *ApiKeyMapper {
	return &ApiKeyMapper{}
}

func (m *ApiKeyMapper) ToEntity(k *model.ApiKey) *entity.ApiKey {
	if k == nil {
		return nil
	}
	return &entity.ApiKey{
		StudentId: k.StudentId,
		Name:      k.Name,
		Key:       k.ApiKey,
		CreatedAt: k.CreatedAt,
	}
}
