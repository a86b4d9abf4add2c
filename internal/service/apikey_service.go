package service

import (
	"context"
	"strings"

	"course-portal-be/internal/dto"
	"course-portal-be/internal/pkg/apperr"
	"course-portal-be/internal/pkg/logger"
	"course-portal-be/internal/repository/contract"
)

type IApiKeyService interface {
	Lookup(ctx context.Context, req *dto.ApiKeyLookupRequest) (*dto.ApiKeyLookupResponse, error)
}

type apiKeyService struct {
	keys   contract.ApiKeyRepository
	logger logger.ILogger
}

func NewApiKeyService(keys contract.ApiKeyRepository, log logger.ILogger) IApiKeyService {
	return &apiKeyService{keys: keys, logger: log}
}

func (s *apiKeyService) Lookup(ctx context.Context, req *dto.ApiKeyLookupRequest) (*dto.ApiKeyLookupResponse, error) {
	studentId := strings.TrimSpace(req.StudentId)
	name := strings.TrimSpace(req.Name)
	if studentId == "" || name == "" {
		return nil, apperr.Validation("student_id and name are required")
	}

	key, err := s.keys.FindByStudent(ctx, studentId, name)
	if err != nil {
		return nil, apperr.Upstream("api key lookup failed", err)
	}
	if key == nil {
		return nil, apperr.NotFound("no api key found for the given student id and name")
	}

	return &dto.ApiKeyLookupResponse{
		Success: true,
		Data: dto.ApiKeyData{
			StudentId: key.StudentId,
			Name:      key.Name,
			ApiKey:    key.Key,
		},
	}, nil
}
