package contract

import (
	"context"

	"course-portal-be/internal/entity"
)

type ApiKeyRepository interface {
	// FindByStudent matches on the full (student id, name) pair and returns
	// nil when there is no match.
	FindByStudent(ctx context.Context, studentId, name string) (*entity.ApiKey, error)
}
