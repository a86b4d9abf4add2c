package contract

import (
	"context"

	"course-portal-be/internal/entity"
	"course-portal-be/internal/repository/specification"
)

type SubmissionRepository interface {
	// Create inserts the submission and fills in the store-assigned id and
	// timestamps. Submissions are never updated afterwards.
	Create(ctx context.Context, submission *entity.SurveySubmission) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SurveySubmission, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
