package contract

import (
	"context"

	"course-portal-be/internal/entity"
	"course-portal-be/internal/repository/specification"
)

type ProgressRepository interface {
	// Upsert atomically inserts or replaces the row keyed by
	// (session_id, device_fingerprint). Conflicting concurrent writes converge
	// to the last write; steps are never merged. The stored row is written
	// back into record.
	Upsert(ctx context.Context, record *entity.ProgressRecord) error

	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ProgressRecord, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ProgressRecord, error)

	// LatestByDevice returns the most recently updated record for a device,
	// nil when the device has none.
	LatestByDevice(ctx context.Context, fingerprint string) (*entity.ProgressRecord, error)

	// Delete removes the row for the composite key. Deleting a missing row is
	// not an error.
	Delete(ctx context.Context, sessionId, fingerprint string) error
}
