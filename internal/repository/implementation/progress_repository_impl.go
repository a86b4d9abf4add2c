package implementation

import (
	"context"
	"errors"
	"time"

	"course-portal-be/internal/entity"
	"course-portal-be/internal/mapper"
	"course-portal-be/internal/model"
	"course-portal-be/internal/repository/contract"
	"course-portal-be/internal/repository/specification"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProgressRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ProgressMapper
}

func NewProgressRepository(db *gorm.DB) contract.ProgressRepository {
	return &ProgressRepositoryImpl{
		db:     db,
		mapper: mapper.NewProgressMapper(),
	}
}

func (r *ProgressRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

// Upsert runs a single INSERT ... ON CONFLICT DO UPDATE on the composite key.
// One conditional write, so concurrent writers cannot race a read-then-write
// into duplicate rows.
func (r *ProgressRepositoryImpl) Upsert(ctx context.Context, record *entity.ProgressRecord) error {
	m := r.mapper.ToModel(record)
	m.UpdatedAt = time.Now().UTC()

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "session_id"}, {Name: "device_fingerprint"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"user_agent", "current_step", "total_steps", "updated_at",
		}),
	}).Create(m).Error
	if err != nil {
		return err
	}

	// Re-read so the caller sees the stored row (id and created_at belong to
	// the original insert when the write was a replace).
	var stored model.ProgressTracking
	err = r.db.WithContext(ctx).
		Where("session_id = ? AND device_fingerprint = ?", record.SessionId, record.DeviceFingerprint).
		First(&stored).Error
	if err != nil {
		return err
	}
	*record = *r.mapper.ToEntity(&stored)
	return nil
}

func (r *ProgressRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ProgressRecord, error) {
	var m model.ProgressTracking
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ProgressRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ProgressRecord, error) {
	var models []*model.ProgressTracking
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *ProgressRepositoryImpl) LatestByDevice(ctx context.Context, fingerprint string) (*entity.ProgressRecord, error) {
	return r.FindOne(ctx,
		specification.ByDeviceFingerprint{Fingerprint: fingerprint},
		specification.OrderBy{Field: "updated_at", Desc: true},
		specification.Limit{N: 1},
	)
}

func (r *ProgressRepositoryImpl) Delete(ctx context.Context, sessionId, fingerprint string) error {
	return r.db.WithContext(ctx).
		Where("session_id = ? AND device_fingerprint = ?", sessionId, fingerprint).
		Delete(&model.ProgressTracking{}).Error
}
