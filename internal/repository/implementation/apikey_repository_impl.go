package implementation

import (
	"context"
	"errors"

	"course-portal-be/internal/entity"
	"course-portal-be/internal/mapper"
	"course-portal-be/internal/model"
	"course-portal-be/internal/repository/contract"

	"gorm.io/gorm"
)

type ApiKeyRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ApiKeyMapper
}

func NewApiKeyRepository(db *gorm.DB) contract.ApiKeyRepository {
	return &ApiKeyRepositoryImpl{
		db:     db,
		mapper: mapper.NewApiKeyMapper(),
	}
}

func (r *ApiKeyRepositoryImpl) FindByStudent(ctx context.Context, studentId, name string) (*entity.ApiKey, error) {
	var m model.ApiKey
	err := r.db.WithContext(ctx).
		Where("student_id = ? AND name = ?", studentId, name).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}
