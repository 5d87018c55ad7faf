package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fitlog/internal/models/db_models"
)

type ActivityTypeRepositoryInterface interface {
	Create(ctx context.Context, activityType *db_models.ActivityType) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.ActivityType, error)
	FindByName(ctx context.Context, userID uuid.UUID, name string) (*db_models.ActivityType, error)
	DeleteForUser(ctx context.Context, id, userID uuid.UUID) (bool, error)
}

type ActivityTypeRepository struct {
	db *gorm.DB
}

func NewActivityTypeRepository(db *gorm.DB) ActivityTypeRepositoryInterface {
	return &ActivityTypeRepository{db: db}
}

func (a *ActivityTypeRepository) Create(ctx context.Context, activityType *db_models.ActivityType) error {
	return a.db.WithContext(ctx).Create(activityType).Error
}

func (a *ActivityTypeRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.ActivityType, error) {
	var types []db_models.ActivityType
	err := a.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("name ASC").
		Find(&types).Error
	if err != nil {
		return nil, err
	}
	return types, nil
}

func (a *ActivityTypeRepository) FindByName(ctx context.Context, userID uuid.UUID, name string) (*db_models.ActivityType, error) {
	var activityType db_models.ActivityType
	err := a.db.WithContext(ctx).
		Where("user_id = ? AND name = ?", userID, name).
		First(&activityType).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &activityType, nil
}

func (a *ActivityTypeRepository) DeleteForUser(ctx context.Context, id, userID uuid.UUID) (bool, error) {
	res := a.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&db_models.ActivityType{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
