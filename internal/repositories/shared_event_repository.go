package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fitlog/internal/models/db_models"
)

type SharedEventRepositoryInterface interface {
	Create(ctx context.Context, event *db_models.SharedEvent) error
	GetByID(ctx context.Context, id uuid.UUID) (*db_models.SharedEvent, error)
	GetByShareToken(ctx context.Context, token string) (*db_models.SharedEvent, error)
	ListDiscoverable(ctx context.Context, limit int) ([]db_models.SharedEvent, error)
}

type SharedEventRepository struct {
	db *gorm.DB
}

func NewSharedEventRepository(db *gorm.DB) SharedEventRepositoryInterface {
	return &SharedEventRepository{db: db}
}

func (r *SharedEventRepository) Create(ctx context.Context, event *db_models.SharedEvent) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *SharedEventRepository) GetByID(ctx context.Context, id uuid.UUID) (*db_models.SharedEvent, error) {
	var event db_models.SharedEvent
	err := r.db.WithContext(ctx).First(&event, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &event, nil
}

func (r *SharedEventRepository) GetByShareToken(ctx context.Context, token string) (*db_models.SharedEvent, error) {
	var event db_models.SharedEvent
	err := r.db.WithContext(ctx).First(&event, "share_token = ?", token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &event, nil
}

func (r *SharedEventRepository) ListDiscoverable(ctx context.Context, limit int) ([]db_models.SharedEvent, error) {
	var events []db_models.SharedEvent
	err := r.db.WithContext(ctx).
		Where("discoverable = ?", true).
		Order("date ASC").
		Limit(limit).
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}
