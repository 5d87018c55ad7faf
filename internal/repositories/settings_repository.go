package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fitlog/internal/models/db_models"
)

type SettingsRepositoryInterface interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*db_models.UserSettings, error)
	Upsert(ctx context.Context, settings *db_models.UserSettings) error
}

type SettingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) SettingsRepositoryInterface {
	return &SettingsRepository{db: db}
}

func (s *SettingsRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*db_models.UserSettings, error) {
	var settings db_models.UserSettings
	err := s.db.WithContext(ctx).First(&settings, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &settings, nil
}

// Upsert tries the update first and inserts when no row was touched, so the
// singleton is created lazily on first write.
func (s *SettingsRepository) Upsert(ctx context.Context, settings *db_models.UserSettings) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.WithContext(ctx).
			Model(&db_models.UserSettings{}).
			Where("user_id = ?", settings.UserID).
			Updates(map[string]interface{}{
				"cardio_distance_unit": settings.CardioDistanceUnit,
				"swim_distance_unit":   settings.SwimDistanceUnit,
				"weekly_goal_minutes":  settings.WeeklyGoalMinutes,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return tx.WithContext(ctx).Create(settings).Error
		}
		return nil
	})
}
