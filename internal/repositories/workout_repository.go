package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fitlog/internal/models/db_models"
)

// WorkoutRepositoryInterface scopes every read and write to the owning user;
// a foreign id behaves exactly like a missing row.
type WorkoutRepositoryInterface interface {
	Create(ctx context.Context, workout *db_models.Workout) error
	GetByIDForUser(ctx context.Context, id, userID uuid.UUID) (*db_models.Workout, error)
	ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]db_models.Workout, error)
	ListBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]db_models.Workout, error)
	Update(ctx context.Context, workout *db_models.Workout) error
	DeleteForUser(ctx context.Context, id, userID uuid.UUID) (bool, error)
}

type WorkoutRepository struct {
	db *gorm.DB
}

func NewWorkoutRepository(db *gorm.DB) WorkoutRepositoryInterface {
	return &WorkoutRepository{db: db}
}

func (w *WorkoutRepository) Create(ctx context.Context, workout *db_models.Workout) error {
	return w.db.WithContext(ctx).Create(workout).Error
}

func (w *WorkoutRepository) GetByIDForUser(ctx context.Context, id, userID uuid.UUID) (*db_models.Workout, error) {
	var workout db_models.Workout
	err := w.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&workout).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &workout, nil
}

func (w *WorkoutRepository) ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]db_models.Workout, error) {
	var workouts []db_models.Workout
	err := w.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC, created_at DESC").
		Limit(limit).
		Find(&workouts).Error
	if err != nil {
		return nil, err
	}
	return workouts, nil
}

func (w *WorkoutRepository) ListBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]db_models.Workout, error) {
	var workouts []db_models.Workout
	err := w.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date < ?", userID, from, to).
		Order("date ASC").
		Find(&workouts).Error
	if err != nil {
		return nil, err
	}
	return workouts, nil
}

func (w *WorkoutRepository) Update(ctx context.Context, workout *db_models.Workout) error {
	return w.db.WithContext(ctx).Save(workout).Error
}

func (w *WorkoutRepository) DeleteForUser(ctx context.Context, id, userID uuid.UUID) (bool, error) {
	res := w.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&db_models.Workout{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
