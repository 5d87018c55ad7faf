package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fitlog/internal/models/db_models"
)

type AthleteGoalRepositoryInterface interface {
	Create(ctx context.Context, goal *db_models.AthleteGoal) error
	GetByIDForUser(ctx context.Context, id, userID uuid.UUID) (*db_models.AthleteGoal, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.AthleteGoal, error)
	AddProgress(ctx context.Context, id uuid.UUID, workouts int, hours float64) error
	CreateShare(ctx context.Context, share *db_models.GoalShare) error
	ListSharedWith(ctx context.Context, userID uuid.UUID) ([]db_models.AthleteGoal, error)
}

type AthleteGoalRepository struct {
	db *gorm.DB
}

func NewAthleteGoalRepository(db *gorm.DB) AthleteGoalRepositoryInterface {
	return &AthleteGoalRepository{db: db}
}

func (r *AthleteGoalRepository) Create(ctx context.Context, goal *db_models.AthleteGoal) error {
	return r.db.WithContext(ctx).Create(goal).Error
}

func (r *AthleteGoalRepository) GetByIDForUser(ctx context.Context, id, userID uuid.UUID) (*db_models.AthleteGoal, error) {
	var goal db_models.AthleteGoal
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&goal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &goal, nil
}

func (r *AthleteGoalRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.AthleteGoal, error) {
	var goals []db_models.AthleteGoal
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&goals).Error
	if err != nil {
		return nil, err
	}
	return goals, nil
}

// AddProgress bumps the banked counters in place. There is deliberately no
// transactional link to the workout write that triggered it.
func (r *AthleteGoalRepository) AddProgress(ctx context.Context, id uuid.UUID, workouts int, hours float64) error {
	return r.db.WithContext(ctx).
		Model(&db_models.AthleteGoal{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"completed_count": gorm.Expr("completed_count + ?", workouts),
			"completed_hours": gorm.Expr("completed_hours + ?", hours),
		}).Error
}

func (r *AthleteGoalRepository) CreateShare(ctx context.Context, share *db_models.GoalShare) error {
	return r.db.WithContext(ctx).Create(share).Error
}

func (r *AthleteGoalRepository) ListSharedWith(ctx context.Context, userID uuid.UUID) ([]db_models.AthleteGoal, error) {
	var goals []db_models.AthleteGoal
	err := r.db.WithContext(ctx).
		Joins("JOIN goal_shares ON goal_shares.goal_id = athlete_goals.id").
		Where("goal_shares.shared_with = ? AND goal_shares.deleted_at IS NULL", userID).
		Find(&goals).Error
	if err != nil {
		return nil, err
	}
	return goals, nil
}
