package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"fitlog/internal/models/db_models"
)

type WorkoutEmbeddingRepositoryInterface interface {
	Upsert(ctx context.Context, embedding *db_models.WorkoutEmbedding) error
	FindNearest(ctx context.Context, userID uuid.UUID, vector pgvector.Vector, limit int) ([]db_models.WorkoutEmbedding, error)
}

type WorkoutEmbeddingRepository struct {
	db *gorm.DB
}

func NewWorkoutEmbeddingRepository(db *gorm.DB) WorkoutEmbeddingRepositoryInterface {
	return &WorkoutEmbeddingRepository{db: db}
}

func (r *WorkoutEmbeddingRepository) Upsert(ctx context.Context, embedding *db_models.WorkoutEmbedding) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "workout_id"}},
			UpdateAll: true,
		}).
		Create(embedding).Error
}

func (r *WorkoutEmbeddingRepository) FindNearest(ctx context.Context, userID uuid.UUID, vector pgvector.Vector, limit int) ([]db_models.WorkoutEmbedding, error) {
	var results []db_models.WorkoutEmbedding

	query := `
        SELECT *, (1 - (embedding <=> $1)) as similarity
        FROM workout_embeddings
        WHERE user_id = $2
        ORDER BY embedding <=> $1
        LIMIT $3
    `

	err := r.db.WithContext(ctx).Raw(query, vector.String(), userID.String(), limit).Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}
