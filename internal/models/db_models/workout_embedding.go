package db_models

import (
	"time"

	"github.com/lib/pq"
	"github.com/pgvector/pgvector-go"
)

// WorkoutEmbedding indexes a workout's voice transcript for similarity
// lookup. Written best-effort after a successful upload; absence only means
// the workout never had a usable transcript.
type WorkoutEmbedding struct {
	WorkoutID    string `gorm:"primaryKey;column:workout_id"`
	UserID       string `gorm:"index"`
	ActivityType string
	Keywords     pq.StringArray  `gorm:"type:text[]"`
	Embedding    pgvector.Vector `gorm:"type:vector(1536)"`
	CreatedAt    time.Time       `gorm:"autoCreateTime"`
}
