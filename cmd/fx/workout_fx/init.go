package workout_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"fitlog/internal/repositories"
	"fitlog/internal/services"
	"fitlog/pkg/utils"
)

var Module = fx.Provide(
	provideWorkoutService, provideWorkoutRepo, provideEmbeddingRepo)

func provideWorkoutRepo(db *gorm.DB) repositories.WorkoutRepositoryInterface {
	return repositories.NewWorkoutRepository(db)
}

func provideEmbeddingRepo(db *gorm.DB) repositories.WorkoutEmbeddingRepositoryInterface {
	return repositories.NewWorkoutEmbeddingRepository(db)
}

func provideWorkoutService(
	workoutRepo repositories.WorkoutRepositoryInterface,
	goalRepo repositories.AthleteGoalRepositoryInterface,
	eventRepo repositories.SharedEventRepositoryInterface,
	embeddingRepo repositories.WorkoutEmbeddingRepositoryInterface,
	embedClient utils.EmbeddingClientInterface,
) services.WorkoutServiceInterface {
	return services.NewWorkoutService(workoutRepo, goalRepo, eventRepo, embeddingRepo, embedClient)
}
