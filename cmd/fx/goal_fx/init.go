package goal_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"fitlog/internal/repositories"
	"fitlog/internal/services"
)

var Module = fx.Provide(
	provideGoalService, provideGoalRepo, provideEventRepo)

func provideGoalRepo(db *gorm.DB) repositories.AthleteGoalRepositoryInterface {
	return repositories.NewAthleteGoalRepository(db)
}

func provideEventRepo(db *gorm.DB) repositories.SharedEventRepositoryInterface {
	return repositories.NewSharedEventRepository(db)
}

func provideGoalService(
	eventRepo repositories.SharedEventRepositoryInterface,
	goalRepo repositories.AthleteGoalRepositoryInterface,
	accountRepo repositories.AccountRepository,
) services.GoalServiceInterface {
	return services.NewGoalService(eventRepo, goalRepo, accountRepo)
}
