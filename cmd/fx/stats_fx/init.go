package stats_fx

import (
	"go.uber.org/fx"

	"fitlog/internal/repositories"
	"fitlog/internal/services"
)

var Module = fx.Provide(provideStatsService)

func provideStatsService(
	workoutRepo repositories.WorkoutRepositoryInterface,
	settingsRepo repositories.SettingsRepositoryInterface,
) services.StatsServiceInterface {
	return services.NewStatsService(workoutRepo, settingsRepo)
}
