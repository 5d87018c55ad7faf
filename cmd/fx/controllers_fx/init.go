package controllers_fx

import (
	"go.uber.org/fx"

	"fitlog/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewWorkoutController),
	fx.Provide(controllers.NewStatsController),
	fx.Provide(controllers.NewSettingsController),
	fx.Provide(controllers.NewActivityTypeController),
	fx.Provide(controllers.NewGoalController),
	fx.Provide(controllers.NewVoiceController))
