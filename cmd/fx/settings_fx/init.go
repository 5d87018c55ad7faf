package settings_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"fitlog/internal/repositories"
	"fitlog/internal/services"
)

var Module = fx.Provide(
	provideSettingsService, provideSettingsRepo)

func provideSettingsRepo(db *gorm.DB) repositories.SettingsRepositoryInterface {
	return repositories.NewSettingsRepository(db)
}

func provideSettingsService(settingsRepo repositories.SettingsRepositoryInterface) services.SettingsServiceInterface {
	return services.NewSettingsService(settingsRepo)
}
