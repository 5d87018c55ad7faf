package activity_type_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"fitlog/internal/repositories"
	"fitlog/internal/services"
)

var Module = fx.Provide(
	provideActivityTypeService, provideActivityTypeRepo)

func provideActivityTypeRepo(db *gorm.DB) repositories.ActivityTypeRepositoryInterface {
	return repositories.NewActivityTypeRepository(db)
}

func provideActivityTypeService(activityTypeRepo repositories.ActivityTypeRepositoryInterface) services.ActivityTypeServiceInterface {
	return services.NewActivityTypeService(activityTypeRepo)
}
