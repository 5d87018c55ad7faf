package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"fitlog/internal/repositories"
	"fitlog/internal/services"
	mem "fitlog/pkg/memcache"
)

var Module = fx.Provide(
	provideAccountService, provideAccountRepo)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideAccountService(
	accountRepo repositories.AccountRepository,
	mailService services.IMailService,
	resetTokens mem.ResetTokenStore,
	sessions mem.SessionStore,
) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, mailService, resetTokens, sessions)
}
