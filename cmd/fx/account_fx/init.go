package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"payrecon/internal/api/controllers"
	"payrecon/internal/infra"
	"payrecon/internal/repositories"
	"payrecon/internal/services"
)

var Module = fx.Provide(
	provideAccountRepo, provideAccountService, provideAccountController,
)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideAccountService(accountRepo repositories.AccountRepository, cfg infra.Config) services.AccountService {
	return services.NewAccountService(accountRepo, []byte(cfg.JWTSecret))
}

func provideAccountController(accountService services.AccountService) *controllers.AccountController {
	return controllers.NewAccountController(accountService)
}
