package reconciliation_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"payrecon/internal/api/controllers"
	"payrecon/internal/repositories"
	"payrecon/internal/services"
)

var Module = fx.Provide(
	provideReconciliationRepo, provideReconciliationService, provideReconciliationController,
)

func provideReconciliationRepo(db *gorm.DB) repositories.ReconciliationRepository {
	return repositories.NewReconciliationRepository(db)
}

func provideReconciliationService(recons repositories.ReconciliationRepository) services.ReconciliationService {
	return services.NewReconciliationService(recons)
}

func provideReconciliationController(reconciliationService services.ReconciliationService) *controllers.ReconciliationController {
	return controllers.NewReconciliationController(reconciliationService)
}
