package payment_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"payrecon/internal/api/controllers"
	"payrecon/internal/infra"
	"payrecon/internal/repositories"
	"payrecon/internal/services"
)

var Module = fx.Provide(
	provideOrderRepo, provideNotificationService, provideNotificationController,
)

func provideOrderRepo(db *gorm.DB) repositories.OrderRepository {
	return repositories.NewOrderRepository(db)
}

func provideNotificationService(orders repositories.OrderRepository, cfg infra.Config) services.NotificationService {
	return services.NewNotificationService(orders, cfg.GatewayServerKey)
}

func provideNotificationController(notificationService services.NotificationService) *controllers.NotificationController {
	return controllers.NewNotificationController(notificationService)
}
