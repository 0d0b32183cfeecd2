package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"payrecon/cmd/fx/account_fx"
	"payrecon/cmd/fx/db_fx"
	"payrecon/cmd/fx/payment_fx"
	"payrecon/cmd/fx/reconciliation_fx"
	"payrecon/internal/api/controllers"
	"payrecon/internal/infra"
	"payrecon/pkg/middleware"
)

func main() {
	app := fx.New(
		db_fx.Module,
		account_fx.Module,
		payment_fx.Module,
		reconciliation_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg infra.Config, db *gorm.DB) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("Starting HTTP server at :%s", cfg.Port)
				if err := engine.Run(":" + cfg.Port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			infra.ClosePostgres(db)
			return nil
		},
	})
}

func ProvideRouter(
	cfg infra.Config,
	notificationController *controllers.NotificationController,
	reconciliationController *controllers.ReconciliationController,
	accountController *controllers.AccountController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, cfg, notificationController, reconciliationController, accountController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	cfg infra.Config,
	notificationController *controllers.NotificationController,
	reconciliationController *controllers.ReconciliationController,
	accountController *controllers.AccountController) {

	r.POST("/auth/login", accountController.Login)

	// The gateway authenticates itself through the payload signature, not a
	// bearer token.
	paymentsGroup := r.Group("/payments")
	paymentsGroup.POST("/notification", notificationController.HandleNotification)

	reconGroup := r.Group("/reconciliations")
	reconGroup.Use(middleware.JWTAuthMiddleware([]byte(cfg.JWTSecret)))
	reconGroup.GET("/pending", reconciliationController.ListPending)
	reconGroup.POST("/resolve", reconciliationController.Resolve)
}
