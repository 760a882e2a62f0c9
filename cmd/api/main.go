package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	_ "github.com/israelwong/prosocial-app-sub003/docs"
	"github.com/israelwong/prosocial-app-sub003/internal/adapter/http/routes"
	"github.com/israelwong/prosocial-app-sub003/internal/infrastructure/config"
	"github.com/israelwong/prosocial-app-sub003/internal/infrastructure/logging"

	"go.uber.org/zap"
)

// @title           Quotation & Finance API
// @version         1.0
// @description     Event quotation pricing, commercial conditions, payment simulation and balance tracking backed by DynamoDB and a PostgreSQL catalog.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg := config.Load()

	logger, err := logging.New(cfg.AppEnv)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := routes.Run(ctx, cfg, logger); err != nil {
		logger.Fatal("failed to startup the application", zap.Error(err))
	}
}
