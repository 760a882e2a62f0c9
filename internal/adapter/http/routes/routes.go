package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	_ "github.com/israelwong/prosocial-app-sub003/docs"
	"github.com/israelwong/prosocial-app-sub003/internal/adapter/catalog"
	request "github.com/israelwong/prosocial-app-sub003/internal/adapter/http/dto/request"
	"github.com/israelwong/prosocial-app-sub003/internal/adapter/http/handlers"
	"github.com/israelwong/prosocial-app-sub003/internal/adapter/persistence/repository"
	"github.com/israelwong/prosocial-app-sub003/internal/infrastructure/config"
	"github.com/israelwong/prosocial-app-sub003/internal/infrastructure/database"
	"github.com/israelwong/prosocial-app-sub003/internal/infrastructure/payments"
	"github.com/israelwong/prosocial-app-sub003/internal/usecase"
	"github.com/israelwong/prosocial-app-sub003/internal/usecase/interfaces"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// Run builds the dependencies, serves the API and shuts down gracefully when
// ctx is cancelled.
func Run(ctx context.Context, cfg config.Config, logger *zap.Logger) error {
	h, cleanup, err := buildHandlers(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router, err := NewRouter(cfg, logger, h)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("failed to start the application: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// NewRouter mounts middlewares, swagger and the /v1 routes.
func NewRouter(cfg config.Config, logger *zap.Logger, h Handlers) (*gin.Engine, error) {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil, errors.New("gin validator engine is not go-playground/validator")
	}
	if err := request.RegisterValidators(v); err != nil {
		return nil, fmt.Errorf("register validators: %w", err)
	}

	router := gin.New()
	router.Use(requestLogger(logger.Named("http")))
	router.Use(recovery(logger.Named("http")))
	router.Use(cors.New(corsConfig(cfg)))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addQuotationRoutes(v1, h)
	return router, nil
}

func corsConfig(cfg config.Config) cors.Config {
	c := cors.DefaultConfig()
	c.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions}
	c.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	if len(cfg.CORSAllowedOrigins) == 0 {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = cfg.CORSAllowedOrigins
	}
	return c
}

// buildHandlers wires stores, gateway and use cases. A missing catalog DSN or
// Mercado Pago token leaves that dependency nil; the affected endpoints answer
// 503 instead of failing startup.
func buildHandlers(ctx context.Context, cfg config.Config, logger *zap.Logger) (Handlers, func(), error) {
	cleanup := func() {}

	ddb, err := database.NewDynamoDBClient(ctx, cfg)
	if err != nil {
		return Handlers{}, cleanup, fmt.Errorf("dynamodb client: %w", err)
	}
	quotationRepo := repository.NewQuotationDynamoRepository(ddb, cfg.QuotationsTable)
	paymentRepo := repository.NewPaymentDynamoRepository(ddb, cfg.PaymentsTable)
	costRepo := repository.NewProductionCostDynamoRepository(ddb, cfg.ProductionCostsTable)

	var (
		services   interfaces.ICatalogReader
		conditions interfaces.ICommercialConditionDirectory
		configs    interfaces.IPricingConfigProvider
	)
	pool, err := database.NewPool(ctx, cfg.CatalogDatabaseURL)
	if err != nil {
		logger.Warn("catalog store not configured", zap.Error(err))
	} else {
		cleanup = pool.Close
		services = catalog.NewServiceRepo(pool)
		conditions = catalog.NewConditionRepo(pool)
		configs = catalog.NewPricingConfigRepo(pool)
	}

	var gateway interfaces.IPaymentGateway
	mp, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken, cfg.PaymentGatewayMock, logger)
	if err != nil {
		logger.Warn("mercado pago gateway not configured", zap.Error(err))
	} else {
		gateway = mp
	}

	paymentOpts := usecase.PaymentOptions{
		MockMode:        cfg.PaymentGatewayMock,
		AccessToken:     cfg.MercadoPagoAccessToken,
		TestPayerEmail:  cfg.MercadoPagoTestPayerEmail,
		TestPayerUserID: cfg.MercadoPagoTestPayerUserID,
	}

	quotationUC := usecase.NewQuotationUseCase(quotationRepo, services, conditions, configs, logger)
	balanceUC := usecase.NewBalanceUseCase(quotationRepo, conditions, paymentRepo, costRepo, logger)
	simulationUC := usecase.NewSimulationUseCase(conditions, logger)
	conditionsUC := usecase.NewConditionsUseCase(conditions, logger)
	paymentUC := usecase.NewPaymentUseCase(paymentRepo, quotationRepo, conditions, gateway, paymentOpts, logger)
	costUC := usecase.NewProductionCostUseCase(costRepo, quotationRepo, logger)
	catalogUC := usecase.NewCatalogUseCase(services, configs, logger)

	return Handlers{
		Quotation:      handlers.NewQuotationHandler(quotationUC, logger),
		Balance:        handlers.NewBalanceHandler(balanceUC, logger),
		Simulation:     handlers.NewSimulationHandler(simulationUC, logger),
		Conditions:     handlers.NewConditionsHandler(conditionsUC, logger),
		Payment:        handlers.NewPaymentHandler(paymentUC, cfg.PaymentGatewayMock, logger),
		ProductionCost: handlers.NewProductionCostHandler(costUC, logger),
		Catalog:        handlers.NewCatalogHandler(catalogUC, logger),
	}, cleanup, nil
}
