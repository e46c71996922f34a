package routes

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "eventpilot/docs" // swag generated
	"eventpilot/internal/adapter/http/handlers"
	"eventpilot/internal/adapter/http/middleware"
	repository "eventpilot/internal/adapter/persistence/repository"
	"eventpilot/internal/config"
	cacheinfra "eventpilot/internal/infrastructure/cache"
	"eventpilot/internal/infrastructure/database"
	"eventpilot/internal/infrastructure/email"
	"eventpilot/internal/infrastructure/payments"
	"eventpilot/internal/infrastructure/pdf"
	"eventpilot/internal/infrastructure/storage"
	"eventpilot/internal/usecase"
	"eventpilot/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

var router = gin.New()

// Run wires the full dependency graph and serves until SIGINT/SIGTERM,
// then drains in-flight requests before returning.
func Run(cfg *config.Config, logger *zap.Logger) {
	setMiddlewares(logger)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{Addr: ":" + strconv.Itoa(cfg.App.Port), Handler: router}
	if err := serve(ctx, srv, logger); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func serve(ctx context.Context, srv *http.Server, logger *zap.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func getRoutes(cfg *config.Config, logger *zap.Logger) {
	ctx := context.Background()

	ddb, err := database.NewDynamoDBClient(ctx)
	if err != nil {
		log.Fatalf("Failed to connect to DynamoDB: %v", err)
	}

	documentRepo := repository.NewDocumentDynamoRepository(ddb)
	lineItemRepo := repository.NewLineItemDynamoRepository(ddb)
	approvalRepo := repository.NewApprovalDynamoRepository(ddb)
	disclosureRepo := repository.NewDisclosureDynamoRepository(ddb)
	contactRepo := repository.NewContactDynamoRepository(ddb)
	orgRepo := repository.NewOrganizationDynamoRepository(ddb)
	productRepo := repository.NewProductDynamoRepository(ddb)
	paymentRepo := repository.NewPaymentDynamoRepository(ddb)
	activityRepo := repository.NewActivityDynamoRepository(ddb)

	var emailSender interfaces.IEmailSender
	if sender, err := email.NewResendSender(cfg, logger); err != nil {
		logger.Warn("email sender not configured", zap.Error(err))
	} else {
		emailSender = sender
	}

	var blobStore interfaces.IBlobStore
	if awsCfg, err := database.NewAWSConfigFromEnv(ctx); err != nil {
		logger.Warn("document archive not configured", zap.Error(err))
	} else {
		blobStore = storage.NewS3Uploader(awsCfg, cfg, logger)
	}

	var snapshotCache interfaces.ISnapshotCache
	if cfg.Redis.Addr != "" {
		if cache, err := cacheinfra.NewRedisSnapshotCache(cfg, logger); err != nil {
			logger.Warn("snapshot cache not configured", zap.Error(err))
		} else {
			snapshotCache = cache
		}
	}

	var paymentGateway interfaces.IPaymentGateway
	if mpGateway, err := payments.NewMercadoPagoGateway(cfg.Payment.MercadoPagoAccessToken, logger); err != nil {
		logger.Warn("payment gateway not configured", zap.Error(err))
	} else {
		paymentGateway = mpGateway
	}

	renderer := pdf.NewRenderer(cfg.App.Name)

	documentUseCase := usecase.NewDocumentUseCase(documentRepo, lineItemRepo, activityRepo, logger)
	lineItemUseCase := usecase.NewLineItemUseCase(lineItemRepo, documentRepo, productRepo)
	catalogUseCase := usecase.NewCatalogUseCase(contactRepo, orgRepo, productRepo)
	disclosureUseCase := usecase.NewDisclosureUseCase(disclosureRepo)
	approvalUseCase := usecase.NewApprovalUseCase(usecase.ApprovalDeps{
		Approvals:   approvalRepo,
		Documents:   documentRepo,
		LineItems:   lineItemRepo,
		Contacts:    contactRepo,
		Disclosures: disclosureRepo,
		Email:       emailSender,
		Renderer:    renderer,
		BlobStore:   blobStore,
		Cache:       snapshotCache,
		Activity:    activityRepo,
		BaseURL:     cfg.App.BaseURL,
		Logger:      logger,
	})
	paymentUseCase := usecase.NewPaymentUseCase(paymentRepo, approvalRepo, documentRepo, paymentGateway, activityRepo, logger)

	documentHandler := handlers.NewDocumentHandler(documentUseCase, activityRepo)
	lineItemHandler := handlers.NewLineItemHandler(lineItemUseCase)
	approvalHandler := handlers.NewApprovalHandler(approvalUseCase)
	publicHandler := handlers.NewPublicHandler(approvalUseCase, paymentUseCase)
	catalogHandler := handlers.NewCatalogHandler(catalogUseCase)
	disclosureHandler := handlers.NewDisclosureHandler(disclosureUseCase)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)
	exportHandler := handlers.NewExportHandler(documentUseCase)
	authHandler := handlers.NewAuthHandler(cfg)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPublicRoutes(v1, authHandler, publicHandler)

	authorized := v1.Group("")
	authorized.Use(middleware.JwtAuthMiddleware(cfg))
	addDocumentRoutes(authorized, documentHandler, lineItemHandler, approvalHandler, paymentHandler, exportHandler)
	addCatalogRoutes(authorized, catalogHandler, disclosureHandler)
}

func setMiddlewares(logger *zap.Logger) {
	router.Use(middleware.NewLoggingMiddleware(logger).LogRequest())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error("recovered from panic", zap.Any("panic", recovered))
		c.AbortWithStatus(500)
	}))
}
