package routes

import (
	"context"
	"fmt"
	"log"

	_ "workorder_service/docs" // swagger docs, generated by swag
	"workorder_service/internal/adapter/http/handlers"
	"workorder_service/internal/adapter/http/middleware"
	"workorder_service/internal/adapter/persistence/repository"
	"workorder_service/internal/config"
	"workorder_service/internal/infrastructure/database"
	"workorder_service/internal/infrastructure/invoice"
	"workorder_service/internal/infrastructure/payments"
	"workorder_service/internal/infrastructure/storage"
	"workorder_service/internal/logger"
	"workorder_service/internal/usecase"
	"workorder_service/internal/usecase/interfaces"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.New()

// Run wires the full dependency graph and starts the server.
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	appLog := logger.New(cfg.Environment)

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	ctx := context.Background()

	ddb, err := database.ConnectDynamoDB(ctx, cfg)
	if err != nil {
		appLog.Fatal().Err(err).Msg("dynamodb connection failed")
	}
	repo := repository.NewWorkOrderDynamoRepository(ddb, cfg.Tables.WorkOrders)

	var gateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPago.AccessToken, appLog)
	if err != nil {
		appLog.Warn().Err(err).Msg("payment gateway not configured, card payments disabled")
	} else {
		gateway = mpGateway
	}

	var photoStore interfaces.IPhotoStore
	if cfg.Minio.Endpoint != "" {
		store, err := storage.NewMinioPhotoStore(ctx, cfg.Minio)
		if err != nil {
			appLog.Warn().Err(err).Msg("photo store not configured, uploads disabled")
		} else {
			photoStore = store
		}
	}

	uc := usecase.NewWorkOrderUseCase(repo, gateway, photoStore, invoice.NewPDFGenerator(), appLog)
	handler := handlers.NewWorkOrderHandler(uc)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addWorkOrderRoutes(v1, handler, middleware.Auth(cfg.Auth.AccessSecret))

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	appLog.Info().Str("addr", addr).Msg("starting http server")
	if err := router.Run(addr); err != nil {
		appLog.Fatal().Err(err).Msg("server stopped")
	}
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(cors.Default())
}
