package routes

import (
	"context"
	"os"

	_ "crm_pipeline/docs" // generated by swag init
	"crm_pipeline/internal/adapter/http/handlers"
	"crm_pipeline/internal/adapter/http/middleware"
	"crm_pipeline/internal/adapter/persistence/repository"
	"crm_pipeline/internal/infrastructure/config"
	"crm_pipeline/internal/infrastructure/database"
	"crm_pipeline/internal/infrastructure/idempotency"
	"crm_pipeline/internal/infrastructure/logging"
	"crm_pipeline/internal/usecase"
	"crm_pipeline/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Dependencies are the collaborators the HTTP surface is built from.
// A nil Idempotency store disables Idempotency-Key deduplication.
type Dependencies struct {
	Pipeline    usecase.IPipelineUseCase
	Idempotency interfaces.IIdempotencyStore
}

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	logging.Setup(os.Stdout, cfg.Debug, cfg.LogFormat)
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	deps, err := getDependencies(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to wire the application: %v", err)
	}

	router := NewRouter(deps)
	log.WithField("addr", cfg.Addr()).Info("[pipeline][http] listening")
	if err := router.Run(cfg.Addr()); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

// NewRouter builds the gin engine with middlewares, swagger and the /v1 routes.
func NewRouter(deps Dependencies) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	pipelineHandler := handlers.NewPipelineHandler(deps.Pipeline)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPipelineRoutes(v1, pipelineHandler, middleware.Idempotency(deps.Idempotency))
	return router
}

func getDependencies(ctx context.Context, cfg *config.Config) (Dependencies, error) {
	catalogRepo, err := repository.NewStageCatalogRepository(ctx, cfg)
	if err != nil {
		return Dependencies{}, err
	}
	pipelineUseCase, err := usecase.NewPipelineUseCase(ctx, catalogRepo)
	if err != nil {
		return Dependencies{}, err
	}

	deps := Dependencies{Pipeline: pipelineUseCase}

	redisClient, err := database.ConnectRedis(ctx, cfg)
	if err != nil {
		return Dependencies{}, err
	}
	if redisClient != nil {
		deps.Idempotency = idempotency.NewRedisStore(redisClient, cfg.IdempotencyTTL)
	} else {
		log.Info("[pipeline][http] REDIS_URL not set; Idempotency-Key deduplication disabled")
	}
	return deps, nil
}

func setMiddlewares(router *gin.Engine) {
	router.Use(middleware.RequestLogger())
	router.Use(middleware.Recovery())
}
