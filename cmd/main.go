package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/littlejems/diagnostics-api/config"
	"github.com/littlejems/diagnostics-api/database"
	_ "github.com/littlejems/diagnostics-api/docs" // Swagger docs - auto-generated
	"github.com/littlejems/diagnostics-api/internal/ai"
	adminctrl "github.com/littlejems/diagnostics-api/internal/controller/admin"
	userctrl "github.com/littlejems/diagnostics-api/internal/controller/user"
	"github.com/littlejems/diagnostics-api/internal/logger"
	"github.com/littlejems/diagnostics-api/internal/model"
	"github.com/littlejems/diagnostics-api/internal/repository"
	"github.com/littlejems/diagnostics-api/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Little Jems Diagnostics API
// @version 1.0
// @description Parent-facing API for child learner profiles, AI-generated maths diagnostics and reward treasure chests.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		// Core Application Components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewGinEngine,
		),

		// AI Pipeline
		fx.Provide(
			ai.NewProviderClient,
			ai.NewGenerator,
		),

		// Repositories Layer
		fx.Provide(
			repository.NewChildRepository,
			repository.NewDiagnosticTestRepository,
			repository.NewDiagnosticQuestionRepository,
			repository.NewDiagnosticResponseRepository,
			repository.NewAIRequestLogRepository,
			repository.NewTreasureChestRepository,
		),

		// Services Layer
		fx.Provide(
			service.NewCompletionListeners,
			service.NewDiagnosticService,
			service.NewChildService,
			service.NewRewardService,
		),

		// API Controllers Layer
		fx.Provide(
			userctrl.NewChildController,
			userctrl.NewDiagnosticController,
			userctrl.NewRewardController,
			adminctrl.NewAdminLogController,
		),

		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(AutoMigrateDB),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"}, // Be more specific in production
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger UI at /swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	childCtrl *userctrl.ChildController,
	diagnosticCtrl *userctrl.DiagnosticController,
	rewardCtrl *userctrl.RewardController,
	adminLogCtrl *adminctrl.AdminLogController,
) {
	api := router.Group("/api/v1")
	{
		api.POST("/children", childCtrl.CreateChild)
		api.GET("/children", childCtrl.ListChildren)
		api.GET("/children/:child_id", childCtrl.GetChild)
		api.PUT("/children/:child_id", childCtrl.UpdateChild)
		api.DELETE("/children/:child_id", childCtrl.DeleteChild)

		api.POST("/children/:child_id/chest", rewardCtrl.CreateChest)
		api.GET("/children/:child_id/chest", rewardCtrl.GetChest)

		api.POST("/diagnostics/tests", diagnosticCtrl.CreateTest)
		api.GET("/diagnostics/tests/:test_id", diagnosticCtrl.GetTest)
		api.POST("/diagnostics/tests/:test_id/responses", diagnosticCtrl.SubmitResponses)
		api.POST("/diagnostics/tests/:test_id/complete", diagnosticCtrl.CompleteTest)
		api.GET("/diagnostics/tests/:test_id/results", diagnosticCtrl.GetResults)
	}

	adminAPI := router.Group("/api/v1/admin")
	{
		adminAPI.GET("/ai-logs", adminLogCtrl.ListAILogs)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Diagnostics API server starting on port %s", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.Child{},
		&model.DiagnosticTest{},
		&model.DiagnosticQuestion{},
		&model.DiagnosticResponse{},
		&model.AIRequestLog{},
		&model.TreasureChest{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
