package main

import (
	"context"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/folioforge/folioforge/adapters/event"
	httpAdapter "github.com/folioforge/folioforge/adapters/http"
	"github.com/folioforge/folioforge/adapters/llm"
	"github.com/folioforge/folioforge/adapters/media_storage"
	"github.com/folioforge/folioforge/adapters/pdf"
	"github.com/folioforge/folioforge/adapters/persistence"
	assistUC "github.com/folioforge/folioforge/internal/application/usecase/assist"
	authUC "github.com/folioforge/folioforge/internal/application/usecase/auth"
	editorUC "github.com/folioforge/folioforge/internal/application/usecase/editor"
	portfolioUC "github.com/folioforge/folioforge/internal/application/usecase/portfolio"
	"github.com/folioforge/folioforge/internal/config"
	"github.com/folioforge/folioforge/pkg/auth"
	"github.com/folioforge/folioforge/pkg/logger"
	"github.com/folioforge/folioforge/pkg/tracing"
)

func main() {
	fmt.Println("Start FolioForge API Server...")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)

	tp, err := tracing.NewTracerProvider(cfg, appLogger, "folioforge-api")
	if err != nil {
		appLogger.Warn("Tracing disabled: " + err.Error())
	} else {
		defer func() {
			if err := tp.Shutdown(context.Background()); err != nil {
				appLogger.Error("Failed to shut down tracer provider", err)
			}
		}()
	}

	// Initialize dependencies
	dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		log.Fatalf("FATAL: cannot connect Postgres: %v", err)
	}
	defer dbPool.Close()

	redisClient, err := persistence.NewRedisClient(cfg)
	if err != nil {
		log.Fatalf("FATAL: cannot connect Redis: %v", err)
	}
	defer redisClient.Close()

	kafkaClient, err := event.NewKafkaProducerClient(cfg)
	if err != nil {
		log.Fatalf("FATAL: cannot init Kafka: %v", err)
	}
	defer kafkaClient.Close()

	// Repositories and stores
	userRepo := persistence.NewPostgresUserRepo(dbPool)
	portfolioRepo := persistence.NewPostgresPortfolioRepo(dbPool, appLogger)
	publicRepo := persistence.NewPostgresPublicRepo(dbPool, appLogger)
	sessionStore := persistence.NewRedisSessionStore(redisClient)
	renderCache := persistence.NewRedisRenderCache(redisClient)

	// Services
	jwtSvc := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenLifespan)
	uploader, err := media_storage.NewCloudinaryAdapter(cfg, appLogger)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize uploader: %v", err)
	}
	assistant, err := llm.NewOpenAIAdapter(cfg, appLogger)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize text assistant: %v", err)
	}
	pdfRenderer, err := pdf.NewHTTPPDFAdapter(cfg, appLogger)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize PDF renderer: %v", err)
	}

	// Use Cases
	loginUseCase := authUC.NewLoginUseCase(userRepo, jwtSvc, appLogger)
	createUseCase := portfolioUC.NewCreatePortfolioUseCase(portfolioRepo, uploader, kafkaClient, appLogger)
	updateUseCase := portfolioUC.NewUpdatePortfolioUseCase(portfolioRepo, uploader, kafkaClient, appLogger)
	deleteUseCase := portfolioUC.NewDeletePortfolioUseCase(portfolioRepo, kafkaClient, appLogger)
	getUseCase := portfolioUC.NewGetPortfolioUseCase(portfolioRepo, appLogger)
	listUseCase := portfolioUC.NewListPortfoliosUseCase(portfolioRepo, appLogger)
	publishUseCase := portfolioUC.NewPublishPortfolioUseCase(portfolioRepo, kafkaClient, appLogger, cfg.App.ShareBaseURL)
	unpublishUseCase := portfolioUC.NewUnpublishPortfolioUseCase(portfolioRepo, kafkaClient, appLogger)
	exportUseCase := portfolioUC.NewExportPortfolioUseCase(portfolioRepo, appLogger)
	importUseCase := portfolioUC.NewImportPortfolioUseCase(createUseCase, appLogger)
	exportPDFUseCase := portfolioUC.NewExportPDFUseCase(portfolioRepo, pdfRenderer, appLogger)
	viewPublicUseCase := portfolioUC.NewViewPublicPortfolioUseCase(publicRepo, renderCache, appLogger)
	getPublicUseCase := portfolioUC.NewGetPublicPortfolioUseCase(publicRepo, appLogger)
	feedUseCase := portfolioUC.NewFeedUseCase(publicRepo, appLogger, cfg.App.ShareBaseURL)
	editorUseCase := editorUC.NewEditorUseCase(sessionStore, portfolioRepo, appLogger)
	assistUseCase := assistUC.NewAssistUseCase(assistant, appLogger)

	// HTTP Handlers
	authHandler := httpAdapter.NewAuthHandler(loginUseCase)
	portfolioHandler := httpAdapter.NewPortfolioHandler(
		createUseCase,
		updateUseCase,
		deleteUseCase,
		getUseCase,
		listUseCase,
		publishUseCase,
		unpublishUseCase,
		exportUseCase,
		importUseCase,
		exportPDFUseCase,
	)
	editorHandler := httpAdapter.NewEditorHandler(editorUseCase, createUseCase, updateUseCase)
	assistHandler := httpAdapter.NewAssistHandler(assistUseCase)
	publicHandler := httpAdapter.NewPublicHandler(viewPublicUseCase, getPublicUseCase)
	feedHandler := httpAdapter.NewFeedHandler(feedUseCase, appLogger)

	// Middleware
	authMiddleware := httpAdapter.AuthMiddleware(jwtSvc)
	errorMiddleware := httpAdapter.ErrorMiddleware(appLogger)

	// Setup Gin router
	router := gin.Default()
	router.Use(errorMiddleware)

	api := router.Group("/api")
	{
		api.POST("/auth/login", authHandler.Login)

		private := api.Group("/")
		private.Use(authMiddleware)
		{
			portfolios := private.Group("/portfolios")
			{
				portfolios.POST("", httpAdapter.InFlightGuard("save"), portfolioHandler.Create)
				portfolios.GET("", portfolioHandler.List)
				portfolios.GET("/:id", portfolioHandler.Get)
				portfolios.PUT("/:id", httpAdapter.InFlightGuard("save"), portfolioHandler.Update)
				portfolios.DELETE("/:id", portfolioHandler.Delete)
				portfolios.POST("/:id/publish", httpAdapter.InFlightGuard("publish"), portfolioHandler.Publish)
				portfolios.POST("/:id/unpublish", httpAdapter.InFlightGuard("publish"), portfolioHandler.Unpublish)
				portfolios.GET("/:id/export", portfolioHandler.Export)
				portfolios.POST("/import", httpAdapter.InFlightGuard("save"), portfolioHandler.Import)
				portfolios.GET("/:id/pdf", portfolioHandler.ExportPDF)
			}

			editor := private.Group("/editor")
			{
				editor.POST("/open", editorHandler.Open)
				editor.POST("/commands", editorHandler.Apply)
				editor.POST("/save", httpAdapter.InFlightGuard("save"), editorHandler.Save)
				editor.DELETE("/session", editorHandler.Discard)
			}

			assistGroup := private.Group("/assist")
			{
				assistGroup.POST("/improve", assistHandler.ImproveWriting)
				assistGroup.POST("/bullets", assistHandler.GenerateBulletPoints)
			}
		}

		public := api.Group("/public")
		{
			public.GET("/portfolios/:id", publicHandler.GetPublicPortfolio)
		}
	}

	router.GET("/p/:id", publicHandler.SharePage)
	router.GET("/rss", feedHandler.GenerateRSS)
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "UP"}) })

	log.Printf("Server running on port %s", cfg.App.Port)
	if err := router.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Cannot run server: %v", err)
	}
}
