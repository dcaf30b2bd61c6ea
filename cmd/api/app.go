package main

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/hugohenrick/gerador-nfe/docs"
	"github.com/hugohenrick/gerador-nfe/internal/adapter/api/controller"
	"github.com/hugohenrick/gerador-nfe/internal/adapter/api/route"
	"github.com/hugohenrick/gerador-nfe/internal/adapter/repository"
	"github.com/hugohenrick/gerador-nfe/internal/infrastructure/database"
	"github.com/hugohenrick/gerador-nfe/pkg/auth"
	"github.com/hugohenrick/gerador-nfe/pkg/logger"
)

// App representa a aplicação e suas dependências
type App struct {
	router     *gin.Engine
	db         *pgxpool.Pool
	logger     logger.Logger
	jwtService *auth.JWTService
}

// NewApp cria uma nova instância do aplicativo
func NewApp() (*App, error) {
	appLogger := logger.NewLogger()

	// Configurar banco de dados
	db, err := database.NewPostgresDB()
	if err != nil {
		return nil, err
	}

	// Serviço de tokens
	jwtService, err := auth.NewJWTService()
	if err != nil {
		return nil, err
	}

	// Criar repositórios
	documentRepo := repository.NewDocumentRepository(db)
	fiscalRepo := repository.NewFiscalRepository(db)
	certificateRepo := repository.NewCertificateRepository(db)

	// Criar controllers
	authController := controller.NewAuthController(jwtService, appLogger)
	nfeController := controller.NewNFeController(documentRepo, fiscalRepo, appLogger)
	fiscalController := controller.NewFiscalController(fiscalRepo, appLogger)
	certificateController := controller.NewCertificateController(certificateRepo, appLogger)

	// Configurar router
	router := gin.Default()
	router.Use(gin.Recovery())

	// CORS
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"version": "1.0.0",
		})
	})

	// Documentação Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Rotas da API
	api := router.Group("/api/v1")
	route.SetupAuthRoutes(api, authController)
	route.SetupNFeRoutes(api, jwtService, nfeController)
	route.SetupFiscalRoutes(api, jwtService, fiscalController)
	route.SetupCertificateRoutes(api, jwtService, certificateController)

	return &App{
		router:     router,
		db:         db,
		logger:     appLogger,
		jwtService: jwtService,
	}, nil
}

// Start inicia o servidor HTTP
func (a *App) Start() error {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	server := &http.Server{
		Addr:         ":" + port,
		Handler:      a.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	a.logger.Info("servidor iniciado", "port", port)
	return server.ListenAndServe()
}

// Close libera os recursos da aplicação
func (a *App) Close() {
	if a.db != nil {
		a.db.Close()
	}
}
