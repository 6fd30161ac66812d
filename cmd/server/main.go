package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	"github.com/ignatzorin/granada-backend/internal/config"
	"github.com/ignatzorin/granada-backend/internal/db"
	httpHandlers "github.com/ignatzorin/granada-backend/internal/http/handlers"
	"github.com/ignatzorin/granada-backend/internal/http/middleware"
	httpRouter "github.com/ignatzorin/granada-backend/internal/http/router"
	"github.com/ignatzorin/granada-backend/internal/infrastructure/redisclient"
	"github.com/ignatzorin/granada-backend/internal/infrastructure/render"
	"github.com/ignatzorin/granada-backend/internal/logger"
	"github.com/ignatzorin/granada-backend/internal/repository"
	"github.com/ignatzorin/granada-backend/internal/service"
	"github.com/ignatzorin/granada-backend/internal/usecase/export"
	"github.com/ignatzorin/granada-backend/internal/usecase/matching"
	"github.com/ignatzorin/granada-backend/internal/usecase/proposal"
)

func main() {
	// Готовим контекст для graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("main: ошибка загрузки конфигурации: %v", err)
	}

	// Инициализация логгера
	if cfg.IsProduction() {
		logger.Init("info")
	} else {
		logger.Init("debug")
		logger.SetTextFormatter()
	}

	// Подключение к базе и миграции.
	dbConn, err := db.Open(ctx, cfg.DBDriver, cfg.DatabaseURL)
	if err != nil {
		logger.Log.Fatalf("main: ошибка подключения к базе: %v", err)
	}
	defer safeClose(dbConn)

	if err := db.RunMigrations(ctx, dbConn); err != nil {
		logger.Log.Fatalf("main: ошибка миграций: %v", err)
	}

	// Redis нужен только для общего rate limit между репликами.
	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		redisClient, err = redisclient.New(ctx, cfg.RedisURL)
		if err != nil {
			logger.Log.Fatalf("main: %v", err)
		}
		defer redisClient.Close()
	}

	limiterStore, err := middleware.NewLimiterStore(redisClient)
	if err != nil {
		logger.Log.Fatalf("main: %v", err)
	}

	// Репозитории.
	userRepo := repository.NewUserRepository(dbConn)
	proposalRepo := repository.NewProposalRepository(dbConn)
	donorCallRepo := repository.NewDonorCallRepository(dbConn)

	// Сервисы.
	tokenManager := service.NewTokenManager(cfg.JWTSecret, cfg.AccessTokenTTL)
	authService := service.NewAuthService(userRepo, tokenManager)
	donorCallService := service.NewDonorCallService(donorCallRepo)
	planningService := service.NewPlanningService()

	// Use cases.
	generateProposal := proposal.NewGenerateProposalUseCase(proposalRepo, userRepo)
	listMyProposals := proposal.NewListMyProposalsUseCase(proposalRepo)
	matchDonors := matching.NewMatchDonorsUseCase(donorCallRepo)
	exportProposal := export.NewExportProposalUseCase(proposalRepo, render.NewPDFRenderer(), render.NewDOCXRenderer(), cfg.ExportTimeout)

	// Хэндлеры.
	authHandler := httpHandlers.NewAuthHandler(authService)
	proposalHandler := httpHandlers.NewProposalHandler(generateProposal, listMyProposals)
	donorCallHandler := httpHandlers.NewDonorCallHandler(donorCallService, matchDonors)
	planningHandler := httpHandlers.NewPlanningHandler(planningService)
	exportHandler := httpHandlers.NewExportHandler(exportProposal)
	healthHandler := httpHandlers.NewHealthHandler(dbConn)

	// Роутер.
	engine := httpRouter.SetupRouter(cfg, authService, limiterStore, authHandler, proposalHandler, donorCallHandler, planningHandler, exportHandler, healthHandler)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Завершаем сервер при получении сигнала.
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Log.Errorf("main: ошибка остановки http сервера: %v", err)
		}
	}()

	logger.Log.WithField("driver", cfg.DBDriver).Infof("main: HTTP сервер запущен на порту %s", cfg.HTTPPort)

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Log.Fatalf("main: сервер завершился с ошибкой: %v", err)
	}
}

// safeClose закрывает соединение с базой.
func safeClose(db *sqlx.DB) {
	if err := db.Close(); err != nil {
		log.Printf("main: ошибка закрытия базы: %v", err)
	}
}
