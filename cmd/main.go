package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/cityfix_backend/internal/ai"
	"github.com/shenikar/cityfix_backend/internal/config"
	v1 "github.com/shenikar/cityfix_backend/internal/handler/http/v1"
	"github.com/shenikar/cityfix_backend/internal/identity"
	"github.com/shenikar/cityfix_backend/internal/repository"
	"github.com/shenikar/cityfix_backend/internal/service"
	"github.com/shenikar/cityfix_backend/internal/storage"
	"github.com/shenikar/cityfix_backend/internal/triage"
	"github.com/shenikar/cityfix_backend/internal/webhook"
	"github.com/shenikar/cityfix_backend/pkg/logger"
	"github.com/shenikar/cityfix_backend/pkg/mongodb"
	"github.com/shenikar/cityfix_backend/pkg/postgres"
	redisclient "github.com/shenikar/cityfix_backend/pkg/redis"

	_ "github.com/shenikar/cityfix_backend/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title CityFix API
// @version 1.0
// @description Civic issue reporting backend: complaints, moderation and AI triage.
// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

// newTokenVerifier выбирает проверку токенов: общий секрет для локальной разработки или Firebase
func newTokenVerifier(cfg *config.Config, log *logrus.Logger) service.TokenVerifier {
	if cfg.AuthJWTSecret != "" {
		log.Warn("AUTH_JWT_SECRET is set, tokens are verified with HS256")
		return identity.NewHMACVerifier(cfg.AuthJWTSecret, "")
	}
	return identity.NewFirebaseVerifier(cfg.FirebaseProjectID, &http.Client{Timeout: 10 * time.Second})
}

// newAnalyzer собирает провайдера модели с ограничением частоты и кэшем эмбеддингов
func newAnalyzer(ctx context.Context, cfg *config.Config, redisClient *redis.Client, log *logrus.Logger) (*ai.Analyzer, error) {
	limiter := ai.NewLimiter(cfg.AIRequestsPerSecond, cfg.AIBurst)

	var (
		gen ai.Generator
		emb ai.Embedder
	)
	switch cfg.AIProvider {
	case "gemini":
		client, err := ai.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, cfg.GeminiEmbedModel)
		if err != nil {
			return nil, err
		}
		gen = ai.NewThrottledGenerator(client, limiter)
		emb = ai.NewCachedEmbedder(
			ai.NewThrottledEmbedder(client, limiter),
			redisClient, cfg.GeminiEmbedModel, cfg.EmbeddingCacheTTL, log,
		)
	case "anthropic":
		gen = ai.NewThrottledGenerator(ai.NewAnthropicClient(cfg.AnthropicAPIKey, cfg.AnthropicModel), limiter)
		// у Anthropic нет эмбеддингов, текстовое сходство будет нулевым
		emb = ai.Unavailable{}
		log.Warn("AI provider has no embeddings, duplicate detection uses images only")
	default:
		return nil, fmt.Errorf("unsupported AI provider %q", cfg.AIProvider)
	}

	return ai.NewAnalyzer(gen, emb, log), nil
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Запуск миграций
	if err := runMigrations(cfg, log); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	// Подключение к PostgreSQL
	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	// Подключение к MongoDB
	mongoClient, mongoDB, err := mongodb.NewMongoDB(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.WithError(err).Warn("Failed to disconnect from MongoDB")
		}
	}()
	log.Info("Successfully connected to MongoDB")

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Объектное хранилище фото
	store, err := storage.NewStore(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize %s storage: %v", cfg.StorageProvider, err)
	}
	defer store.Close()
	fetcher := storage.NewHTTPFetcher(cfg.ImageFetchTimeout, cfg.MaxUploadBytes)

	analyzer, err := newAnalyzer(ctx, cfg, redisClient, log)
	if err != nil {
		log.Fatalf("Failed to initialize AI provider: %v", err)
	}

	// Вебхуки
	webhookPublisher := webhook.NewRedisPublisher(redisClient)
	webhookWorker := webhook.NewWorker(redisClient, log, cfg)
	webhookWorker.Start(ctx)

	// Инициализация репозиториев
	userRepo := repository.NewUserRepository(dbpool)
	complaintRepo := repository.NewComplaintRepository(mongoDB, redisClient, cfg.ComplaintCacheTTL, log)
	summaryRepo := repository.NewSummaryRepository(mongoDB)
	limiter := repository.NewDailyLimiter(redisClient, "ratelimit:complaints", cfg.ComplaintDailyLimit)

	// Конвейер обработки жалоб
	orchestrator := triage.NewOrchestrator(complaintRepo, analyzer, fetcher, triage.Config{
		Threshold:     cfg.DuplicateThreshold,
		MaxCandidates: cfg.DuplicateMaxCandidates,
		RadiusMeters:  cfg.DuplicateRadiusMeters,
	}, log)

	// Инициализация сервисов
	summaryService := service.NewSummaryService(complaintRepo, summaryRepo, analyzer, log)
	summaryService.Start(ctx, cfg.SummaryInterval)

	services := v1.Services{
		Auth:       service.NewAuthService(newTokenVerifier(cfg, log), userRepo, log),
		Complaints: service.NewComplaintService(complaintRepo, store, limiter, analyzer, orchestrator, webhookPublisher, log, cfg.MaxUploadBytes),
		Admin:      service.NewAdminService(complaintRepo, analyzer, fetcher, webhookPublisher, log),
		AI:         service.NewAIService(orchestrator, complaintRepo, analyzer, fetcher, webhookPublisher, log),
		Summary:    summaryService,
		Health: service.NewHealthService(map[string]service.Pinger{
			"mongodb":  complaintRepo,
			"postgres": userRepo,
			"redis": service.PingFunc(func(ctx context.Context) error {
				return redisClient.Ping(ctx).Err()
			}),
			"storage": service.StorePinger(store),
		}),
	}

	// Инициализация хэндлеров
	handler := v1.NewHandler(services, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	router.MaxMultipartMemory = cfg.MaxUploadBytes
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	api := router.Group("/api")
	handler.RegisterRoutes(api)

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	// останавливаем воркер вебхуков и задачу сводки
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
