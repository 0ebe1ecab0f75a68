package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dream-diary-api/config"
	"dream-diary-api/internal/database"
	"dream-diary-api/internal/handler"
	"dream-diary-api/internal/metrics"
	"dream-diary-api/internal/middleware"
	"dream-diary-api/internal/provider"
	"dream-diary-api/internal/queue"
	"dream-diary-api/internal/repository"
	"dream-diary-api/internal/router"
	"dream-diary-api/internal/service"
	"dream-diary-api/internal/storage"
	"dream-diary-api/internal/worker"
	"dream-diary-api/pkg/clock"
	"dream-diary-api/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	log := logger.WithComponent("main")
	defer logger.Sync()

	// .env 不存在時直接使用環境變數
	if err := godotenv.Load(); err != nil {
		log.Info("no .env file, using environment")
	}

	cfg := config.LoadConfig()
	gin.SetMode(cfg.Server.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := database.InitDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer pool.Close()

	if err := database.EnsureSchema(ctx, pool); err != nil {
		log.Fatal("Failed to ensure schema", zap.Error(err))
	}

	var rdb *redis.Client
	if cfg.Storage.Driver == storage.DriverRedis || cfg.Queue.Driver == queue.DriverRedis {
		rdb, err = database.InitRedis(&cfg.Redis)
		if err != nil {
			log.Fatal("Failed to initialize redis", zap.Error(err))
		}
		defer rdb.Close()
	}

	store, err := storage.NewStore(&cfg.Storage, pool, rdb)
	if err != nil {
		log.Fatal("Failed to initialize storage", zap.Error(err))
	}

	adProvider, err := provider.NewAdProvider(&cfg.Providers)
	if err != nil {
		log.Fatal("Failed to initialize ad provider", zap.Error(err))
	}
	imageProvider, err := provider.NewImageProvider(&cfg.Providers)
	if err != nil {
		log.Fatal("Failed to initialize image provider", zap.Error(err))
	}

	jobs, err := queue.NewGenerationQueueFromDriver(cfg.Queue.Driver, cfg.Queue.BufferSize, rdb, cfg.Queue.ConsumerID)
	if err != nil {
		log.Fatal("Failed to initialize generation queue", zap.Error(err))
	}

	clk := clock.New()

	// repositories
	ledgerRepository := repository.NewLedgerRepository(store)
	subscriptionRepository := repository.NewSubscriptionRepository(store)
	dreamRepository := repository.NewDreamRepository(pool)
	generationJobRepository := repository.NewGenerationJobRepository(store)
	interviewRepository := repository.NewInterviewRepository(store)

	// services
	ticketService := service.NewTicketService(ledgerRepository, clk)
	subscriptionService := service.NewSubscriptionService(subscriptionRepository, clk)
	rewardService := service.NewRewardService(ticketService, adProvider)
	generationService := service.NewGenerationService(subscriptionService, ticketService, imageProvider, interviewRepository, cfg.Policy, clk)
	dreamService := service.NewDreamService(dreamRepository, generationService, jobs, generationJobRepository, clk)
	interviewService := service.NewInterviewService(interviewRepository, dreamRepository, subscriptionService, clk)

	if err := worker.NewGenerationWorker(dreamService, jobs).Start(ctx); err != nil {
		log.Fatal("Failed to start generation worker", zap.Error(err))
	}

	// 先載入第一支廣告，失敗不影響啟動
	if err := rewardService.PreloadAd(ctx); err != nil {
		log.Warn("Failed to preload ad", zap.Error(err))
	}

	metrics.InitPrometheus()

	limiter := middleware.NewRateLimiter(cfg.RateLimit)
	go limiter.Cleanup(ctx, time.Minute)

	r := router.New(
		handler.NewTicketHandler(ticketService, rewardService),
		handler.NewSubscriptionHandler(subscriptionService),
		handler.NewDreamHandler(dreamService, generationService, limiter.PerUser("user_id")),
		handler.NewInterviewHandler(interviewService),
	)

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown failed", zap.Error(err))
	}
}
