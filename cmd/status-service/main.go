package main

import (
	"VCS_Status_Microservice/internal/status-service/api/handler"
	"VCS_Status_Microservice/internal/status-service/api/routes"
	"VCS_Status_Microservice/internal/status-service/config"
	"VCS_Status_Microservice/internal/status-service/graphite"
	"VCS_Status_Microservice/internal/status-service/publisher"
	"VCS_Status_Microservice/internal/status-service/repository"
	"VCS_Status_Microservice/internal/status-service/scheduler"
	"VCS_Status_Microservice/internal/status-service/service"
	"VCS_Status_Microservice/pkg/infra"
	"VCS_Status_Microservice/pkg/logger"
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	appConfig, err := config.LoadConfig("./.env")
	if err != nil {
		log.Fatalf("load config error: %v", err)
	}

	// set up logger
	fileSyncer, err := logger.NewReopenableWriteSyncer(appConfig.Server.LogFile)
	if err != nil {
		log.Fatalf("open log file error: %v", err)
	}
	defer fileSyncer.Close()
	zapLogger := logger.NewLogger(appConfig.Server.LogLevel, fileSyncer).With(zap.String("service.name", "status-service"))
	defer zapLogger.Sync()
	rootCtx, stopReload := context.WithCancel(context.Background())
	defer stopReload()
	logger.ReloadOnSIGHUP(rootCtx, fileSyncer, zapLogger)

	// set up verdict cache
	var verdictRepo repository.VerdictRepository
	if appConfig.Redis.Host != "" {
		redisClient, e := infra.NewRedisConnection(infra.RedisConfig{
			Host: appConfig.Redis.Host,
			Port: appConfig.Redis.Port,
		})
		if e != nil {
			zapLogger.Fatal("failed to connect to redis", zap.Error(e))
		}
		defer redisClient.Close()
		zapLogger.Info("connected to redis successfully")
		verdictRepo = repository.NewVerdictRepository(redisClient, appConfig.Redis.CacheTTL)
	} else {
		zapLogger.Info("redis not configured, using in-memory verdict cache")
		verdictRepo = repository.NewMemoryVerdictRepository(appConfig.Redis.CacheTTL)
	}

	// set up verdict publisher
	var verdictPublisher publisher.VerdictPublisher
	if len(appConfig.Kafka.Brokers) > 0 {
		verdictPublisher = publisher.NewVerdictPublisher(infra.NewKafkaWriter(appConfig.Kafka.Brokers, appConfig.Kafka.VerdictTopic))
		zapLogger.Info("publishing verdict changes to kafka", zap.Strings("brokers", appConfig.Kafka.Brokers), zap.String("topic", appConfig.Kafka.VerdictTopic))
	} else {
		verdictPublisher = publisher.NewNoopPublisher()
	}
	defer verdictPublisher.Close()

	// set up dependencies
	graphiteClient := graphite.NewClient(graphite.ClientConfig{
		BaseURL:        appConfig.Graphite.URL,
		ProxyURL:       appConfig.Graphite.ProxyURL,
		MaxRetries:     appConfig.Graphite.MaxRetries,
		InitialBackoff: appConfig.Graphite.InitialBackoff,
		RequestTimeout: appConfig.Graphite.RequestTimeout,
	})
	statusService := service.NewStatusService(graphiteClient, verdictRepo, verdictPublisher, zapLogger, appConfig.Graphite.From, appConfig.Graphite.Until)
	statusHandler := handler.NewStatusHandler(zapLogger, statusService)

	// set up scheduled evaluation
	var targetScheduler scheduler.TargetScheduler
	if len(appConfig.Scheduler.Targets) > 0 {
		targetScheduler, err = scheduler.NewTargetScheduler(appConfig.Scheduler.Cron, appConfig.Scheduler.Targets, appConfig.Scheduler.RunTimeout, statusService, zapLogger)
		if err != nil {
			zapLogger.Fatal("failed to create target scheduler", zap.Error(err))
		}
		targetScheduler.Start()
		zapLogger.Info("target scheduler started", zap.String("cron", appConfig.Scheduler.Cron), zap.Int("targets", len(appConfig.Scheduler.Targets)))
	}

	// Set up http server
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	routes.SetUpStatusRoutes(r, statusHandler)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", appConfig.Server.Port),
		Handler: r,
	}
	go func() {
		zapLogger.Info(fmt.Sprintf("starting server on %s", srv.Addr))
		if e := srv.ListenAndServe(); e != nil && !errors.Is(e, http.ErrServerClosed) {
			zapLogger.Fatal("failed to start server", zap.Error(e))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zapLogger.Info("shutting down server...")
	if targetScheduler != nil {
		targetScheduler.Stop()
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err = srv.Shutdown(ctx); err != nil {
		zapLogger.Error("server forced to shutdown:", zap.Error(err))
	}
	zapLogger.Info("server exiting")
}
