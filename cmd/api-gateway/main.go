package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	_ "github.com/ibuttimer/fyyur/api/swagger"
	"github.com/ibuttimer/fyyur/internal/handler"
	"github.com/ibuttimer/fyyur/internal/repository"
	"github.com/ibuttimer/fyyur/internal/router"
	"github.com/ibuttimer/fyyur/internal/service"
	"github.com/ibuttimer/fyyur/pkg/cache"
	"github.com/ibuttimer/fyyur/pkg/config"
	"github.com/ibuttimer/fyyur/pkg/database"
	"github.com/ibuttimer/fyyur/pkg/jobs"
	"github.com/ibuttimer/fyyur/pkg/logger"
	"github.com/ibuttimer/fyyur/pkg/messaging"
)

const shutdownTimeout = 15 * time.Second

// @title Fyyur Booking API
// @version 1.0.0
// @description Venue and artist show booking with schedule verification
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		logr.Fatal("failed to connect database", zap.Error(err))
	}
	defer db.Close()

	redisClient, err := cache.NewRedis(ctx, cfg.Redis)
	if err != nil {
		logr.Fatal("failed to connect redis", zap.Error(err))
	}
	cacheRepo := repository.NewCacheRepository(redisClient)
	defer cacheRepo.Close() //nolint:errcheck

	validate := validator.New()
	metrics := service.NewMetricsService()

	showRepo := repository.NewShowRepository(db)
	availabilityRepo := repository.NewAvailabilityRepository(db)
	artistRepo := repository.NewArtistRepository(db)
	venueRepo := repository.NewVenueRepository(db)
	genreRepo := repository.NewGenreRepository(db)

	cacheSvc := service.NewCacheService(cacheRepo, metrics, cfg.Availability.CacheTTL, logr, cfg.Availability.CacheEnabled && redisClient != nil)
	availabilityStore := service.NewCachedAvailabilityStore(availabilityRepo, cacheSvc, cfg.Availability.CacheTTL)

	var publisher messaging.Publisher = messaging.NopPublisher{}
	if cfg.Events.Enabled {
		publisher = messaging.NewAMQPPublisher(messaging.AMQPConfig{
			URL:      cfg.Events.AMQPURL,
			Exchange: cfg.Events.Exchange,
			Queue:    cfg.Events.Queue,
		}, logr)
	}
	events := service.NewEventService(publisher, metrics, logr, jobs.QueueConfig{
		Workers:    cfg.Events.Workers,
		MaxRetries: cfg.Events.MaxRetries,
		RetryDelay: cfg.Events.RetryDelay,
	})
	events.Start(ctx)
	defer events.Stop()

	showSvc := service.NewShowService(db, showRepo, availabilityStore, artistRepo, venueRepo, events, metrics, validate, logr, service.ShowServiceConfig{
		PageSize:    cfg.Shows.PageSize,
		MaxPageSize: cfg.Shows.MaxPageSize,
	})
	availabilitySvc := service.NewAvailabilityService(availabilityRepo, availabilityStore, artistRepo, logr)
	artistSvc := service.NewArtistService(artistRepo, genreRepo, validate, logr)
	venueSvc := service.NewVenueService(venueRepo, showRepo, genreRepo, validate, logr)
	tokens := service.NewTokenService(service.TokenConfig{Secret: cfg.JWT.Secret, Issuer: cfg.JWT.Issuer})

	checks := map[string]handler.Pinger{"postgres": db}
	if redisClient != nil {
		checks["redis"] = handler.PingFunc(cacheRepo.Ping)
	}

	engine := router.New(router.Options{
		APIPrefix:      cfg.APIPrefix,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		EnableDocs:     cfg.Env != config.EnvProduction,
		Logger:         logr,
		Metrics:        metrics,
		Tokens:         tokens,
		Shows:          handler.NewShowHandler(showSvc),
		Artists:        handler.NewArtistHandler(artistSvc, availabilitySvc),
		Venues:         handler.NewVenueHandler(venueSvc),
		System:         handler.NewMetricsHandler(metrics, checks),
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logr.Sugar().Infow("server starting", "addr", srv.Addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Error("server failed", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	logr.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Error("server shutdown failed", zap.Error(err))
	}
}
