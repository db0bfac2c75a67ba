package main

import (
	"context"
	"log"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	apiHandler "github.com/taskwise/backend/api/handler"
	"github.com/taskwise/backend/internal/config"
	"github.com/taskwise/backend/internal/infrastructure/buffer"
	"github.com/taskwise/backend/internal/infrastructure/monitor"
	pgInfra "github.com/taskwise/backend/internal/infrastructure/postgres"
	redisInfra "github.com/taskwise/backend/internal/infrastructure/redis"
	"github.com/taskwise/backend/internal/middleware"
	"github.com/taskwise/backend/internal/router"
	"github.com/taskwise/backend/internal/services"
	"github.com/taskwise/backend/internal/services/lifecycle"
	"github.com/taskwise/backend/pkg/clock"
	"github.com/taskwise/backend/pkg/holiday"
	"github.com/taskwise/backend/pkg/httpcontext"
	"github.com/taskwise/backend/pkg/logger"
	"github.com/taskwise/backend/repository/postgres"
	redisRepo "github.com/taskwise/backend/repository/redis"
	orderUC "github.com/taskwise/backend/usecase/order"
	taskUC "github.com/taskwise/backend/usecase/task"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	zapLogger, err := logger.New(logger.Config{
		Level:    cfg.Logger.Level,
		Encoding: cfg.Logger.Encoding,
	})
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer zapLogger.Sync()

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	manager := lifecycle.New(cfg.Context.ShutdownTimeout, zapLogger)
	manager.Listen(cancel)

	if err := pgInfra.RunMigrations(cfg, zapLogger); err != nil {
		zapLogger.Fatal("migrations failed", zap.Error(err))
	}

	pool, err := pgInfra.NewPool(appCtx, cfg.Database, zapLogger)
	if err != nil {
		zapLogger.Fatal("postgres connection failed", zap.Error(err))
	}
	manager.Register("postgres", func(ctx context.Context) error {
		pool.Close()
		return nil
	})

	redisClient, err := redisInfra.NewClient(cfg.Redis)
	if err != nil {
		zapLogger.Fatal("redis connection failed", zap.Error(err))
	}
	manager.Register("redis", func(ctx context.Context) error {
		return redisClient.Close()
	})

	bufferStore, err := buffer.Open(cfg.Buffer.Path, "order_writes")
	if err != nil {
		zapLogger.Fatal("failed to open order buffer", zap.Error(err))
	}
	manager.Register("order_buffer", func(ctx context.Context) error {
		return bufferStore.Close()
	})

	mon := monitor.New(pool, redisClient, bufferStore, 10*time.Second, zapLogger)
	mon.Start()
	manager.Register("monitor", func(ctx context.Context) error {
		mon.Stop()
		return nil
	})

	taskRepo := postgres.NewTaskRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)

	orderFlusher := services.NewOrderFlusher(
		bufferStore,
		mon,
		orderRepo,
		zapLogger,
		services.FlusherConfig{
			Interval:   cfg.Buffer.SyncInterval,
			BatchSize:  cfg.Buffer.BatchSize,
			MaxRetries: cfg.Buffer.MaxRetry,
		},
	)
	orderFlusher.Start()
	manager.Register("order_flusher", func(ctx context.Context) error {
		orderFlusher.Stop(ctx)
		return nil
	})

	orderService := orderUC.New(orderRepo, orderFlusher, zapLogger)
	taskLifecycle := taskUC.New(taskRepo, orderService, nil, zapLogger)

	calendar := holiday.NewCalendar()
	if cfg.Holidays.UseRemote {
		yearCache := redisRepo.NewHolidayCache(redisClient, cfg.Holidays.CacheTTL)
		calendar = holiday.NewCalendarWithSource(
			holiday.NewRemoteSource(cfg.Holidays.CountryCode, yearCache, zapLogger),
		)
	}

	ctxAdapter := httpcontext.NewAdapter(cfg.Context.RequestTimeout)
	clk := clock.System{}

	handlers := router.Handlers{
		Task:     apiHandler.NewTaskHandler(taskLifecycle, orderService, clk, ctxAdapter, zapLogger),
		Reminder: apiHandler.NewReminderHandler(taskLifecycle, clk, cfg.Reminders.Horizon, ctxAdapter, zapLogger),
		Holiday:  apiHandler.NewHolidayHandler(calendar, clk, ctxAdapter, zapLogger),
		Health:   apiHandler.NewHealthHandler(mon, ctxAdapter, zapLogger),
	}

	authMiddleware := middleware.JWTAuth(cfg.JWT.Secret, zapLogger)
	r := router.New(handlers, authMiddleware)

	server := &fasthttp.Server{
		Handler:      r.Handler,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
		Name:         cfg.AppName,
	}

	go func() {
		zapLogger.Info("server started", zap.String("address", cfg.Address()))
		if err := server.ListenAndServe(cfg.Address()); err != nil {
			zapLogger.Fatal("server crashed", zap.Error(err))
		}
	}()

	manager.Register("http_server", func(ctx context.Context) error {
		return server.Shutdown()
	})

	<-appCtx.Done()

	if err := manager.Shutdown(context.Background()); err != nil {
		zapLogger.Error("graceful shutdown error", zap.Error(err))
	}
}
