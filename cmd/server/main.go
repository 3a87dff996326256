package main

import (
	"context"
	"log"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	apiHandler "github.com/bankgo/mspayment/api/handler"
	"github.com/bankgo/mspayment/internal/config"
	"github.com/bankgo/mspayment/internal/gateway"
	"github.com/bankgo/mspayment/internal/infrastructure/journal"
	"github.com/bankgo/mspayment/internal/infrastructure/monitor"
	pgInfra "github.com/bankgo/mspayment/internal/infrastructure/postgres"
	redisInfra "github.com/bankgo/mspayment/internal/infrastructure/redis"
	"github.com/bankgo/mspayment/internal/middleware"
	"github.com/bankgo/mspayment/internal/router"
	"github.com/bankgo/mspayment/internal/services"
	"github.com/bankgo/mspayment/internal/services/lifecycle"
	"github.com/bankgo/mspayment/pkg/httpcontext"
	"github.com/bankgo/mspayment/pkg/logger"
	"github.com/bankgo/mspayment/repository/postgres"
	redisRepo "github.com/bankgo/mspayment/repository/redis"
	paymentUC "github.com/bankgo/mspayment/usecase/payment"
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
		pgInfra.Close(pool, zapLogger)
		return nil
	})

	redisClient, err := redisInfra.NewClient(cfg.Redis)
	if err != nil {
		zapLogger.Fatal("redis connection failed", zap.Error(err))
	}
	manager.Register("redis", func(ctx context.Context) error {
		return redisClient.Close()
	})

	journalStore, err := journal.Open(cfg.Journal.Path, "journal")
	if err != nil {
		zapLogger.Fatal("failed to open journal store", zap.Error(err))
	}
	manager.Register("journal", func(ctx context.Context) error {
		return journalStore.Close()
	})

	mon := monitor.New(pool, redisClient, journalStore,
		cfg.Lookup.ActiveURL, cfg.Lookup.ClientURL, 10*time.Second, zapLogger)
	mon.Start()
	manager.Register("monitor", func(ctx context.Context) error {
		mon.Stop()
		return nil
	})

	janitor := services.NewJournalJanitor(journalStore, zapLogger, services.JanitorConfig{
		Interval:  cfg.Journal.PruneInterval,
		Retention: cfg.Journal.Retention,
	})
	janitor.Start()
	manager.Register("journal_janitor", func(ctx context.Context) error {
		janitor.Stop(ctx)
		return nil
	})

	paymentRepo := postgres.NewPaymentRepository(pool)
	balanceCache := redisRepo.NewBalanceCache(redisClient, cfg.Cache.BalanceTTL)
	auditTrail := services.NewAuditRecorder(journalStore, zapLogger)

	activeGateway := gateway.NewActiveGateway(gateway.Config{
		BaseURL:     cfg.Lookup.ActiveURL,
		Timeout:     cfg.Lookup.Timeout,
		MaxAttempts: cfg.Lookup.MaxAttempts,
	}, zapLogger)
	clientGateway := gateway.NewClientGateway(gateway.Config{
		BaseURL:     cfg.Lookup.ClientURL,
		Timeout:     cfg.Lookup.Timeout,
		MaxAttempts: cfg.Lookup.MaxAttempts,
	}, zapLogger)

	paymentUseCase := paymentUC.New(paymentRepo, activeGateway, clientGateway, balanceCache, auditTrail, zapLogger)

	ctxAdapter := httpcontext.NewAdapter(cfg.Context.RequestTimeout)

	handlers := router.Handlers{
		Payment: apiHandler.NewPaymentHandler(paymentUseCase, ctxAdapter, zapLogger),
		Health:  apiHandler.NewHealthHandler(mon, ctxAdapter, zapLogger),
	}

	var authMiddleware func(fasthttp.RequestHandler) fasthttp.RequestHandler
	if cfg.JWT.Secret != "" {
		authMiddleware = middleware.JWTAuth(cfg.JWT.Secret, zapLogger)
	}
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
