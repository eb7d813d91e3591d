package main

//go:generate swag init -g cmd/server/main.go -o docs --v3.1 -d ../../

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	financeapp "github.com/erp/ledger/internal/application/finance"
	partnerapp "github.com/erp/ledger/internal/application/partner"
	"github.com/erp/ledger/internal/infrastructure/cache"
	"github.com/erp/ledger/internal/infrastructure/config"
	"github.com/erp/ledger/internal/infrastructure/event"
	"github.com/erp/ledger/internal/infrastructure/export"
	"github.com/erp/ledger/internal/infrastructure/logger"
	"github.com/erp/ledger/internal/infrastructure/messaging"
	"github.com/erp/ledger/internal/infrastructure/persistence"
	"github.com/erp/ledger/internal/infrastructure/storage"
	"github.com/erp/ledger/internal/infrastructure/telemetry"
	"github.com/erp/ledger/internal/interfaces/http/handler"
	"github.com/erp/ledger/internal/interfaces/http/middleware"
	"github.com/erp/ledger/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	_ "github.com/erp/ledger/docs"
)

// version is overridden at build time with -ldflags "-X main.version=..."
var version = "dev"

//	@title			Ledger API
//	@version		1.0
//	@description	Member advance charges, ledger lines and account flows for the ERP finance module.

//	@contact.name	API Support
//	@contact.url	https://github.com/erp/ledger

//	@license.name	Apache 2.0
//	@license.url	http://www.apache.org/licenses/LICENSE-2.0.html

//	@host		localhost:8080
//	@BasePath	/api/v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	bootLog, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}

	ctx := context.Background()

	providers, err := telemetry.Setup(ctx, cfg.Telemetry, bootLog)
	if err != nil {
		bootLog.Fatal("Failed to initialize telemetry", zap.Error(err))
	}

	// Re-create the logger so records also flow through the OpenTelemetry log bridge
	log := bootLog
	if cfg.Telemetry.Enabled && cfg.Telemetry.LogsEnabled {
		log, err = logger.New(&logger.Config{
			Level:  cfg.Log.Level,
			Format: cfg.Log.Format,
			Output: cfg.Log.Output,
		}, providers.ZapCore(logger.ParseLevel(cfg.Log.Level)))
		if err != nil {
			bootLog.Fatal("Failed to initialize logger", zap.Error(err))
		}
	}
	defer func() { _ = log.Sync() }()

	log.Info("Starting ledger service",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("version", version),
		zap.String("port", cfg.App.Port),
	)

	profiler, err := telemetry.StartProfiler(cfg.Telemetry.ProfilingEnabled, cfg.Telemetry.PyroscopeServerURL, cfg.Telemetry.ServiceName, log)
	if err != nil {
		log.Fatal("Failed to start profiler", zap.Error(err))
	}
	if profiler.Running() {
		providers.EnableSpanProfiles()
	}

	// Database
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level), cfg.Telemetry.DBSlowQueryThresh)
	db, err := persistence.NewDatabase(&cfg.Database, persistence.WithLogger(gormLog))
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	log.Info("Database connected",
		zap.String("driver", db.Driver),
		zap.String("host", cfg.Database.Host),
		zap.String("database", cfg.Database.DBName),
	)
	if err := telemetry.RegisterDBTracing(db.DB, cfg.Telemetry, db.Driver, log); err != nil {
		log.Fatal("Failed to register database tracing", zap.Error(err))
	}

	// Redis-backed caches, in memory when Redis is absent
	caches, err := cache.NewFactory(ctx, cfg.Redis,
		cache.WithLogger(log),
		cache.WithInMemoryFallback(cfg.App.Env != "production"),
	)
	if err != nil {
		log.Fatal("Failed to initialize cache", zap.Error(err))
	}

	ledgerMetrics, err := telemetry.NewLedgerMetrics()
	if err != nil {
		log.Fatal("Failed to create ledger metrics", zap.Error(err))
	}

	// Repositories
	memberRepo := persistence.NewGormMemberRepository(db.DB)
	chargeRepo := persistence.NewGormAdvanceChargeRepository(db.DB)
	itemRepo := persistence.NewGormAccountItemRepository(db.DB)
	txScope := persistence.NewGormTransactionScope(db.DB)

	// Event bus
	eventBus := event.NewInMemoryEventBus(log)
	reportCache := caches.ReportCache()
	eventBus.Subscribe(event.NewIdempotentHandler(
		financeapp.NewReportCacheInvalidator(reportCache),
		caches.IdempotencyStore(),
		log,
	))

	var relay *messaging.AMQPRelay
	if cfg.Messaging.Enabled {
		serializer := event.NewEventSerializer()
		event.RegisterLedgerEvents(serializer)
		relay, err = messaging.DialAMQPRelay(cfg.Messaging, serializer, log)
		if err != nil {
			log.Fatal("Failed to connect to message broker", zap.Error(err))
		}
		eventBus.Subscribe(relay)
		log.Info("AMQP event relay enabled", zap.String("exchange", cfg.Messaging.Exchange))
	}

	// Services
	numbers := caches.ReceiptNumbers()
	chargeService := financeapp.NewAdvanceChargeService(
		chargeRepo,
		memberRepo,
		txScope,
		numbers,
		export.NewExcelExporter(),
		financeapp.AdvanceChargeConfig{
			ReceiptPrefix:   cfg.Ledger.ReceiptPrefix,
			DefaultPageSize: cfg.Ledger.DefaultPageSize,
			MaxBatchSize:    cfg.Ledger.MaxBatchSize,
		},
	)
	chargeService.SetEventPublisher(eventBus)
	chargeService.SetLedgerMetrics(ledgerMetrics)

	if cfg.Storage.Enabled {
		attachments, err := storage.NewS3AttachmentStorage(ctx, cfg.Storage, storage.WithLogger(log))
		if err != nil {
			log.Fatal("Failed to initialize attachment storage", zap.Error(err))
		}
		if err := attachments.EnsureBucket(ctx); err != nil {
			log.Warn("Attachment bucket check failed", zap.String("bucket", attachments.Bucket()), zap.Error(err))
		}
		chargeService.SetAttachmentStorage(attachments)
	}

	flowService := financeapp.NewAccountFlowService(itemRepo, reportCache, cfg.Ledger.ReportCacheTTL)
	flowService.SetLedgerMetrics(ledgerMetrics)

	openingService := financeapp.NewOpeningBalanceService(txScope, numbers, cfg.Ledger.OpeningBalancePrefix)
	openingService.SetEventPublisher(eventBus)
	openingService.SetLedgerMetrics(ledgerMetrics)

	memberService := partnerapp.NewMemberService(memberRepo, cfg.Ledger.DefaultPageSize)
	memberService.SetEventPublisher(eventBus)

	if err := eventBus.Start(ctx); err != nil {
		log.Fatal("Failed to start event bus", zap.Error(err))
	}

	// HTTP
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	system := handler.NewSystemHandler(cfg.App.Name, version)
	system.AddCheck("database", db.Ping)
	if caches.UsesRedis() {
		client := caches.Client()
		system.AddCheck("redis", func(ctx context.Context) error {
			return client.Ping(ctx).Err()
		})
	}

	tenantCfg := middleware.DefaultTenantConfig()
	if cfg.App.Env == "development" {
		// Local tooling may omit X-Tenant-ID
		tenantCfg.DefaultTenantID = uuid.MustParse("00000000-0000-0000-0000-000000000001")
	}

	engine := router.NewEngine(router.EngineOptions{
		Config:  cfg,
		Logger:  log,
		Metrics: middleware.NewHTTPMetrics(registry),
		System:  system,
		Tenant:  tenantCfg,
		Registrars: []router.RouteRegistrar{
			handler.NewAdvanceChargeHandler(chargeService, financeapp.ExportLanguage(cfg.Ledger.ExportLanguage)),
			handler.NewLedgerHandler(financeapp.NewAccountItemService(itemRepo), flowService, openingService),
			handler.NewMemberHandler(memberService),
		},
	})

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}
	if err := eventBus.Stop(shutdownCtx); err != nil {
		log.Error("Failed to stop event bus", zap.Error(err))
	}
	if relay != nil {
		if err := relay.Close(); err != nil {
			log.Error("Failed to close AMQP relay", zap.Error(err))
		}
	}
	if err := caches.Close(); err != nil {
		log.Error("Failed to close cache", zap.Error(err))
	}
	if err := db.Close(); err != nil {
		log.Error("Failed to close database", zap.Error(err))
	}
	if err := profiler.Stop(); err != nil {
		log.Error("Failed to stop profiler", zap.Error(err))
	}
	if err := providers.Shutdown(shutdownCtx); err != nil {
		log.Error("Failed to flush telemetry", zap.Error(err))
	}

	log.Info("Server exited")
}
