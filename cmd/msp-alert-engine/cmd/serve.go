package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/donaldgifford/msp-alert-engine/api/openapi"
	"github.com/donaldgifford/msp-alert-engine/internal/api/handlers"
	"github.com/donaldgifford/msp-alert-engine/internal/api/middleware"
	"github.com/donaldgifford/msp-alert-engine/internal/config"
	"github.com/donaldgifford/msp-alert-engine/internal/engine"
	"github.com/donaldgifford/msp-alert-engine/internal/ingest"
	"github.com/donaldgifford/msp-alert-engine/internal/realtime"
	"github.com/donaldgifford/msp-alert-engine/internal/store"
	"github.com/donaldgifford/msp-alert-engine/internal/telemetry"
	"github.com/donaldgifford/msp-alert-engine/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

var migrateOnStart bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server, escalation scheduler and ingest subscribers",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().BoolVar(&migrateOnStart, "migrate", false, "run database migrations before serving")
	rootCmd.AddCommand(serveCmd)
}

// apiEngine is the engine surface the HTTP API calls into.
type apiEngine interface {
	handlers.SampleIngester
	handlers.AlertTransitioner
	handlers.EscalationScanner
}

// serverDeps is everything the HTTP server routes to.
type serverDeps struct {
	store  store.Store
	db     handlers.Pinger
	engine apiEngine
	hub    http.Handler
	health []handlers.HealthOption
	log    *slog.Logger
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := logger.NewService(cfg.Logging.Level, cfg.Logging.Format, logger.Options{
		Service:  cfg.Telemetry.ServiceName,
		Hostname: cfg.Logging.Hostname,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTelemetry, err := telemetry.Setup(ctx, cfg.Telemetry, Version, log)
	if err != nil {
		return fmt.Errorf("setting up telemetry: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdownTelemetry(flushCtx); err != nil {
			log.Warn("flushing telemetry", "error", err)
		}
	}()

	instruments, err := telemetry.NewInstruments()
	if err != nil {
		return fmt.Errorf("creating instruments: %w", err)
	}

	pg, err := store.NewPostgresStore(ctx, cfg.Database.DSN(), cfg.Database.PoolSize)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer pg.Close()

	if migrateOnStart {
		if err := pg.Migrate(ctx); err != nil {
			return fmt.Errorf("running migrations: %w", err)
		}
		log.Info("migrations complete")
	}

	var hub *realtime.Hub
	if cfg.Notifications.Realtime.Enabled {
		hub = realtime.NewHub(
			realtime.WithLogger(log),
			realtime.WithBufferSize(cfg.Notifications.Realtime.BufferSize),
			realtime.WithWriteTimeout(cfg.Notifications.Realtime.WriteTimeout),
		)
		go hub.Run(ctx)
	}

	pubs, err := buildPublishers(ctx, &cfg.Events, hub, log)
	if err != nil {
		return err
	}
	defer pubs.Close()

	eng := engine.NewEngine(
		pg,
		buildRouter(&cfg.Notifications, hub, log),
		buildDirectory(&cfg.Directory, pg),
		pubs.publisher,
		engine.WithLogger(log),
		engine.WithSuppressionWindow(cfg.Alerts.SuppressionWindow),
		engine.WithAutoResolve(cfg.Alerts.AutoResolve),
		engine.WithWorkers(cfg.Escalation.Workers),
		engine.WithInstruments(instruments),
	)

	if cfg.Escalation.IsEnabled() {
		sched, err := engine.NewScheduler(eng, pg, engine.SchedulerConfig{
			ScanInterval:      cfg.Escalation.ScanInterval,
			RetentionInterval: cfg.Retention.Interval,
			RetentionMaxAge:   cfg.Retention.Samples,
			LockTTL:           cfg.Escalation.LockTTL,
		}, log)
		if err != nil {
			return fmt.Errorf("creating scheduler: %w", err)
		}
		sched.Start()
		defer func() { <-sched.Stop().Done() }()
	} else {
		log.Warn("escalation scheduler disabled; scans only run via the API")
	}

	health := pubs.checks
	if cfg.Ingest.MQTT.Enabled {
		sub := ingest.NewSubscriber(&cfg.Ingest.MQTT, eng, ingest.WithLogger(log))
		if err := sub.Start(ctx); err != nil {
			return err
		}
		defer sub.Stop()
		health = append(health, handlers.WithCheck("mqtt", sub.Ping))
	}

	deps := serverDeps{store: pg, db: pg, engine: eng, health: health, log: log}
	if hub != nil {
		deps.hub = hub
	}
	e := newServer(deps)
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Info("starting server", "addr", addr, "version", Version)

	errCh := make(chan error, 1)
	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	}

	log.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	log.Info("server stopped")
	return nil
}

// newServer builds the Echo instance with middleware, probes, the huma API
// and the optional websocket endpoint.
func newServer(d serverDeps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recovery(d.log))
	e.Use(middleware.RequestLog(d.log))
	e.Use(middleware.Metrics())

	health := handlers.NewHealthHandler(d.db, d.health...)
	e.GET("/healthz", health.Healthz)
	e.GET("/readyz", health.Readyz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	if d.hub != nil {
		e.GET("/ws", echo.WrapHandler(d.hub))
	}

	api := humaecho.New(e, huma.DefaultConfig("MSP Alert Engine API", Version))
	handlers.RegisterAgentRoutes(api, handlers.NewAgentHandler(d.engine))
	handlers.RegisterDeviceRoutes(api, handlers.NewDeviceHandler(d.store))
	handlers.RegisterRuleRoutes(api, handlers.NewRuleHandler(d.store))
	handlers.RegisterPolicyRoutes(api, handlers.NewPolicyHandler(d.store))
	handlers.RegisterAlertRoutes(api, handlers.NewAlertHandler(d.store, d.engine))
	handlers.RegisterRoleRoutes(api, handlers.NewRoleHandler(d.store))
	handlers.RegisterEscalationRoutes(api, handlers.NewEscalationHandler(d.engine))
	handlers.RegisterJobRoutes(api, handlers.NewJobsHandler(d.store))

	openapi.RegisterRoutes(e, "/openapi.json")

	return e
}
