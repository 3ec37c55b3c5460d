package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/DukeRupert/florian/internal"
	"github.com/DukeRupert/florian/internal/contact"
	"github.com/DukeRupert/florian/internal/content"
	"github.com/DukeRupert/florian/internal/csrf"
	"github.com/DukeRupert/florian/internal/email"
	"github.com/DukeRupert/florian/internal/handler"
	"github.com/DukeRupert/florian/internal/jobs"
	"github.com/DukeRupert/florian/internal/metrics"
	"github.com/DukeRupert/florian/internal/middleware"
	"github.com/DukeRupert/florian/internal/repository"
	"github.com/DukeRupert/florian/internal/service"
	"github.com/DukeRupert/florian/internal/storage"
	"github.com/DukeRupert/florian/internal/worker"
)

// formSweepInterval is how often idle contact forms are evicted.
const formSweepInterval = time.Minute

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "florian",
		Short:         "Florian Technologies website",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context())
		},
	}

	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server and, if enabled, the background worker",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context())
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations and exit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return migrate(cmd.Context())
		},
	})

	return root
}

// setup loads configuration and builds the logger. The closer flushes the
// log file, if any.
func setup() (*internal.Config, *slog.Logger, io.Closer, error) {
	cfg, err := internal.NewConfig()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("config initialization failed: %w", err)
	}
	w, closer := internal.LogWriter(os.Stdout, cfg)
	return cfg, internal.NewLogger(w, cfg.Env, cfg.LogLevel), closer, nil
}

func openDB(ctx context.Context, url string) (*sql.DB, error) {
	db, err := sql.Open("pgx", url)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}
	return db, nil
}

func migrate(ctx context.Context) error {
	cfg, logger, closer, err := setup()
	if err != nil {
		return err
	}
	defer closer.Close()

	if cfg.DatabaseUrl == "" {
		return errors.New("DATABASE_URL is required to run migrations")
	}
	db, err := openDB(ctx, cfg.DatabaseUrl)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := internal.RunMigrations(ctx, db, logger); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	return nil
}

func serve(ctx context.Context) error {
	cfg, logger, closer, err := setup()
	if err != nil {
		return err
	}
	defer closer.Close()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	site := content.Default()
	isSecure := cfg.IsSecure()

	// ==========================================================================
	// Storage (image variants, submission archive)
	// ==========================================================================

	store, err := storage.New(storage.Config{
		Provider: cfg.StorageProvider,
		Local:    storage.LocalConfig{BasePath: cfg.LocalStoragePath},
		R2: storage.R2Config{
			AccountID:       cfg.R2AccountID,
			AccessKeyID:     cfg.R2AccessKeyID,
			SecretAccessKey: cfg.R2SecretAccessKey,
			BucketName:      cfg.R2BucketName,
			Endpoint:        cfg.R2Endpoint,
		},
	}, logger)
	if err != nil {
		return fmt.Errorf("storage initialization failed: %w", err)
	}

	// ==========================================================================
	// Contact delivery
	// ==========================================================================

	var (
		db        *sql.DB
		submitter contact.Submitter
		jobWorker *worker.Worker
	)

	if cfg.UsesPipeline() {
		db, err = openDB(ctx, cfg.DatabaseUrl)
		if err != nil {
			return err
		}
		defer db.Close()

		if err := internal.RunMigrations(ctx, db, logger); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
		logger.Info("Database ready")

		queries := repository.New(db)
		contactService, err := service.NewContactService(
			service.NewSQLContactStore(db, queries),
			store,
			[]byte(cfg.IPHashKey),
			logger,
		)
		if err != nil {
			return fmt.Errorf("contact service initialization failed: %w", err)
		}
		submitter = contactService

		if cfg.WorkerEnabled {
			emailService, err := newEmailService(cfg, logger)
			if err != nil {
				return err
			}

			workerCfg := worker.DefaultConfig()
			workerCfg.Concurrency = cfg.WorkerConcurrency
			workerCfg.PollInterval = cfg.WorkerPollInterval
			workerCfg.JobTimeout = cfg.WorkerJobTimeout

			jobWorker, err = worker.New(worker.NewSQLStore(db, queries), workerCfg, logger)
			if err != nil {
				return fmt.Errorf("worker initialization failed: %w", err)
			}
			jobWorker.Register(jobs.NewNotifyContactHandler(queries, emailService, site, cfg.ContactRecipientOverride, logger))
		}
	} else {
		submitter = contact.NewSimulatedSubmitter(cfg.ContactSimulatedDelay, logger)
	}

	registry := contact.NewRegistry(contact.WithTimeout(submitter, cfg.ContactSubmitTimeout), cfg.ContactFormIdle, logger)
	go registry.Run(ctx, formSweepInterval)

	// ==========================================================================
	// Middleware
	// ==========================================================================

	limiter := middleware.NewRateLimiter(cfg.ContactRateLimit, cfg.ContactRateWindow)
	go limiter.Run(ctx)

	rateLimitMw := middleware.NewRateLimitMiddleware(limiter, logger)
	loggingMw := middleware.NewRequestLoggingMiddleware(logger)
	securityMw := middleware.NewSecurityHeadersMiddleware(isSecure)
	metricsAuthMw := middleware.NewMetricsAuthMiddleware(cfg.MetricsUsername, cfg.MetricsPassword, logger)

	// ==========================================================================
	// Handlers
	// ==========================================================================

	renderer := handler.NewRenderer(site, logger)
	images := service.NewImageService(
		os.DirFS(filepath.Join(cfg.StaticDir, "images")),
		site.Images,
		store,
		service.NewImagingResizer(),
		logger,
	)

	// A nil *sql.DB must not become a non-nil Pinger.
	var pinger handler.Pinger
	if db != nil {
		pinger = db
	}

	// ==========================================================================
	// Create router and register routes
	// ==========================================================================

	mux := http.NewServeMux()

	staticFS := http.FileServer(http.Dir(cfg.StaticDir))
	mux.Handle("GET /static/", http.StripPrefix("/static/", staticFS))
	mux.Handle("GET /metrics", metricsAuthMw.Handler(promhttp.Handler()))

	handler.NewHealthHandler(pinger).RegisterRoutes(mux)
	handler.NewImageHandler(images, logger).RegisterRoutes(mux)
	handler.NewContactHandler(renderer, registry, logger, isSecure).RegisterRoutes(mux, rateLimitMw.Limit, csrf.Protect(logger))
	handler.NewSiteHandler(renderer).RegisterRoutes(mux)

	root := middleware.Stack(metrics.Middleware, loggingMw.Handler, securityMw.Handler)

	// ==========================================================================
	// Start server
	// ==========================================================================

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           root(mux),
		ReadHeaderTimeout: 10 * time.Second,
	}

	if jobWorker != nil {
		jobWorker.Start(ctx)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("Server started",
			"address", server.Addr,
			"env", cfg.Env,
			"contact_delivery", cfg.ContactDelivery,
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received, initiating graceful shutdown...")
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownPeriod)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}
	if jobWorker != nil {
		jobWorker.Stop()
	}

	logger.Info("Server stopped")
	return nil
}

// newEmailService sends through SMTP, or logs emails when no host is set.
func newEmailService(cfg *internal.Config, logger *slog.Logger) (email.EmailService, error) {
	if cfg.SMTPHost == "" {
		logger.Warn("SMTP_HOST not set, contact emails will be logged instead of sent")
		return email.NewLogEmailService(logger), nil
	}
	svc, err := email.NewSMTPEmailService(email.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		From:     cfg.SMTPFrom,
		FromName: cfg.SMTPFromName,
		Timeout:  cfg.SMTPTimeout,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("email service initialization failed: %w", err)
	}
	return svc, nil
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		log.Fatal(err)
	}
}
