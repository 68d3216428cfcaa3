package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"tempo_fetcher/internal/config"
	"tempo_fetcher/internal/extract"
	"tempo_fetcher/internal/jira"
	"tempo_fetcher/internal/publisher"
	"tempo_fetcher/internal/retry"
	"tempo_fetcher/internal/scheduler"
	"tempo_fetcher/internal/storage/postgres"
	"tempo_fetcher/internal/tempo"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	// Setup logger
	logger := setupLogger("info")

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}
	logger.Info("connected to database")

	// Initialize RabbitMQ publisher
	rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
		URL:        cfg.RabbitMQ.URL,
		Exchange:   cfg.RabbitMQ.Exchange,
		RoutingKey: cfg.RabbitMQ.RoutingKey,
		QueueName:  cfg.RabbitMQ.QueueName,
	}, logger)
	if err != nil {
		logger.Error("failed to connect to rabbitmq", "error", err)
		os.Exit(1)
	}
	defer rabbitMQ.Close()

	// Initialize stores
	txManager := postgres.NewTransactionManager(db)
	worklogStore := postgres.NewWorklogStore(db, txManager)
	approvalStore := postgres.NewApprovalStore(db, txManager)
	teamStore := postgres.NewTeamStore(db, txManager)
	authorStore := postgres.NewAuthorStore(db, txManager)
	attributeStore := postgres.NewAttributeStore(db, txManager)
	stateStore := postgres.NewSyncStateStore(db)

	// Initialize upstream clients
	retryPolicy := retry.Policy{
		MaxAttempts: cfg.Retry.MaxAttempts,
		Delay:       cfg.Retry.Delay,
	}

	tempoClient := tempo.New(tempo.Config{
		BaseURL:      cfg.Tempo.BaseURL,
		APIToken:     cfg.Tempo.APIToken,
		Timeout:      cfg.Tempo.Timeout,
		Retry:        retryPolicy,
		MapChunkSize: cfg.Sync.MapChunkSize,
	}, logger)

	jiraClient := jira.New(jira.Config{
		BaseURL:                cfg.Jira.BaseURL(),
		UserEmail:              cfg.Jira.UserEmail,
		APIToken:               cfg.Jira.APIToken,
		Timeout:                cfg.Jira.Timeout,
		Retry:                  retryPolicy,
		MaxConsecutiveFailures: cfg.Retry.MaxConsecutiveFailures,
	}, logger)

	// Create dataset services
	runner := extract.NewRunner(
		extract.NewWorklogService(tempoClient, worklogStore, logger, cfg.Sync.PageLimit),
		extract.NewApprovalService(tempoClient, approvalStore, logger, cfg.Sync.FallbackStep),
		extract.NewTeamService(tempoClient, teamStore, logger),
		extract.NewWorklogAuthorService(tempoClient, jiraClient, authorStore, logger),
		extract.NewAttributeService(tempoClient, attributeStore, logger, cfg.Sync.MapChunkSize),
		stateStore,
		rabbitMQ,
		logger,
		cfg.Sync,
	)

	sched := scheduler.NewScheduler(runner, cfg.Sync.Interval, cfg.Sync.RunTimeout, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	logger.Info("starting tempo extractor",
		"since", cfg.Sync.Since,
		"datasets", cfg.Sync.Datasets,
		"interval", cfg.Sync.Interval,
	)

	if err := sched.Start(ctx); err != nil && err != context.Canceled {
		logger.Error("scheduler error", "error", err)
		os.Exit(1)
	}
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
