package cmd

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	config "task-tracker.com/task-tracker/internal/configs"
	httpapi "task-tracker.com/task-tracker/internal/http"
	"task-tracker.com/task-tracker/internal/logger"
	"task-tracker.com/task-tracker/internal/metrics"
	"task-tracker.com/task-tracker/internal/migrations"
	"task-tracker.com/task-tracker/internal/queue"
	"task-tracker.com/task-tracker/internal/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Starts the task tracker HTTP API and the database worker pool",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(v)
		if err != nil {
			return err
		}
		logger.Init(cfg.LogLevel, cfg.LogJSON)

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		database, err := config.NewDatabaseClient(cfg.DatabaseDSN, cfg.LogLevel)
		if err != nil {
			return err
		}
		sqlDB, err := database.DB()
		if err != nil {
			return err
		}
		defer sqlDB.Close()

		if cfg.AutoMigrate {
			dialect := config.DialectFor(cfg.DatabaseDSN)
			if err := migrations.Run(ctx, sqlDB, dialect, "up"); err != nil {
				return err
			}
			version, err := migrations.Version(ctx, sqlDB, dialect)
			if err != nil {
				return err
			}
			logger.Info("database schema ready", "dialect", dialect, "version", version)
		}

		var tokenManager queue.TokenManager = queue.NoopTokenManager{}
		if cfg.RedisAddr != "" {
			redisClient, err := config.NewRedisClient(cfg.RedisAddr)
			if err != nil {
				return err
			}
			defer redisClient.Close()

			redisTokens := queue.NewRedisTokenManager(redisClient, cfg.RedisQueueKey)
			if err := redisTokens.InitializeTokens(ctx, cfg.QueueSize); err != nil {
				return err
			}
			tokenManager = redisTokens
			logger.Info("admission tokens enabled", "redis", cfg.RedisAddr, "tokens", cfg.QueueSize)
		}

		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		m := metrics.New(reg)

		pool := services.NewPoolService(database, cfg.Workers, m)
		taskService := services.NewTaskService(tokenManager, pool)

		e := echo.New()
		e.HideBanner = true
		e.HidePort = true
		httpapi.Register(e, httpapi.NewHandler(taskService, cfg.Location()), httpapi.Options{
			RateLimitPerMinute: cfg.RateLimit,
			Metrics:            m,
			Gatherer:           reg,
		})

		go func() {
			logger.Info("HTTP server listening", "addr", cfg.AppURL, "workers", cfg.Workers)
			if err := e.Start(cfg.AppURL); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("server stopped", "error", err)
				stop()
			}
		}()

		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout())
		defer cancel()

		if err := e.Shutdown(shutdownCtx); err != nil {
			logger.Warn("HTTP server shutdown incomplete", "error", err)
		}
		pool.Shutdown(shutdownCtx)

		logger.Info("HTTP server and worker pool shut down gracefully")
		return nil
	},
}

func init() {
	flags := serveCmd.Flags()
	flags.String("host", "", "listen host (env APP_HOST)")
	flags.String("port", "", "listen port (env APP_PORT or SERVER_PORT)")
	flags.Int("workers", 0, "database workers (env TASK_WORKERS)")

	bindFlag(flags.Lookup("host"), config.KeyAppHost)
	bindFlag(flags.Lookup("port"), config.KeyAppPort)
	bindFlag(flags.Lookup("workers"), config.KeyWorkers)

	rootCmd.AddCommand(serveCmd)
}
