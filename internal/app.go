package internal

import (
	logger_adapter "admin-console/internal/adapters/logger"
	"admin-console/internal/adapters/listings_api_client"
	rabbitmq_adapter "admin-console/internal/adapters/rabbitmq"
	"admin-console/internal/adapters/rest"
	"admin-console/internal/adapters/session"
	"admin-console/internal/configs"
	"admin-console/internal/constants"
	"admin-console/internal/core/port"
	"admin-console/internal/core/usecase"
	fluentlogger "admin-console/pkg/fluent_logger"
	"admin-console/pkg/postgres"
	"admin-console/pkg/rabbitmq/rabbitmq_common"
	"admin-console/pkg/rabbitmq/rabbitmq_producer"
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/fluent/fluent-logger-golang/fluent"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	config    *configs.AppConfig
	apiServer *rest.Server

	// закрываются в обратном порядке при остановке
	closers []namedCloser

	logger       port.LoggerPort
	fluentClient *fluent.Fluent
}

type namedCloser struct {
	name  string
	close func() error
}

func NewApp() (*App, error) {
	appConfig, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}

	// --- 1. Логгеры ---
	var activeLoggers []port.LoggerPort

	stdoutLogger := logger_adapter.NewSlogAdapter(logger_adapter.SlogConfig{
		Level:    parseLogLevel(appConfig.StdoutLogger.Level),
		IsJSON:   false,
		UseColor: true,
	})
	activeLoggers = append(activeLoggers, stdoutLogger)

	var fluentClient *fluent.Fluent
	if appConfig.FluentBit.Enabled {
		fluentClient, err = fluentlogger.NewClient(fluentlogger.Config{
			Host:      appConfig.FluentBit.Host,
			Port:      appConfig.FluentBit.Port,
			TagPrefix: appConfig.AppName,
			Async:     true,
		})
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit client", err, nil)
			return nil, fmt.Errorf("failed to create fluentbit client: %w", err)
		}

		fluentAdapter, err := logger_adapter.NewFluentLoggerAdapter(fluentClient, parseLogLevel(appConfig.FluentBit.Level))
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit adapter", err, nil)
			fluentClient.Close()
			return nil, err
		}
		activeLoggers = append(activeLoggers, fluentAdapter)
	}

	multiLogger, err := logger_adapter.NewMultiloggerAdapter(activeLoggers...)
	if err != nil {
		return nil, fmt.Errorf("failed to create multi-logger: %w", err)
	}

	baseLogger := multiLogger.WithFields(port.Fields{"service_name": appConfig.AppName})
	appLogger := baseLogger.WithFields(port.Fields{"component": "app"})
	appLogger.Info("Logger system initialized", port.Fields{
		"active_loggers": len(activeLoggers), "fluent_enabled": appConfig.FluentBit.Enabled,
	})

	application := &App{
		config:       appConfig,
		logger:       appLogger,
		fluentClient: fluentClient,
	}

	initCtx, cancelInit := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelInit()

	// --- 2. Хранилище сессии ---
	sessionStore, err := application.newSessionStore(initCtx)
	if err != nil {
		application.closeAll()
		return nil, err
	}
	appLogger.Info("Session store initialized", port.Fields{"backend": appConfig.Session.Store})

	// --- 3. Журнал аудита ---
	auditTrail, err := application.newAuditTrail(baseLogger)
	if err != nil {
		application.closeAll()
		return nil, err
	}

	// --- 4. Клиент бэкенда и экраны ---
	client := listings_api_client.NewClient(appConfig.ListingsAPI.BaseURL, sessionStore, &http.Client{})
	appLogger.Info("Listings API client initialized", port.Fields{"base_url": client.BaseURL()})

	handlers := rest.NewConsoleHandlers(rest.Screens{
		Auth:       usecase.NewAuthFlow(client, sessionStore, auditTrail, appConfig.AdminEmail),
		Dashboard:  usecase.NewDashboard(client),
		Properties: usecase.NewPropertiesScreen(client, auditTrail),
		Form:       usecase.NewPropertyForm(client, client, auditTrail),
		Featured:   usecase.NewFeaturedScreen(client, auditTrail),
		Queries:    usecase.NewQueriesScreen(client),
		Ratings:    usecase.NewRatingsScreen(client),
		Users:      usecase.NewUsersScreen(client, auditTrail),
	})
	appLogger.Info("All screens initialized", nil)

	application.apiServer = rest.NewServer(rest.ServerConfig{
		Port:           appConfig.Rest.Port,
		AllowedOrigins: appConfig.Rest.AllowedOrigins,
	}, handlers, sessionStore, baseLogger)

	return application, nil
}

func (a *App) addCloser(name string, fn func() error) {
	a.closers = append(a.closers, namedCloser{name: name, close: fn})
}

func (a *App) newSessionStore(ctx context.Context) (port.SessionStorePort, error) {
	cfg := a.config.Session
	switch cfg.Store {
	case configs.SessionStoreMemory:
		return session.NewMemoryStore(), nil

	case configs.SessionStoreRedis:
		client, err := session.NewRedisClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			a.logger.Error("Failed to connect to redis", err, nil)
			return nil, err
		}
		a.addCloser("redis client", client.Close)
		store, err := session.NewRedisStore(client, cfg.Redis.KeyPrefix)
		if err != nil {
			return nil, err
		}
		return store, nil

	case configs.SessionStorePostgres:
		pool, err := postgres.NewClient(ctx, postgres.Config{
			DatabaseURL: cfg.Postgres.DatabaseURL,
			MaxConns:    cfg.Postgres.MaxConns,
		})
		if err != nil {
			a.logger.Error("Failed to connect to postgres", err, nil)
			return nil, err
		}
		a.addCloser("postgres pool", func() error { pool.Close(); return nil })
		store, err := session.NewPostgresStore(ctx, pool)
		if err != nil {
			return nil, err
		}
		return store, nil

	default:
		path := cfg.FilePath
		if path == "" {
			defaultPath, err := session.DefaultFilePath()
			if err != nil {
				return nil, fmt.Errorf("failed to resolve session file path: %w", err)
			}
			path = defaultPath
		}
		store, err := session.NewFileStore(path)
		if err != nil {
			return nil, err
		}
		return store, nil
	}
}

func (a *App) newAuditTrail(baseLogger port.LoggerPort) (port.AuditTrailPort, error) {
	if !a.config.Audit.Enabled {
		a.logger.Info("Audit trail disabled", nil)
		return rabbitmq_adapter.NoopAuditTrail{}, nil
	}

	connManagerBridge := rabbitmq_adapter.NewPkgLoggerBridge(baseLogger.WithFields(port.Fields{"component": "rabbitmq_conn_manager"}))
	connManager, err := rabbitmq_common.NewConnectionManager(rabbitmq_common.Config{URL: a.config.Audit.RabbitMQURL}, connManagerBridge)
	if err != nil {
		a.logger.Error("Failed to create connection manager", err, nil)
		return nil, fmt.Errorf("failed to create connection manager: %w", err)
	}
	a.addCloser("rabbitmq connection manager", connManager.Close)
	a.logger.Info("RabbitMQ Connection Manager initialized.", nil)

	producer, err := rabbitmq_producer.NewPublisher(rabbitmq_producer.PublisherConfig{
		ExchangeName:             constants.AuditExchangeName,
		ExchangeType:             constants.AuditExchangeType,
		DurableExchange:          true,
		DeclareExchangeIfMissing: true,
		Logger:                   rabbitmq_adapter.NewPkgLoggerBridge(baseLogger.WithFields(port.Fields{"component": "rabbitmq_producer"})),
	}, connManager)
	if err != nil {
		return nil, fmt.Errorf("failed to create audit producer: %w", err)
	}
	a.addCloser("audit producer", producer.Close)

	publisher, err := rabbitmq_adapter.NewAdminActionPublisher(producer, constants.RoutingKeyAdminActions)
	if err != nil {
		return nil, err
	}
	a.logger.Info("Audit trail publisher initialized", port.Fields{"exchange": constants.AuditExchangeName})
	return publisher, nil
}

// closeAll закрывает ресурсы в порядке, обратном созданию
func (a *App) closeAll() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		c := a.closers[i]
		if err := c.close(); err != nil {
			a.logger.Error("Error closing "+c.name, err, nil)
		}
	}
	a.closers = nil
}

// Run запускает API консоли и ждет сигнала на завершение
func (a *App) Run() error {
	defer func() {
		a.logger.Info("Shutdown sequence initiated...", nil)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := a.apiServer.Stop(shutdownCtx); err != nil {
			a.logger.Error("Error during API server shutdown", err, nil)
		}

		a.closeAll()
		a.logger.Info("Application shut down gracefully.", nil)

		if a.fluentClient != nil {
			if err := a.fluentClient.Close(); err != nil {
				// fluent уже может быть недоступен
				fmt.Fprintf(os.Stderr, "ERROR: Error closing fluent client: %v\n", err)
			}
		}
	}()

	a.logger.Info("Application is starting...", nil)

	serverErrors := make(chan error, 1)
	go func() {
		if err := a.apiServer.Start(); err != nil {
			serverErrors <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	a.logger.Info("Application running. Waiting for signals or server error...", port.Fields{"port": a.config.Rest.Port})
	select {
	case receivedSignal := <-quit:
		a.logger.Warn("Received OS signal, shutting down...", port.Fields{"signal": receivedSignal.String()})
		return nil
	case err := <-serverErrors:
		a.logger.Error("HTTP server failed, shutting down", err, nil)
		return err
	}
}

func parseLogLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		log.Printf("Warning: Unknown log level '%s'. Defaulting to 'info'.", levelStr)
		return slog.LevelInfo
	}
}

