package internal

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"property-showcase/internal/adapters/contact"
	"property-showcase/internal/adapters/fixtures"
	logger_adapter "property-showcase/internal/adapters/logger"
	"property-showcase/internal/adapters/rest"
	"property-showcase/internal/adapters/session"
	"property-showcase/internal/configs"
	"property-showcase/internal/core/port"
	"property-showcase/internal/core/usecase"
	fluentlogger "property-showcase/pkg/fluent_logger"

	"github.com/fluent/fluent-logger-golang/fluent"
)

// App – структура приложения
type App struct {
	config       *configs.AppConfig
	apiServer    *rest.Server
	fluentClient *fluent.Fluent
	logger       port.LoggerPort
}

// NewApp создает приложение: здесь все зависимости создаются и связываются.
// Некорректные fixture-данные - фатальная ошибка запуска.
func NewApp(envPath string) (*App, error) {
	appConfig, err := configs.LoadConfig(envPath)
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}

	// --- 1. ЛОГГЕРЫ ---
	var activeLoggers []port.LoggerPort

	stdoutLogger := logger_adapter.NewSlogAdapter(logger_adapter.SlogConfig{
		Level:    parseLogLevel(appConfig.StdoutLogger.Level),
		IsJSON:   appConfig.StdoutLogger.IsJSON,
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

	// --- 2. ИСХОДЯЩИЕ АДАПТЕРЫ ---
	propertySource, err := fixtures.NewEmbeddedSource()
	if err != nil {
		appLogger.Error("Fixture data is malformed", err, nil)
		closeFluent(fluentClient)
		return nil, fmt.Errorf("failed to load fixture data: %w", err)
	}

	sessionRegistry := session.NewMemoryRegistry(appConfig.Sessions.MaxSessions)
	contactSink := contact.NewLogSink(baseLogger)
	appLogger.Info("Outgoing adapters initialized.", port.Fields{"max_sessions": appConfig.Sessions.MaxSessions})

	// --- 3. USE CASES ---
	openSessionUseCase := usecase.NewOpenSessionUseCase(propertySource, sessionRegistry)
	closeSessionUseCase := usecase.NewCloseSessionUseCase(sessionRegistry)
	browseUseCase := usecase.NewBrowsePropertiesUseCase(sessionRegistry)
	updateFiltersUseCase := usecase.NewUpdateFiltersUseCase(sessionRegistry)
	getFilterOptionsUseCase := usecase.NewGetFilterOptionsUseCase(propertySource)
	selectionUseCase := usecase.NewSelectionUseCase(sessionRegistry)
	contactAgentUseCase := usecase.NewContactAgentUseCase(sessionRegistry, contactSink)

	appLogger.Info("All use cases initialized.", nil)

	// --- 4. ВХОДЯЩИЕ АДАПТЕРЫ ---
	apiServer := rest.NewServer(
		rest.ServerConfig{Port: appConfig.Rest.PORT, AllowedOrigins: appConfig.Rest.AllowedOrigins},
		rest.NewSessionHandler(openSessionUseCase, closeSessionUseCase),
		rest.NewPropertyHandler(browseUseCase, selectionUseCase),
		rest.NewFilterHandler(browseUseCase, updateFiltersUseCase, getFilterOptionsUseCase),
		rest.NewContactHandler(contactAgentUseCase),
		baseLogger,
	)
	appLogger.Info("REST API server configured.", nil)

	return &App{
		config:       appConfig,
		apiServer:    apiServer,
		fluentClient: fluentClient,
		logger:       appLogger,
	}, nil
}

// Run запускает HTTP-сервер и ждет сигнала завершения или ошибки сервера.
func (a *App) Run() error {
	defer closeFluent(a.fluentClient)

	errorsCh := make(chan error, 1)
	go func() {
		if err := a.apiServer.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errorsCh <- fmt.Errorf("failed to start HTTP server: %w", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	a.logger.Info("Application running. Waiting for signals or server error...", nil)

	var runErr error
	select {
	case receivedSignal := <-quit:
		a.logger.Warn("Received OS signal, shutting down...", port.Fields{"signal": receivedSignal.String()})
	case runErr = <-errorsCh:
		a.logger.Error("HTTP server failed, shutting down", runErr, nil)
	}

	ctx, cancel := context.WithTimeout(context.Background(), a.config.ShutdownTimeout)
	defer cancel()
	if err := a.apiServer.Stop(ctx); err != nil {
		a.logger.Error("Error during API server shutdown", err, nil)
	}

	a.logger.Info("Application shut down gracefully.", nil)
	return runErr
}

func closeFluent(client *fluent.Fluent) {
	if client == nil {
		return
	}
	if err := client.Close(); err != nil {
		// fluent уже может быть недоступен, поэтому только stdout
		fmt.Printf("ERROR: Error closing fluent client: %v\n", err)
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
