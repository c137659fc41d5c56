package main

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pressly/goose/v3"
	"github.com/workforce-api/internal/config"
	"github.com/workforce-api/internal/handler"
	"github.com/workforce-api/internal/repository"
	"github.com/workforce-api/internal/service"
	"github.com/workforce-api/internal/sheets"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

func main() {
	// Инициализация логгера
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Загрузка конфигурации
	cfg := config.Load()

	// Подключение к БД
	db, err := connectDB(cfg.Database)
	if err != nil {
		logger.Error("failed to open database", slog.Any("error", err))
		os.Exit(1)
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Error("failed to get sql.DB", slog.Any("error", err))
		os.Exit(1)
	}
	defer sqlDB.Close()

	// Запуск миграций
	if err := runMigrations(sqlDB); err != nil {
		logger.Error("failed to run migrations", slog.Any("error", err))
		os.Exit(1)
	}

	// Инициализация репозиториев
	empRepo := repository.NewEmployeeRepository(db)
	entryRepo := repository.NewTimeEntryRepository(db)
	schedRepo := repository.NewScheduleRepository(db)
	attRepo := repository.NewAttendanceRepository(db)

	// Инициализация адаптера экспорта
	exporter, exportsDir, err := buildExporter(cfg.Export, logger)
	if err != nil {
		logger.Error("failed to initialize exporter", slog.Any("error", err))
		os.Exit(1)
	}

	// Инициализация сервисов
	empService := service.NewEmployeeService(empRepo)
	entryService := service.NewTimeEntryService(entryRepo, empRepo)
	schedService := service.NewScheduleService(schedRepo, empRepo)
	attService := service.NewAttendanceService(attRepo, empRepo)
	analyticsService := service.NewAnalyticsService(empRepo, entryRepo)
	exportService := service.NewExportService(empRepo, schedRepo, exporter)

	if cfg.Server.SeedDemoData {
		if err := seedDemoData(context.Background(), empService, schedService, logger); err != nil {
			logger.Error("failed to seed demo data", slog.Any("error", err))
			os.Exit(1)
		}
	}

	// Инициализация хендлеров
	empHandler := handler.NewEmployeeHandler(empService, exportService, logger)
	entryHandler := handler.NewTimeEntryHandler(entryService, logger)
	schedHandler := handler.NewScheduleHandler(schedService, exportService, logger)
	attHandler := handler.NewAttendanceHandler(attService, logger)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsService, logger)

	// Настройка роутера
	router := handler.NewRouter(empHandler, entryHandler, schedHandler, attHandler, analyticsHandler, exportsDir, logger)
	httpHandler := router.Setup()

	// Настройка HTTP сервера
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpHandler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	done := make(chan bool)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		logger.Info("server is shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			logger.Error("could not gracefully shutdown the server", slog.Any("error", err))
		}
		close(done)
	}()

	logger.Info("server is starting", slog.String("port", cfg.Server.Port))
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("could not listen on port", slog.String("port", cfg.Server.Port), slog.Any("error", err))
		os.Exit(1)
	}

	<-done
	logger.Info("server stopped")
}

func connectDB(cfg config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(cfg.Path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	// Одно соединение: мутации коллекций сериализуются, а база ":memory:"
	// остаётся единой на весь процесс
	sqlDB.SetMaxOpenConns(1)

	return db, nil
}

func runMigrations(db *sql.DB) error {
	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}

	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

func buildExporter(cfg config.ExportConfig, logger *slog.Logger) (sheets.Exporter, string, error) {
	switch cfg.Backend {
	case "xlsx":
		if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
			return nil, "", fmt.Errorf("failed to create export dir: %w", err)
		}
		return sheets.NewXLSXExporter(cfg.Dir, logger), cfg.Dir, nil
	default:
		return sheets.NewStubExporter(logger), "", nil
	}
}
