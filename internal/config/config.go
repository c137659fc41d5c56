package config

import (
	"os"
)

// Config содержит настройки приложения
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Export   ExportConfig
}

// ServerConfig - настройки HTTP сервера
type ServerConfig struct {
	Port         string
	SeedDemoData bool
}

// DatabaseConfig - настройки встроенной БД.
// Path ":memory:" означает, что данные живут только в памяти процесса
// и теряются при перезапуске.
type DatabaseConfig struct {
	Path string
}

// ExportConfig - настройки адаптера экспорта таблиц.
// Backend "stub" возвращает фиктивный URL, "xlsx" пишет реальный
// файл в Dir и отдаёт его через /exports/.
type ExportConfig struct {
	Backend string
	Dir     string
}

// Load загружает конфигурацию из переменных окружения
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			SeedDemoData: getEnv("SEED_DEMO_DATA", "false") == "true",
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", ":memory:"),
		},
		Export: ExportConfig{
			Backend: getEnv("EXPORT_BACKEND", "stub"),
			Dir:     getEnv("EXPORT_DIR", "exports"),
		},
	}
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
