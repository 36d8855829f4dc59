package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment    string // ENV
	DataFile       string // DATA_FILE — файл данных системы
	DBDSN          string // DB_DSN — опционально, включает архив снапшотов
	MigrationsPath string // MIGRATIONS_PATH
}

// Load читает конфигурацию из .env и переменных окружения.
// Обязательных полей нет: без DB_DSN система работает только с файлами.
func Load() (*Config, error) {
	// Пытаемся загрузить .env файл (игнорируем ошибку, если файла нет)
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Environment:    os.Getenv("ENV"),
		DataFile:       os.Getenv("DATA_FILE"),
		DBDSN:          os.Getenv("DB_DSN"),
		MigrationsPath: os.Getenv("MIGRATIONS_PATH"),
	}

	// Дефолтные значения
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.DataFile == "" {
		cfg.DataFile = "data/system.json"
	}
	if cfg.MigrationsPath == "" {
		cfg.MigrationsPath = "migrations"
	}

	return cfg, nil
}

// ArchiveEnabled сообщает, настроен ли архив снапшотов в Postgres.
func (c *Config) ArchiveEnabled() bool {
	return c.DBDSN != ""
}
