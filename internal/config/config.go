package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Application
	AppName string
	AppEnv  string
	AppPort string
	AppURL  string

	// Database
	DBHost            string
	DBPort            string
	DBDatabase        string
	DBUsername        string
	DBPassword        string
	DBMaxOpenConns    int
	DBMaxIdleConns    int
	DBConnMaxLifetime time.Duration

	// Redis
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int

	// JWT
	JWTSecret       string
	JWTAccessExpire time.Duration

	// Upload
	UploadMaxSize int
	UploadPath    string
	ExportPath    string

	// Worker
	WorkerConcurrency int

	// Asynq
	AsynqRedisAddr     string
	AsynqRedisPassword string
	AsynqRedisDB       int

	// Completeness scoring
	CompletenessRule string

	// SAKTI report layout (0-indexed columns)
	SaktiKodeAkunColumn  int
	SaktiUraianColumn    int
	SaktiRealisasiColumn int

	// Cache
	FlagCountCacheTTL  time.Duration
	ReconcileResultTTL time.Duration
}

func Load() (*Config, error) {
	// Load .env file if exists
	_ = godotenv.Load()
	_ = godotenv.Load("../../.env") // For when running from cmd/web or cmd/worker

	cfg := &Config{
		AppName: getEnv("APP_NAME", "SPM Tracker"),
		AppEnv:  getEnv("APP_ENV", "development"),
		AppPort: getEnv("APP_PORT", "3000"),
		AppURL:  getEnv("APP_URL", "http://localhost:3000"),

		DBHost:            getEnv("DB_HOST", "127.0.0.1"),
		DBPort:            getEnv("DB_PORT", "3306"),
		DBDatabase:        getEnv("DB_DATABASE", "spm"),
		DBUsername:        getEnv("DB_USERNAME", "root"),
		DBPassword:        getEnv("DB_PASSWORD", ""),
		DBMaxOpenConns:    getEnvAsInt("DB_MAX_OPEN_CONNS", 25),
		DBMaxIdleConns:    getEnvAsInt("DB_MAX_IDLE_CONNS", 25),
		DBConnMaxLifetime: getEnvAsDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),

		RedisHost:     getEnv("REDIS_HOST", "127.0.0.1"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvAsInt("REDIS_DB", 0),

		JWTSecret:       getEnv("ACCESS_TOKEN_SECRET", "change-this-secret-key"),
		JWTAccessExpire: getEnvAsDuration("JWT_ACCESS_EXPIRE", 24*time.Hour),

		UploadMaxSize: getEnvAsInt("UPLOAD_MAX_SIZE", 20971520), // 20MB
		UploadPath:    getEnv("UPLOAD_PATH", "./storage/uploads"),
		ExportPath:    getEnv("EXPORT_PATH", "./storage/exports"),

		WorkerConcurrency: getEnvAsInt("WORKER_CONCURRENCY", 4),

		AsynqRedisAddr:     getEnv("ASYNQ_REDIS_ADDR", "127.0.0.1:6379"),
		AsynqRedisPassword: getEnv("ASYNQ_REDIS_PASSWORD", ""),
		AsynqRedisDB:       getEnvAsInt("ASYNQ_REDIS_DB", 0),

		CompletenessRule: getEnv("COMPLETENESS_RULE", "v2"),

		SaktiKodeAkunColumn:  getEnvAsInt("SAKTI_KODE_AKUN_COLUMN", 7),
		SaktiUraianColumn:    getEnvAsInt("SAKTI_URAIAN_COLUMN", 13),
		SaktiRealisasiColumn: getEnvAsInt("SAKTI_REALISASI_COLUMN", 25),

		FlagCountCacheTTL:  getEnvAsDuration("FLAG_COUNT_CACHE_TTL", 10*time.Minute),
		ReconcileResultTTL: getEnvAsDuration("RECONCILE_RESULT_TTL", 24*time.Hour),
	}

	if cfg.SaktiKodeAkunColumn < 0 || cfg.SaktiUraianColumn < 0 || cfg.SaktiRealisasiColumn < 0 {
		return nil, fmt.Errorf("SAKTI column indices must not be negative")
	}

	return cfg, nil
}

func (c *Config) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true&loc=Local",
		c.DBUsername,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBDatabase,
	)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", c.RedisHost, c.RedisPort)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}
