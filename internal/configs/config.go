package configs

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Бэкенды хранилища сессии
const (
	SessionStoreFile     = "file"
	SessionStoreMemory   = "memory"
	SessionStoreRedis    = "redis"
	SessionStorePostgres = "postgres"
)

type ListingsAPIConfig struct {
	BaseURL string
}

type RESTConfig struct {
	Port           string
	AllowedOrigins []string
}

type SessionConfig struct {
	Store    string
	FilePath string
	Redis    RedisConfig
	Postgres PostgresConfig
}

type RedisConfig struct {
	Addr      string
	Password  string
	DB        int
	KeyPrefix string
}

type PostgresConfig struct {
	DatabaseURL string
	MaxConns    int32
}

// AuditConfig - журнал действий администратора в RabbitMQ
type AuditConfig struct {
	Enabled     bool
	RabbitMQURL string
}

type StdoutLogConfig struct {
	Level string
}

type FluentBitConfig struct {
	Host    string
	Port    int
	Enabled bool
	Level   string
}

// AppConfig хранит всю конфигурацию приложения
type AppConfig struct {
	AppName      string
	AdminEmail   string
	ListingsAPI  ListingsAPIConfig
	Rest         RESTConfig
	Session      SessionConfig
	Audit        AuditConfig
	FluentBit    FluentBitConfig
	StdoutLogger StdoutLogConfig
}

// LoadConfig читает .env (если он есть) и переменные окружения
func LoadConfig(envPath ...string) (*AppConfig, error) {
	var err error
	if len(envPath) > 0 {
		err = godotenv.Load(envPath...)
	} else {
		err = godotenv.Load()
	}
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("could not load .env file (path: %v): %w", envPath, err)
		}
		log.Printf("Info: .env file not found (path: %v), using environment only.\n", envPath)
	}

	cfg := &AppConfig{}

	cfg.AppName = getEnvAsString("APP_NAME", "admin-console")
	cfg.AdminEmail = getEnvAsString("ADMIN_EMAIL", "")

	cfg.ListingsAPI.BaseURL = strings.TrimRight(getEnvAsString("API_BASE_URL", "http://localhost:5050"), "/")
	if cfg.ListingsAPI.BaseURL == "" {
		return nil, fmt.Errorf("API_BASE_URL environment variable must not be empty")
	}

	cfg.Rest.Port = getEnvAsString("PORT", "8090")
	cfg.Rest.AllowedOrigins = getEnvAsList("CONSOLE_ALLOWED_ORIGINS", []string{"http://localhost:5173"})

	cfg.Session.Store = strings.ToLower(getEnvAsString("SESSION_STORE", SessionStoreFile))
	switch cfg.Session.Store {
	case SessionStoreFile:
		cfg.Session.FilePath = getEnvAsString("SESSION_FILE_PATH", "")
	case SessionStoreMemory:
	case SessionStoreRedis:
		cfg.Session.Redis.Addr = os.Getenv("REDIS_ADDR")
		if cfg.Session.Redis.Addr == "" {
			return nil, fmt.Errorf("REDIS_ADDR environment variable is required for SESSION_STORE=redis")
		}
		cfg.Session.Redis.Password = os.Getenv("REDIS_PASSWORD")
		cfg.Session.Redis.DB = getEnvAsInt("REDIS_DB", 0)
		cfg.Session.Redis.KeyPrefix = getEnvAsString("REDIS_KEY_PREFIX", "admin-console:")
	case SessionStorePostgres:
		cfg.Session.Postgres.DatabaseURL = os.Getenv("DATABASE_URL")
		if cfg.Session.Postgres.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL environment variable is required for SESSION_STORE=postgres")
		}
		cfg.Session.Postgres.MaxConns = int32(getEnvAsInt("DATABASE_MAX_CONNS", 2))
	default:
		return nil, fmt.Errorf("unknown SESSION_STORE %q (expected file, memory, redis or postgres)", cfg.Session.Store)
	}

	cfg.Audit.Enabled = getEnvAsBool("AUDIT_ENABLED", false)
	if cfg.Audit.Enabled {
		cfg.Audit.RabbitMQURL = os.Getenv("RABBITMQ_URL")
		if cfg.Audit.RabbitMQURL == "" {
			return nil, fmt.Errorf("RABBITMQ_URL environment variable is required when AUDIT_ENABLED is true")
		}
	}

	cfg.FluentBit.Enabled = getEnvAsBool("FLUENTBIT_ENABLED", false)
	if cfg.FluentBit.Enabled {
		cfg.FluentBit.Host = os.Getenv("FLUENTBIT_HOST")
		if cfg.FluentBit.Host == "" {
			log.Println("WARNING: FLUENTBIT_ENABLED is true, but FLUENTBIT_HOST is not set. Disabling Fluent Bit.")
			cfg.FluentBit.Enabled = false
		}
		cfg.FluentBit.Port = getEnvAsInt("FLUENTBIT_PORT", 24224)
		cfg.FluentBit.Level = getEnvAsString("FLUENTBIT_LOG_LEVEL", "info")
	}

	cfg.StdoutLogger.Level = getEnvAsString("STDOUT_LOG_LEVEL", "info")

	return cfg, nil
}

func getEnvAsString(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsList - список через запятую, пустые элементы отбрасываются
func getEnvAsList(key string, defaultValue []string) []string {
	raw, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}

// getEnvAsInt читает переменную окружения как int или возвращает значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valueInt, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Environment variable %s (value: %s) could not be parsed as int: %v. Using default value: %d\n", key, valueStr, err, defaultValue)
		return defaultValue
	}
	return valueInt
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valBool, err := strconv.ParseBool(valStr)
	if err != nil {
		log.Printf("Warning: Environment variable %s (value: %s) could not be parsed as bool: %v. Using default value: %t\n", key, valStr, err, defaultValue)
		return defaultValue
	}
	return valBool
}
