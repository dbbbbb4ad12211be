package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"squadtab-go/pkg/logger"
)

type Config struct {
	HTTPPort       string
	Env            string
	AllowedOrigins []string
	Groups         GroupsConfig
	DB             DBConfig
	Supabase       SupabaseConfig
}

type GroupsConfig struct {
	CacheTTL      time.Duration
	WatchInterval time.Duration
}

type DBConfig struct {
	DSN             string
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	TimeZone        string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type SupabaseConfig struct {
	URL             string
	PublishableKey  string
	ServiceKey      string
	AuthTimeout     time.Duration
	FunctionTimeout time.Duration
	SkipAuth        bool
	MockUserID      string
	MockUserEmail   string
	MockUserName    string
	MockUserAvatar  string
}

func Load(log logger.Logger) (Config, error) {
	if err := loadDotEnv(log); err != nil {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	return Config{
		HTTPPort:       getEnv("HTTP_PORT", "8080"),
		Env:            getEnv("ENV", "development"),
		AllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:5173"}),
		Groups: GroupsConfig{
			CacheTTL:      getEnvDuration("GROUP_CACHE_TTL", time.Minute),
			WatchInterval: getEnvDuration("GROUP_WATCH_INTERVAL", 30*time.Second),
		},
		DB: DBConfig{
			DSN:             getEnv("DB_DSN", ""),
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "postgres"),
			Password:        getEnv("DB_PASSWORD", "postgres"),
			Name:            getEnv("DB_NAME", "squadtab"),
			SSLMode:         getEnv("DB_SSLMODE", "disable"),
			TimeZone:        getEnv("DB_TIMEZONE", "UTC"),
			MaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getEnvDuration("DB_CONN_MAX_LIFETIME", 30*time.Minute),
		},
		Supabase: SupabaseConfig{
			URL:             getEnv("SUPABASE_URL", ""),
			PublishableKey:  getEnv("SUPABASE_PUBLISHABLE_KEY", ""),
			ServiceKey:      getEnv("SUPABASE_SERVICE_KEY", ""),
			AuthTimeout:     getEnvDuration("SUPABASE_AUTH_TIMEOUT", 5*time.Second),
			FunctionTimeout: getEnvDuration("SUPABASE_FUNCTION_TIMEOUT", 10*time.Second),
			SkipAuth:        getEnvBool("AUTH_SKIP", false),
			MockUserID:      getEnv("AUTH_MOCK_USER_ID", "00000000-0000-0000-0000-000000000001"),
			MockUserEmail:   getEnv("AUTH_MOCK_USER_EMAIL", ""),
			MockUserName:    getEnv("AUTH_MOCK_USER_NAME", ""),
			MockUserAvatar:  getEnv("AUTH_MOCK_USER_AVATAR_URL", ""),
		},
	}, nil
}

func (c DBConfig) GetDSN() string {
	if c.DSN != "" {
		return c.DSN
	}
	return "host=" + c.Host +
		" user=" + c.User +
		" password=" + c.Password +
		" dbname=" + c.Name +
		" port=" + c.Port +
		" sslmode=" + c.SSLMode +
		" TimeZone=" + c.TimeZone
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvList(key string, fallback []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			result = append(result, part)
		}
	}
	if len(result) == 0 {
		return fallback
	}
	return result
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}
