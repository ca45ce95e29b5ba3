package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env       string
	Port      int
	APIPrefix string

	Database DatabaseConfig
	Uploads  UploadsConfig
	Admin    AdminConfig
	Sessions SessionsConfig
	Redis    RedisConfig
	Mail     MailConfig
	CORS     CORSConfig
	Log      LogConfig
	Resume   ResumeConfig
}

// DatabaseConfig locates the embedded SQLite store.
type DatabaseConfig struct {
	Path         string
	MaxOpenConns int
}

// UploadsConfig controls image upload handling and static serving.
type UploadsConfig struct {
	Dir          string
	PublicPath   string
	MaxSizeBytes int64
}

// AdminConfig seeds the initial admin account.
type AdminConfig struct {
	DefaultPassword string
}

// SessionsConfig selects the session store backend and token lifetime.
type SessionsConfig struct {
	Backend string
	TTL     time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// MailConfig configures the outbound contact notification provider.
type MailConfig struct {
	ResendAPIKey string
	From         string
	To           string
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

// ResumeConfig toggles the generated PDF resume endpoint.
type ResumeConfig struct {
	Enabled bool
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")
	cfg.APIPrefix = v.GetString("API_PREFIX")

	cfg.Database = DatabaseConfig{
		Path:         v.GetString("DB_PATH"),
		MaxOpenConns: v.GetInt("DB_MAX_OPEN_CONNS"),
	}

	cfg.Uploads = UploadsConfig{
		Dir:          v.GetString("UPLOADS_DIR"),
		PublicPath:   v.GetString("UPLOADS_PUBLIC_PATH"),
		MaxSizeBytes: v.GetInt64("UPLOAD_MAX_FILE_SIZE"),
	}

	cfg.Admin = AdminConfig{
		DefaultPassword: v.GetString("ADMIN_PASSWORD"),
	}

	cfg.Sessions = SessionsConfig{
		Backend: v.GetString("SESSIONS_BACKEND"),
		TTL:     parseDuration(v.GetString("SESSION_TTL"), 24*time.Hour),
	}

	cfg.Redis = RedisConfig{
		Host:     v.GetString("REDIS_HOST"),
		Port:     v.GetInt("REDIS_PORT"),
		Password: v.GetString("REDIS_PASSWORD"),
		DB:       v.GetInt("REDIS_DB"),
	}

	cfg.Mail = MailConfig{
		ResendAPIKey: v.GetString("RESEND_API_KEY"),
		From:         v.GetString("CONTACT_FROM"),
		To:           v.GetString("CONTACT_EMAIL"),
	}

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.Resume = ResumeConfig{
		Enabled: v.GetBool("ENABLE_RESUME_PDF"),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 3001)
	v.SetDefault("API_PREFIX", "/api")

	v.SetDefault("DB_PATH", "./data/portfolio.db")
	v.SetDefault("DB_MAX_OPEN_CONNS", 1)

	v.SetDefault("UPLOADS_DIR", "./uploads")
	v.SetDefault("UPLOADS_PUBLIC_PATH", "/uploads")
	v.SetDefault("UPLOAD_MAX_FILE_SIZE", 5*1024*1024)

	v.SetDefault("ADMIN_PASSWORD", "changeme123")

	v.SetDefault("SESSIONS_BACKEND", "memory")
	v.SetDefault("SESSION_TTL", "24h")

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("RESEND_API_KEY", "")
	v.SetDefault("CONTACT_FROM", "portfolio@localhost")
	v.SetDefault("CONTACT_EMAIL", "")

	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("ENABLE_RESUME_PDF", true)
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return d
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
