package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds all runtime settings. Values come from environment
// variables (optionally seeded from .env by godotenv in main).
type Config struct {
	App     AppConfig
	Auth    AuthConfig
	Redis   RedisConfig
	Email   EmailConfig
	Storage StorageConfig
	Payment PaymentConfig
	Logging LoggingConfig
}

type AppConfig struct {
	Name    string
	Port    int
	Env     string
	BaseURL string // public base URL used to build approval links
}

type AuthConfig struct {
	JWTSecret           string
	AccessTokenMinutes  int
	OperatorEmail       string
	OperatorPasswordKey string // bcrypt hash of the operator password
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type EmailConfig struct {
	APIKey      string
	FromAddress string
	FromName    string
}

type StorageConfig struct {
	Bucket          string
	FallbackBuckets []string
}

type PaymentConfig struct {
	MercadoPagoAccessToken string
}

type LoggingConfig struct {
	Level string
}

func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development" || c.App.Env == ""
}

// Load reads configuration from the environment with sane defaults.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("APP_NAME", "eventpilot")
	v.SetDefault("APP_PORT", 8080)
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_BASE_URL", "http://localhost:8080")

	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("ACCESS_TOKEN_MINUTES", 60)
	v.SetDefault("OPERATOR_EMAIL", "")
	v.SetDefault("OPERATOR_PASSWORD_HASH", "")

	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("RESEND_API_KEY", "")
	v.SetDefault("EMAIL_FROM_ADDRESS", "no-reply@example.com")
	v.SetDefault("EMAIL_FROM_NAME", "EventPilot")

	v.SetDefault("DOCUMENTS_BUCKET", "documents")
	v.SetDefault("DOCUMENTS_FALLBACK_BUCKETS", "")

	v.SetDefault("MERCADOPAGO_ACCESS_TOKEN", "")

	v.SetDefault("LOG_LEVEL", "info")

	cfg := &Config{
		App: AppConfig{
			Name:    v.GetString("APP_NAME"),
			Port:    v.GetInt("APP_PORT"),
			Env:     v.GetString("APP_ENV"),
			BaseURL: strings.TrimRight(v.GetString("APP_BASE_URL"), "/"),
		},
		Auth: AuthConfig{
			JWTSecret:           v.GetString("JWT_SECRET"),
			AccessTokenMinutes:  v.GetInt("ACCESS_TOKEN_MINUTES"),
			OperatorEmail:       v.GetString("OPERATOR_EMAIL"),
			OperatorPasswordKey: v.GetString("OPERATOR_PASSWORD_HASH"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("REDIS_ADDR"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Email: EmailConfig{
			APIKey:      v.GetString("RESEND_API_KEY"),
			FromAddress: v.GetString("EMAIL_FROM_ADDRESS"),
			FromName:    v.GetString("EMAIL_FROM_NAME"),
		},
		Storage: StorageConfig{
			Bucket:          v.GetString("DOCUMENTS_BUCKET"),
			FallbackBuckets: splitCSV(v.GetString("DOCUMENTS_FALLBACK_BUCKETS")),
		},
		Payment: PaymentConfig{
			MercadoPagoAccessToken: v.GetString("MERCADOPAGO_ACCESS_TOKEN"),
		},
		Logging: LoggingConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
	}
	return cfg, nil
}

func splitCSV(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
