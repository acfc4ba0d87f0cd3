// internal/config/config.go
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// SMTPRelay holds connection settings for one SMTP delivery relay.
type SMTPRelay struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Username string `json:"username"`
	Password string `json:"password"`
	From     string `json:"from"`
}

type Config struct {
	Database struct {
		Host       string `json:"host"`
		Port       string `json:"port"`
		User       string `json:"user"`
		Password   string `json:"password"`
		Name       string `json:"name"`
		SSLMode    string `json:"sslmode"`
		SearchPath string `json:"schema"`
	} `json:"database"`
	JWT struct {
		Secret       string        `json:"secret"`
		ExpiryPeriod time.Duration `json:"expiry_period"`
	} `json:"jwt"`
	Server struct {
		Port         string        `json:"port"`
		ReadTimeout  time.Duration `json:"read_timeout"`
		WriteTimeout time.Duration `json:"write_timeout"`
	}
	Sendgrid struct {
		APIKey string `json:"api_key"`
		From   string `json:"from"`
	} `json:"sendgrid"`
	SMTP map[string]SMTPRelay `json:"smtp"`
	Billing struct {
		WebhookSecret string `json:"webhook_secret"`
	} `json:"billing"`
	Weather struct {
		BaseURL string        `json:"base_url"`
		APIKey  string        `json:"api_key"`
		Timeout time.Duration `json:"timeout"`
	} `json:"weather"`
	Tenancy struct {
		CompanyTrialDays  int `json:"company_trial_days"`
		UserTrialDays     int `json:"user_trial_days"`
		InvitationTTLDays int `json:"invitation_ttl_days"`
		MaxEmployees      int `json:"max_employees"`
		MaxSites          int `json:"max_sites"`
	} `json:"tenancy"`
	RateLimit struct {
		AuthRequestsPerMinute int `json:"auth_requests_per_minute"`
	} `json:"rate_limit"`
	BaseURL string `json:"base_url"`
}

func Load() *Config {
	// A missing .env is fine; real env vars win either way.
	_ = godotenv.Load()

	cfg := &Config{}

	// Database configuration
	cfg.Database.Host = getEnv("DB_HOST", "localhost")
	cfg.Database.Port = getEnv("DB_PORT", "5432")
	cfg.Database.User = getEnv("DB_USER", "postgres")
	cfg.Database.Password = getEnv("DB_PASSWORD", "")
	cfg.Database.Name = getEnv("DB_NAME", "slipcheck")
	cfg.Database.SSLMode = getEnv("DB_SSLMODE", "disable")
	cfg.Database.SearchPath = getEnv("DB_SCHEMA", "public")

	// JWT configuration
	cfg.JWT.Secret = getEnv("JWT_SECRET", "your-secret-key")
	cfg.JWT.ExpiryPeriod = time.Hour * 24

	// Sendgrid configuration
	cfg.Sendgrid.APIKey = getEnv("SENDGRID_API_KEY", "")
	cfg.Sendgrid.From = getEnv("SENDGRID_FROM", "")

	// SMTP relay, used when no Sendgrid key is present
	cfg.SMTP = map[string]SMTPRelay{
		"smtp": {
			Host:     getEnv("SMTP_HOST", ""),
			Port:     getEnvInt("SMTP_PORT", 587),
			Username: getEnv("SMTP_USERNAME", ""),
			Password: getEnv("SMTP_PASSWORD", ""),
			From:     getEnv("SMTP_FROM", ""),
		},
	}

	// Billing webhook configuration
	cfg.Billing.WebhookSecret = getEnv("BILLING_WEBHOOK_SECRET", "")

	// Weather provider configuration
	cfg.Weather.BaseURL = getEnv("WEATHER_BASE_URL", "https://api.open-meteo.com/v1")
	cfg.Weather.APIKey = getEnv("WEATHER_API_KEY", "")
	cfg.Weather.Timeout = time.Second * 10

	// Tenancy defaults
	cfg.Tenancy.CompanyTrialDays = getEnvInt("COMPANY_TRIAL_DAYS", 30)
	cfg.Tenancy.UserTrialDays = getEnvInt("USER_TRIAL_DAYS", 14)
	cfg.Tenancy.InvitationTTLDays = getEnvInt("INVITATION_TTL_DAYS", 7)
	cfg.Tenancy.MaxEmployees = getEnvInt("DEFAULT_MAX_EMPLOYEES", 25)
	cfg.Tenancy.MaxSites = getEnvInt("DEFAULT_MAX_SITES", 50)

	// Rate limiting
	cfg.RateLimit.AuthRequestsPerMinute = getEnvInt("AUTH_REQUESTS_PER_MINUTE", 20)

	// Server configuration
	cfg.Server.Port = getEnv("SERVER_PORT", "8080")
	cfg.Server.ReadTimeout = time.Second * 15
	cfg.Server.WriteTimeout = time.Second * 15

	cfg.BaseURL = getEnv("BASE_URL", "http://localhost:8080")

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
