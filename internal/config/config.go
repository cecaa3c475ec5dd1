package config

import (
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"

	"storefront/internal/logger"
)

var AppEnv Config

type Config struct {
	Port string `env:"PORT" envDefault:"8080"`

	APIBaseURL    string        `env:"API_BASE_URL" envDefault:"https://livejs-api.hexschool.io"`
	APIPath       string        `env:"API_PATH" envDefault:"billyji"`
	APIAdminToken string        `env:"API_ADMIN_TOKEN"`
	APITimeout    time.Duration `env:"API_TIMEOUT" envDefault:"10s"`

	JWTSecret         string        `env:"JWT_SECRET"`
	AdminPasswordHash string        `env:"ADMIN_PASSWORD_HASH"`
	AccessTokenTTL    time.Duration `env:"ACCESS_TOKEN_TTL" envDefault:"20m"`
	SessionSecret     string        `env:"SESSION_SECRET"`

	DisplayTimezone string `env:"DISPLAY_TIMEZONE" envDefault:"Asia/Taipei"`
	TemplateGlob    string `env:"TEMPLATE_GLOB" envDefault:"templates/**/*"`

	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat     string `env:"LOG_FORMAT" envDefault:"text"`
	LogOutput     string `env:"LOG_OUTPUT" envDefault:"stdout"`
	LogFile       string `env:"LOG_FILE" envDefault:"./logs/storefront.log"`
	LogMaxSize    int    `env:"LOG_MAX_SIZE" envDefault:"100"`
	LogMaxBackups int    `env:"LOG_MAX_BACKUPS" envDefault:"7"`
	LogMaxAge     int    `env:"LOG_MAX_AGE" envDefault:"7"`

	OTelStdout bool `env:"OTEL_STDOUT" envDefault:"false"`
}

// Load reads .env (if present) and the process environment into AppEnv.
func Load() error {
	if err := godotenv.Load(); err != nil {
		logger.Log.WithError(err).Info(".env not loaded")
	}
	cfg, err := Parse()
	if err != nil {
		return err
	}
	AppEnv = cfg
	return nil
}

// Parse reads the process environment into a Config without touching AppEnv.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	cfg.APIBaseURL = strings.TrimRight(strings.TrimSpace(cfg.APIBaseURL), "/")
	cfg.APIPath = strings.Trim(strings.TrimSpace(cfg.APIPath), "/")
	return cfg, nil
}

// AdminEnabled reports whether the dashboard login can be served.
func (c Config) AdminEnabled() bool {
	return c.JWTSecret != "" && c.AdminPasswordHash != ""
}
