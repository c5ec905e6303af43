// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ErrConfiguration marks a configuration the bot cannot start with.
var ErrConfiguration = errors.New("configuration error")

const (
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
	BackendRedis    = "redis"
)

type DB struct {
	URL          string
	Host         string
	Port         string
	User         string
	Password     string
	DBName       string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
	ConnLifetime time.Duration
}

type OpenAI struct {
	APIKey        string
	BaseURL       string
	Model         string
	MaxTokens     int
	Temperature   float32
	MaxConcurrent int
}

type Session struct {
	Backend       string
	IdleTimeout   time.Duration
	SweepSchedule string
	RedisURL      string
}

type Config struct {
	Telegram struct {
		Token string
		Debug bool
	}
	DB      DB
	Storage struct {
		Backend string
	}
	OpenAI  OpenAI
	Session Session
	Chart   struct {
		Dir string
	}
	Server struct {
		Port string
	}
	Log struct {
		Level string
	}
	ShutdownTimeout time.Duration
}

// env names that do not follow the SECTION_KEY pattern.
var envAliases = map[string]string{
	"telegram.token":   "TELEGRAM_TOKEN",
	"openai.apikey":    "OPENAI_API_KEY",
	"db.url":           "DATABASE_URL",
	"session.redisurl": "REDIS_URL",
}

// Load loads the configuration from an optional config file, .env and the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("$HOME/.fitness-bot")

	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, env := range envAliases {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", env, err)
		}
	}
	for _, key := range []string{
		"telegram.debug", "db.host", "db.port", "db.user", "db.password", "db.dbname", "db.sslmode",
		"openai.baseurl", "openai.model", "storage.backend", "session.backend", "log.level", "chart.dir",
	} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	// Process any ${ENV_VAR} syntax in the config values
	for _, key := range v.AllKeys() {
		value := v.GetString(key)
		if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
			envVar := strings.TrimPrefix(strings.TrimSuffix(value, "}"), "${")
			v.Set(key, os.Getenv(envVar))
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ShutdownTimeout", 10*time.Second)
	v.SetDefault("Telegram.Debug", false)
	v.SetDefault("Storage.Backend", BackendPostgres)
	v.SetDefault("DB.Host", "localhost")
	v.SetDefault("DB.Port", "5432")
	v.SetDefault("DB.User", "postgres")
	v.SetDefault("DB.DBName", "fitness_bot")
	v.SetDefault("DB.SSLMode", "disable")
	v.SetDefault("DB.MaxOpenConns", 20)
	v.SetDefault("DB.MaxIdleConns", 2)
	v.SetDefault("DB.ConnLifetime", 5*time.Minute)
	v.SetDefault("OpenAI.Model", "gpt-4o-mini")
	v.SetDefault("OpenAI.MaxTokens", 2500)
	v.SetDefault("OpenAI.Temperature", 0.7)
	v.SetDefault("OpenAI.MaxConcurrent", 1)
	v.SetDefault("Session.Backend", BackendMemory)
	v.SetDefault("Session.IdleTimeout", 24*time.Hour)
	v.SetDefault("Session.SweepSchedule", "@every 10m")
	v.SetDefault("Server.Port", "8080")
	v.SetDefault("Log.Level", "info")
}

// Validate reports every missing credential or unknown backend, wrapped in ErrConfiguration.
func (c *Config) Validate() error {
	var problems []string

	if c.Telegram.Token == "" {
		problems = append(problems, "telegram token is not configured")
	}
	if c.OpenAI.APIKey == "" {
		problems = append(problems, "OpenAI API key is not configured")
	}
	if c.OpenAI.MaxConcurrent < 1 {
		problems = append(problems, "OpenAI.MaxConcurrent must be at least 1")
	}

	switch c.Storage.Backend {
	case BackendPostgres:
		if c.DB.URL == "" && (c.DB.Host == "" || c.DB.DBName == "") {
			problems = append(problems, "database connection is not configured")
		}
	case BackendMemory:
	default:
		problems = append(problems, fmt.Sprintf("unknown storage backend %q", c.Storage.Backend))
	}

	switch c.Session.Backend {
	case BackendMemory:
	case BackendRedis:
		if c.Session.RedisURL == "" {
			problems = append(problems, "redis session backend requires Session.RedisURL")
		}
	default:
		problems = append(problems, fmt.Sprintf("unknown session backend %q", c.Session.Backend))
	}

	if c.Session.IdleTimeout <= 0 {
		problems = append(problems, "Session.IdleTimeout must be positive")
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrConfiguration, strings.Join(problems, "; "))
	}
	return nil
}

// DSN returns DB.URL when set, otherwise a keyword/value connection string.
func (d DB) DSN() string {
	if d.URL != "" {
		return d.URL
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}
