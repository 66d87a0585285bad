package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	ErrInvalidPort     = errors.New("invalid port")
	ErrInvalidDuration = errors.New("invalid duration")
)

type Config struct {
	App    AppConfig
	Assets AssetsConfig
	HTTP   HTTPConfig
	Redis  RedisConfig
	Theme  ThemeConfig
}

type AppConfig struct {
	Port     string
	Env      string
	LogLevel string
}

type AssetsConfig struct {
	StaticDir string
	IndexFile string
	Watch     bool
}

type HTTPConfig struct {
	AllowedOrigins     []string
	RateLimitPerMinute int
	ShutdownTimeout    time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type ThemeConfig struct {
	PreferenceTTL time.Duration
}

// Enabled reports whether a Redis server was configured.
func (c RedisConfig) Enabled() bool {
	return c.Host != ""
}

// IsProduction reports whether the app runs with production logging.
func (c AppConfig) IsProduction() bool {
	return c.Env == "production"
}

// NewFlagSet declares the command-line overrides understood by LoadConfig.
func NewFlagSet(name string) *pflag.FlagSet {
	flags := pflag.NewFlagSet(name, pflag.ContinueOnError)
	flags.String("port", "", "port to listen on (overrides PORT)")
	flags.String("static-dir", "", "directory holding the built SPA (overrides STATIC_DIR)")
	return flags
}

func LoadConfig(flags *pflag.FlagSet) (*Config, error) {
	// A missing .env is fine: the process environment is the primary source.
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	if flags != nil {
		if f := flags.Lookup("port"); f != nil && f.Changed {
			v.Set("PORT", f.Value.String())
		}
		if f := flags.Lookup("static-dir"); f != nil && f.Changed {
			v.Set("STATIC_DIR", f.Value.String())
		}
	}

	port := strings.TrimSpace(v.GetString("PORT"))
	if n, err := strconv.Atoi(port); err != nil || n < 1 || n > 65535 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPort, port)
	}

	shutdownTimeout, err := parseDuration(v, "SHUTDOWN_TIMEOUT")
	if err != nil {
		return nil, err
	}

	preferenceTTL, err := parseDuration(v, "THEME_PREFERENCE_TTL")
	if err != nil {
		return nil, err
	}

	config := &Config{
		App: AppConfig{
			Port:     port,
			Env:      v.GetString("APP_ENV"),
			LogLevel: v.GetString("LOG_LEVEL"),
		},
		Assets: AssetsConfig{
			StaticDir: v.GetString("STATIC_DIR"),
			IndexFile: v.GetString("INDEX_FILE"),
			Watch:     v.GetBool("WATCH_ASSETS"),
		},
		HTTP: HTTPConfig{
			AllowedOrigins:     splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
			RateLimitPerMinute: v.GetInt("RATE_LIMIT_PER_MINUTE"),
			ShutdownTimeout:    shutdownTimeout,
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Theme: ThemeConfig{
			PreferenceTTL: preferenceTTL,
		},
	}

	return config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "3000")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("STATIC_DIR", "build")
	v.SetDefault("INDEX_FILE", "index.html")
	v.SetDefault("WATCH_ASSETS", true)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("RATE_LIMIT_PER_MINUTE", 300)
	v.SetDefault("SHUTDOWN_TIMEOUT", "10s")
	v.SetDefault("REDIS_HOST", "")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("THEME_PREFERENCE_TTL", "8760h")
}

// parseDuration requires a positive Go duration such as "10s" or "8760h"
func parseDuration(v *viper.Viper, key string) (time.Duration, error) {
	raw := strings.TrimSpace(v.GetString(key))
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidDuration, key, raw)
	}
	return d, nil
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
