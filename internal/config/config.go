// Package config loads the admin-portal configuration from file and
// environment. Values are resolved once and shared via Get().
package config

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
)

// Config is the full runtime configuration.
type Config struct {
	App       AppConfig       `mapstructure:"app"`
	Server    ServerConfig    `mapstructure:"server"`
	Backend   BackendConfig   `mapstructure:"backend"`
	Session   SessionConfig   `mapstructure:"session"`
	Refresh   RefreshConfig   `mapstructure:"refresh"`
	Auth      AuthConfig      `mapstructure:"auth"`
	Templates TemplatesConfig `mapstructure:"templates"`
}

type AppConfig struct {
	Env string `mapstructure:"env"` // "development", "test", "production"
}

type ServerConfig struct {
	Addr            string        `mapstructure:"addr"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// BackendConfig points at the upstream service that owns identity, users,
// support tickets and analytics. An empty URL means no backend is configured
// (dev mode may still serve the portal with local auth and mock data).
type BackendConfig struct {
	URL     string        `mapstructure:"url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type SessionConfig struct {
	CookieName   string        `mapstructure:"cookie_name"`
	RefCookie    string        `mapstructure:"ref_cookie"`
	CookieMaxAge time.Duration `mapstructure:"cookie_max_age"`
	Secure       bool          `mapstructure:"secure"`
	Mirror       MirrorConfig  `mapstructure:"mirror"`
}

// MirrorConfig selects the persistent fallback store for the session token.
type MirrorConfig struct {
	Driver        string `mapstructure:"driver"` // sqlite, mysql, postgres, redis, memory
	DSN           string `mapstructure:"dsn"`
	RedisAddr     string `mapstructure:"redis_addr"`
	RedisPassword string `mapstructure:"redis_password"`
	RedisDB       int    `mapstructure:"redis_db"`
}

type RefreshConfig struct {
	ActivityInterval time.Duration `mapstructure:"activity_interval"`
	PageSize         int           `mapstructure:"page_size"`
}

// AuthConfig controls the development-mode local login. It is only consulted
// when no backend URL is configured.
type AuthConfig struct {
	DevMode         bool   `mapstructure:"dev_mode"`
	DevEmail        string `mapstructure:"dev_email"`
	DevPasswordHash string `mapstructure:"dev_password_hash"` // bcrypt
	DevJWTSecret    string `mapstructure:"dev_jwt_secret"`
}

type TemplatesConfig struct {
	Dir   string `mapstructure:"dir"`
	Watch bool   `mapstructure:"watch"`
}

var (
	global *Config
	mu     sync.RWMutex
)

// Load reads configuration from the given file (optional), environment
// variables prefixed ADMIN_PORTAL_, and defaults. The result becomes the
// process-wide configuration returned by Get().
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("ADMIN_PORTAL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("admin-portal")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/admin-portal")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	mu.Lock()
	global = cfg
	mu.Unlock()
	return cfg, nil
}

// Get returns the loaded configuration, or nil before Load.
func Get() *Config {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

// Set replaces the global configuration. Used by tests.
func Set(cfg *Config) {
	mu.Lock()
	global = cfg
	mu.Unlock()
}

// IsProduction reports whether the portal runs in production mode.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.App.Env, "production")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.env", "development")
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("backend.url", "")
	v.SetDefault("backend.timeout", 15*time.Second)
	v.SetDefault("session.cookie_name", "adminToken")
	v.SetDefault("session.ref_cookie", "adminTokenRef")
	v.SetDefault("session.cookie_max_age", 7*24*time.Hour)
	v.SetDefault("session.secure", false)
	v.SetDefault("session.mirror.driver", "memory")
	v.SetDefault("session.mirror.dsn", "admin-portal.db")
	v.SetDefault("session.mirror.redis_addr", "localhost:6379")
	v.SetDefault("refresh.activity_interval", 30*time.Second)
	v.SetDefault("refresh.page_size", 10)
	v.SetDefault("auth.dev_mode", false)
	v.SetDefault("auth.dev_email", "admin@localhost")
	v.SetDefault("templates.dir", "templates")
	v.SetDefault("templates.watch", false)
}
