// internal/config/config.go
//
// Environment-driven configuration. main loads a .env file (if present) with
// godotenv before calling Load, so values there behave like real env vars.

package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	Game    GameConfig
	Logging LoggingConfig
}

// ServerConfig holds HTTP-related settings.
type ServerConfig struct {
	Host           string
	Port           string
	ClientOrigin   string        // allowed CORS origin
	HandlerTimeout time.Duration // per-request budget
}

// GameConfig holds secret-word and session settings.
type GameConfig struct {
	ShareBaseURL string        // prefix for share links
	ShareSecret  string        // HS256 key for sealed links; "" disables them
	ShareTTL     time.Duration // 0 = sealed links never expire
	DailySalt    string
	AnswersFile  string // "" = embedded list
	SessionTTL   time.Duration
	SweepEvery   time.Duration
}

// LoggingConfig holds logging-related settings.
type LoggingConfig struct {
	Level  string
	Format string // "json" or "console"
}

// Load reads configuration from environment variables with defaults.
func Load() *Config {
	port := getEnv("PORT", "5175")
	return &Config{
		Server: ServerConfig{
			Host:           getEnv("HOST", ""),
			Port:           port,
			ClientOrigin:   getEnv("CLIENT_ORIGIN", "http://localhost:5173"),
			HandlerTimeout: getEnvDuration("HANDLER_TIMEOUT", 10*time.Second),
		},
		Game: GameConfig{
			ShareBaseURL: getEnv("SHARE_BASE_URL", "http://localhost:"+port+"/play"),
			ShareSecret:  getEnv("SHARE_SECRET", ""),
			ShareTTL:     getEnvDuration("SHARE_TTL", 0),
			DailySalt:    getEnv("DAILY_SALT", "local_dev_salt"),
			AnswersFile:  getEnv("WORDS_ANSWERS_FILE", ""),
			SessionTTL:   getEnvDuration("SESSION_TTL", 24*time.Hour),
			SweepEvery:   getEnvDuration("SESSION_SWEEP_INTERVAL", 10*time.Minute),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}
}

// Addr returns the listen address in host:port form.
func (c *Config) Addr() string {
	return c.Server.Host + ":" + c.Server.Port
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// getEnvInt parses k as an integer, falling back to def.
func getEnvInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

// getEnvDuration parses k as a Go duration ("90s", "24h") or, failing that,
// as whole seconds.
func getEnvDuration(k string, def time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	return time.Duration(getEnvInt(k, int(def/time.Second))) * time.Second
}
