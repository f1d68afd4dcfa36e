package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
	"github.com/terraincognita07/mealtrail/internal/session"
)

// Config is the full process configuration. Every field has a default, so
// the binary runs with no config file and no environment set.
type Config struct {
	ServerPort   string
	DatabasePath string
	CookieName   string
	CookieSecure bool
	SessionTTL   time.Duration
	LogLevel     string
	LogFormat    string
}

// Load reads an optional config.yml from the working directory, overlaid by
// MEALTRAIL_-prefixed environment variables (MEALTRAIL_SERVER_PORT,
// MEALTRAIL_DATABASE_PATH, ...).
func Load() (Config, error) {
	loader := viper.New()
	loader.SetConfigName("config")
	loader.SetConfigType("yml")
	loader.AddConfigPath(".")

	loader.SetDefault("server.port", "8080")
	loader.SetDefault("database.path", "data/mealtrail.db")
	loader.SetDefault("session.cookie_name", "mealtrail_session")
	loader.SetDefault("session.cookie_secure", false)
	loader.SetDefault("session.ttl_days", 0)
	loader.SetDefault("log.level", "info")
	loader.SetDefault("log.format", "text")

	loader.SetEnvPrefix("MEALTRAIL")
	loader.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	loader.AutomaticEnv()

	if err := loader.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	sessionTTL := session.TTL
	if ttlDays := loader.GetInt("session.ttl_days"); ttlDays > 0 {
		sessionTTL = time.Duration(ttlDays) * 24 * time.Hour
	}

	return Config{
		ServerPort:   loader.GetString("server.port"),
		DatabasePath: loader.GetString("database.path"),
		CookieName:   loader.GetString("session.cookie_name"),
		CookieSecure: loader.GetBool("session.cookie_secure"),
		SessionTTL:   sessionTTL,
		LogLevel:     loader.GetString("log.level"),
		LogFormat:    loader.GetString("log.format"),
	}, nil
}
