package config

import (
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// envConfig lists the variables read by parseEnv. Unset variables leave the
// corresponding Config field untouched.
type envConfig struct {
	APIBaseURL    string        `env:"HBNB_API_URL" env-description:"base URL of the HBnB API"`
	SessionDBPath string        `env:"HBNB_SESSION_DB" env-description:"SQLite session database path"`
	LogLevel      string        `env:"HBNB_LOG_LEVEL" env-description:"debug, info, warn or error"`
	TokenTTL      time.Duration `env:"HBNB_TOKEN_TTL" env-description:"lifetime of a stored token"`
}

// parseEnv overlays Config with environment variables. It panics when a
// variable cannot be parsed.
func parseEnv(cfg *Config) {
	var ec envConfig
	if err := cleanenv.ReadEnv(&ec); err != nil {
		panic(err)
	}

	if ec.APIBaseURL != "" {
		cfg.APIBaseURL = ec.APIBaseURL
	}
	if ec.SessionDBPath != "" {
		cfg.SessionDBPath = ec.SessionDBPath
	}
	if ec.LogLevel != "" {
		cfg.LogLevel = ec.LogLevel
	}
	if ec.TokenTTL != 0 {
		cfg.TokenTTL = ec.TokenTTL
	}
}

// EnvUsage describes the supported environment variables.
func EnvUsage() string {
	var ec envConfig
	u, err := cleanenv.GetDescription(&ec, nil)
	if err != nil {
		return ""
	}
	return u
}
