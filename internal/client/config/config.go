package config

import (
	"time"

	"github.com/dmitrijs2005/hbnbclient/internal/common"
)

// Config holds runtime settings for the HBnB CLI.
//
// Fields:
//   - APIBaseURL: root of the REST API, without a trailing slash.
//   - SessionDBPath: SQLite file keeping the credential between runs.
//   - TokenTTL: how long a token is kept after login.
//   - CookieName, CookiePath: name and path scope of the stored credential.
//   - LogLevel: minimum level of diagnostic records.
type Config struct {
	APIBaseURL    string
	SessionDBPath string
	TokenTTL      time.Duration
	CookieName    string
	CookiePath    string
	LogLevel      string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:5001/api/v1"
	c.SessionDBPath = "hbnb-session.db"
	c.TokenTTL = 7 * 24 * time.Hour
	c.CookieName = common.TokenCookieName
	c.CookiePath = common.CookieRootPath
	c.LogLevel = "warn"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment and command-line flags. Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
