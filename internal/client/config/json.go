package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/hbnbclient/internal/flagx"
	"github.com/dmitrijs2005/hbnbclient/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields distinguish "absent" from "set to empty".
type JsonConfig struct {
	APIBaseURL    *string         `json:"api_base_url"`
	SessionDBPath *string         `json:"session_db_path"`
	TokenTTL      *timex.Duration `json:"token_ttl"`
	CookieName    *string         `json:"cookie_name"`
	CookiePath    *string         `json:"cookie_path"`
	LogLevel      *string         `json:"log_level"`
}

// parseJson overlays Config with values loaded from the file named by -c or
// -config. Keys missing from the file keep their current value. It panics on
// read or unmarshal errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigFileFlag(os.Args[1:])
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	setString(&cfg.APIBaseURL, jc.APIBaseURL)
	setString(&cfg.SessionDBPath, jc.SessionDBPath)
	setString(&cfg.CookieName, jc.CookieName)
	setString(&cfg.CookiePath, jc.CookiePath)
	setString(&cfg.LogLevel, jc.LogLevel)
	if jc.TokenTTL != nil {
		cfg.TokenTTL = jc.TokenTTL.Duration
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
