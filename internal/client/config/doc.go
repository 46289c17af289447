// Package config loads runtime configuration for the HBnB CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables (see parseEnv).
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the HBnB API, e.g. http://127.0.0.1:5001/api/v1
//	-d string   path of the SQLite session database ("" keeps it in memory)
//	-l string   log level: debug, info, warn or error
//
// Environment
//
//	HBNB_API_URL, HBNB_SESSION_DB, HBNB_LOG_LEVEL, HBNB_TOKEN_TTL
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the token lifetime, so it can be
// either a string like "168h" or integer nanoseconds:
//
//	{
//	  "api_base_url": "http://127.0.0.1:5001/api/v1",
//	  "session_db_path": "hbnb-session.db",
//	  "token_ttl": "168h",
//	  "cookie_name": "token",
//	  "cookie_path": "/",
//	  "log_level": "warn"
//	}
package config
