// Package config loads application configuration from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
// optional `.env` files are applied to the process environment, then the
// environment is parsed into any Go struct using `env` and `envDefault` field
// tags.
//
// # Usage
//
//	type Config struct {
//	    Format   string `env:"NUMCHECK_FORMAT" envDefault:"N(17,2)"`
//	    LogLevel string `env:"NUMCHECK_LOG_LEVEL" envDefault:"info"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg, "./config/.env"); err != nil {
//	    log.Fatalf("loading config: %v", err)
//	}
//
// # Error Handling
//
// The package defines sentinel errors that can be compared with `errors.Is`:
//
//   - `ErrParsingConfig`  – failed to parse env vars into struct.
//   - `ErrLoadingEnvFile` – an explicitly requested .env file could not be read.
//   - `ErrNilPointer`     – nil pointer passed to `Load`/`MustLoad`.
package config
