package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// envConfig mirrors the subset of Config that can be set from the
// environment. Variable names follow split_words convention:
// ADDRESS, METRICS_ADDRESS, DATABASE_DSN, SECRET_KEY,
// ACCESS_TOKEN_VALIDITY_MINUTES.
type envConfig struct {
	Address                    string `envconfig:"ADDRESS"`
	MetricsAddress             string `split_words:"true"`
	DatabaseDsn                string `split_words:"true"`
	SecretKey                  string `split_words:"true"`
	AccessTokenValidityMinutes int    `split_words:"true"`
}

// parseEnv overlays values from a local .env file (if present) and the
// process environment onto config. Unset variables leave the current
// values untouched.
func parseEnv(config *Config) {
	// .env is optional; a missing file is not an error.
	_ = godotenv.Load()

	e := &envConfig{}
	if err := envconfig.Process("", e); err != nil {
		panic(err)
	}

	if e.Address != "" {
		config.EndpointAddr = e.Address
	}
	if e.MetricsAddress != "" {
		config.MetricsAddr = e.MetricsAddress
	}
	if e.DatabaseDsn != "" {
		config.DatabaseDSN = e.DatabaseDsn
	}
	if e.SecretKey != "" {
		config.SecretKey = e.SecretKey
	}
	if e.AccessTokenValidityMinutes > 0 {
		config.AccessTokenValidityDuration = time.Duration(e.AccessTokenValidityMinutes) * time.Minute
	}
}
