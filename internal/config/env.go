package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// Environment variables read by parseEnv.
const (
	EnvAPIURL        = "PICSEED_API_URL"
	EnvDatabaseDSN   = "PICSEED_DATABASE_DSN"
	EnvDatastoreMode = "PICSEED_DATASTORE_MODE"
	EnvRedisAddr     = "PICSEED_REDIS_ADDR"
	EnvRedisPassword = "PICSEED_REDIS_PASSWORD"
	EnvCacheMode     = "PICSEED_CACHE_MODE"
	EnvLogLevel      = "PICSEED_LOG_LEVEL"
)

type lookupFunc func(key string) (string, bool)

func osLookup(key string) (string, bool) { return os.LookupEnv(key) }

// loadEnvFile exports the variables of a dotenv file into the process
// environment. Variables already set win. A missing file is not an error.
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// parseEnv overlays cfg with the PICSEED_* variables that are set and non-empty.
func parseEnv(cfg *Config, lookup lookupFunc) {
	bind := func(dst *string, key string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}

	bind(&cfg.API.BaseURL, EnvAPIURL)
	bind(&cfg.Datastore.DSN, EnvDatabaseDSN)
	bind(&cfg.Datastore.Mode, EnvDatastoreMode)
	bind(&cfg.Cache.Addr, EnvRedisAddr)
	bind(&cfg.Cache.Password, EnvRedisPassword)
	bind(&cfg.Cache.Mode, EnvCacheMode)
	bind(&cfg.Log.Level, EnvLogLevel)
}
