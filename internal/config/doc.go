// Package config loads runtime configuration for picseed.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults), matching the stock
//     docker-compose deployment of PicShare.
//  2. Optional JSON file selected with -c / --config.
//  3. A dotenv file (.env by default) and PICSEED_* environment variables.
//  4. Command-line flags, applied by the cli package, which override all of
//     the above.
//
// # JSON schema
//
// Durations use timex.Duration, so values can be either strings like "10s"
// or integer nanoseconds. Every field is optional:
//
//	{
//	  "api":       {"base_url": "http://localhost:8080", "timeout": "10s", "delay": "500ms"},
//	  "datastore": {"mode": "docker", "container": "picshare-db-1", "user": "picshare",
//	                "database": "picshare", "dsn": "postgres://..."},
//	  "cache":     {"mode": "redis", "addr": "127.0.0.1:6379", "password": "", "db": 0},
//	  "log":       {"backend": "zap", "level": "debug", "format": "json", "file": "picseed.log"},
//	  "users":     [{"handle": "demo", "email": "demo@example.com", "display_name": "Demo User",
//	                 "bio": "Hello from PicShare.", "password": "ChangeMe123!"}]
//	}
//
// A non-empty users array replaces the built-in seed set.
//
// # Environment
//
//	PICSEED_API_URL         API base URL
//	PICSEED_DATABASE_DSN    Postgres DSN for datastore mode "postgres"
//	PICSEED_DATASTORE_MODE  docker | postgres
//	PICSEED_REDIS_ADDR      host:port for cache mode "redis"
//	PICSEED_REDIS_PASSWORD  Redis password
//	PICSEED_CACHE_MODE      docker | redis
//	PICSEED_LOG_LEVEL       debug | info | warn | error
package config
