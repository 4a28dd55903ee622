package config

import (
	"testing"
	"time"

	"github.com/dmitrijs2005/picseed/internal/common"
	"github.com/dmitrijs2005/picseed/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://localhost:8080", c.API.BaseURL)
	assert.Equal(t, 10*time.Second, c.API.Timeout)
	assert.Equal(t, 500*time.Millisecond, c.API.Delay)
	assert.Equal(t, ModeDocker, c.Datastore.Mode)
	assert.Equal(t, "picshare-db-1", c.Datastore.Container)
	assert.Equal(t, ModeDocker, c.Cache.Mode)
	assert.Equal(t, "picshare-redis-1", c.Cache.Container)
	assert.Equal(t, "warn", c.Log.Level)
	assert.Equal(t, models.DefaultSeedRecords(), c.Users)
	require.NoError(t, c.Validate())
}

func TestLoad_NoSources(t *testing.T) {
	for _, key := range []string{EnvAPIURL, EnvDatabaseDSN, EnvDatastoreMode, EnvRedisAddr, EnvRedisPassword, EnvCacheMode, EnvLogLevel} {
		t.Setenv(key, "")
	}

	cfg, err := Load("", "")
	require.NoError(t, err)

	var want Config
	want.LoadDefaults()
	assert.Equal(t, &want, cfg)
}

func TestLoad_MissingConfigFile(t *testing.T) {
	_, err := Load("/does/not/exist.json", "")
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{name: "empty url", mutate: func(c *Config) { c.API.BaseURL = " " }},
		{name: "negative delay", mutate: func(c *Config) { c.API.Delay = -time.Second }},
		{name: "datastore mode", mutate: func(c *Config) { c.Datastore.Mode = "mysql" }},
		{name: "cache mode", mutate: func(c *Config) { c.Cache.Mode = "memcached" }},
		{name: "no users", mutate: func(c *Config) { c.Users = nil }},
		{name: "user without email", mutate: func(c *Config) { c.Users = []models.SeedRecord{{Handle: "x"}} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Config
			c.LoadDefaults()
			tt.mutate(&c)

			assert.ErrorIs(t, c.Validate(), common.ErrInvalidConfig)
		})
	}
}
