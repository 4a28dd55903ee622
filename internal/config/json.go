package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/picseed/internal/models"
	"github.com/dmitrijs2005/picseed/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
// It relies on timex.Duration so JSON can specify intervals either as
// strings like "500ms" or as integer nanoseconds. Absent fields leave the
// current value untouched.
type JsonConfig struct {
	API struct {
		BaseURL string          `json:"base_url"`
		Timeout timex.Duration  `json:"timeout"`
		Delay   *timex.Duration `json:"delay"`
	} `json:"api"`
	Datastore struct {
		Mode      string `json:"mode"`
		Container string `json:"container"`
		User      string `json:"user"`
		Database  string `json:"database"`
		DSN       string `json:"dsn"`
	} `json:"datastore"`
	Cache struct {
		Mode      string `json:"mode"`
		Container string `json:"container"`
		Addr      string `json:"addr"`
		Password  string `json:"password"`
		DB        *int   `json:"db"`
	} `json:"cache"`
	Log struct {
		Backend    string `json:"backend"`
		Level      string `json:"level"`
		Format     string `json:"format"`
		File       string `json:"file"`
		MaxSizeMB  int    `json:"max_size_mb"`
		MaxBackups int    `json:"max_backups"`
	} `json:"log"`
	Users []models.SeedRecord `json:"users"`
}

// parseJson overlays cfg with values loaded from the JSON file at path.
// An empty path loads nothing.
func parseJson(cfg *Config, path string) error {
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	setString(&cfg.API.BaseURL, jc.API.BaseURL)
	if jc.API.Timeout.Duration > 0 {
		cfg.API.Timeout = jc.API.Timeout.Duration
	}
	if jc.API.Delay != nil {
		cfg.API.Delay = jc.API.Delay.Duration
	}

	setString(&cfg.Datastore.Mode, jc.Datastore.Mode)
	setString(&cfg.Datastore.Container, jc.Datastore.Container)
	setString(&cfg.Datastore.User, jc.Datastore.User)
	setString(&cfg.Datastore.Database, jc.Datastore.Database)
	setString(&cfg.Datastore.DSN, jc.Datastore.DSN)

	setString(&cfg.Cache.Mode, jc.Cache.Mode)
	setString(&cfg.Cache.Container, jc.Cache.Container)
	setString(&cfg.Cache.Addr, jc.Cache.Addr)
	setString(&cfg.Cache.Password, jc.Cache.Password)
	if jc.Cache.DB != nil {
		cfg.Cache.DB = *jc.Cache.DB
	}

	setString(&cfg.Log.Backend, jc.Log.Backend)
	setString(&cfg.Log.Level, jc.Log.Level)
	setString(&cfg.Log.Format, jc.Log.Format)
	setString(&cfg.Log.File, jc.Log.File)
	if jc.Log.MaxSizeMB > 0 {
		cfg.Log.MaxSizeMB = jc.Log.MaxSizeMB
	}
	if jc.Log.MaxBackups > 0 {
		cfg.Log.MaxBackups = jc.Log.MaxBackups
	}

	if len(jc.Users) > 0 {
		cfg.Users = jc.Users
	}
	return nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
