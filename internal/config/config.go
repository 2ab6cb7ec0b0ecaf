package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Config keeps runtime settings for the server and the dispatch job.
type Config struct {
	Port         string
	DatabaseURL  string
	DispatchTime string // HH:MM, in the reference timezone
	Timezone     string
}

// Load reads configuration from environment variables with sane defaults.
func Load() (Config, error) {
	cfg := Config{
		Port:         strings.TrimSpace(os.Getenv("PORT")),
		DatabaseURL:  strings.TrimSpace(os.Getenv("DATABASE_URL")),
		DispatchTime: strings.TrimSpace(os.Getenv("DISPATCH_TIME")),
		Timezone:     strings.TrimSpace(os.Getenv("TIMEZONE")),
	}

	if cfg.Port == "" {
		cfg.Port = "8787"
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = "memoria.db"
	}
	if cfg.DispatchTime == "" {
		cfg.DispatchTime = "08:00"
	}
	if cfg.Timezone == "" {
		// The deployment's primary user base is in UTC+8.
		cfg.Timezone = "Asia/Shanghai"
	}

	return cfg, nil
}

// Location resolves the reference timezone, falling back to a fixed UTC+8
// zone when tzdata is unavailable.
func (c Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err == nil {
		return loc, nil
	}
	if c.Timezone == "Asia/Shanghai" {
		return time.FixedZone("CST", 8*60*60), nil
	}
	return nil, fmt.Errorf("load timezone %q: %w", c.Timezone, err)
}
