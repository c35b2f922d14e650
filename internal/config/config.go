// Package config loads the layered process configuration: struct defaults,
// an optional YAML file, then the environment.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"mediarec/internal/association"
	"mediarec/internal/catalog"
	"mediarec/internal/logging"
	"mediarec/internal/usecase"
)

type Config struct {
	Data        DataConfig        `koanf:"data"`
	Catalog     CatalogConfig     `koanf:"catalog"`
	Association AssociationConfig `koanf:"association"`
	Stats       StatsConfig       `koanf:"stats"`
	Media       MediaConfig       `koanf:"media"`
	Server      ServerConfig      `koanf:"server"`
	Log         LogConfig         `koanf:"log"`
}

// DataConfig names the CSV files loaded at startup. An empty path is skipped.
type DataConfig struct {
	BooksPath        string `koanf:"books_path"`
	ShowsPath        string `koanf:"shows_path"`
	AssociationsPath string `koanf:"associations_path"`
}

type CatalogConfig struct {
	// LoadMode is merge or replace.
	LoadMode string `koanf:"load_mode"`
}

type AssociationConfig struct {
	// SelfPairs is count, ignore or reject.
	SelfPairs string `koanf:"self_pairs"`
}

type StatsConfig struct {
	Lenient bool `koanf:"lenient"`
}

type MediaConfig struct {
	ListDelimiters []string `koanf:"list_delimiters"`
}

type ServerConfig struct {
	Addr            string        `koanf:"addr"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	MaxBodyBytes    int64         `koanf:"max_body_bytes"`
	CORSOrigins     []string      `koanf:"cors_origins"`
	RateLimitRPS    float64       `koanf:"rate_limit_rps"`
	RateLimitBurst  int           `koanf:"rate_limit_burst"`
}

type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

func defaultConfig() *Config {
	return &Config{
		Catalog:     CatalogConfig{LoadMode: "merge"},
		Association: AssociationConfig{SelfPairs: "count"},
		Media:       MediaConfig{ListDelimiters: []string{`\`, ", "}},
		Server: ServerConfig{
			Addr:            "127.0.0.1:8080",
			ReadTimeout:     5 * time.Second,
			WriteTimeout:    10 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			MaxBodyBytes:    32 << 20,
			CORSOrigins:     []string{"http://localhost:3000"},
			RateLimitRPS:    20,
			RateLimitBurst:  40,
		},
		Log: LogConfig{Level: "info", Format: "json"},
	}
}

// Validate rejects unknown enum values and non-positive limits.
func (c *Config) Validate() error {
	var errs []error
	if _, err := catalog.ParseLoadMode(c.Catalog.LoadMode); err != nil {
		errs = append(errs, fmt.Errorf("catalog.load_mode: %w", err))
	}
	if _, err := association.ParseSelfPairPolicy(c.Association.SelfPairs); err != nil {
		errs = append(errs, fmt.Errorf("association.self_pairs: %w", err))
	}
	if !logging.ValidLevel(c.Log.Level) {
		errs = append(errs, fmt.Errorf("log.level: unknown level %q", c.Log.Level))
	}
	switch strings.ToLower(c.Log.Format) {
	case "json", "console":
	default:
		errs = append(errs, fmt.Errorf("log.format: must be json or console, got %q", c.Log.Format))
	}
	if strings.TrimSpace(c.Server.Addr) == "" {
		errs = append(errs, errors.New("server.addr is required"))
	}
	for name, d := range map[string]time.Duration{
		"server.read_timeout":     c.Server.ReadTimeout,
		"server.write_timeout":    c.Server.WriteTimeout,
		"server.idle_timeout":     c.Server.IdleTimeout,
		"server.shutdown_timeout": c.Server.ShutdownTimeout,
	} {
		if d <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive", name))
		}
	}
	if c.Server.MaxBodyBytes <= 0 {
		errs = append(errs, errors.New("server.max_body_bytes must be positive"))
	}
	if c.Server.RateLimitRPS <= 0 || c.Server.RateLimitBurst <= 0 {
		errs = append(errs, errors.New("server.rate_limit_rps and server.rate_limit_burst must be positive"))
	}
	return errors.Join(errs...)
}

// RecommenderOptions maps the catalog, association, stats and media
// sections onto the façade options. Call Validate first.
func (c *Config) RecommenderOptions() usecase.Options {
	mode, _ := catalog.ParseLoadMode(c.Catalog.LoadMode)
	policy, _ := association.ParseSelfPairPolicy(c.Association.SelfPairs)
	return usecase.Options{
		LoadMode:       mode,
		SelfPairs:      policy,
		LenientStats:   c.Stats.Lenient,
		ListDelimiters: c.Media.ListDelimiters,
	}
}

func (c *Config) Logging() logging.Config {
	return logging.Config{Level: c.Log.Level, Format: c.Log.Format, Caller: c.Log.Caller}
}
