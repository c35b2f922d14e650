package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths are tried in order when CONFIG_PATH is unset.
var DefaultConfigPaths = []string{
	"mediarec.yaml",
	"mediarec.yml",
}

const (
	ConfigPathEnvVar = "CONFIG_PATH"
	EnvPrefix        = "MEDIAREC_"
)

// Load layers defaults, the optional YAML file and the environment, in that
// order of increasing precedence. path overrides the file search when set.
func Load(path string) (*Config, error) {
	loadEnvFiles()

	k := koanf.New(".")
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path == "" {
		path = findConfigFile()
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}
	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// loadEnvFiles reads .env and .env.local. Variables already set win.
func loadEnvFiles() {
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")
}

func findConfigFile() string {
	if p := os.Getenv(ConfigPathEnvVar); p != "" {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	for _, p := range DefaultConfigPaths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// envAliases keeps the short variable names working.
var envAliases = map[string]string{
	"app_addr":  "server.addr",
	"log_level": "log.level",
}

// envTransformFunc maps MEDIAREC_SECTION_KEY to section.key. Other variables
// are ignored.
//
//	MEDIAREC_DATA_BOOKS_PATH -> data.books_path
//	MEDIAREC_SERVER_RATE_LIMIT_RPS -> server.rate_limit_rps
func envTransformFunc(key string) string {
	lower := strings.ToLower(key)
	if alias, ok := envAliases[lower]; ok {
		return alias
	}
	if !strings.HasPrefix(key, EnvPrefix) {
		return ""
	}
	section, rest, ok := strings.Cut(strings.TrimPrefix(lower, strings.ToLower(EnvPrefix)), "_")
	if !ok || rest == "" {
		return ""
	}
	return section + "." + rest
}

// sliceSeparators lists the slice keys that arrive from the environment as
// one string, with their separator. Delimiters are split on "|" since a
// comma is itself a delimiter.
var sliceSeparators = map[string]string{
	"server.cors_origins":   ",",
	"media.list_delimiters": "|",
}

func processSliceFields(k *koanf.Koanf) error {
	for path, sep := range sliceSeparators {
		s, ok := k.Get(path).(string)
		if !ok || s == "" {
			continue
		}
		var parts []string
		for _, p := range strings.Split(s, sep) {
			if sep == "," {
				p = strings.TrimSpace(p)
			}
			if p != "" {
				parts = append(parts, p)
			}
		}
		if err := k.Set(path, parts); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}
