package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config is the station configuration.
type Config struct {
	APIURL       string `yaml:"api_url"`
	APIToken     string `yaml:"api_token"`
	StationName  string `yaml:"station_name"`
	MinBadgeLen  int    `yaml:"min_badge_length"`
	PollSeconds  int    `yaml:"dashboard_poll_seconds"`
	ListenAddr   string `yaml:"telemetry_listen"` // empty disables the listener
	LogFile      string `yaml:"log_file"`
}

// Default returns the built-in defaults.
func Default() *Config {
	return &Config{
		APIURL:      "http://localhost:8080/graphql",
		StationName: "station-1",
		MinBadgeLen: 4,
		PollSeconds: 30,
		LogFile:     "floortrack.log",
	}
}

// globalConfigPath returns the global config file path
// (~/.floortrack/config.yaml).
func globalConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".floortrack", "config.yaml"), nil
}

// projectConfigPath returns the project-level config path
// (.floortrack/config.yaml in cwd).
func projectConfigPath() string {
	return filepath.Join(".floortrack", "config.yaml")
}

// Load reads the config, checking the project file first, then the global
// one, then falling back to defaults. Environment variables override
// whatever the file said.
func Load() (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(projectConfigPath())
	if err != nil {
		globalPath, pathErr := globalConfigPath()
		if pathErr == nil {
			data, err = os.ReadFile(globalPath)
		}
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}

	applyEnv(cfg)

	if cfg.MinBadgeLen < 1 {
		cfg.MinBadgeLen = 1
	}
	if cfg.PollSeconds < 5 {
		cfg.PollSeconds = 5
	}
	return cfg, nil
}

// applyEnv layers FLOORTRACK_* variables over the file values.
func applyEnv(cfg *Config) {
	cfg.APIURL = envStr("FLOORTRACK_API_URL", cfg.APIURL)
	cfg.APIToken = envStr("FLOORTRACK_API_TOKEN", cfg.APIToken)
	cfg.StationName = envStr("FLOORTRACK_STATION", cfg.StationName)
	cfg.MinBadgeLen = envInt("FLOORTRACK_MIN_BADGE_LENGTH", cfg.MinBadgeLen)
	cfg.PollSeconds = envInt("FLOORTRACK_POLL_SECONDS", cfg.PollSeconds)
	cfg.ListenAddr = envStr("FLOORTRACK_TELEMETRY_LISTEN", cfg.ListenAddr)
	cfg.LogFile = envStr("FLOORTRACK_LOG_FILE", cfg.LogFile)
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

// Save writes the config to the global location.
func Save(cfg *Config) error {
	path, err := globalConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
