// Package config loads the global ryu configuration.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/mydehq/ryu/internal/catalog"
	"github.com/mydehq/ryu/internal/types"
)

// AppName names the config, data and cache directories
const AppName = "ryu"

// Environment variables that override the config file
const (
	EnvEndpoint     = "RYU_CATALOG_ENDPOINT"
	EnvRateLimit    = "RYU_CATALOG_RATE_LIMIT"
	EnvDataDir      = "RYU_DATA_DIR"
	EnvCacheDir     = "RYU_CACHE_DIR"
	EnvDownloadsDir = "RYU_DOWNLOADS_DIR"
	EnvBackupDir    = "RYU_BACKUP_DIR"
)

// GlobalConfig represents the system-wide or user-specific global configuration.
type GlobalConfig struct {
	Catalog types.CatalogConfig `yaml:"catalog"`
	Paths   types.PathsConfig   `yaml:"paths"`

	// Source is the file the config was read from; empty for defaults
	Source string `yaml:"-"`
}

// DefaultGlobalConfig returns the hardcoded default configuration.
func DefaultGlobalConfig() GlobalConfig {
	data := xdgDir("XDG_DATA_HOME", filepath.Join(".local", "share"))
	return GlobalConfig{
		Catalog: types.CatalogConfig{
			Endpoint:  catalog.DefaultEndpoint,
			RateLimit: 1,
			Timeout:   30,
		},
		Paths: types.PathsConfig{
			DataDir:      data,
			CacheDir:     xdgDir("XDG_CACHE_HOME", ".cache"),
			DownloadsDir: filepath.Join(data, "downloads"),
			BackupDir:    filepath.Join(data, "backups"),
		},
	}
}

// LoadGlobal loads the global configuration from the specified path or standard locations.
// Environment overrides are applied last.
func LoadGlobal(customPath string) (*GlobalConfig, error) {
	cfg := DefaultGlobalConfig()

	path := customPath
	if path == "" {
		path = findGlobalConfig()
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read global config at %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse global config at %s: %w", path, err)
		}
		cfg.Source = path
	}

	if err := applyEnv(&cfg); err != nil {
		return nil, err
	}
	cfg.Paths = expandPaths(cfg.Paths)

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadEnvFile loads variables from a dotenv file without overriding the environment.
// A missing file is not an error.
func LoadEnvFile(path string) error {
	if path == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// Validate checks the configuration for values the client cannot use
func Validate(cfg *GlobalConfig) error {
	invalid := func(reason string) error {
		src := cfg.Source
		if src == "" {
			src = "(defaults)"
		}
		return types.ErrConfigInvalid{Path: src, Reason: reason}
	}

	u, err := url.Parse(cfg.Catalog.Endpoint)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return invalid(fmt.Sprintf("catalog.endpoint %q is not an http(s) URL", cfg.Catalog.Endpoint))
	}
	if cfg.Catalog.RateLimit < 0 {
		return invalid("catalog.rate_limit must not be negative")
	}
	if cfg.Catalog.Timeout < 0 {
		return invalid("catalog.timeout must not be negative")
	}

	dirs := map[string]string{
		"paths.data_dir":      cfg.Paths.DataDir,
		"paths.cache_dir":     cfg.Paths.CacheDir,
		"paths.downloads_dir": cfg.Paths.DownloadsDir,
		"paths.backup_dir":    cfg.Paths.BackupDir,
	}
	for name, dir := range dirs {
		if dir == "" {
			return invalid(name + " is empty")
		}
	}
	return nil
}

// findGlobalConfig searches for the global config file in standard locations.
func findGlobalConfig() string {
	xdgConfig := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfig == "" {
		home, _ := os.UserHomeDir()
		if home != "" {
			xdgConfig = filepath.Join(home, ".config")
		}
	}

	if xdgConfig != "" {
		for _, name := range []string{"config.yml", "config.yaml"} {
			path := filepath.Join(xdgConfig, AppName, name)
			if _, err := os.Stat(path); err == nil {
				return path
			}
		}
	}

	etcPath := filepath.Join("/etc", AppName, "config.yml")
	if _, err := os.Stat(etcPath); err == nil {
		return etcPath
	}

	return ""
}

func applyEnv(cfg *GlobalConfig) error {
	if v := os.Getenv(EnvEndpoint); v != "" {
		cfg.Catalog.Endpoint = v
	}
	if v := os.Getenv(EnvRateLimit); v != "" {
		rps, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return types.ErrConfigInvalid{Path: EnvRateLimit, Reason: "not a number: " + v}
		}
		cfg.Catalog.RateLimit = rps
	}

	overrides := []struct {
		env string
		dst *string
	}{
		{EnvDataDir, &cfg.Paths.DataDir},
		{EnvCacheDir, &cfg.Paths.CacheDir},
		{EnvDownloadsDir, &cfg.Paths.DownloadsDir},
		{EnvBackupDir, &cfg.Paths.BackupDir},
	}
	for _, o := range overrides {
		if v := os.Getenv(o.env); v != "" {
			*o.dst = v
		}
	}
	return nil
}

func expandPaths(p types.PathsConfig) types.PathsConfig {
	return types.PathsConfig{
		DataDir:      expandHome(p.DataDir),
		CacheDir:     expandHome(p.CacheDir),
		DownloadsDir: expandHome(p.DownloadsDir),
		BackupDir:    expandHome(p.BackupDir),
	}
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// xdgDir returns $env/ryu, falling back to ~/fallback/ryu
func xdgDir(env, fallback string) string {
	base := os.Getenv(env)
	if base == "" {
		home, _ := os.UserHomeDir()
		base = filepath.Join(home, fallback)
	}
	return filepath.Join(base, AppName)
}
