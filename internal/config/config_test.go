package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/mydehq/ryu/internal/types"
)

func TestDefaultGlobalConfig(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/data")
	t.Setenv("XDG_CACHE_HOME", "/cache")

	cfg := DefaultGlobalConfig()

	if cfg.Catalog.Endpoint != "https://graphql.anilist.co" {
		t.Errorf("unexpected endpoint: %s", cfg.Catalog.Endpoint)
	}
	if cfg.Paths.DataDir != "/data/ryu" || cfg.Paths.CacheDir != "/cache/ryu" {
		t.Errorf("unexpected dirs: %+v", cfg.Paths)
	}
	if cfg.Paths.BackupDir != "/data/ryu/backups" || cfg.Paths.DownloadsDir != "/data/ryu/downloads" {
		t.Errorf("unexpected derived dirs: %+v", cfg.Paths)
	}
	if err := Validate(&cfg); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadGlobal_File(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yml")

	content := `catalog:
  endpoint: "http://localhost:8080/graphql"
  rate_limit: 0.5
paths:
  cache_dir: "/tmp/ryu-cache"
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadGlobal(configPath)
	if err != nil {
		t.Fatalf("LoadGlobal failed: %v", err)
	}

	if cfg.Catalog.Endpoint != "http://localhost:8080/graphql" {
		t.Errorf("unexpected endpoint: %s", cfg.Catalog.Endpoint)
	}
	if cfg.Catalog.RateLimit != 0.5 {
		t.Errorf("unexpected rate limit: %v", cfg.Catalog.RateLimit)
	}
	if cfg.Catalog.Timeout != 30 {
		t.Errorf("timeout default lost: %d", cfg.Catalog.Timeout)
	}
	if cfg.Paths.CacheDir != "/tmp/ryu-cache" {
		t.Errorf("unexpected cache dir: %s", cfg.Paths.CacheDir)
	}
	if cfg.Paths.DataDir == "" {
		t.Error("data dir default lost")
	}
	if cfg.Source != configPath {
		t.Errorf("Source = %s", cfg.Source)
	}
}

func TestLoadGlobal_XDGLookup(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)

	if err := os.MkdirAll(filepath.Join(xdg, "ryu"), 0755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(xdg, "ryu", "config.yml")
	if err := os.WriteFile(path, []byte("catalog:\n  timeout: 5\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadGlobal("")
	if err != nil {
		t.Fatalf("LoadGlobal failed: %v", err)
	}
	if cfg.Catalog.Timeout != 5 || cfg.Source != path {
		t.Errorf("config not picked up from XDG: %+v", cfg)
	}
}

func TestLoadGlobal_EnvOverrides(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(EnvEndpoint, "https://example.test/graphql")
	t.Setenv(EnvDownloadsDir, "/srv/downloads")
	t.Setenv(EnvRateLimit, "2.5")

	cfg, err := LoadGlobal("")
	if err != nil {
		t.Fatalf("LoadGlobal failed: %v", err)
	}
	if cfg.Catalog.Endpoint != "https://example.test/graphql" {
		t.Errorf("endpoint override ignored: %s", cfg.Catalog.Endpoint)
	}
	if cfg.Paths.DownloadsDir != "/srv/downloads" {
		t.Errorf("downloads override ignored: %s", cfg.Paths.DownloadsDir)
	}
	if cfg.Catalog.RateLimit != 2.5 {
		t.Errorf("rate limit override ignored: %v", cfg.Catalog.RateLimit)
	}
}

func TestLoadGlobal_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad yaml", "catalog: [unclosed"},
		{"bad endpoint", "catalog:\n  endpoint: \"ftp://anilist\"\n"},
		{"negative timeout", "catalog:\n  timeout: -1\n"},
		{"empty dir", "paths:\n  backup_dir: \"\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yml")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadGlobal(path); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestValidate_ErrorType(t *testing.T) {
	cfg := DefaultGlobalConfig()
	cfg.Catalog.Endpoint = "not a url"

	var ce types.ErrConfigInvalid
	if err := Validate(&cfg); !errors.As(err, &ce) {
		t.Errorf("expected ErrConfigInvalid, got %v", err)
	}
}

func TestLoadEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("RYU_TEST_FROM_DOTENV=yes\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Unsetenv("RYU_TEST_FROM_DOTENV") })

	if err := LoadEnvFile(path); err != nil {
		t.Fatalf("LoadEnvFile failed: %v", err)
	}
	if os.Getenv("RYU_TEST_FROM_DOTENV") != "yes" {
		t.Error("variable from .env not loaded")
	}

	if err := LoadEnvFile(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Errorf("missing file should be ignored, got %v", err)
	}
}
