package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mydehq/ryu/internal/config"
	"github.com/mydehq/ryu/internal/prefs"
	"github.com/mydehq/ryu/internal/types"
)

func testConfig(t *testing.T, endpoint string) *config.GlobalConfig {
	t.Helper()
	root := t.TempDir()
	cfg := config.DefaultGlobalConfig()
	cfg.Catalog.Endpoint = endpoint
	cfg.Catalog.RateLimit = 100
	cfg.Paths = types.PathsConfig{
		DataDir:      filepath.Join(root, "data"),
		CacheDir:     filepath.Join(root, "cache"),
		DownloadsDir: filepath.Join(root, "downloads"),
		BackupDir:    filepath.Join(root, "backups"),
	}
	return &cfg
}

func TestFetchDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"Media":{"id":21,"title":{"romaji":"One Piece"},"averageScore":88,"genres":["Action"]}}}`))
	}))
	defer srv.Close()

	d, err := FetchDetail(context.Background(), "https://anilist.co/anime/21/One-Piece", WithGlobalConfig(testConfig(t, srv.URL)))
	if err != nil {
		t.Fatalf("FetchDetail failed: %v", err)
	}
	if d.Title != "One Piece" || d.Score != "Score: 88" || d.Genres != "Genres: Action" || d.Aired != "Aired: N/A" {
		t.Errorf("unexpected detail %+v", d)
	}
}

func TestStartFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"Media":{"id":21,"title":{"romaji":"One Piece"}}}}`))
	}))
	defer srv.Close()

	results := make(chan *types.Media, 1)
	_, err := StartFetch(context.Background(), "21", func(m *types.Media, err error) {
		if err != nil {
			t.Errorf("deliver got error: %v", err)
		}
		results <- m
	}, WithGlobalConfig(testConfig(t, srv.URL)))
	if err != nil {
		t.Fatalf("StartFetch failed: %v", err)
	}

	select {
	case m := <-results:
		if m == nil || m.ID != 21 {
			t.Errorf("unexpected media %+v", m)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("deliver was not called")
	}

	if _, err := StartFetch(context.Background(), "anilist.co/anime/0", func(*types.Media, error) {}, WithGlobalConfig(testConfig(t, srv.URL))); err == nil {
		t.Error("expected error for id 0")
	}
}

func TestFetchMedia_BadID(t *testing.T) {
	if _, err := FetchMedia(context.Background(), "not-an-id", WithGlobalConfig(testConfig(t, "http://127.0.0.1"))); err == nil {
		t.Error("expected error for invalid id")
	}
}

func TestSettingsLifecycle(t *testing.T) {
	cfg := WithGlobalConfig(testConfig(t, "http://127.0.0.1"))

	st, err := GetSetting(prefs.KeyHoldSpeed, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if st.IsSet || st.Value != types.FloatValue(2.0) {
		t.Errorf("unexpected default state %+v", st)
	}

	st, err = SetSetting(prefs.KeyHoldSpeed, "0.75", cfg)
	if err != nil {
		t.Fatalf("SetSetting failed: %v", err)
	}
	if !st.IsSet || st.Label != "Hold Speed player: 0.75x" {
		t.Errorf("unexpected state after set %+v", st)
	}

	if _, err := SetSetting("holdSped", "1", cfg); err == nil {
		t.Error("expected unknown setting error")
	}

	if err := UnsetSetting(prefs.KeyHoldSpeed, cfg); err != nil {
		t.Fatal(err)
	}
	all, err := ListSettings(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != len(prefs.Schema) {
		t.Errorf("ListSettings returned %d entries, want %d", len(all), len(prefs.Schema))
	}
	for _, s := range all {
		if s.IsSet {
			t.Errorf("%s should be unset", s.Setting.Key)
		}
	}
}

func TestBackupRoundTrip(t *testing.T) {
	ctx := context.Background()
	cfg := WithGlobalConfig(testConfig(t, "http://127.0.0.1"))

	if _, err := SetSetting(prefs.KeyAutoPlay, "true", cfg); err != nil {
		t.Fatal(err)
	}
	if _, err := SetSetting(prefs.KeyMediaPlayer, "VLC", cfg); err != nil {
		t.Fatal(err)
	}

	rec, err := ExportBackup(ctx, cfg)
	if err != nil {
		t.Fatalf("ExportBackup failed: %v", err)
	}

	var resets int
	events := WithEvents(func(e types.Event) {
		if e.Type == types.EventDataReset {
			resets++
		}
	})

	if err := ResetSettings(cfg, events); err != nil {
		t.Fatal(err)
	}
	if err := ImportBackup(ctx, rec.Path, types.ImportMerge, cfg, events); err != nil {
		t.Fatalf("ImportBackup failed: %v", err)
	}
	if resets != 2 {
		t.Errorf("got %d reset events, want 2", resets)
	}

	st, _ := GetSetting(prefs.KeyMediaPlayer, cfg)
	if st.Value != types.StringValue("VLC") {
		t.Errorf("mediaPlayerSelected = %v after import", st.Value)
	}

	records, err := ListBackups(ctx, cfg)
	if err != nil || len(records) != 1 {
		t.Fatalf("ListBackups = %v, %v", records, err)
	}
	if err := CleanAllBackups(ctx, cfg); err != nil {
		t.Fatal(err)
	}
}

func TestClearSearchHistory(t *testing.T) {
	cfg := WithGlobalConfig(testConfig(t, "http://127.0.0.1"))

	if _, err := SetSetting(prefs.KeySearchHistory, "naruto", cfg); err != nil {
		t.Fatal(err)
	}
	if err := ClearSearchHistory(cfg); err != nil {
		t.Fatal(err)
	}
	st, _ := GetSetting(prefs.KeySearchHistory, cfg)
	if st.IsSet {
		t.Error("search history still set")
	}
}

func TestPurgeOperations(t *testing.T) {
	ctx := context.Background()
	c := testConfig(t, "http://127.0.0.1")
	cfg := WithGlobalConfig(c)

	for _, dir := range []string{c.Paths.CacheDir, c.Paths.DownloadsDir} {
		if err := os.MkdirAll(filepath.Join(dir, "sub"), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join(dir, "file"), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	var messages []string
	events := WithEvents(func(e types.Event) {
		if e.Type == types.EventSuccess {
			messages = append(messages, e.Message)
		}
	})

	res, err := ClearCache(ctx, cfg, events)
	if err != nil || len(res.Removed) != 2 {
		t.Fatalf("ClearCache = %+v, %v", res, err)
	}
	res, err = PurgeDownloads(ctx, cfg, events)
	if err != nil || len(res.Removed) != 2 {
		t.Fatalf("PurgeDownloads = %+v, %v", res, err)
	}

	want := []string{MsgCacheCleared, MsgDownloadsDeleted}
	if len(messages) != 2 || messages[0] != want[0] || messages[1] != want[1] {
		t.Errorf("messages = %v, want %v", messages, want)
	}
}

func TestResolve_BadConfigPath(t *testing.T) {
	_, err := ListSettings(WithConfig(filepath.Join(t.TempDir(), "missing.yml")))
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist cause, got %v", err)
	}
}
