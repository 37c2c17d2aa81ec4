package config

import (
	"os"
	"path/filepath"
	"testing"
)

// chdir is t.Chdir (Go 1.24+) for older toolchains: it changes into dir and
// restores the original working directory when the test ends.
func chdir(t *testing.T, dir string) {
	t.Helper()
	orig, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(orig); err != nil {
			t.Fatal(err)
		}
	})
}

func writeProjectConfig(t *testing.T, content string) {
	t.Helper()
	chdir(t, t.TempDir())
	t.Setenv("HOME", t.TempDir())
	if err := os.MkdirAll(".floortrack", 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(".floortrack", "config.yaml"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.APIURL != "http://localhost:8080/graphql" {
		t.Errorf("APIURL = %q", cfg.APIURL)
	}
	if cfg.MinBadgeLen != 4 || cfg.PollSeconds != 30 {
		t.Errorf("cfg = %+v, want built-in defaults", cfg)
	}
	if cfg.ListenAddr != "" {
		t.Errorf("ListenAddr = %q, want telemetry disabled by default", cfg.ListenAddr)
	}
}

func TestLoadProjectFile(t *testing.T) {
	writeProjectConfig(t, `
api_url: https://mes.example.com/graphql
api_token: secret
station_name: cnc-cell-3
min_badge_length: 6
dashboard_poll_seconds: 10
telemetry_listen: ":9091"
`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.APIURL != "https://mes.example.com/graphql" || cfg.APIToken != "secret" {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.StationName != "cnc-cell-3" || cfg.MinBadgeLen != 6 || cfg.PollSeconds != 10 {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.ListenAddr != ":9091" {
		t.Errorf("ListenAddr = %q", cfg.ListenAddr)
	}
}

func TestLoadGlobalFallback(t *testing.T) {
	chdir(t, t.TempDir())
	home := t.TempDir()
	t.Setenv("HOME", home)

	if err := os.MkdirAll(filepath.Join(home, ".floortrack"), 0755); err != nil {
		t.Fatal(err)
	}
	err := os.WriteFile(filepath.Join(home, ".floortrack", "config.yaml"),
		[]byte("station_name: global-station\n"), 0644)
	if err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.StationName != "global-station" {
		t.Errorf("StationName = %q, want global file value", cfg.StationName)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	writeProjectConfig(t, "station_name: from-file\ndashboard_poll_seconds: 60\n")
	t.Setenv("FLOORTRACK_STATION", "from-env")
	t.Setenv("FLOORTRACK_POLL_SECONDS", "15")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.StationName != "from-env" {
		t.Errorf("StationName = %q, want env value", cfg.StationName)
	}
	if cfg.PollSeconds != 15 {
		t.Errorf("PollSeconds = %d, want env value", cfg.PollSeconds)
	}
}

func TestLoadClamps(t *testing.T) {
	writeProjectConfig(t, "min_badge_length: 0\ndashboard_poll_seconds: 1\n")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.MinBadgeLen != 1 {
		t.Errorf("MinBadgeLen = %d, want clamped to 1", cfg.MinBadgeLen)
	}
	if cfg.PollSeconds != 5 {
		t.Errorf("PollSeconds = %d, want clamped to 5", cfg.PollSeconds)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	writeProjectConfig(t, "station_name: [unclosed\n")

	if _, err := Load(); err == nil {
		t.Fatal("want parse error for malformed YAML")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg := Default()
	cfg.StationName = "saved-station"
	if err := Save(cfg); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if loaded.StationName != "saved-station" {
		t.Errorf("StationName = %q, want saved value", loaded.StationName)
	}
}
