package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"mc-skin-renderer/internal/raster"
	"mc-skin-renderer/internal/request"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFormats(t *testing.T) {
	files := map[string]string{
		"render.json": `{"skin_dir": "/data/skins", "mode": "head", "workers": 3, "extra": {"yaw": 45}}`,
		"render.yaml": "skin_dir: /data/skins\nmode: head\nworkers: 3\nextra:\n  yaw: 45\n",
		"render.toml": "skin_dir = \"/data/skins\"\nmode = \"head\"\nworkers = 3\n\n[extra]\nyaw = 45.0\n",
	}
	for name, content := range files {
		cfg, err := Load(writeFile(t, name, content))
		if err != nil {
			t.Errorf("%s: %v", name, err)
			continue
		}
		if cfg.SkinDir != "/data/skins" || cfg.Mode != "head" || cfg.Workers != 3 {
			t.Errorf("%s: got %+v", name, cfg)
		}
		if cfg.Extra == nil || cfg.Extra.Yaw == nil || *cfg.Extra.Yaw != 45 {
			t.Errorf("%s: extra yaw not loaded", name)
		}
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
	if _, err := Load(writeFile(t, "render.ini", "mode=head")); err == nil {
		t.Error("expected error for unsupported extension")
	}
	if _, err := Load(writeFile(t, "render.json", "{")); err == nil {
		t.Error("expected parse error")
	}
}

func TestResolveDefaults(t *testing.T) {
	var cfg Config
	cfg.Resolve(Flags{})

	if cfg.SkinDir != "skins" || cfg.OutputDir != "renders" {
		t.Errorf("dirs = %q, %q", cfg.SkinDir, cfg.OutputDir)
	}
	if cfg.Format != FormatWebP {
		t.Errorf("format = %q, want %q", cfg.Format, FormatWebP)
	}
	if cfg.Workers != runtime.NumCPU() {
		t.Errorf("workers = %d, want %d", cfg.Workers, runtime.NumCPU())
	}
	if cfg.LogLevel != "info" {
		t.Errorf("log level = %q, want info", cfg.LogLevel)
	}

	s, err := cfg.Settings()
	if err != nil {
		t.Fatal(err)
	}
	if s.Mode != request.FullBody || s.Model != request.ModelAuto || s.Excluded != request.NewFeatureSet(request.UnProcessedSkin) {
		t.Errorf("settings = %+v", s)
	}
	if s.Depth != raster.DepthLess {
		t.Errorf("depth = %v, want less", s.Depth)
	}
	if s.CacheTTL != 10*time.Minute {
		t.Errorf("cache ttl = %v, want 10m", s.CacheTTL)
	}
}

func TestResolveFlagsOverride(t *testing.T) {
	cfg := Config{Mode: "head", Format: FormatPNG, Workers: 2, DepthFunc: "greater_equal"}
	cfg.Resolve(Flags{Mode: "bust_iso", Workers: 8, Exclude: "shadow,cape"})

	if cfg.Mode != "bust_iso" || cfg.Workers != 8 || cfg.Format != FormatPNG {
		t.Errorf("got %+v", cfg)
	}
	s, err := cfg.Settings()
	if err != nil {
		t.Fatal(err)
	}
	if s.Mode != request.BustIso {
		t.Errorf("mode = %v, want bust_iso", s.Mode)
	}
	if !s.Excluded.Has(request.Shadow) || !s.Excluded.Has(request.Cape) || s.Excluded.Has(request.Shading) {
		t.Errorf("excluded = %v", s.Excluded)
	}
	if s.Depth != raster.DepthGreaterEqual {
		t.Errorf("depth = %v, want greater_equal", s.Depth)
	}
}

func TestSettingsRawSkin(t *testing.T) {
	cfg := Config{RawSkin: true}
	cfg.Resolve(Flags{})
	s, err := cfg.Settings()
	if err != nil {
		t.Fatal(err)
	}
	if s.Excluded.Has(request.UnProcessedSkin) {
		t.Error("raw_skin should keep the unprocessed skin feature")
	}
}

func TestSettingsInvalid(t *testing.T) {
	tests := []Config{
		{Mode: "sideways"},
		{Model: "huge"},
		{Exclude: "sparkles"},
		{DepthFunc: "sometimes"},
		{CacheTTL: "soon"},
		{Format: "gif"},
	}
	for _, cfg := range tests {
		cfg.Resolve(Flags{})
		if _, err := cfg.Settings(); err == nil {
			t.Errorf("Settings(%+v) should fail", cfg)
		}
	}
}
