// Package config loads render settings from a JSON, YAML or TOML file and
// merges them with command-line overrides.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"mc-skin-renderer/internal/raster"
	"mc-skin-renderer/internal/request"
)

// Output formats.
const (
	FormatWebP = "webp"
	FormatPNG  = "png"
)

// Config holds all configurable paths and render settings.
type Config struct {
	// Paths
	SkinDir   string `json:"skin_dir" yaml:"skin_dir" toml:"skin_dir"`
	OutputDir string `json:"output_dir" yaml:"output_dir" toml:"output_dir"`

	// Armor sheets, looked up by name in the skin directory.
	ArmorLayer1 string `json:"armor_layer_1" yaml:"armor_layer_1" toml:"armor_layer_1"`
	ArmorLayer2 string `json:"armor_layer_2" yaml:"armor_layer_2" toml:"armor_layer_2"`

	// Render settings
	Mode      string                 `json:"mode" yaml:"mode" toml:"mode"`
	Model     string                 `json:"model" yaml:"model" toml:"model"`
	Exclude   string                 `json:"exclude" yaml:"exclude" toml:"exclude"`
	DepthFunc string                 `json:"depth_func" yaml:"depth_func" toml:"depth_func"`
	Extra     *request.ExtraSettings `json:"extra,omitempty" yaml:"extra,omitempty" toml:"extra,omitempty"`

	// Output settings
	Format    string  `json:"format" yaml:"format" toml:"format"`
	Crop      bool    `json:"crop" yaml:"crop" toml:"crop"`
	RawSkin   bool    `json:"raw_skin" yaml:"raw_skin" toml:"raw_skin"`
	FillRatio float64 `json:"fill_ratio" yaml:"fill_ratio" toml:"fill_ratio"`
	Workers   int     `json:"workers" yaml:"workers" toml:"workers"`
	CacheTTL  string  `json:"cache_ttl" yaml:"cache_ttl" toml:"cache_ttl"`

	// Logging
	LogLevel string `json:"log_level" yaml:"log_level" toml:"log_level"`
	LogFile  string `json:"log_file" yaml:"log_file" toml:"log_file"`
}

// Load reads a config file, picking the decoder from the extension.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		err = json.Unmarshal(data, &cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	default:
		return Config{}, fmt.Errorf("config: unsupported format %q", ext)
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	SkinDir   string
	OutputDir string
	Mode      string
	Model     string
	Exclude   string
	Format    string
	Workers   int
	LogLevel  string
}

// Resolve fills in any empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	setIf(&c.SkinDir, flags.SkinDir)
	setIf(&c.OutputDir, flags.OutputDir)
	setIf(&c.Mode, flags.Mode)
	setIf(&c.Model, flags.Model)
	setIf(&c.Exclude, flags.Exclude)
	setIf(&c.Format, flags.Format)
	setIf(&c.LogLevel, flags.LogLevel)
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}

	// Defaults
	orDefault(&c.SkinDir, "skins")
	orDefault(&c.OutputDir, "renders")
	orDefault(&c.Mode, request.FullBody.String())
	orDefault(&c.Model, "auto")
	orDefault(&c.DepthFunc, raster.DepthLess.String())
	orDefault(&c.Format, FormatWebP)
	orDefault(&c.CacheTTL, "10m")
	orDefault(&c.LogLevel, "info")
	if c.FillRatio <= 0 {
		c.FillRatio = 0.9
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}

func setIf(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func orDefault(dst *string, def string) {
	if *dst == "" {
		*dst = def
	}
}

// Settings is the typed form of a resolved Config.
type Settings struct {
	Mode     request.Mode
	Model    request.Model
	Excluded request.FeatureSet
	Depth    raster.DepthFunc
	CacheTTL time.Duration
}

// Settings parses the string-valued render settings.
func (c *Config) Settings() (Settings, error) {
	var s Settings
	var err error
	if s.Mode, err = request.ParseMode(c.Mode); err != nil {
		return Settings{}, fmt.Errorf("config: mode: %w", err)
	}
	if s.Model, err = request.ParseModel(c.Model); err != nil {
		return Settings{}, fmt.Errorf("config: model: %w", err)
	}
	if s.Excluded, err = request.ParseFeatureList(c.Exclude); err != nil {
		return Settings{}, fmt.Errorf("config: exclude: %w", err)
	}
	// Skins are processed unless raw output is asked for.
	if !c.RawSkin {
		s.Excluded = s.Excluded.With(request.UnProcessedSkin)
	}
	if s.Depth, err = raster.ParseDepthFunc(c.DepthFunc); err != nil {
		return Settings{}, fmt.Errorf("config: depth_func: %w", err)
	}
	if s.CacheTTL, err = time.ParseDuration(c.CacheTTL); err != nil {
		return Settings{}, fmt.Errorf("config: cache_ttl: %w", err)
	}
	if c.Format != FormatWebP && c.Format != FormatPNG {
		return Settings{}, fmt.Errorf("config: unknown format %q", c.Format)
	}
	return s, nil
}
