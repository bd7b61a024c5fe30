package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"

	"mc-skin-renderer/internal/batch"
	"mc-skin-renderer/internal/config"
	"mc-skin-renderer/internal/logger"
	"mc-skin-renderer/internal/parts"
	"mc-skin-renderer/internal/request"
	"mc-skin-renderer/internal/scene"
	"mc-skin-renderer/internal/texture"
	"mc-skin-renderer/internal/watch"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to a .json, .yaml or .toml config file")
	skinDir := flag.String("skins", "", "Skin directory (default: skins)")
	outputDir := flag.String("output", "", "Output directory (default: renders)")
	mode := flag.String("mode", "", "Render mode, e.g. full_body, head_iso, face")
	model := flag.String("model", "", "Arm model: auto, classic or slim")
	exclude := flag.String("exclude", "", "Comma-separated features to disable, e.g. shadow,cape")
	armor := flag.String("armor", "", "Comma-separated armor slots to draw, e.g. helmet,boots")
	format := flag.String("format", "", "Output format: webp or png")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	logLevel := flag.String("log-level", "", "Log level: debug, info, warn, error")
	testN := flag.Int("test", 0, "Render only the first N entries")
	watchDir := flag.Bool("watch", false, "Keep running and re-render skins as they change")

	flag.Parse()

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		SkinDir:   *skinDir,
		OutputDir: *outputDir,
		Mode:      *mode,
		Model:     *model,
		Exclude:   *exclude,
		Format:    *format,
		Workers:   *workers,
		LogLevel:  *logLevel,
	})

	if err := logger.Init(cfg.LogLevel, cfg.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	settings, err := cfg.Settings()
	if err != nil {
		logger.Fatal("invalid settings", zap.Error(err))
	}
	slots, err := parseArmor(*armor)
	if err != nil {
		logger.Fatal("invalid armor", zap.Error(err))
	}

	// Build texture index
	texIndex := texture.BuildIndex(cfg.SkinDir)
	texCache := texture.NewCache(texIndex, settings.CacheTTL)
	logger.Info("textures indexed", zap.String("dir", cfg.SkinDir), zap.Int("count", texIndex.Len()))

	template := request.NewFromExcludedFeatures(settings.Mode, request.Entry{}, settings.Model, settings.Excluded, cfg.Extra)
	template.Armor = slots

	batchCfg := batch.Config{
		OutputDir: cfg.OutputDir,
		Format:    cfg.Format,
		Crop:      cfg.Crop,
		FillRatio: cfg.FillRatio,
		Workers:   cfg.Workers,
		Template:  *template,
		Renderer:  scene.Renderer{Depth: settings.Depth},
		Sources: scene.Sources{
			Resolver:    texCache,
			ArmorLayer1: cfg.ArmorLayer1,
			ArmorLayer2: cfg.ArmorLayer2,
		},
	}
	skip := map[string]bool{
		texture.Key(cfg.ArmorLayer1): cfg.ArmorLayer1 != "",
		texture.Key(cfg.ArmorLayer2): cfg.ArmorLayer2 != "",
	}

	entries, err := collectEntries(flag.Args(), texIndex, skip)
	if err != nil {
		logger.Fatal("invalid entry", zap.Error(err))
	}
	if *testN > 0 && *testN < len(entries) {
		entries = entries[:*testN]
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("rendering",
		zap.Int("entries", len(entries)),
		zap.Stringer("mode", settings.Mode),
		zap.Int("workers", cfg.Workers),
		zap.String("output", cfg.OutputDir))

	start := time.Now()
	results := batch.Run(ctx, batchCfg, entries)

	failed := 0
	for _, r := range results {
		if !r.Success {
			failed++
		}
	}
	logger.Info("done",
		zap.Duration("took", time.Since(start).Round(time.Millisecond)),
		zap.Int("rendered", len(results)-failed),
		zap.Int("failed", failed))

	// Write manifest
	if err := os.MkdirAll(cfg.OutputDir, 0755); err == nil {
		manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
		if err := batch.WriteManifest(manifestPath, batchCfg, results); err != nil {
			logger.Warn("manifest write failed", zap.Error(err))
		} else {
			logger.Info("manifest written", zap.String("path", manifestPath))
		}
	}

	if *watchDir {
		w, err := watch.New(texIndex, texCache, func(key string) {
			if skip[key] {
				return
			}
			res := batch.RenderOne(ctx, batchCfg, request.Entry{Kind: request.EntryName, Name: key})
			if res.Success {
				logger.Info("re-rendered", zap.String("entry", key), zap.String("image", res.Image))
			}
		})
		if err != nil {
			logger.Fatal("watch", zap.Error(err))
		}
		logger.Info("watching for changes", zap.String("dir", cfg.SkinDir))
		if err := w.Watch(ctx, cfg.SkinDir); err != nil {
			logger.Fatal("watch", zap.Error(err))
		}
		return
	}

	if failed > 0 {
		logger.Sync()
		os.Exit(1)
	}
}

func parseArmor(s string) ([]parts.ArmorSlot, error) {
	var slots []parts.ArmorSlot
	for _, name := range strings.Split(s, ",") {
		if strings.TrimSpace(name) == "" {
			continue
		}
		slot, err := parts.ParseArmorSlot(name)
		if err != nil {
			return nil, err
		}
		slots = append(slots, slot)
	}
	return slots, nil
}

// collectEntries parses the command-line entries, or lists every skin in the
// index when none are given. Capes and skipped keys are not skins.
func collectEntries(args []string, index *texture.Index, skip map[string]bool) ([]request.Entry, error) {
	if len(args) > 0 {
		entries := make([]request.Entry, 0, len(args))
		for _, arg := range args {
			e, err := request.ParseEntry(arg)
			if err != nil {
				return nil, err
			}
			entries = append(entries, e)
		}
		return entries, nil
	}

	var entries []request.Entry
	for _, key := range index.Keys() {
		if skip[key] || strings.HasSuffix(key, scene.CapeSuffix) {
			continue
		}
		entries = append(entries, request.Entry{Kind: request.EntryName, Name: key})
	}
	return entries, nil
}
