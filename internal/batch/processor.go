package batch

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/HugoSmits86/nativewebp"
	"go.uber.org/zap"

	"mc-skin-renderer/internal/config"
	"mc-skin-renderer/internal/logger"
	"mc-skin-renderer/internal/postprocess"
	"mc-skin-renderer/internal/request"
	"mc-skin-renderer/internal/scene"
)

// Config holds all shared resources for a batch run.
type Config struct {
	OutputDir string
	Format    string
	Crop      bool
	FillRatio float64
	Workers   int

	// Template is copied for every entry; only its Entry is replaced.
	Template request.Request
	Renderer scene.Renderer
	Sources  scene.Sources
}

// Result holds the outcome of rendering one entry.
type Result struct {
	Entry    string        `json:"entry"`
	Image    string        `json:"image,omitempty"`
	Success  bool          `json:"success"`
	Error    string        `json:"error,omitempty"`
	Duration time.Duration `json:"-"`
}

// Run renders all entries using a worker pool. Entries not started before ctx
// is cancelled are reported as failed.
func Run(ctx context.Context, cfg Config, entries []request.Entry) []Result {
	total := len(entries)
	results := make([]Result, total)
	var processed atomic.Int64

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				if p := processed.Load(); p > 0 {
					rate := float64(p) / time.Since(start).Seconds()
					logger.Sugar.Infof("[%d/%d] %.1f renders/sec", p, total, rate)
				}
			}
		}
	}()

	// Worker pool
	jobs := make(chan int, max(cfg.Workers, 1)*2)
	var wg sync.WaitGroup

	for w := 0; w < max(cfg.Workers, 1); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				results[idx] = RenderOne(ctx, cfg, entries[idx])
				processed.Add(1)
			}
		}()
	}

	// Send work
	sent := 0
send:
	for ; sent < total; sent++ {
		select {
		case jobs <- sent:
		case <-ctx.Done():
			break send
		}
	}
	close(jobs)
	for i := sent; i < total; i++ {
		results[i] = Result{Entry: entries[i].String(), Error: ctx.Err().Error()}
	}

	wg.Wait()
	close(done)

	return results
}

// RenderOne renders a single entry and writes it to the output directory.
func RenderOne(ctx context.Context, cfg Config, entry request.Entry) Result {
	start := time.Now()
	res := Result{Entry: entry.String()}
	fail := func(err error) Result {
		res.Error = err.Error()
		res.Duration = time.Since(start)
		logger.Warn("render failed", zap.String("entry", res.Entry), zap.Error(err))
		return res
	}

	req := cfg.Template
	req.Entry = entry

	textures, err := cfg.Sources.Load(&req)
	if err != nil {
		return fail(err)
	}
	img, err := cfg.Renderer.Render(ctx, &req, textures)
	if err != nil {
		return fail(err)
	}
	if cfg.Crop {
		b := img.Bounds()
		img = postprocess.CropAndCenter(img, b.Dx(), b.Dy(), cfg.FillRatio)
	}

	name := entry.Key() + "." + cfg.Format
	outPath := filepath.Join(cfg.OutputDir, name)
	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		return fail(err)
	}
	if err := writeImage(outPath, img, cfg.Format); err != nil {
		return fail(err)
	}

	res.Image = name
	res.Success = true
	res.Duration = time.Since(start)
	logger.Debug("rendered", zap.String("entry", res.Entry), zap.String("image", outPath), zap.Duration("took", res.Duration))
	return res
}

func writeImage(path string, img image.Image, format string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Encode(f, img, format); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Encode writes img as WebP (lossless) or PNG.
func Encode(w io.Writer, img image.Image, format string) error {
	switch format {
	case config.FormatWebP:
		if err := nativewebp.Encode(w, img, nil); err != nil {
			return fmt.Errorf("batch: webp encode: %w", err)
		}
	case config.FormatPNG:
		if err := png.Encode(w, img); err != nil {
			return fmt.Errorf("batch: png encode: %w", err)
		}
	default:
		return fmt.Errorf("batch: unknown format %q", format)
	}
	return nil
}
