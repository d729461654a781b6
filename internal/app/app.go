package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vk/gridrec/internal/ctxlog"
	"github.com/vk/gridrec/internal/fsutil"
	"github.com/vk/gridrec/internal/manifest"
	"github.com/vk/gridrec/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and
// lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	registry *registry.Registry
	config   *Config
}

// NewApp constructs the application: it builds an isolated logger, locates
// every manifest under the configured path, and loads them into a validated
// registry. A failure to load manifests is a fatal startup error and
// panics; the CLI entrypoint recovers it into a clean exit message.
func NewApp(outW io.Writer, cfg *Config, loader *manifest.Loader) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	paths, err := manifestPaths(cfg.SchemasPath)
	if err != nil {
		panic(fmt.Errorf("failed to locate schema manifests: %w", err))
	}
	if len(paths) == 0 {
		panic(fmt.Errorf("no .hcl manifests found under %s", cfg.SchemasPath))
	}
	logger.Debug("Manifest files located.", "count", len(paths))

	reg, err := loader.LoadFiles(ctx, paths)
	if err != nil {
		panic(fmt.Errorf("failed to load schema manifests: %w", err))
	}

	return &App{
		outW:     outW,
		logger:   logger,
		registry: reg,
		config:   cfg,
	}
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// manifestPaths resolves the configured schemas path into the list of
// manifest files to decode: the file itself, or every .hcl file under the
// directory.
func manifestPaths(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{path}, nil
	}
	return fsutil.FindFilesByExtension(path, ".hcl")
}
