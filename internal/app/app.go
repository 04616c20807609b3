package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vk/countryplug/internal/catalog"
	"github.com/vk/countryplug/internal/ctxlog"
	"github.com/vk/countryplug/internal/loader"
	"github.com/vk/countryplug/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	catalog  *catalog.Catalog
	registry *registry.Registry
	loader   *loader.Loader
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger, catalog, and
// registry. A nil manifestLoader or an absent manifest path selects the
// built-in catalog; a malformed manifest is a fatal startup error and
// panics, to be recovered by the entrypoint.
func NewApp(outW io.Writer, appConfig *Config, manifestLoader catalog.Loader, variants ...loader.Binding) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	cat := buildCatalog(ctx, appConfig.CatalogPath, manifestLoader)
	logger.Debug("Variant catalog ready.", "countries", cat.Codes())

	reg := registry.New(logger)
	if len(variants) == 0 {
		variants = coreVariants
	}
	ld := loader.New(cat, reg, variants)
	logger.Debug("Country loader ready.", "bindings", len(variants))

	return &App{
		outW:     outW,
		logger:   logger,
		config:   appConfig,
		catalog:  cat,
		registry: reg,
		loader:   ld,
	}
}

// buildCatalog loads the discovery manifest when one exists, falling back to
// the catalog compiled into the binary.
func buildCatalog(ctx context.Context, path string, manifestLoader catalog.Loader) *catalog.Catalog {
	logger := ctxlog.FromContext(ctx)

	if manifestLoader == nil {
		logger.Debug("No manifest loader supplied, using built-in catalog.")
		return catalog.Builtin()
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		logger.Debug("No discovery manifest found, using built-in catalog.", "path", path)
		return catalog.Builtin()
	}

	entries, err := manifestLoader.Load(ctx, path)
	if err != nil {
		panic(fmt.Errorf("failed to load country discovery manifest: %w", err))
	}
	cat, err := catalog.New(entries)
	if err != nil {
		panic(fmt.Errorf("invalid country discovery manifest: %w", err))
	}
	logger.Debug("Catalog built from discovery manifest.", "path", path)
	return cat
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Catalog returns the application's variant catalog.
func (a *App) Catalog() *catalog.Catalog {
	return a.catalog
}
