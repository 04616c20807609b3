package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/vk/countryplug/internal/catalog"
	"github.com/vk/countryplug/internal/ctxlog"
)

// EnvVar is the environment variable consulted when no explicit argument is
// given.
const EnvVar = "PLUGIN2_COUNTRY"

// DefaultFilePath is the conventional config file checked as the last
// source, relative to the working directory.
const DefaultFilePath = "country_config.txt"

// ErrNoConfiguration is returned when no source supplied a country code.
// There is no implicit default; absence is a hard startup failure.
var ErrNoConfiguration = errors.New("no country configuration found")

// Provenance names the configuration source that supplied the active code.
type Provenance string

const (
	ProvenanceArgument    Provenance = "argument"
	ProvenanceEnvironment Provenance = "environment"
	ProvenanceFile        Provenance = "file"
)

// Active is the resolved configuration for this process: the single active
// country code and where it came from. It is determined once at startup and
// never changes afterwards.
type Active struct {
	Code   string
	Source Provenance
}

// Resolver determines the active country code. The zero value resolves from
// the real environment and the conventional file path; tests inject their
// own sources.
type Resolver struct {
	// Argument is the explicit country code, typically the CLI positional
	// argument. Highest priority when non-empty.
	Argument string
	// LookupEnv overrides the environment lookup. Defaults to os.LookupEnv.
	LookupEnv func(string) (string, bool)
	// FilePath overrides the config file location. Defaults to
	// DefaultFilePath.
	FilePath string
	// Catalog validates the resolved code. Required.
	Catalog *catalog.Catalog
}

// Resolve checks the sources in priority order and stops at the first one
// that yields a value. The value is trimmed, lower-cased, and validated
// against the catalog. Safe to call repeatedly; aside from env and file
// reads it has no side effects.
func (r *Resolver) Resolve(ctx context.Context) (Active, error) {
	logger := ctxlog.FromContext(ctx)

	active, err := r.firstSource(ctx)
	if err != nil {
		return Active{}, err
	}

	if err := r.Catalog.Validate(active.Code); err != nil {
		return Active{}, fmt.Errorf("invalid country from %s source: %w", active.Source, err)
	}

	logger.Info("Active country resolved.", "country", active.Code, "provenance", string(active.Source))
	return active, nil
}

func (r *Resolver) firstSource(ctx context.Context) (Active, error) {
	logger := ctxlog.FromContext(ctx)

	if code := normalize(r.Argument); code != "" {
		return Active{Code: code, Source: ProvenanceArgument}, nil
	}

	lookupEnv := r.LookupEnv
	if lookupEnv == nil {
		lookupEnv = os.LookupEnv
	}
	if raw, ok := lookupEnv(EnvVar); ok {
		if code := normalize(raw); code != "" {
			logger.Debug("Country read from environment.", "variable", EnvVar)
			return Active{Code: code, Source: ProvenanceEnvironment}, nil
		}
	}

	filePath := r.FilePath
	if filePath == "" {
		filePath = DefaultFilePath
	}
	raw, err := os.ReadFile(filePath)
	if err == nil {
		if code := normalize(string(raw)); code != "" {
			logger.Debug("Country read from config file.", "path", filePath)
			return Active{Code: code, Source: ProvenanceFile}, nil
		}
	} else if !os.IsNotExist(err) {
		logger.Warn("Failed to read country config file.", "path", filePath, "error", err)
	}

	return Active{}, fmt.Errorf("%w: no argument given, %s is unset, and %s is absent",
		ErrNoConfiguration, EnvVar, filePath)
}

func normalize(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}
