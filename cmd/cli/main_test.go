package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/countryplug/internal/config"
)

func TestRun_CzechGreeting(t *testing.T) {
	t.Parallel()

	args := []string{
		"-log-format", "text",
		"-countries", filepath.Join(t.TempDir(), "countries.hcl"),
		"-config-file", filepath.Join(t.TempDir(), "country_config.txt"),
		"cz",
	}
	out := &bytes.Buffer{}

	require.NoError(t, run(out, args))
	require.Contains(t, out.String(), "Ahoj, World!")
	require.Contains(t, out.String(), "Na shledanou, World!")
}

func TestRun_GreetNameFlag(t *testing.T) {
	t.Parallel()

	args := []string{
		"-log-format", "text",
		"-countries", filepath.Join(t.TempDir(), "countries.hcl"),
		"-config-file", filepath.Join(t.TempDir(), "country_config.txt"),
		"-name", "Svět",
		"cz",
	}
	out := &bytes.Buffer{}

	require.NoError(t, run(out, args))
	require.Contains(t, out.String(), "Ahoj, Svět!")
}

func TestRun_PanicRecovery(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// A manifest with a syntax error causes a panic inside app.NewApp(),
	// which run() must recover into a clean error.
	invalidManifest := `
country "cz" {
  module = "modules/cz"
`
	tempDir := t.TempDir()
	manifestPath := filepath.Join(tempDir, "countries.hcl")
	require.NoError(t, os.WriteFile(manifestPath, []byte(invalidManifest), 0600))

	args := []string{"-countries", manifestPath, "cz"}
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, args)

	// --- Assert ---
	require.Error(t, err)
	require.Contains(t, err.Error(), "application startup panicked")
	require.Contains(t, err.Error(), "failed to parse")
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	require.NoError(t, run(out, []string{"-h"}))
	require.Contains(t, out.String(), "Usage:", "expected help text on -h")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	err := run(&bytes.Buffer{}, []string{"--this-is-not-a-valid-flag"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}

func TestRun_NoConfiguration(t *testing.T) {
	t.Setenv(config.EnvVar, "")

	args := []string{
		"-countries", filepath.Join(t.TempDir(), "countries.hcl"),
		"-config-file", filepath.Join(t.TempDir(), "country_config.txt"),
	}

	err := run(&bytes.Buffer{}, args)
	require.ErrorIs(t, err, config.ErrNoConfiguration)
}

func TestRun_UnknownCountry(t *testing.T) {
	t.Parallel()

	args := []string{
		"-countries", filepath.Join(t.TempDir(), "countries.hcl"),
		"-config-file", filepath.Join(t.TempDir(), "country_config.txt"),
		"de",
	}

	err := run(&bytes.Buffer{}, args)
	require.ErrorContains(t, err, "unknown country 'de'")
	require.ErrorContains(t, err, "cz, hu")
}
