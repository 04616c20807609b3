package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/countryplug/internal/capability"
	"github.com/vk/countryplug/internal/config"
	"github.com/vk/countryplug/internal/hcl"
)

// missingFile returns a path guaranteed not to exist, so tests never pick up
// a stray country_config.txt from the working directory.
func missingFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "country_config.txt")
}

func newTestConfig(t *testing.T, countryCode string) *Config {
	t.Helper()
	cfg, err := NewConfig(Config{
		CountryCode:    countryCode,
		CatalogPath:    filepath.Join(t.TempDir(), "countries.hcl"),
		ConfigFilePath: missingFile(t),
	})
	require.NoError(t, err)
	return cfg
}

func TestRun_CzechCountry(t *testing.T) {
	t.Parallel()

	testApp, buf := SetupAppTest(t, newTestConfig(t, "cz"))

	require.NoError(t, testApp.Run(context.Background()))

	out := buf.String()
	require.Contains(t, out, "Hello: Ahoj, World!")
	require.Contains(t, out, "Goodbye: Na shledanou, World!")
	require.Contains(t, out, "cz.Greeter")
	require.Contains(t, out, "Example name: České Jméno")

	// cz has no Address override: the default US formatting applies.
	require.Contains(t, out, "Formatted: 123 Main Street, Budapest, 12345")

	// Exactly one country's capabilities are present after startup.
	require.Equal(t, []string{capability.Greet, capability.Name}, testApp.Registry().Capabilities())
	greet, err := testApp.Registry().Resolve(capability.Greet)
	require.NoError(t, err)
	require.Equal(t, "cz", greet.Country)
}

func TestRun_HungarianCountry(t *testing.T) {
	t.Parallel()

	testApp, buf := SetupAppTest(t, newTestConfig(t, "hu"))

	require.NoError(t, testApp.Run(context.Background()))

	out := buf.String()
	require.Contains(t, out, "Hello: Szia, World!")
	require.Contains(t, out, "Goodbye: Viszlát, World!")
	require.Contains(t, out, "Example name: Magyar Név")
	require.Contains(t, out, "Formatted: 123 Main Street: Budapest: 8200")
	require.Contains(t, out, "Rejected postal code '10 0'")

	require.Equal(t,
		[]string{capability.Address, capability.Greet, capability.Name},
		testApp.Registry().Capabilities())
}

func TestRun_EnvironmentProvenance(t *testing.T) {
	t.Setenv(config.EnvVar, "hu")

	testApp, buf := SetupAppTest(t, newTestConfig(t, ""))

	require.NoError(t, testApp.Run(context.Background()))
	require.Contains(t, buf.String(), "provenance=environment")
	require.Contains(t, buf.String(), "Szia, World!")
}

func TestRun_FileProvenance(t *testing.T) {
	t.Setenv(config.EnvVar, "")

	cfg := newTestConfig(t, "")
	require.NoError(t, os.WriteFile(cfg.ConfigFilePath, []byte("cz\n"), 0600))

	testApp, buf := SetupAppTest(t, cfg)

	require.NoError(t, testApp.Run(context.Background()))
	require.Contains(t, buf.String(), "provenance=file")
	require.Contains(t, buf.String(), "Ahoj, World!")
}

func TestRun_NoConfiguration(t *testing.T) {
	t.Setenv(config.EnvVar, "")

	testApp, _ := SetupAppTest(t, newTestConfig(t, ""))

	err := testApp.Run(context.Background())
	require.ErrorIs(t, err, config.ErrNoConfiguration)
}

func TestRun_UnknownCountry(t *testing.T) {
	t.Parallel()

	testApp, _ := SetupAppTest(t, newTestConfig(t, "de"))

	err := testApp.Run(context.Background())
	require.ErrorContains(t, err, "unknown country 'de'")
	require.ErrorContains(t, err, "cz, hu", "error must enumerate the available codes")
}

func TestNewApp_ManifestCatalog(t *testing.T) {
	t.Parallel()

	manifestPath := filepath.Join(t.TempDir(), "countries.hcl")
	require.NoError(t, os.WriteFile(manifestPath, []byte(`
country "hu" {
  module   = "modules/hu"
  language = "Hungarian"
}
`), 0600))

	cfg, err := NewConfig(Config{
		CountryCode:    "cz",
		CatalogPath:    manifestPath,
		ConfigFilePath: missingFile(t),
		LogFormat:      "text",
	})
	require.NoError(t, err)

	testApp := NewApp(&SafeBuffer{}, cfg, hcl.NewLoader())
	require.Equal(t, []string{"hu"}, testApp.Catalog().Codes())

	// The manifest is authoritative: cz is no longer a known country.
	err = testApp.Run(context.Background())
	require.ErrorContains(t, err, "unknown country 'cz'")
}

func TestNewApp_MalformedManifestPanics(t *testing.T) {
	t.Parallel()

	manifestPath := filepath.Join(t.TempDir(), "countries.hcl")
	require.NoError(t, os.WriteFile(manifestPath, []byte(`country "cz" {`), 0600))

	cfg, err := NewConfig(Config{CatalogPath: manifestPath, ConfigFilePath: missingFile(t)})
	require.NoError(t, err)

	require.Panics(t, func() {
		NewApp(&SafeBuffer{}, cfg, hcl.NewLoader())
	})
}
