package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/countryplug/internal/catalog"
	"github.com/vk/countryplug/internal/ctxlog"
	"github.com/vk/countryplug/internal/fsutil"
	"github.com/vk/countryplug/internal/schema"
)

// Loader reads country discovery manifests written in HCL.
type Loader struct {
	parser *hclparse.Parser
}

// NewLoader creates a new HCL manifest loader.
func NewLoader() *Loader {
	return &Loader{parser: hclparse.NewParser()}
}

// Load parses the manifest at path, which may be a single .hcl file or a
// directory searched for .hcl files, and returns the declared entries.
func (l *Loader) Load(ctx context.Context, path string) ([]catalog.Entry, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading country discovery manifest...", "path", path)

	filePaths, err := fsutil.FindFilesByExtension(path, ".hcl")
	if err != nil {
		return nil, fmt.Errorf("failed to locate manifest files in %s: %w", path, err)
	}
	if len(filePaths) == 0 {
		return nil, fmt.Errorf("no .hcl manifest files found at %s", path)
	}

	var entries []catalog.Entry
	for _, filePath := range filePaths {
		hclFile, diags := l.parser.ParseHCLFile(filePath)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse manifest file %s: %w", filePath, diags)
		}

		var manifest schema.Manifest
		if diags := gohcl.DecodeBody(hclFile.Body, nil, &manifest); diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode manifest file %s: %w", filePath, diags)
		}

		for _, country := range manifest.Countries {
			entry, err := translateCountry(country)
			if err != nil {
				return nil, fmt.Errorf("in manifest file %s: %w", filePath, err)
			}
			entries = append(entries, entry)
			logger.Debug("Discovered country variant.", "code", entry.Code, "locator", entry.Locator)
		}
	}

	logger.Info("Country discovery manifest loaded.", "countries_declared", len(entries))
	return entries, nil
}

// translateCountry converts an HCL country block into a catalog entry,
// evaluating the module attribute expression.
func translateCountry(c *schema.Country) (catalog.Entry, error) {
	val, diags := c.Module.Value(nil)
	if diags.HasErrors() {
		return catalog.Entry{}, fmt.Errorf("country '%s': invalid module attribute: %w", c.Code, diags)
	}
	if val.IsNull() || !val.Type().Equals(cty.String) {
		return catalog.Entry{}, fmt.Errorf("country '%s': module attribute must be a string, got %s",
			c.Code, val.Type().FriendlyName())
	}

	return catalog.Entry{
		Code:     c.Code,
		Locator:  val.AsString(),
		Language: c.Language,
	}, nil
}
