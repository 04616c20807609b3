package catalog

import (
	"context"
	"fmt"
	"sort"
)

// Entry pairs a country code with the locator of its loadable module, plus
// optional display metadata from the discovery manifest.
type Entry struct {
	Code     string
	Locator  string
	Language string
}

// Loader is the interface for a format-specific discovery manifest loader.
type Loader interface {
	// Load reads a manifest from the given path (a file or a directory of
	// manifest files) and returns the declared entries. It must not execute
	// any country module.
	Load(ctx context.Context, path string) ([]Entry, error)
}

// Catalog is the read-only set of known country variants.
type Catalog struct {
	entries map[string]Entry
	codes   []string
}

// New builds a catalog from the given entries. Codes must be unique and
// every entry needs a non-empty code and locator.
func New(entries []Entry) (*Catalog, error) {
	c := &Catalog{entries: make(map[string]Entry, len(entries))}
	for _, e := range entries {
		if e.Code == "" {
			return nil, fmt.Errorf("catalog entry with empty country code (locator '%s')", e.Locator)
		}
		if e.Locator == "" {
			return nil, fmt.Errorf("catalog entry for country '%s' has an empty module locator", e.Code)
		}
		if _, exists := c.entries[e.Code]; exists {
			return nil, fmt.Errorf("duplicate catalog entry for country '%s'", e.Code)
		}
		c.entries[e.Code] = e
		c.codes = append(c.codes, e.Code)
	}
	sort.Strings(c.codes)
	return c, nil
}

// Builtin returns the catalog of variants compiled into the binary. It is
// the packaging-metadata equivalent used when no discovery manifest exists.
func Builtin() *Catalog {
	c, err := New([]Entry{
		{Code: "cz", Locator: "modules/cz", Language: "Czech"},
		{Code: "hu", Locator: "modules/hu", Language: "Hungarian"},
	})
	if err != nil {
		panic(err)
	}
	return c
}

// Codes returns all known country codes in sorted order.
func (c *Catalog) Codes() []string {
	out := make([]string, len(c.codes))
	copy(out, c.codes)
	return out
}

// Locator returns the module locator for a country code. Unknown codes fail
// with an *UnknownCountryError listing every known code.
func (c *Catalog) Locator(code string) (string, error) {
	e, err := c.Entry(code)
	if err != nil {
		return "", err
	}
	return e.Locator, nil
}

// Entry returns the full catalog entry for a country code.
func (c *Catalog) Entry(code string) (Entry, error) {
	e, ok := c.entries[code]
	if !ok {
		return Entry{}, &UnknownCountryError{Code: code, Known: c.Codes()}
	}
	return e, nil
}

// Validate reports whether a country code is known, using the same error as
// Locator for unknown codes.
func (c *Catalog) Validate(code string) error {
	_, err := c.Entry(code)
	return err
}
