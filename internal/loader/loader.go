package loader

import (
	"context"
	"fmt"

	"github.com/vk/countryplug/internal/catalog"
	"github.com/vk/countryplug/internal/ctxlog"
	"github.com/vk/countryplug/internal/registry"
)

// Binding ties a catalog locator string to the compiled-in module it loads.
// Bindings are established at link time; there is no dynamic code loading.
type Binding struct {
	Locator string
	Module  registry.Module
}

// Result records the outcome of a successful load.
type Result struct {
	Code    string
	Locator string
	// Capabilities lists the capability names that appeared in the registry
	// during this load, sorted.
	Capabilities []string
}

// Loader loads one country variant's module into a registry.
type Loader struct {
	catalog  *catalog.Catalog
	registry *registry.Registry
	bindings map[string]registry.Module
	loaded   map[string]*Result
}

// New creates a Loader over the given catalog, registry, and module
// bindings.
func New(cat *catalog.Catalog, reg *registry.Registry, bindings []Binding) *Loader {
	bound := make(map[string]registry.Module, len(bindings))
	for _, b := range bindings {
		bound[b.Locator] = b.Module
	}
	return &Loader{
		catalog:  cat,
		registry: reg,
		bindings: bound,
		loaded:   make(map[string]*Result),
	}
}

// Load loads the module for a country code, causing its registrations to
// populate the registry. Loading an already-loaded code is a no-op that
// returns the recorded result. A failure during the module's Register leaves
// any registrations made before the failure in place but surfaces the error
// as a *LoadError.
func (l *Loader) Load(ctx context.Context, code string) (*Result, error) {
	logger := ctxlog.FromContext(ctx)

	if result, ok := l.loaded[code]; ok {
		logger.Info("Country plugins already loaded.", "country", code)
		return result, nil
	}

	locator, err := l.catalog.Locator(code)
	if err != nil {
		return nil, err
	}

	mod, ok := l.bindings[locator]
	if !ok {
		return nil, &LoadError{
			Code:    code,
			Locator: locator,
			Err:     fmt.Errorf("no module is bound to locator '%s'", locator),
		}
	}

	logger.Info("Loading plugins for country.", "country", code, "locator", locator)

	before := capabilitySet(l.registry.Capabilities())
	if err := l.register(mod); err != nil {
		return nil, &LoadError{Code: code, Locator: locator, Err: err}
	}

	result := &Result{Code: code, Locator: locator}
	for _, name := range l.registry.Capabilities() {
		if _, existed := before[name]; !existed {
			result.Capabilities = append(result.Capabilities, name)
		}
	}
	l.loaded[code] = result

	logger.Info("Successfully loaded country plugins.",
		"country", code,
		"locator", locator,
		"capabilities", result.Capabilities,
	)
	return result, nil
}

// Loaded returns the codes of all countries loaded so far. Order is
// unspecified; callers only check membership.
func (l *Loader) Loaded() []string {
	codes := make([]string, 0, len(l.loaded))
	for code := range l.loaded {
		codes = append(codes, code)
	}
	return codes
}

// register invokes the module's Register, converting a panic into an error
// so a broken variant surfaces as a load failure instead of crashing the
// process.
func (l *Loader) register(mod registry.Module) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("module registration panicked: %v", r)
		}
	}()
	mod.Register(l.registry)
	return nil
}

func capabilitySet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return set
}
