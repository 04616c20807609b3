package registry

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"
)

// Module is the interface that all country variant modules must implement to
// be loadable.
type Module interface {
	Register(r *Registry)
}

// Factory creates a fresh instance of a registered implementation.
type Factory func() any

// Registration binds one capability name to a concrete implementation.
type Registration struct {
	// Capability is the abstract operation family this implementation
	// answers for, e.g. "Greet".
	Capability string
	// Impl identifies the concrete implementation, e.g. "cz.Greeter".
	Impl string
	// Country is the variant code that supplied the implementation.
	Country string
	// New constructs an instance of the implementation.
	New Factory
}

// Registry holds the capability registrations for a single application
// instance. It is mutated only during startup loading and sealed before
// concurrent readers resolve anything.
type Registry struct {
	mu     sync.RWMutex
	logger *slog.Logger
	sealed bool
	caps   map[string]Registration
}

// New creates and initializes a new Registry instance.
func New(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		logger: logger,
		caps:   make(map[string]Registration),
	}
}

// Register stores a capability registration. Re-registering an existing
// capability overwrites the previous entry and logs a warning: the last
// registration wins. Registering with an empty capability name, a nil
// factory, or after Seal is a programmer error and panics.
func (r *Registry) Register(reg Registration) {
	if reg.Capability == "" {
		panic("registry: registration with empty capability name")
	}
	if reg.New == nil {
		panic(fmt.Sprintf("registry: registration for capability '%s' has a nil factory", reg.Capability))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sealed {
		panic(fmt.Sprintf("registry: cannot register capability '%s' after the registry is sealed", reg.Capability))
	}

	if prev, exists := r.caps[reg.Capability]; exists {
		r.logger.Warn("Overwriting existing capability registration.",
			"capability", reg.Capability,
			"previous_impl", prev.Impl,
			"new_impl", reg.Impl,
		)
	}
	r.caps[reg.Capability] = reg
	r.logger.Info("Registered capability implementation.",
		"capability", reg.Capability,
		"impl", reg.Impl,
		"country", reg.Country,
	)
}

// Resolve returns the registration for a capability name. It fails with an
// *UnregisteredCapabilityError when nothing ever registered the capability.
func (r *Registry) Resolve(capability string) (Registration, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	reg, ok := r.caps[capability]
	if !ok {
		return Registration{}, &UnregisteredCapabilityError{
			Capability: capability,
			Registered: r.capabilitiesLocked(),
		}
	}
	r.logger.Debug("Resolved capability.", "capability", capability, "impl", reg.Impl)
	return reg, nil
}

// Capabilities returns the sorted names of all registered capabilities.
func (r *Registry) Capabilities() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.capabilitiesLocked()
}

func (r *Registry) capabilitiesLocked() []string {
	names := make([]string, 0, len(r.caps))
	for name := range r.caps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Seal freezes the registry. Startup calls it once loading is complete so
// any later Register call is caught as a lifecycle violation.
func (r *Registry) Seal() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sealed = true
	r.logger.Debug("Registry sealed.", "capabilities", len(r.caps))
}
