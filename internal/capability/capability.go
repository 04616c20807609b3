// Package capability defines the abstract operation families that country
// variant modules implement, typed helpers for retrieving them from the
// registry, and the default implementations used when the active country
// registers no override.
package capability

import (
	"fmt"

	"github.com/vk/countryplug/internal/registry"
)

// Capability names keying the registry. Immutable once defined.
const (
	Greet   = "Greet"
	Name    = "Name"
	Address = "Address"
)

// GreetingInfo describes a greeting implementation for diagnostics.
type GreetingInfo struct {
	Impl     string
	Country  string
	Language string
}

// Greeter is the contract of the "Greet" capability.
type Greeter interface {
	Hello(name string) string
	Goodbye(name string) string
	Info() GreetingInfo
}

// Namer is the contract of the "Name" capability.
type Namer interface {
	Get() string
}

// PostalAddress is the input to the "Address" capability.
type PostalAddress struct {
	Street     string
	City       string
	PostalCode string
}

// AddressFormatter is the contract of the "Address" capability. Format
// validates the postal code under the country's rules before formatting.
type AddressFormatter interface {
	Format(a PostalAddress) (string, error)
	Country() string
	Separator() string
}

// ResolveGreeter retrieves the registered Greeter implementation.
func ResolveGreeter(r *registry.Registry) (Greeter, error) {
	return resolveAs[Greeter](r, Greet)
}

// ResolveNamer retrieves the registered Namer implementation.
func ResolveNamer(r *registry.Registry) (Namer, error) {
	return resolveAs[Namer](r, Name)
}

// ResolveAddress retrieves the registered AddressFormatter implementation.
func ResolveAddress(r *registry.Registry) (AddressFormatter, error) {
	return resolveAs[AddressFormatter](r, Address)
}

func resolveAs[T any](r *registry.Registry, capability string) (T, error) {
	var zero T
	reg, err := r.Resolve(capability)
	if err != nil {
		return zero, err
	}
	impl, ok := reg.New().(T)
	if !ok {
		return zero, fmt.Errorf("registered implementation '%s' does not satisfy the %s contract", reg.Impl, capability)
	}
	return impl, nil
}
