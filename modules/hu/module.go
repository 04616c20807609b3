// Package hu provides the Hungarian variant of the country capabilities.
package hu

import (
	"fmt"
	"strings"

	"github.com/vk/countryplug/internal/capability"
	"github.com/vk/countryplug/internal/registry"
)

const countryCode = "hu"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the Hungarian capability implementations.
func (m *Module) Register(r *registry.Registry) {
	r.Register(registry.Registration{
		Capability: capability.Greet,
		Impl:       "hu.Greeter",
		Country:    countryCode,
		New:        func() any { return &Greeter{} },
	})
	r.Register(registry.Registration{
		Capability: capability.Name,
		Impl:       "hu.Name",
		Country:    countryCode,
		New:        func() any { return &Name{} },
	})
	r.Register(registry.Registration{
		Capability: capability.Address,
		Impl:       "hu.Address",
		Country:    countryCode,
		New:        func() any { return &Address{} },
	})
}

// Greeter greets in Hungarian.
type Greeter struct{}

func (g *Greeter) Hello(name string) string {
	return fmt.Sprintf("Szia, %s!", name)
}

func (g *Greeter) Goodbye(name string) string {
	return fmt.Sprintf("Viszlát, %s!", name)
}

func (g *Greeter) Info() capability.GreetingInfo {
	return capability.GreetingInfo{
		Impl:     "hu.Greeter",
		Country:  countryCode,
		Language: "Hungarian",
	}
}

// Name supplies a Hungarian example name.
type Name struct{}

func (n *Name) Get() string { return "Magyar Név" }

// Address formats addresses the Hungarian way. Postal codes are exactly
// four digits.
type Address struct{}

func (a *Address) Format(addr capability.PostalAddress) (string, error) {
	if !validPostalCode(addr.PostalCode) {
		return "", fmt.Errorf("%w: '%s' (Hungarian postal codes are four digits)",
			capability.ErrInvalidPostalCode, addr.PostalCode)
	}
	sep := a.Separator()
	return addr.Street + sep + addr.City + sep + addr.PostalCode, nil
}

func (a *Address) Country() string { return "HU" }

func (a *Address) Separator() string { return ": " }

func validPostalCode(code string) bool {
	if len(code) != 4 {
		return false
	}
	return strings.IndexFunc(code, func(r rune) bool { return r < '0' || r > '9' }) == -1
}
