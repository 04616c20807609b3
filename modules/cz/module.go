// Package cz provides the Czech Republic variant of the country
// capabilities.
package cz

import (
	"fmt"

	"github.com/vk/countryplug/internal/capability"
	"github.com/vk/countryplug/internal/registry"
)

const countryCode = "cz"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the Czech capability implementations.
func (m *Module) Register(r *registry.Registry) {
	r.Register(registry.Registration{
		Capability: capability.Greet,
		Impl:       "cz.Greeter",
		Country:    countryCode,
		New:        func() any { return &Greeter{} },
	})
	r.Register(registry.Registration{
		Capability: capability.Name,
		Impl:       "cz.Name",
		Country:    countryCode,
		New:        func() any { return &Name{} },
	})
}

// Greeter greets in Czech.
type Greeter struct{}

func (g *Greeter) Hello(name string) string {
	return fmt.Sprintf("Ahoj, %s!", name)
}

func (g *Greeter) Goodbye(name string) string {
	return fmt.Sprintf("Na shledanou, %s!", name)
}

func (g *Greeter) Info() capability.GreetingInfo {
	return capability.GreetingInfo{
		Impl:     "cz.Greeter",
		Country:  countryCode,
		Language: "Czech",
	}
}

// Name supplies a Czech example name.
type Name struct{}

func (n *Name) Get() string { return "České Jméno" }
