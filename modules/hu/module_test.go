package hu

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/countryplug/internal/capability"
	"github.com/vk/countryplug/internal/registry"
)

func TestRegister(t *testing.T) {
	t.Parallel()

	reg := registry.New(nil)
	(&Module{}).Register(reg)

	require.Equal(t, []string{capability.Address, capability.Greet, capability.Name}, reg.Capabilities())
}

func TestGreeter(t *testing.T) {
	t.Parallel()

	reg := registry.New(nil)
	(&Module{}).Register(reg)

	g, err := capability.ResolveGreeter(reg)
	require.NoError(t, err)

	require.Equal(t, "Szia, World!", g.Hello("World"))
	require.Equal(t, "Viszlát, World!", g.Goodbye("World"))
	require.Equal(t, "Hungarian", g.Info().Language)
}

func TestAddress(t *testing.T) {
	t.Parallel()

	reg := registry.New(nil)
	(&Module{}).Register(reg)

	a, err := capability.ResolveAddress(reg)
	require.NoError(t, err)
	require.Equal(t, "HU", a.Country())
	require.Equal(t, ": ", a.Separator())

	formatted, err := a.Format(capability.PostalAddress{Street: "123 Main Street", City: "Budapest", PostalCode: "8200"})
	require.NoError(t, err)
	require.Equal(t, "123 Main Street: Budapest: 8200", formatted)
}

func TestAddress_PostalCodeValidation(t *testing.T) {
	t.Parallel()

	a := &Address{}

	for _, code := range []string{"10 0", "123", "12345", "", "abcd"} {
		_, err := a.Format(capability.PostalAddress{Street: "s", City: "c", PostalCode: code})
		require.ErrorIs(t, err, capability.ErrInvalidPostalCode, "postal code %q must be rejected", code)
	}

	_, err := a.Format(capability.PostalAddress{Street: "s", City: "c", PostalCode: "1111"})
	require.NoError(t, err)
}

func TestName(t *testing.T) {
	t.Parallel()

	reg := registry.New(nil)
	(&Module{}).Register(reg)

	n, err := capability.ResolveNamer(reg)
	require.NoError(t, err)
	require.Equal(t, "Magyar Név", n.Get())
}
