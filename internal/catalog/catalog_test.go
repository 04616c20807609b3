package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew_LookupAndOrder(t *testing.T) {
	t.Parallel()

	c, err := New([]Entry{
		{Code: "hu", Locator: "modules/hu", Language: "Hungarian"},
		{Code: "cz", Locator: "modules/cz", Language: "Czech"},
	})
	require.NoError(t, err)

	require.Equal(t, []string{"cz", "hu"}, c.Codes(), "codes must be sorted for deterministic logs")

	loc, err := c.Locator("cz")
	require.NoError(t, err)
	require.Equal(t, "modules/cz", loc)

	entry, err := c.Entry("hu")
	require.NoError(t, err)
	require.Equal(t, "Hungarian", entry.Language)
}

func TestLocator_UnknownCountry(t *testing.T) {
	t.Parallel()

	c := Builtin()

	_, err := c.Locator("de")
	require.Error(t, err)

	var unknownErr *UnknownCountryError
	require.ErrorAs(t, err, &unknownErr)
	require.Equal(t, "de", unknownErr.Code)
	require.Equal(t, []string{"cz", "hu"}, unknownErr.Known)
	require.Contains(t, err.Error(), "cz, hu", "message must enumerate the valid codes")
}

func TestNew_RejectsBadEntries(t *testing.T) {
	t.Parallel()

	_, err := New([]Entry{
		{Code: "cz", Locator: "modules/cz"},
		{Code: "cz", Locator: "modules/cz2"},
	})
	require.ErrorContains(t, err, "duplicate catalog entry for country 'cz'")

	_, err = New([]Entry{{Code: "", Locator: "modules/cz"}})
	require.ErrorContains(t, err, "empty country code")

	_, err = New([]Entry{{Code: "cz", Locator: ""}})
	require.ErrorContains(t, err, "empty module locator")
}

func TestValidate(t *testing.T) {
	t.Parallel()

	c := Builtin()
	require.NoError(t, c.Validate("hu"))

	var unknownErr *UnknownCountryError
	require.ErrorAs(t, c.Validate("xx"), &unknownErr)
}
