package app

import (
	"github.com/vk/countryplug/internal/loader"
	"github.com/vk/countryplug/modules/cz"
	"github.com/vk/countryplug/modules/hu"
)

// coreVariants is the definitive list of country variant modules compiled
// into the countryplug binary, keyed by the locators the built-in catalog
// and the sample manifest declare.
var coreVariants = []loader.Binding{
	{Locator: "modules/cz", Module: &cz.Module{}},
	{Locator: "modules/hu", Module: &hu.Module{}},
}
