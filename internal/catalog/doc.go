// Package catalog defines the static enumeration of available country
// variants: which country codes exist and which module locator loads each
// one. The catalog is metadata only; building it never executes a country
// module. Concrete manifest loaders, such as the HCL one, live in separate
// packages.
package catalog
