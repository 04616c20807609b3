// Package loader performs the selective load of exactly one country's
// module. It looks a resolved country code up in the catalog, dispatches to
// the compiled-in module bound to that locator, and reports which
// capabilities the load registered. The loader itself would load a second
// country if asked; startup calls it exactly once with the resolved
// configuration.
package loader
