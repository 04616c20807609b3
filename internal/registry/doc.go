// Package registry provides the central "glue" for the country plugin system.
//
// The Registry is responsible for storing mappings between abstract
// capability names (e.g., "Greet") and the concrete factory registered by
// the single active country module. It is populated during application
// startup by exactly one country's Register call and sealed before any
// capability is resolved, so callers retrieve implementations without
// knowing which country supplied them.
package registry
