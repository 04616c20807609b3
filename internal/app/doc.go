// Package app contains the core application logic. It wires the catalog,
// registry, resolver, and loader into the startup sequence and runs the
// greeting demonstration, decoupled from any specific entrypoint like a CLI.
package app
