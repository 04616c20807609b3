// Package config resolves the single active country code for the process
// from a fixed priority chain of sources: an explicit argument, the
// PLUGIN2_COUNTRY environment variable, then a plain-text config file. The
// resolver performs no module loading; it returns a validated code plus the
// provenance of the source that supplied it.
package config
