package loader

import "fmt"

// LoadError is returned when a country's module could not be loaded. It
// carries the attempted code and locator and wraps the underlying cause.
type LoadError struct {
	Code    string
	Locator string
	Err     error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load plugins for country '%s' from '%s': %v", e.Code, e.Locator, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }
