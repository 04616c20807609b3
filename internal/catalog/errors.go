package catalog

import (
	"fmt"
	"strings"
)

// UnknownCountryError is returned when a country code is not present in the
// catalog. The message enumerates the known codes so a misconfigured caller
// can self-correct.
type UnknownCountryError struct {
	Code  string
	Known []string
}

func (e *UnknownCountryError) Error() string {
	return fmt.Sprintf("unknown country '%s', available countries: %s",
		e.Code, strings.Join(e.Known, ", "))
}
