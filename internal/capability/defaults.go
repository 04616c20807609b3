package capability

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidPostalCode is wrapped by Format when a postal code fails the
// active country's validation rules.
var ErrInvalidPostalCode = errors.New("invalid postal code")

// DefaultAddress is the US-style fallback used when the active country
// registers no Address override. Any non-empty postal code is accepted.
type DefaultAddress struct{}

func (d DefaultAddress) Format(a PostalAddress) (string, error) {
	if strings.TrimSpace(a.PostalCode) == "" {
		return "", fmt.Errorf("%w: '%s'", ErrInvalidPostalCode, a.PostalCode)
	}
	sep := d.Separator()
	return a.Street + sep + a.City + sep + a.PostalCode, nil
}

func (DefaultAddress) Country() string { return "US" }

func (DefaultAddress) Separator() string { return ", " }

// DefaultName is the fallback Name implementation.
type DefaultName struct{}

func (DefaultName) Get() string { return "Default Name" }
