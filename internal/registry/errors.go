package registry

import (
	"fmt"
	"strings"
)

// UnregisteredCapabilityError is returned by Resolve when no implementation
// was ever registered for the requested capability. It carries the sorted
// list of capabilities that are registered, to make misconfiguration
// diagnosable from the message alone.
type UnregisteredCapabilityError struct {
	Capability string
	Registered []string
}

func (e *UnregisteredCapabilityError) Error() string {
	if len(e.Registered) == 0 {
		return fmt.Sprintf("no implementation registered for capability '%s' (registry is empty; was a country loaded?)", e.Capability)
	}
	return fmt.Sprintf("no implementation registered for capability '%s' (registered: %s)",
		e.Capability, strings.Join(e.Registered, ", "))
}
