// Package schema defines the HCL block structures for the country discovery
// manifest, decoupled from their translation into the catalog model.
package schema

import (
	"github.com/hashicorp/hcl/v2"
)

// Country represents a `country` block in a discovery manifest. The module
// attribute is kept as an expression so the loader can evaluate it and
// report a precise diagnostic when it is not a string.
type Country struct {
	Code     string         `hcl:"code,label"`
	Module   hcl.Expression `hcl:"module"`
	Language string         `hcl:"language,optional"`
}

// Manifest represents the top-level structure of a discovery manifest file,
// containing all declared country variants.
type Manifest struct {
	Countries []*Country `hcl:"country,block"`
	Body      hcl.Body   `hcl:",remain"`
}
