// Package hcl provides the concrete HCL implementation of the catalog's
// discovery manifest loader. It is responsible for file parsing, block
// decoding, and translating `country` blocks into catalog entries.
package hcl
