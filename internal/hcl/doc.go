// Package hcl decodes HCL command documents into the format-agnostic
// config model. Parsing uses hclparse, block decoding uses gohcl against
// the structs in the schema package, and default values of any primitive
// type are converted to strings through go-cty.
package hcl
