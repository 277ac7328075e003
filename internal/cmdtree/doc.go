// Package cmdtree compiles a config.CommandNode tree into a live argument
// parser and matches process input against it.
//
// The compiled form is an arena: every command level is a Node addressed by
// a stable index, holding both its originating configuration node and the
// cobra.Command built from it. Resolution therefore walks a single
// structure instead of keeping the configuration tree and the parser tree in
// lockstep.
//
// Token-level parsing, help and version output, and completion scripts are
// delegated to cobra. This package adds what cobra does not model:
// positional binding by declaration order, environment and default
// fallbacks, and the required / requires / group checks.
package cmdtree
