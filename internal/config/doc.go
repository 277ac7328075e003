// Package config defines the format-agnostic command-tree model for the
// application, along with the Loader interface for reading it from a
// configuration file.
//
// The `config.CommandNode` tree is the single source of truth for the
// `cmdtree` compiler and for `export`. Concrete loaders, such as the HCL
// decoder, are provided in separate packages.
package config
