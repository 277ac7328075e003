// Package configfile implements config.Loader for command documents on
// disk. The format is chosen by file extension: HCL (.hcl), YAML (.yaml,
// .yml) or TOML (anything else). A directory is searched for a single
// document.
package configfile
