// Package export projects the matched argument values of a resolved command
// into the forms handed to its script: an environment mapping, and a JSON
// record.
package export
