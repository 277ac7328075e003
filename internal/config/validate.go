package config

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Validate checks the structural integrity of the whole tree. All problems
// are reported together, each prefixed with the path of the offending
// command.
func Validate(root *CommandNode) error {
	if root == nil {
		return errors.New("configuration is empty")
	}
	name := root.Name
	if name == "" {
		name = "<root>"
	}
	var errs []error
	validateNode(root, []string{name}, &errs)
	return errors.Join(errs...)
}

func validateNode(n *CommandNode, path []string, errs *[]error) {
	fail := func(format string, args ...any) {
		*errs = append(*errs, fmt.Errorf("%s: %s", strings.Join(path, " "), fmt.Sprintf(format, args...)))
	}

	ids := make(map[string]struct{}, len(n.Args))
	flags := make(map[string]string)
	claim := func(flag, id string) {
		if owner, taken := flags[flag]; taken {
			fail("argument %q: flag %q is already used by argument %q", id, flag, owner)
			return
		}
		flags[flag] = id
	}

	sawOptionalPositional := false
	lastCount := 0
	for _, a := range n.Args {
		if a.ID == "" {
			fail("argument with an empty id")
			continue
		}
		if _, dup := ids[a.ID]; dup {
			fail("duplicate argument id %q", a.ID)
		}
		ids[a.ID] = struct{}{}

		if a.Short != "" && (len(a.Short) != 1 || a.Short[0] >= utf8.RuneSelf) {
			fail("argument %q: short flag %q must be a single ASCII character", a.ID, a.Short)
		}

		if a.IsPositional() {
			if len(a.Aliases) > 0 {
				fail("argument %q: aliases require a flag argument", a.ID)
			}
			switch {
			case a.Last:
				lastCount++
			case a.Required && sawOptionalPositional:
				fail("argument %q: required positional follows an optional one", a.ID)
			case !a.Required:
				sawOptionalPositional = true
			}
		} else {
			if a.Last {
				fail("argument %q: last applies only to positional arguments", a.ID)
			}
			long := a.Long
			if long == "" {
				long = a.ID
			}
			for _, name := range append([]string{long}, a.Aliases...) {
				if name == "" || strings.HasPrefix(name, "-") || hasSpace(name) {
					fail("argument %q: invalid flag name %q", a.ID, name)
					continue
				}
				if reserved(n, name, "help", "version") {
					fail("argument %q: flag --%s is reserved", a.ID, name)
					continue
				}
				claim("--"+name, a.ID)
			}
			switch {
			case a.Short == "-":
				fail("argument %q: invalid short flag %q", a.ID, a.Short)
			case reserved(n, a.Short, "h", "v"):
				fail("argument %q: flag -%s is reserved", a.ID, a.Short)
			case a.Short != "":
				claim("-"+a.Short, a.ID)
			}
		}
	}
	if lastCount > 1 {
		fail("only one argument may set last, found %d", lastCount)
	}

	for _, a := range n.Args {
		if a.Requires != "" {
			if _, ok := ids[a.Requires]; !ok {
				fail("argument %q requires unknown argument %q", a.ID, a.Requires)
			} else if a.Requires == a.ID {
				fail("argument %q requires itself", a.ID)
			}
		}
		if a.Group != "" {
			if _, clash := ids[a.Group]; clash {
				fail("argument %q: group %q collides with an argument id", a.ID, a.Group)
			}
		}
	}

	names := make(map[string]string, len(n.Subcommands))
	for _, key := range n.SubcommandKeys() {
		child := n.Subcommands[key]
		if key == "" {
			fail("subcommand with an empty key")
			continue
		}
		if child == nil {
			fail("subcommand %q is empty", key)
			continue
		}
		effective := child.EffectiveName(key)
		if hasSpace(effective) {
			fail("subcommand %q: name %q contains whitespace", key, effective)
		}
		if effective == "help" {
			fail("subcommand %q: the name help is reserved", key)
		}
		if other, dup := names[effective]; dup {
			fail("subcommands %q and %q share the name %q", other, key, effective)
		}
		names[effective] = key
		validateNode(child, append(path[:len(path):len(path)], effective), errs)
	}
}

// reserved reports whether name is the help flag, or the version flag on a
// command that declares a version.
func reserved(n *CommandNode, name, help, version string) bool {
	return name == help || (n.Version != "" && name == version)
}

func hasSpace(s string) bool {
	return strings.IndexFunc(s, unicode.IsSpace) >= 0
}
