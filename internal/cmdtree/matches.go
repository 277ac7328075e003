package cmdtree

import "sort"

// ValueSource tells where a matched value came from.
type ValueSource int

const (
	SourceNone ValueSource = iota
	SourceCommandLine
	SourceEnv
	SourceDefault
)

func (s ValueSource) String() string {
	switch s {
	case SourceCommandLine:
		return "command_line"
	case SourceEnv:
		return "env"
	case SourceDefault:
		return "default"
	default:
		return "none"
	}
}

// Matches is the match result for one command level: the values bound to
// argument ids and, optionally, the invoked subcommand with its own result.
type Matches struct {
	values  map[string]string
	sources map[string]ValueSource

	subName string
	sub     *Matches
}

// matchesOf returns a result binding the given values as command line input.
func matchesOf(values map[string]string) *Matches {
	m := newMatches()
	for id, v := range values {
		m.set(id, v, SourceCommandLine)
	}
	return m
}

func newMatches() *Matches {
	return &Matches{
		values:  make(map[string]string),
		sources: make(map[string]ValueSource),
	}
}

func (m *Matches) set(id, value string, src ValueSource) {
	m.values[id] = value
	m.sources[id] = src
}

// WithSubcommand records name as the invoked subcommand and returns m.
func (m *Matches) WithSubcommand(name string, sub *Matches) *Matches {
	m.subName = name
	m.sub = sub
	return m
}

// Value returns the value bound to id.
func (m *Matches) Value(id string) (string, bool) {
	v, ok := m.values[id]
	return v, ok
}

// Source returns where the value bound to id came from.
func (m *Matches) Source(id string) ValueSource {
	return m.sources[id]
}

// Explicit reports whether id was given on the command line or through
// its environment variable.
func (m *Matches) Explicit(id string) bool {
	s := m.sources[id]
	return s == SourceCommandLine || s == SourceEnv
}

// Subcommand returns the invoked subcommand name and its match result.
func (m *Matches) Subcommand() (string, *Matches, bool) {
	if m.sub == nil {
		return "", nil, false
	}
	return m.subName, m.sub, true
}

// IDs returns the bound ids in sorted order.
func (m *Matches) IDs() []string {
	ids := make([]string, 0, len(m.values))
	for id := range m.values {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
