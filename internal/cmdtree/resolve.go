package cmdtree

// Invocation is the resolved leaf of one run: the most specific command
// reached and the match result scoped to it.
type Invocation struct {
	Node    *Node
	Matches *Matches
}

// Resolve walks the invoked subcommand chain of m from the root down to the
// most specific command. It never fails: when an invoked name is unknown at
// some level, that level is returned as the leaf.
func (t *Tree) Resolve(m *Matches) Invocation {
	return t.resolveFrom(0, m)
}

func (t *Tree) resolveFrom(idx int, m *Matches) Invocation {
	n := t.node(idx)
	name, sub, ok := m.Subcommand()
	if !ok {
		return Invocation{Node: n, Matches: m}
	}
	child, found := t.child(n, name)
	if !found {
		return Invocation{Node: n, Matches: m}
	}
	return t.resolveFrom(child.Index, sub)
}
