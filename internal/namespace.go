package internal

import "strconv"

// Namespace is a (label, id) pair used to build collision-free generated
// identifiers. Ids are unique within one session.
type Namespace struct {
	Label string
	ID    int
}

func (n Namespace) String() string {
	return n.Label + "#" + strconv.Itoa(n.ID)
}

// Namespaces hands out session-unique namespace ids. Ids start at 1 and
// strictly increase; an id is never reused, even across Verify calls.
// Modules must request their namespaces in a deterministic order so that a
// fresh session re-translating the same program reproduces byte-identical
// generated names.
type Namespaces struct {
	last int
}

// Fresh returns a new namespace with the given label and the next id.
func (ns *Namespaces) Fresh(label string) Namespace {
	ns.last++
	return Namespace{Label: label, ID: ns.last}
}
