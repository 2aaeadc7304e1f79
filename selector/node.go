package selector

import "strings"

// Node is the working value of the weave machinery: a complex selector is
// flattened into a sequence of selector nodes (each holding a single-compound
// chain that keeps its sources) interleaved with explicit combinator nodes.
// Descendant combinators have no node of their own.
type Node struct {
	Combinator Combinator
	Sel        *Complex
}

func combinatorNode(c Combinator) Node {
	return Node{Combinator: c}
}

func selectorNode(s *Complex) Node {
	return Node{Sel: s}
}

func (n Node) IsCombinator() bool { return n.Sel == nil }
func (n Node) IsSelector() bool   { return n.Sel != nil }

func (n Node) String() string {
	if n.IsCombinator() {
		return n.Combinator.Token()
	}
	return n.Sel.String()
}

func (n Node) equal(o Node) bool {
	if n.IsCombinator() != o.IsCombinator() {
		return false
	}
	if n.IsCombinator() {
		return n.Combinator == o.Combinator
	}
	if n.Sel.Head == nil || o.Sel.Head == nil {
		return n.Sel.Head == o.Sel.Head
	}
	return n.Sel.Head.equalOrdered(o.Sel.Head)
}

func nodesEqual(a, b []Node) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].equal(b[i]) {
			return false
		}
	}
	return true
}

// complexToNodes flattens a chain into node form. Every selector node gets
// its own copy of the chain's sources so positions can diverge.
func complexToNodes(c *Complex) []Node {
	var nodes []Node
	for l := c; l != nil; l = l.Tail {
		if l.Combinator != CombinatorDescendant {
			nodes = append(nodes, combinatorNode(l.Combinator))
		}
		if l.Head != nil {
			nodes = append(nodes, selectorNode(&Complex{
				Head:      l.Head,
				Sources:   copySources(c.Sources),
				LineBreak: l.LineBreak,
				Pos:       l.Pos,
			}))
		}
	}
	return nodes
}

// nodesToComplex rebuilds a chain from node form, unioning the sources
// carried by the selector nodes.
func nodesToComplex(nodes []Node) *Complex {
	var (
		first, last *Complex
		sources     map[string]*Complex
	)
	pending := CombinatorDescendant
	link := func(l *Complex) {
		if first == nil {
			first = l
		} else {
			last.Tail = l
		}
		last = l
	}
	for _, n := range nodes {
		if n.IsCombinator() {
			pending = n.Combinator
			continue
		}
		sources = mergeSources(sources, n.Sel.Sources)
		link(&Complex{
			Combinator: pending,
			Head:       n.Sel.Head,
			LineBreak:  n.Sel.LineBreak,
			Pos:        n.Sel.Pos,
		})
		pending = CombinatorDescendant
	}
	if pending != CombinatorDescendant {
		link(&Complex{Combinator: pending})
	}
	if first == nil {
		return nil
	}
	first.Sources = sources
	return first
}

func nodesString(nodes []Node) string {
	parts := make([]string, len(nodes))
	for i, n := range nodes {
		parts[i] = n.String()
	}
	return strings.Join(parts, " ")
}
