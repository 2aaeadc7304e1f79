package selector

import "sort"

// Extension records a single extension obligation: the Extender complex
// selector wants to match wherever the Extendee compound matches. Media names
// the enclosing media query, empty at the stylesheet root.
type Extension struct {
	Extender *Complex
	Extendee *Compound
	Media    string
	Optional bool
}

type subsetEntry struct {
	index int
	key   []string
}

// SubsetMap indexes extensions by the simple selectors of their extendees, so
// that a compound lookup finds every extension whose extendee is a subset of
// the queried compound. Lookups preserve insertion order.
type SubsetMap struct {
	entries []Extension
	index   map[string][]subsetEntry
}

func NewSubsetMap() *SubsetMap {
	return &SubsetMap{index: make(map[string][]subsetEntry)}
}

func (m *SubsetMap) Put(ext Extension) {
	key := ext.Extendee.Key()
	i := len(m.entries)
	m.entries = append(m.entries, ext)
	seen := make(map[string]struct{}, len(key))
	for _, s := range key {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		m.index[s] = append(m.index[s], subsetEntry{index: i, key: key})
	}
}

// Get returns every extension whose extendee simple-selector set is contained
// in c, in insertion order.
func (m *SubsetMap) Get(c *Compound) []Extension {
	qset := make(map[string]struct{}, len(c.Simples))
	for _, s := range c.Simples {
		qset[s.String()] = struct{}{}
	}
	var hits []int
	found := make(map[int]struct{})
	for s := range qset {
		for _, e := range m.index[s] {
			if _, ok := found[e.index]; ok {
				continue
			}
			if !subsetOf(e.key, qset) {
				continue
			}
			found[e.index] = struct{}{}
			hits = append(hits, e.index)
		}
	}
	sort.Ints(hits)
	res := make([]Extension, 0, len(hits))
	for _, i := range hits {
		res = append(res, m.entries[i])
	}
	return res
}

func (m *SubsetMap) Empty() bool { return len(m.entries) == 0 }

// Entries exposes the stored extensions for the unsatisfied-extend check.
func (m *SubsetMap) Entries() []Extension { return m.entries }

func subsetOf(key []string, set map[string]struct{}) bool {
	for _, s := range key {
		if _, ok := set[s]; !ok {
			return false
		}
	}
	return true
}
