package selector

import (
	"sort"
	"strings"

	"sassc/common"
)

// Compound is an ordered group of simple selectors matching a single element.
// At most one type selector may be present and it comes first. Order is kept
// for emission; equality and keys treat the group as an unordered set.
type Compound struct {
	Simples   []Simple
	Extended  bool
	LineBreak bool
	Pos       common.Position
}

func (c *Compound) String() string {
	var b strings.Builder
	for _, s := range c.Simples {
		b.WriteString(s.String())
	}
	return b.String()
}

// Key returns the canonical sorted string forms of the simple selectors.
func (c *Compound) Key() []string {
	key := make([]string, len(c.Simples))
	for i, s := range c.Simples {
		key[i] = s.String()
	}
	sort.Strings(key)
	return key
}

// KeyString returns the set identity of the compound as a single string.
func (c *Compound) KeyString() string {
	return strings.Join(c.Key(), "\x00")
}

func (c *Compound) Specificity() int {
	sum := 0
	for _, s := range c.Simples {
		sum += s.Specificity()
	}
	return sum
}

func (c *Compound) Clone() *Compound {
	n := *c
	n.Simples = append([]Simple(nil), c.Simples...)
	return &n
}

func (c *Compound) contains(s Simple) bool {
	want := s.String()
	for _, m := range c.Simples {
		if m.String() == want {
			return true
		}
	}
	return false
}

// Minus returns a compound without the given simple selectors.
func (c *Compound) Minus(sels []Simple) *Compound {
	drop := make(map[string]struct{}, len(sels))
	for _, s := range sels {
		drop[s.String()] = struct{}{}
	}
	n := &Compound{Pos: c.Pos, LineBreak: c.LineBreak}
	for _, s := range c.Simples {
		if _, ok := drop[s.String()]; ok {
			continue
		}
		n.Simples = append(n.Simples, s)
	}
	return n
}

// equalOrdered compares two compounds member by member, order sensitive.
func (c *Compound) equalOrdered(o *Compound) bool {
	if len(c.Simples) != len(o.Simples) {
		return false
	}
	for i := range c.Simples {
		if c.Simples[i].String() != o.Simples[i].String() {
			return false
		}
	}
	return true
}

func (c *Compound) HasPlaceholder() bool {
	for _, s := range c.Simples {
		switch t := s.(type) {
		case *Placeholder:
			return true
		case *Wrapped:
			for _, m := range t.List.Members {
				if m.HasPlaceholder() {
					return true
				}
			}
		}
	}
	return false
}

func (c *Compound) typeSelector() *Type {
	for _, s := range c.Simples {
		if t, ok := s.(*Type); ok {
			return t
		}
	}
	return nil
}

func (c *Compound) pseudoElement() *Pseudo {
	for _, s := range c.Simples {
		if p, ok := s.(*Pseudo); ok && p.Element {
			return p
		}
	}
	return nil
}
