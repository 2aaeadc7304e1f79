package selector

import (
	"strings"

	"sassc/common"
)

// Complex is a chain of compound selectors linked by combinators. The
// Combinator of a link relates it to the previous link; the first link of a
// well formed chain always carries Descendant. A link with a nil Head is a
// bare combinator and appears only transiently while weaving.
//
// Sources records the selectors whose extension produced this one, keyed by
// their canonical string form. It survives cloning and feeds trimming.
type Complex struct {
	Combinator Combinator
	Head       *Compound
	Tail       *Complex
	Sources    map[string]*Complex
	LineBreak  bool
	Pos        common.Position
}

func (c *Complex) String() string {
	var b strings.Builder
	for l := c; l != nil; l = l.Tail {
		if l != c {
			b.WriteString(" ")
		}
		if l.Combinator != CombinatorDescendant {
			b.WriteString(l.Combinator.Token())
			if l.Head != nil {
				b.WriteString(" ")
			}
		}
		if l.Head != nil {
			b.WriteString(l.Head.String())
		}
	}
	return b.String()
}

func (c *Complex) Length() int {
	n := 0
	for l := c; l != nil; l = l.Tail {
		n++
	}
	return n
}

func (c *Complex) Last() *Complex {
	l := c
	for l.Tail != nil {
		l = l.Tail
	}
	return l
}

// Innermost returns the compound of the last link.
func (c *Complex) Innermost() *Compound {
	return c.Last().Head
}

func (c *Complex) Specificity() int {
	sum := 0
	for l := c; l != nil; l = l.Tail {
		if l.Head != nil {
			sum += l.Head.Specificity()
		}
	}
	return sum
}

func (c *Complex) HasPlaceholder() bool {
	for l := c; l != nil; l = l.Tail {
		if l.Head != nil && l.Head.HasPlaceholder() {
			return true
		}
	}
	return false
}

// Clone copies the chain sharing compound heads.
func (c *Complex) Clone() *Complex {
	if c == nil {
		return nil
	}
	n := *c
	n.Sources = copySources(c.Sources)
	n.Tail = c.Tail.Clone()
	return &n
}

// CloneFully copies the chain and every compound head, so heads can be
// replaced without touching the original.
func (c *Complex) CloneFully() *Complex {
	if c == nil {
		return nil
	}
	n := *c
	n.Sources = copySources(c.Sources)
	if c.Head != nil {
		n.Head = c.Head.Clone()
	}
	n.Tail = c.Tail.CloneFully()
	return &n
}

// AddSource records another selector this one was derived from.
func (c *Complex) AddSource(src *Complex) {
	if c.Sources == nil {
		c.Sources = make(map[string]*Complex, 1)
	}
	c.Sources[src.String()] = src
}

func copySources(src map[string]*Complex) map[string]*Complex {
	if src == nil {
		return nil
	}
	dst := make(map[string]*Complex, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

func mergeSources(dst, src map[string]*Complex) map[string]*Complex {
	if len(src) == 0 {
		return dst
	}
	if dst == nil {
		dst = make(map[string]*Complex, len(src))
	}
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
