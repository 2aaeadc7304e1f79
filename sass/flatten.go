package sass

import (
	"fmt"

	"sassc/selector"
)

// Flatten expands nesting so every ruleset holds only declarations, extends
// and comments. Nested rulesets are hoisted after their parent with the
// parent selectors joined in. Depth counts the enclosing rulesets that keep
// statements of their own; a parent holding only nested rules adds no level.
func Flatten(ss *Stylesheet) error {
	stmts, err := flattenStatements(ss.Statements)
	if err != nil {
		return err
	}
	ss.Statements = stmts
	return nil
}

func flattenStatements(stmts []Statement) ([]Statement, error) {
	var out []Statement
	for _, st := range stmts {
		switch s := st.(type) {
		case *Ruleset:
			flat, err := flattenRuleset(s, nil, 0)
			if err != nil {
				return nil, err
			}
			out = append(out, flat...)
		case *Media:
			inner, err := flattenStatements(s.Statements)
			if err != nil {
				return nil, err
			}
			out = append(out, &Media{Query: s.Query, Statements: inner, Pos: s.Pos})
		case *Declaration:
			return nil, fmt.Errorf("%s: declarations may only appear within a rule", s.Pos)
		case *Extend:
			return nil, fmt.Errorf("%s: @extend may only be used within a rule", s.Pos)
		default:
			out = append(out, st)
		}
	}
	return out, nil
}

func flattenRuleset(rs *Ruleset, parent *selector.List, depth int) ([]Statement, error) {
	resolved, err := joinParentList(parent, rs.Selectors)
	if err != nil {
		return nil, err
	}
	var own []Statement
	var nested []*Ruleset
	for _, st := range rs.Statements {
		switch s := st.(type) {
		case *Ruleset:
			nested = append(nested, s)
		case *Media:
			return nil, fmt.Errorf("%s: @media may only be used at the root of the document.", s.Pos)
		default:
			own = append(own, st)
		}
	}
	var out []Statement
	childDepth := depth
	if len(own) > 0 {
		out = append(out, &Ruleset{Selectors: resolved, Statements: own, Depth: depth, Pos: rs.Pos})
		childDepth = depth + 1
	}
	for _, n := range nested {
		flat, err := flattenRuleset(n, resolved, childDepth)
		if err != nil {
			return nil, err
		}
		out = append(out, flat...)
	}
	return out, nil
}

// joinParentList resolves a nested selector list against its parent list as
// the cross product of their members. At the top level the child passes
// through, with parent references and leading combinators rejected.
func joinParentList(parent, child *selector.List) (*selector.List, error) {
	res := &selector.List{Pos: child.Pos}
	if parent == nil {
		for _, m := range child.Members {
			if complexHasParentRef(m) {
				return nil, fmt.Errorf("%s: Base-level rules cannot contain the parent-selector-referencing character '&'.", m.Pos)
			}
			if m.Combinator != selector.CombinatorDescendant {
				return nil, fmt.Errorf("%s: Base-level rules cannot begin with a combinator.", m.Pos)
			}
			res.Append(m)
		}
		return res, nil
	}
	for _, c := range child.Members {
		for _, p := range parent.Members {
			j, err := joinComplex(p, c)
			if err != nil {
				return nil, err
			}
			res.Append(j)
		}
	}
	return res, nil
}

// joinComplex attaches one child selector to one parent selector. Without a
// parent reference the child is appended as a descendant (or with its own
// leading combinator); each "&" splices in the full parent chain, merging
// sibling simples into the parent's innermost compound.
func joinComplex(parent, child *selector.Complex) (*selector.Complex, error) {
	if !complexHasParentRef(child) {
		joined := parent.CloneFully()
		joined.Last().Tail = child.CloneFully()
		joined.LineBreak = child.LineBreak
		return joined, nil
	}

	var head, last *selector.Complex
	attach := func(c *selector.Complex) {
		if head == nil {
			head = c
		} else {
			last.Tail = c
		}
		last = c
		for last.Tail != nil {
			last = last.Tail
		}
	}

	for l := child.CloneFully(); l != nil; {
		next := l.Tail
		l.Tail = nil
		switch countParentRefs(l.Head) {
		case 0:
			attach(l)
		case 1:
			sub := parent.CloneFully()
			sub.Combinator = l.Combinator
			inner := sub.Last()
			merged := &selector.Compound{Pos: l.Head.Pos, LineBreak: inner.Head.LineBreak}
			merged.Simples = append(merged.Simples, inner.Head.Simples...)
			for _, sm := range l.Head.Simples {
				if _, ok := sm.(*selector.Parent); ok {
					continue
				}
				merged.Simples = append(merged.Simples, sm)
			}
			inner.Head = merged
			attach(sub)
		default:
			return nil, fmt.Errorf("%s: the parent selector \"&\" may appear only once per compound selector", l.Head.Pos)
		}
		l = next
	}
	head.LineBreak = child.LineBreak
	return head, nil
}

func complexHasParentRef(c *selector.Complex) bool {
	for l := c; l != nil; l = l.Tail {
		if l.Head != nil && countParentRefs(l.Head) > 0 {
			return true
		}
	}
	return false
}

func countParentRefs(c *selector.Compound) int {
	n := 0
	for _, sm := range c.Simples {
		if _, ok := sm.(*selector.Parent); ok {
			n++
		}
	}
	return n
}
