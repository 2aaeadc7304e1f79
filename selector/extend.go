package selector

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"
)

// Extender rewrites selector lists so that every rule matching an extendee
// also matches its extenders. One Extender serves a whole compile; it is not
// safe for concurrent use.
type Extender struct {
	subset *SubsetMap
	log    *zap.Logger
}

func NewExtender(m *SubsetMap, log *zap.Logger) *Extender {
	if log == nil {
		log = zap.NewNop()
	}
	return &Extender{subset: m, log: log.Named("extend")}
}

// HasExtensions reports whether any compound of s, or of a wrapped selector
// inside it, has a pending extension. An extension recorded inside a
// different media block is a fatal error at the extender's position;
// extensions recorded outside any media block reach every context.
func (x *Extender) HasExtensions(s *Complex, media string) (bool, error) {
	for l := s; l != nil; l = l.Tail {
		if l.Head == nil {
			continue
		}
		if exts := x.subset.Get(l.Head); len(exts) > 0 {
			for _, ext := range exts {
				// an extend declared outside any media block reaches everywhere
				if ext.Media != "" && ext.Media != media {
					return false, fmt.Errorf("%s: You may not @extend an outer selector from within @media.", ext.Extender.Pos)
				}
			}
			return true, nil
		}
		for _, sm := range l.Head.Simples {
			w, ok := sm.(*Wrapped)
			if !ok {
				continue
			}
			for _, m := range w.List.Members {
				has, err := x.HasExtensions(m, media)
				if err != nil {
					return false, err
				}
				if has {
					return true, nil
				}
			}
		}
	}
	return false, nil
}

// ExtendSelectorList rewrites every member of l that has a pending extension.
// Members without one pass through untouched. Placeholder removal is left to
// the caller; it runs after the unsatisfied-extend check.
func (x *Extender) ExtendSelectorList(l *List, media string, isReplace bool, seen map[string]struct{}) (*List, error) {
	res := &List{Pos: l.Pos}
	for _, sel := range l.Members {
		has, err := x.HasExtensions(sel, media)
		if err != nil {
			return nil, err
		}
		if !has {
			res.Append(sel)
			continue
		}
		x.log.Debug("extending selector", zap.String("selector", sel.String()))
		extended := x.extendComplex(sel, seen, isReplace, true)
		if isReplace && len(extended) > 1 {
			extended = extended[1:]
		}
		for _, e := range extended {
			e, err = x.extendWrapped(e, media, seen)
			if err != nil {
				return nil, err
			}
			res.Append(e)
		}
	}
	return res, nil
}

// extendWrapped re-extends the selector lists inside wrapped pseudo-classes
// of every head, cloning the affected compounds.
func (x *Extender) extendWrapped(c *Complex, media string, seen map[string]struct{}) (*Complex, error) {
	for l := c; l != nil; l = l.Tail {
		if l.Head == nil {
			continue
		}
		for i, sm := range l.Head.Simples {
			w, ok := sm.(*Wrapped)
			if !ok {
				continue
			}
			inner, err := x.ExtendSelectorList(w.List, media, false, seen)
			if err != nil {
				return nil, err
			}
			if inner.String() == w.List.String() {
				continue
			}
			head := l.Head.Clone()
			head.Simples[i] = &Wrapped{Name: w.Name, List: inner, Pos: w.Pos}
			l.Head = head
		}
	}
	return c, nil
}

// extendComplex produces every selector the extensions turn sel into. The
// seen set holds the extendee groups consumed on the current recursion path
// and is copied at each boundary, so sibling recursions stay independent.
func (x *Extender) extendComplex(sel *Complex, seen map[string]struct{}, isReplace, isOriginal bool) []*Complex {
	nodes := complexToNodes(sel)
	choices := make([][][]Node, 0, len(nodes))
	for _, n := range nodes {
		if n.IsCombinator() {
			choices = append(choices, [][]Node{{n}})
			continue
		}
		if isOriginal && !sel.HasPlaceholder() {
			// the unextended rule keeps matching, so it is its own source
			n.Sel.AddSource(sel)
		}
		alts := x.extendCompound(n.Sel.Head, n.Sel.Sources, seen, isReplace)
		prepend := true
		for _, a := range alts {
			if IsSuperselector(a, n.Sel) {
				prepend = false
				break
			}
		}
		pos := make([][]Node, 0, len(alts)+1)
		if prepend {
			pos = append(pos, []Node{n})
		}
		for _, a := range alts {
			pos = append(pos, complexToNodes(a))
		}
		choices = append(choices, pos)
	}

	var groups [][]*Complex
	for _, p := range paths(choices) {
		woven := weave(p)
		group := make([]*Complex, 0, len(woven))
		for _, w := range woven {
			if c := nodesToComplex(w); c != nil {
				group = append(group, c)
			}
		}
		groups = append(groups, group)
	}
	x.log.Debug("woven alternatives", zap.String("selector", sel.String()), zap.Int("groups", len(groups)))

	trimmed := trim(groups, isReplace)
	var out []*Complex
	dedup := make(map[string]struct{})
	for _, g := range trimmed {
		for _, c := range g {
			key := c.String()
			if _, ok := dedup[key]; ok {
				continue
			}
			dedup[key] = struct{}{}
			out = append(out, c)
		}
	}
	return out
}

// extendCompound rewrites a single compound through the subset map. Entries
// are grouped by extender; each group subtracts its extendees from the
// compound, unifies the rest with the extender's innermost compound and
// recurses on the freshly built selector.
func (x *Extender) extendCompound(head *Compound, srcs map[string]*Complex, seen map[string]struct{}, isReplace bool) []*Complex {
	entries := x.subset.Get(head)
	if len(entries) == 0 {
		return nil
	}

	type group struct {
		extender *Complex
		sels     []Simple
		seenSels map[string]struct{}
		members  []Extension
	}
	var groups []*group
	byExtender := make(map[*Complex]*group)
	for _, e := range entries {
		g := byExtender[e.Extender]
		if g == nil {
			g = &group{extender: e.Extender, seenSels: make(map[string]struct{})}
			byExtender[e.Extender] = g
			groups = append(groups, g)
		}
		g.members = append(g.members, e)
		for _, s := range e.Extendee.Simples {
			if _, ok := g.seenSels[s.String()]; ok {
				continue
			}
			g.seenSels[s.String()] = struct{}{}
			g.sels = append(g.sels, s)
		}
	}

	var out []*Complex
	dedup := make(map[string]struct{})
	for _, g := range groups {
		selfWithout := head.Minus(g.sels)
		innermost := g.extender.Innermost()
		if innermost == nil {
			continue
		}
		unified := selfWithout.UnifyWith(innermost)
		if unified == nil || len(unified.Simples) == 0 {
			continue
		}
		for _, e := range g.members {
			e.Extendee.Extended = true
		}

		key := groupKey(g.sels)
		if _, ok := seen[key]; ok {
			continue
		}

		newSel := g.extender.CloneFully()
		last := newSel.Last()
		unified.LineBreak = unified.LineBreak || last.Head != nil && last.Head.LineBreak
		last.Head = unified
		newSel.Sources = copySources(srcs)
		newSel.AddSource(g.extender)

		recSeen := make(map[string]struct{}, len(seen)+1)
		for k := range seen {
			recSeen[k] = struct{}{}
		}
		recSeen[key] = struct{}{}

		for _, r := range x.extendComplex(newSel, recSeen, isReplace, false) {
			rk := r.String()
			if _, ok := dedup[rk]; ok {
				continue
			}
			dedup[rk] = struct{}{}
			out = append(out, r)
		}
	}
	return out
}

func groupKey(sels []Simple) string {
	parts := make([]string, len(sels))
	for i, s := range sels {
		parts[i] = s.String()
	}
	sort.Strings(parts)
	return strings.Join(parts, "\x00")
}
