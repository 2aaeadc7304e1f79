package selector

// compoundIsSuper reports whether every element matched by b is matched by a.
// For compounds this is containment: all of a's constraints must be present
// on b, with the universal selector matching anything and pseudo-elements
// required to agree exactly.
func compoundIsSuper(a, b *Compound) bool {
	if a == nil || b == nil {
		return false
	}
	pa, pb := a.pseudoElement(), b.pseudoElement()
	if (pa == nil) != (pb == nil) || pa != nil && pa.String() != pb.String() {
		return false
	}
	for _, s := range a.Simples {
		if t, ok := s.(*Type); ok && t.Name == "*" {
			continue
		}
		if isPseudoElement(s) {
			continue
		}
		if !b.contains(s) {
			return false
		}
	}
	return true
}

// IsSuperselector reports whether a matches a superset of the elements b
// matches.
func IsSuperselector(a, b *Complex) bool {
	return nodesSuper(complexToNodes(a), complexToNodes(b))
}

// nodesSuper walks the two node sequences from the front, letting a's heads
// land anywhere in b as long as the combinators between landings agree.
// Descendant absorbs child and Following absorbs Adjacent; sibling
// combinators are never absorbed by descendant.
func nodesSuper(s1, s2 []Node) bool {
	if len(s1) == 0 || len(s2) == 0 {
		return false
	}
	if s1[0].IsCombinator() || s2[0].IsCombinator() ||
		s1[len(s1)-1].IsCombinator() || s2[len(s2)-1].IsCombinator() {
		return false
	}
	if len(s1) > len(s2) {
		return false
	}
	if len(s1) == 1 {
		return compoundIsSuper(s1[0].Sel.Head, s2[len(s2)-1].Sel.Head)
	}

	si := -1
	for i, e := range s2 {
		if i == len(s2)-1 {
			return false
		}
		if e.IsCombinator() {
			continue
		}
		if compoundIsSuper(s1[0].Sel.Head, e.Sel.Head) {
			si = i
			break
		}
	}
	if si < 0 {
		return false
	}

	if s1[1].IsCombinator() {
		if !s2[si+1].IsCombinator() {
			return false
		}
		c1, c2 := s1[1].Combinator, s2[si+1].Combinator
		if c1 == CombinatorFollowing {
			if c2 == CombinatorChild {
				return false
			}
		} else if c1 != c2 {
			return false
		}
		return nodesSuper(s1[2:], s2[si+2:])
	}
	if s2[si+1].IsCombinator() {
		if s2[si+1].Combinator != CombinatorChild {
			return false
		}
		return nodesSuper(s1[1:], s2[si+2:])
	}
	return nodesSuper(s1[1:], s2[si+1:])
}

// parentSuperselector compares the two sequences as prefixes by giving both
// the same synthetic trailing descendant compound.
func parentSuperselector(s1, s2 []Node) bool {
	temp := selectorNode(&Complex{Head: &Compound{
		Simples: []Simple{&Type{Name: "temp"}},
	}})
	a := make([]Node, len(s1), len(s1)+1)
	copy(a, s1)
	a = append(a, temp)
	b := make([]Node, len(s2), len(s2)+1)
	copy(b, s2)
	b = append(b, temp)
	return nodesSuper(a, b)
}
