package selector

// The weave machinery merges two complex selectors into every valid
// combinator respecting interleaving. It operates on node sequences; a
// "group" is a compound together with its adjacent combinators, a "slot" is
// a set of alternative node sequences to pick from, and the final result is
// the cartesian product over slots.

// paths returns the cartesian product of the choice sets, preserving order.
func paths[T any](choices [][]T) [][]T {
	res := [][]T{nil}
	for _, cs := range choices {
		next := make([][]T, 0, len(res)*len(cs))
		for _, p := range res {
			for _, c := range cs {
				np := make([]T, len(p), len(p)+1)
				copy(np, p)
				next = append(next, append(np, c))
			}
		}
		res = next
	}
	return res
}

// weave interleaves the pieces of path left to right, keeping each piece's
// trailing compound in place. An empty result means no valid interleaving
// exists.
func weave(path [][]Node) [][]Node {
	befores := [][]Node{nil}
	for _, current := range path {
		if len(current) == 0 {
			continue
		}
		cur := append([]Node(nil), current...)
		tail := cur[len(cur)-1]
		cur = cur[:len(cur)-1]
		var next [][]Node
		for _, before := range befores {
			for _, s := range subweave(before, cur) {
				ns := make([]Node, len(s), len(s)+1)
				copy(ns, s)
				next = append(next, append(ns, tail))
			}
		}
		befores = next
	}
	return befores
}

// subweave merges two node sequences into all interleavings matching the
// intersection of what both match. Nil means the pair cannot be merged.
func subweave(seq1, seq2 []Node) [][]Node {
	if len(seq1) == 0 {
		return [][]Node{seq2}
	}
	if len(seq2) == 0 {
		return [][]Node{seq1}
	}
	s1 := append([]Node(nil), seq1...)
	s2 := append([]Node(nil), seq2...)

	initOps, s1, s2, ok := mergeInitialOps(s1, s2)
	if !ok {
		return nil
	}
	fin, s1, s2, ok := mergeFinalOps(s1, s2, nil)
	if !ok {
		return nil
	}

	g1 := groupSelectors(s1)
	g2 := groupSelectors(s2)
	shared := lcs(g2, g1, groupCmp)

	var diff [][][]Node
	if len(initOps) > 0 {
		diff = append(diff, [][]Node{initOps})
	}
	for len(shared) > 0 {
		first := shared[0]
		pred := func(s [][]Node) bool {
			return len(s) > 0 && parentSuperselector(s[0], first)
		}
		diff = append(diff, chunks(&g1, &g2, pred))
		diff = append(diff, [][]Node{first})
		if len(g1) > 0 {
			g1 = g1[1:]
		}
		if len(g2) > 0 {
			g2 = g2[1:]
		}
		shared = shared[1:]
	}
	diff = append(diff, chunks(&g1, &g2, func(s [][]Node) bool { return len(s) == 0 }))
	diff = append(diff, fin...)

	var slots [][][]Node
	for _, s := range diff {
		if len(s) > 0 {
			slots = append(slots, s)
		}
	}

	var out [][]Node
	for _, p := range paths(slots) {
		var flat []Node
		for _, choice := range p {
			flat = append(flat, choice...)
		}
		out = append(out, flat)
	}
	return out
}

// mergeInitialOps strips leading combinators off both sequences. One run must
// be a subsequence of the other; the longer run wins.
func mergeInitialOps(seq1, seq2 []Node) ([]Node, []Node, []Node, bool) {
	var ops1, ops2 []Node
	for len(seq1) > 0 && seq1[0].IsCombinator() {
		ops1 = append(ops1, seq1[0])
		seq1 = seq1[1:]
	}
	for len(seq2) > 0 && seq2[0].IsCombinator() {
		ops2 = append(ops2, seq2[0])
		seq2 = seq2[1:]
	}
	l := lcs(ops1, ops2, nodeEqCmp)
	if !nodesEqual(l, ops1) && !nodesEqual(l, ops2) {
		return nil, nil, nil, false
	}
	longer := ops1
	if len(ops2) > len(ops1) {
		longer = ops2
	}
	return longer, seq1, seq2, true
}

// mergeFinalOps consumes trailing combinators pairwise, prepending merged
// slots to res. The case table covers every interaction between sibling and
// child combinators; anything else rejects the weave.
func mergeFinalOps(seq1, seq2 []Node, res [][][]Node) ([][][]Node, []Node, []Node, bool) {
	var ops1, ops2 []Node
	for len(seq1) > 0 && seq1[len(seq1)-1].IsCombinator() {
		ops1 = append(ops1, seq1[len(seq1)-1])
		seq1 = seq1[:len(seq1)-1]
	}
	for len(seq2) > 0 && seq2[len(seq2)-1].IsCombinator() {
		ops2 = append(ops2, seq2[len(seq2)-1])
		seq2 = seq2[:len(seq2)-1]
	}
	if len(ops1) == 0 && len(ops2) == 0 {
		return res, seq1, seq2, true
	}

	one := func(n Node) [][]Node { return [][]Node{{n}} }
	prepend := func(slots ...[][]Node) { res = append(slots, res...) }

	if len(ops1) > 1 || len(ops2) > 1 {
		// with runs of combinators one run must contain the other
		l := lcs(ops1, ops2, nodeEqCmp)
		if !nodesEqual(l, ops1) && !nodesEqual(l, ops2) {
			return nil, nil, nil, false
		}
		longer := ops1
		if len(ops2) > len(ops1) {
			longer = ops2
		}
		// ops were collected back to front
		slots := make([][][]Node, 0, len(longer))
		for i := len(longer) - 1; i >= 0; i-- {
			slots = append(slots, one(longer[i]))
		}
		return append(slots, res...), seq1, seq2, true
	}

	if len(ops1) == 1 && len(ops2) == 1 {
		op1, op2 := ops1[0], ops2[0]
		sel1 := seq1[len(seq1)-1]
		seq1 = seq1[:len(seq1)-1]
		sel2 := seq2[len(seq2)-1]
		seq2 = seq2[:len(seq2)-1]
		c1, c2 := op1.Combinator, op2.Combinator
		switch {
		case c1 == CombinatorFollowing && c2 == CombinatorFollowing:
			if compoundIsSuper(sel1.Sel.Head, sel2.Sel.Head) {
				prepend(one(sel2), one(op2))
			} else if compoundIsSuper(sel2.Sel.Head, sel1.Sel.Head) {
				prepend(one(sel1), one(op1))
			} else {
				choices := [][]Node{
					{sel1, op1, sel2, op2},
					{sel2, op2, sel1, op1},
				}
				if merged, ok := unifyNodes(sel1, sel2); ok {
					choices = append(choices, []Node{merged, op1})
				}
				prepend(choices)
			}
		case c1 == CombinatorFollowing && c2 == CombinatorAdjacent,
			c1 == CombinatorAdjacent && c2 == CombinatorFollowing:
			tildeSel, plusSel := sel1, sel2
			if c1 == CombinatorAdjacent {
				tildeSel, plusSel = sel2, sel1
			}
			if compoundIsSuper(tildeSel.Sel.Head, plusSel.Sel.Head) {
				prepend(one(plusSel), one(combinatorNode(CombinatorAdjacent)))
			} else {
				choices := [][]Node{
					{tildeSel, combinatorNode(CombinatorFollowing), plusSel, combinatorNode(CombinatorAdjacent)},
				}
				if merged, ok := unifyNodes(plusSel, tildeSel); ok {
					choices = append(choices, []Node{merged, combinatorNode(CombinatorAdjacent)})
				}
				prepend(choices)
			}
		case c1 == CombinatorChild && (c2 == CombinatorFollowing || c2 == CombinatorAdjacent):
			prepend(one(sel2), one(op2))
			seq1 = append(seq1, sel1, op1)
		case c2 == CombinatorChild && (c1 == CombinatorFollowing || c1 == CombinatorAdjacent):
			prepend(one(sel1), one(op1))
			seq2 = append(seq2, sel2, op2)
		case c1 == c2:
			merged, ok := unifyNodes(sel1, sel2)
			if !ok {
				return nil, nil, nil, false
			}
			prepend(one(merged), one(op1))
		default:
			return nil, nil, nil, false
		}
		return mergeFinalOps(seq1, seq2, res)
	}

	if len(ops1) == 1 {
		op1 := ops1[0]
		if op1.Combinator == CombinatorChild && len(seq1) > 0 && len(seq2) > 0 &&
			seq2[len(seq2)-1].IsSelector() &&
			compoundIsSuper(seq2[len(seq2)-1].Sel.Head, seq1[len(seq1)-1].Sel.Head) {
			seq2 = seq2[:len(seq2)-1]
		}
		sel := seq1[len(seq1)-1]
		seq1 = seq1[:len(seq1)-1]
		prepend(one(sel), one(op1))
		return mergeFinalOps(seq1, seq2, res)
	}

	op2 := ops2[0]
	if op2.Combinator == CombinatorChild && len(seq2) > 0 && len(seq1) > 0 &&
		seq1[len(seq1)-1].IsSelector() &&
		compoundIsSuper(seq1[len(seq1)-1].Sel.Head, seq2[len(seq2)-1].Sel.Head) {
		seq1 = seq1[:len(seq1)-1]
	}
	sel := seq2[len(seq2)-1]
	seq2 = seq2[:len(seq2)-1]
	prepend(one(sel), one(op2))
	return mergeFinalOps(seq1, seq2, res)
}

// groupSelectors regroups a node sequence into compound plus adjacent
// combinator chunks.
func groupSelectors(seq []Node) [][]Node {
	var out [][]Node
	i := 0
	for i < len(seq) {
		var head []Node
		for {
			head = append(head, seq[i])
			i++
			if i >= len(seq) {
				break
			}
			if head[len(head)-1].IsCombinator() || seq[i].IsCombinator() {
				continue
			}
			break
		}
		out = append(out, head)
	}
	return out
}

// chunks consumes groups off both sequences until the predicate holds on the
// remainder, then returns nothing, the single non-empty chunk, or both
// orderings of the two chunks.
func chunks(seq1, seq2 *[][]Node, until func([][]Node) bool) [][]Node {
	var c1, c2 [][]Node
	for !until(*seq1) {
		c1 = append(c1, (*seq1)[0])
		*seq1 = (*seq1)[1:]
	}
	for !until(*seq2) {
		c2 = append(c2, (*seq2)[0])
		*seq2 = (*seq2)[1:]
	}
	switch {
	case len(c1) == 0 && len(c2) == 0:
		return nil
	case len(c1) == 0:
		return [][]Node{flattenGroups(c2)}
	case len(c2) == 0:
		return [][]Node{flattenGroups(c1)}
	}
	both := make([][]Node, 0, len(c1)+len(c2))
	both = append(both, c1...)
	both = append(both, c2...)
	rev := make([][]Node, 0, len(c1)+len(c2))
	rev = append(rev, c2...)
	rev = append(rev, c1...)
	return [][]Node{flattenGroups(both), flattenGroups(rev)}
}

func flattenGroups(groups [][]Node) []Node {
	var flat []Node
	for _, g := range groups {
		flat = append(flat, g...)
	}
	return flat
}

func unifyNodes(a, b Node) (Node, bool) {
	merged := a.Sel.Head.UnifyWith(b.Sel.Head)
	if merged == nil || len(merged.Simples) == 0 {
		return Node{}, false
	}
	return selectorNode(&Complex{
		Head:    merged,
		Sources: mergeSources(copySources(a.Sel.Sources), b.Sel.Sources),
		Pos:     a.Sel.Pos,
	}), true
}

func nodeEqCmp(a, b Node) (Node, bool) {
	if a.equal(b) {
		return a, true
	}
	return Node{}, false
}

// groupCmp is the weave equivalence: equal groups match, and a group that is
// a parent superselector of another matches with the more specific group as
// the representative.
func groupCmp(g1, g2 []Node) ([]Node, bool) {
	if nodesEqual(g1, g2) {
		return g1, true
	}
	if len(g1) == 0 || len(g2) == 0 || !g1[0].IsSelector() || !g2[0].IsSelector() {
		return nil, false
	}
	if parentSuperselector(g1, g2) {
		return g2, true
	}
	if parentSuperselector(g2, g1) {
		return g1, true
	}
	return nil, false
}
