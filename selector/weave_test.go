package selector

import "testing"

func TestPaths(t *testing.T) {
	got := paths([][]int{{1, 2}, {3, 4}})
	want := [][]int{{1, 3}, {1, 4}, {2, 3}, {2, 4}}
	if len(got) != len(want) {
		t.Fatalf("paths() produced %d paths, want %d", len(got), len(want))
	}
	for i := range want {
		for j := range want[i] {
			if got[i][j] != want[i][j] {
				t.Fatalf("paths() = %v, want %v", got, want)
			}
		}
	}
}

func TestPathsEmpty(t *testing.T) {
	got := paths[int](nil)
	if len(got) != 1 || len(got[0]) != 0 {
		t.Fatalf("paths(nil) = %v, want one empty path", got)
	}
}

func wv(t *testing.T, path ...*Complex) []string {
	t.Helper()
	nodes := make([][]Node, len(path))
	for i, c := range path {
		nodes[i] = complexToNodes(c)
	}
	var out []string
	for _, w := range weave(nodes) {
		out = append(out, nodesString(w))
	}
	return out
}

func TestWeaveKeepsTrailingCompound(t *testing.T) {
	got := wv(t,
		chain(comp(cls("a")), comp(cls("x"))),
		chain(comp(cls("b")), comp(cls("y"))),
	)
	want := []string{".a .x .b .y", ".b .a .x .y"}
	assertStrings(t, "weave", got, want)
}

func TestSubweaveSharedCompound(t *testing.T) {
	s1 := complexToNodes(chain(comp(cls("a")), comp(cls("b"))))
	s2 := complexToNodes(chain(comp(cls("a")), comp(cls("c"))))
	var got []string
	for _, w := range subweave(s1, s2) {
		got = append(got, nodesString(w))
	}
	want := []string{".a .b .c", ".a .c .b"}
	assertStrings(t, "subweave", got, want)
}

func TestSubweaveMergesEqualFinalOps(t *testing.T) {
	s1 := []Node{selectorNode(chain(comp(cls("a")))), combinatorNode(CombinatorChild)}
	s2 := []Node{selectorNode(chain(comp(cls("b")))), combinatorNode(CombinatorChild)}
	var got []string
	for _, w := range subweave(s1, s2) {
		got = append(got, nodesString(w))
	}
	want := []string{".a.b >"}
	assertStrings(t, "subweave", got, want)
}

func TestSubweaveMergesMixedSiblingOps(t *testing.T) {
	s1 := []Node{selectorNode(chain(comp(cls("a")))), combinatorNode(CombinatorFollowing)}
	s2 := []Node{selectorNode(chain(comp(cls("b")))), combinatorNode(CombinatorAdjacent)}
	var got []string
	for _, w := range subweave(s1, s2) {
		got = append(got, nodesString(w))
	}
	want := []string{".a ~ .b +", ".b.a +"}
	assertStrings(t, "subweave", got, want)
}

func TestSubweaveRejectsConflictingOps(t *testing.T) {
	s1 := []Node{combinatorNode(CombinatorChild), selectorNode(chain(comp(cls("a"))))}
	s2 := []Node{combinatorNode(CombinatorAdjacent), selectorNode(chain(comp(cls("b"))))}
	if got := subweave(s1, s2); got != nil {
		t.Errorf("subweave() with conflicting leading ops = %v, want nil", got)
	}
}

func TestGroupSelectors(t *testing.T) {
	nodes := complexToNodes(chain(comp(cls("a")), CombinatorChild, comp(cls("b")), comp(cls("c"))))
	groups := groupSelectors(nodes)
	if len(groups) != 2 {
		t.Fatalf("groupSelectors() produced %d groups, want 2", len(groups))
	}
	if got := nodesString(groups[0]); got != ".a > .b" {
		t.Errorf("first group = %q, want %q", got, ".a > .b")
	}
	if got := nodesString(groups[1]); got != ".c" {
		t.Errorf("second group = %q, want %q", got, ".c")
	}
}

func assertStrings(t *testing.T, what string, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s produced %v, want %v", what, got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("%s produced %v, want %v", what, got, want)
		}
	}
}
