package selector

import (
	"fmt"
	"testing"
)

func TestTrimDropsDominated(t *testing.T) {
	dominated := chain(comp(cls("a"), cls("b")))
	winner := chain(comp(cls("b")))
	got := trim([][]*Complex{{dominated}, {winner}}, false)
	if len(got[0]) != 0 {
		t.Errorf("dominated group kept %d selectors, want 0", len(got[0]))
	}
	if len(got[1]) != 1 || got[1][0].String() != ".b" {
		t.Errorf("winning group = %v, want [.b]", got[1])
	}
}

func TestTrimRespectsSourceSpecificity(t *testing.T) {
	// the dominated candidate descends from a source more specific than the
	// would-be winner, so it survives
	kept := chain(comp(cls("a"), cls("b")))
	kept.AddSource(chain(comp(hash("x"))))
	winner := chain(comp(cls("b")))
	got := trim([][]*Complex{{kept}, {winner}}, false)
	if len(got[0]) != 1 {
		t.Errorf("group with specific source kept %d selectors, want 1", len(got[0]))
	}
}

func TestTrimReplaceSeedsOwnSpecificity(t *testing.T) {
	a1 := chain(comp(cls("a")))
	a2 := chain(comp(cls("a")))
	got := trim([][]*Complex{{a1}, {a2}}, true)
	kept := len(got[0]) + len(got[1])
	if kept != 1 {
		t.Errorf("identical selectors kept = %d, want 1", kept)
	}
}

func TestTrimCutoff(t *testing.T) {
	groups := make([][]*Complex, trimCutoff+1)
	for i := range groups {
		groups[i] = []*Complex{chain(comp(cls(fmt.Sprintf("c%d", i))))}
	}
	// duplicate domination that would normally trim
	groups[0] = []*Complex{chain(comp(cls("c1"), cls("z")))}
	got := trim(groups, false)
	if len(got[0]) != 1 {
		t.Errorf("past the cutoff trim should keep everything, group 0 = %v", got[0])
	}
}
