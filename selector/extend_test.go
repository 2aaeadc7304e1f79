package selector

import (
	"strings"
	"testing"
)

func extendList(t *testing.T, m *SubsetMap, members ...*Complex) []string {
	t.Helper()
	x := NewExtender(m, nil)
	got, err := x.ExtendSelectorList(selList(members...), "", false, make(map[string]struct{}))
	if err != nil {
		t.Fatalf("ExtendSelectorList() error: %v", err)
	}
	out := make([]string, len(got.Members))
	for i, c := range got.Members {
		out[i] = c.String()
	}
	return out
}

func TestExtendBasic(t *testing.T) {
	m := NewSubsetMap()
	m.Put(Extension{Extender: chain(comp(cls("b"))), Extendee: comp(cls("a"))})
	got := extendList(t, m, chain(comp(cls("a"))))
	assertStrings(t, "extend", got, []string{".a", ".b"})
}

func TestExtendCompoundRemainder(t *testing.T) {
	m := NewSubsetMap()
	m.Put(Extension{Extender: chain(comp(cls("b"))), Extendee: comp(cls("a"))})
	got := extendList(t, m, chain(comp(cls("a"), cls("c"))))
	assertStrings(t, "extend", got, []string{".a.c", ".c.b"})
}

func TestExtendChainExtender(t *testing.T) {
	m := NewSubsetMap()
	m.Put(Extension{Extender: chain(comp(cls("x")), comp(cls("y"))), Extendee: comp(cls("a"))})
	got := extendList(t, m, chain(comp(cls("a"))))
	assertStrings(t, "extend", got, []string{".a", ".x .y"})
}

func TestExtendTransitive(t *testing.T) {
	m := NewSubsetMap()
	m.Put(Extension{Extender: chain(comp(cls("b"))), Extendee: comp(cls("a"))})
	m.Put(Extension{Extender: chain(comp(cls("c"))), Extendee: comp(cls("b"))})
	got := extendList(t, m, chain(comp(cls("a"))))
	assertStrings(t, "extend", got, []string{".a", ".b", ".c"})
}

func TestExtendCycle(t *testing.T) {
	m := NewSubsetMap()
	m.Put(Extension{Extender: chain(comp(cls("b"))), Extendee: comp(cls("a"))})
	m.Put(Extension{Extender: chain(comp(cls("a"))), Extendee: comp(cls("b"))})
	got := extendList(t, m, chain(comp(cls("a"))))
	assertStrings(t, "extend", got, []string{".b", ".a"})
}

func TestExtendInsideWrapped(t *testing.T) {
	m := NewSubsetMap()
	m.Put(Extension{Extender: chain(comp(cls("b"))), Extendee: comp(cls("a"))})
	got := extendList(t, m, chain(comp(wrapped("not", chain(comp(cls("a")))))))
	assertStrings(t, "extend", got, []string{":not(.a, .b)"})
}

func TestExtendPlaceholder(t *testing.T) {
	m := NewSubsetMap()
	m.Put(Extension{Extender: chain(comp(cls("b"))), Extendee: comp(ph("p"))})
	got := extendList(t, m, chain(comp(ph("p"))))
	assertStrings(t, "extend", got, []string{"%p", ".b"})
}

func TestExtendPassThrough(t *testing.T) {
	m := NewSubsetMap()
	m.Put(Extension{Extender: chain(comp(cls("b"))), Extendee: comp(cls("a"))})
	got := extendList(t, m, chain(comp(cls("z"))), chain(comp(cls("a"))))
	assertStrings(t, "extend", got, []string{".z", ".a", ".b"})
}

func TestExtendMarksExtended(t *testing.T) {
	m := NewSubsetMap()
	extendee := comp(cls("a"))
	m.Put(Extension{Extender: chain(comp(cls("b"))), Extendee: extendee})
	extendList(t, m, chain(comp(cls("a"))))
	if !extendee.Extended {
		t.Error("matched extendee not marked as extended")
	}
}

func TestExtendMediaMismatch(t *testing.T) {
	m := NewSubsetMap()
	m.Put(Extension{Extender: chain(comp(cls("b"))), Extendee: comp(cls("a")), Media: "screen"})
	x := NewExtender(m, nil)
	_, err := x.ExtendSelectorList(selList(chain(comp(cls("a")))), "", false, make(map[string]struct{}))
	if err == nil {
		t.Fatal("cross-media extend should fail")
	}
	if !strings.Contains(err.Error(), "You may not @extend an outer selector from within @media.") {
		t.Errorf("error = %q, missing media diagnostic", err)
	}
}

func TestExtendOuterIntoMedia(t *testing.T) {
	m := NewSubsetMap()
	m.Put(Extension{Extender: chain(comp(cls("b"))), Extendee: comp(cls("a"))})
	x := NewExtender(m, nil)
	got, err := x.ExtendSelectorList(selList(chain(comp(cls("a")))), "screen", false, make(map[string]struct{}))
	if err != nil {
		t.Fatalf("outer extend reaching into media failed: %v", err)
	}
	var out []string
	for _, c := range got.Members {
		out = append(out, c.String())
	}
	assertStrings(t, "extend", out, []string{".a", ".b"})
}

func TestExtendSameMedia(t *testing.T) {
	m := NewSubsetMap()
	m.Put(Extension{Extender: chain(comp(cls("b"))), Extendee: comp(cls("a")), Media: "screen"})
	x := NewExtender(m, nil)
	got, err := x.ExtendSelectorList(selList(chain(comp(cls("a")))), "screen", false, make(map[string]struct{}))
	if err != nil {
		t.Fatalf("same-media extend failed: %v", err)
	}
	var out []string
	for _, c := range got.Members {
		out = append(out, c.String())
	}
	assertStrings(t, "extend", out, []string{".a", ".b"})
}
