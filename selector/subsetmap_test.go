package selector

import "testing"

func TestSubsetMapGet(t *testing.T) {
	m := NewSubsetMap()
	extA := Extension{Extender: chain(comp(cls("x"))), Extendee: comp(cls("a"))}
	extB := Extension{Extender: chain(comp(cls("y"))), Extendee: comp(cls("b"))}
	extAB := Extension{Extender: chain(comp(cls("z"))), Extendee: comp(cls("a"), cls("b"))}
	m.Put(extA)
	m.Put(extB)
	m.Put(extAB)

	tests := []struct {
		name  string
		query *Compound
		want  []string
	}{
		{"single hit", comp(cls("a")), []string{".x"}},
		{"all subsets in order", comp(cls("a"), cls("b")), []string{".x", ".y", ".z"}},
		{"superset query", comp(cls("a"), cls("b"), cls("c")), []string{".x", ".y", ".z"}},
		{"no hit", comp(cls("c")), nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := m.Get(tc.query)
			if len(got) != len(tc.want) {
				t.Fatalf("Get(%q) returned %d entries, want %d", tc.query.String(), len(got), len(tc.want))
			}
			for i, e := range got {
				if e.Extender.String() != tc.want[i] {
					t.Errorf("Get(%q)[%d].Extender = %q, want %q", tc.query.String(), i, e.Extender.String(), tc.want[i])
				}
			}
		})
	}
}

func TestSubsetMapEmpty(t *testing.T) {
	m := NewSubsetMap()
	if !m.Empty() {
		t.Error("new map should be empty")
	}
	m.Put(Extension{Extender: chain(comp(cls("x"))), Extendee: comp(cls("a"))})
	if m.Empty() {
		t.Error("map with an entry should not be empty")
	}
	if got := len(m.Entries()); got != 1 {
		t.Errorf("Entries() length = %d, want 1", got)
	}
}
