package selector

import "testing"

func TestCompoundUnifyWith(t *testing.T) {
	tests := []struct {
		name string
		a, b *Compound
		want string
	}{
		{"classes merge", comp(cls("a")), comp(cls("b")), ".a.b"},
		{"duplicate dropped", comp(cls("a")), comp(cls("a")), ".a"},
		{"type stays first", comp(cls("a")), comp(typ("div")), "div.a"},
		{"same types collapse", comp(typ("div"), cls("a")), comp(typ("div"), cls("b")), "div.a.b"},
		{"universal yields", comp(typ("*")), comp(typ("div")), "div"},
		{"universal other side", comp(typ("div")), comp(typ("*")), "div"},
		{"id and class", comp(hash("x")), comp(cls("a")), "#x.a"},
		{"same pseudo-element", comp(cls("a"), pelem("before")), comp(cls("b"), pelem("before")), ".a::before.b"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.a.UnifyWith(tc.b)
			if got == nil {
				t.Fatalf("UnifyWith() = nil, want %q", tc.want)
			}
			if got.String() != tc.want {
				t.Errorf("UnifyWith() = %q, want %q", got.String(), tc.want)
			}
		})
	}
}

func TestCompoundUnifyWithConflicts(t *testing.T) {
	tests := []struct {
		name string
		a, b *Compound
	}{
		{"different types", comp(typ("div")), comp(typ("span"))},
		{"different pseudo-elements", comp(pelem("before")), comp(pelem("after"))},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.UnifyWith(tc.b); got != nil {
				t.Errorf("UnifyWith() = %q, want nil", got.String())
			}
		})
	}
}

func TestCompoundUnifyWithWrapped(t *testing.T) {
	a := comp(wrapped("not", chain(comp(cls("a")))))
	b := comp(wrapped("not", chain(comp(cls("b")))))
	got := a.UnifyWith(b)
	if got == nil {
		t.Fatal("UnifyWith() = nil")
	}
	if want := ":not(.a, .b)"; got.String() != want {
		t.Errorf("UnifyWith() = %q, want %q", got.String(), want)
	}
}
