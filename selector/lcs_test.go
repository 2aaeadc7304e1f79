package selector

import "testing"

func intEq(a, b int) (int, bool) {
	if a == b {
		return a, true
	}
	return 0, false
}

func TestLCS(t *testing.T) {
	tests := []struct {
		name string
		x, y []int
		want []int
	}{
		{"classic", []int{1, 2, 3, 4}, []int{2, 4, 5}, []int{2, 4}},
		{"disjoint", []int{1, 2}, []int{3, 4}, nil},
		{"identical", []int{1, 2, 3}, []int{1, 2, 3}, []int{1, 2, 3}},
		{"empty side", nil, []int{1}, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := lcs(tc.x, tc.y, intEq)
			if len(got) != len(tc.want) {
				t.Fatalf("lcs(%v, %v) = %v, want %v", tc.x, tc.y, got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Errorf("lcs(%v, %v) = %v, want %v", tc.x, tc.y, got, tc.want)
					break
				}
			}
		})
	}
}

func TestLCSRepresentative(t *testing.T) {
	// the comparator picks the representative, here the larger of a pair
	maxEq := func(a, b int) (int, bool) {
		if a%10 == b%10 {
			if a > b {
				return a, true
			}
			return b, true
		}
		return 0, false
	}
	got := lcs([]int{11, 22}, []int{21, 32}, maxEq)
	want := []int{21, 32}
	if len(got) != len(want) {
		t.Fatalf("lcs() = %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("lcs() = %v, want %v", got, want)
		}
	}
}
