package selector

import (
	"strings"

	"sassc/common"
)

// List is a comma separated sequence of complex selectors. Members are kept
// in insertion order; Append drops structural duplicates.
type List struct {
	Members []*Complex
	Pos     common.Position
}

func (l *List) String() string {
	parts := make([]string, len(l.Members))
	for i, m := range l.Members {
		parts[i] = m.String()
	}
	return strings.Join(parts, ", ")
}

func (l *List) Append(c *Complex) {
	want := c.String()
	for _, m := range l.Members {
		if m.String() == want {
			return
		}
	}
	l.Members = append(l.Members, c)
}

func (l *List) Concat(o *List) *List {
	n := &List{Pos: l.Pos}
	for _, m := range l.Members {
		n.Append(m)
	}
	for _, m := range o.Members {
		n.Append(m)
	}
	return n
}
