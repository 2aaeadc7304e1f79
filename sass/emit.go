package sass

import (
	"io"
	"math"
	"strconv"
	"strings"

	"sassc/common"
	"sassc/selector"
)

// String renders the stylesheet in its configured output style.
func (ss *Stylesheet) String() string {
	prec := ss.Precision
	if prec <= 0 {
		prec = 5
	}
	e := &emitter{style: ss.Style, precision: prec}
	return e.render(ss.Statements)
}

// WriteTo renders the stylesheet to w.
func (ss *Stylesheet) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, ss.String())
	return int64(n), err
}

type emitter struct {
	style     common.OutputStyle
	precision int
}

func (e *emitter) render(stmts []Statement) string {
	parts := e.statements(stmts, 0)
	if len(parts) == 0 {
		return ""
	}
	sep := "\n\n"
	if e.style == common.OutputStyleEcho {
		sep = "\n"
	}
	return strings.Join(parts, sep) + "\n"
}

func (e *emitter) statements(stmts []Statement, depth int) []string {
	var parts []string
	for _, st := range stmts {
		switch s := st.(type) {
		case *Ruleset:
			parts = append(parts, e.ruleset(s, depth))
		case *Media:
			parts = append(parts, e.media(s, depth))
		case *Comment:
			parts = append(parts, indent(depth)+s.Text)
		}
	}
	return parts
}

func (e *emitter) ruleset(rs *Ruleset, depth int) string {
	var b strings.Builder
	switch e.style {
	case common.OutputStyleEcho:
		b.WriteString(selectorText(rs.Selectors, "", false))
		b.WriteString(" {")
		for _, st := range rs.Statements {
			switch d := st.(type) {
			case *Declaration:
				b.WriteString(" " + d.Property + ": " + formatValue(d.Value, e.precision) + ";")
			case *Comment:
				b.WriteString(" " + d.Text)
			}
		}
		b.WriteString(" }")
	case common.OutputStyleExpanded:
		ind := indent(depth)
		b.WriteString(ind + selectorText(rs.Selectors, ind, true))
		b.WriteString(" {\n")
		for _, st := range rs.Statements {
			switch d := st.(type) {
			case *Declaration:
				b.WriteString(ind + "  " + d.Property + ": " + formatValue(d.Value, e.precision) + ";\n")
			case *Comment:
				b.WriteString(ind + "  " + d.Text + "\n")
			}
		}
		b.WriteString(ind + "}")
	default:
		ind := indent(depth + rs.Depth)
		var lines []string
		for _, st := range rs.Statements {
			switch d := st.(type) {
			case *Declaration:
				lines = append(lines, ind+"  "+d.Property+": "+formatValue(d.Value, e.precision)+";")
			case *Comment:
				lines = append(lines, ind+"  "+d.Text)
			}
		}
		b.WriteString(ind + selectorText(rs.Selectors, ind, true) + " {")
		if len(lines) == 0 {
			b.WriteString(" }")
		} else {
			b.WriteString("\n" + strings.Join(lines, "\n") + " }")
		}
	}
	return b.String()
}

func (e *emitter) media(m *Media, depth int) string {
	switch e.style {
	case common.OutputStyleEcho:
		parts := e.statements(m.Statements, 0)
		return "@media " + m.Query + " { " + strings.Join(parts, " ") + " }"
	case common.OutputStyleExpanded:
		parts := e.statements(m.Statements, depth+1)
		return indent(depth) + "@media " + m.Query + " {\n" + strings.Join(parts, "\n\n") + "\n" + indent(depth) + "}"
	default:
		parts := e.statements(m.Statements, depth+1)
		return indent(depth) + "@media " + m.Query + " {\n" + strings.Join(parts, "\n") + " }"
	}
}

// selectorText joins list members, honoring recorded line breaks when the
// style is multi-line.
func selectorText(l *selector.List, ind string, breaks bool) string {
	var b strings.Builder
	for i, m := range l.Members {
		if i > 0 {
			if breaks && m.LineBreak {
				b.WriteString(",\n" + ind)
			} else {
				b.WriteString(", ")
			}
		}
		b.WriteString(m.String())
	}
	return b.String()
}

func indent(depth int) string {
	return strings.Repeat("  ", depth)
}

// formatValue rounds bare numeric runs in a declaration value to the
// configured precision. Runs glued to identifiers or hex colors pass through
// untouched.
func formatValue(s string, precision int) string {
	var b strings.Builder
	for i := 0; i < len(s); {
		c := s[i]
		if !isDigit(c) && !(c == '.' && i+1 < len(s) && isDigit(s[i+1])) {
			b.WriteByte(c)
			i++
			continue
		}
		j := i
		dot := false
		for j < len(s) && (isDigit(s[j]) || (s[j] == '.' && !dot && j+1 < len(s) && isDigit(s[j+1]))) {
			if s[j] == '.' {
				dot = true
			}
			j++
		}
		run := s[i:j]
		if i > 0 && (isNameChar(s[i-1]) || s[i-1] == '#' || s[i-1] == '.') {
			b.WriteString(run)
		} else {
			b.WriteString(roundNumber(run, precision))
		}
		i = j
	}
	return b.String()
}

func roundNumber(n string, precision int) string {
	dot := strings.IndexByte(n, '.')
	if dot < 0 || len(n)-dot-1 <= precision {
		return n
	}
	f, err := strconv.ParseFloat(n, 64)
	if err != nil {
		return n
	}
	shift := math.Pow(10, float64(precision))
	f = math.Round(f*shift) / shift
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isNameChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || isDigit(c) || c == '-' || c == '_' || c >= 0x80
}
