package sass

import (
	"strings"
	"testing"
)

func parseSheet(t *testing.T, src string) *Stylesheet {
	t.Helper()
	ss, err := NewParser(nil).Parse(src)
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", src, err)
	}
	return ss
}

func parseErr(t *testing.T, src, want string) {
	t.Helper()
	_, err := NewParser(nil).Parse(src)
	if err == nil {
		t.Fatalf("Parse(%q) succeeded, want error containing %q", src, want)
	}
	if !strings.Contains(err.Error(), want) {
		t.Errorf("Parse(%q) error = %q, want it to contain %q", src, err, want)
	}
}

func TestParseRuleset(t *testing.T) {
	ss := parseSheet(t, ".a { color: red; }")
	if len(ss.Statements) != 1 {
		t.Fatalf("parsed %d statements, want 1", len(ss.Statements))
	}
	rs, ok := ss.Statements[0].(*Ruleset)
	if !ok {
		t.Fatalf("statement is %T, want *Ruleset", ss.Statements[0])
	}
	if got := rs.Selectors.String(); got != ".a" {
		t.Errorf("selectors = %q, want %q", got, ".a")
	}
	if len(rs.Statements) != 1 {
		t.Fatalf("ruleset holds %d statements, want 1", len(rs.Statements))
	}
	d, ok := rs.Statements[0].(*Declaration)
	if !ok {
		t.Fatalf("inner statement is %T, want *Declaration", rs.Statements[0])
	}
	if d.Property != "color" || d.Value != "red" {
		t.Errorf("declaration = %q: %q, want color: red", d.Property, d.Value)
	}
}

func TestParseSelectorForms(t *testing.T) {
	tests := []string{
		"div.a",
		"#id",
		"*",
		".a .b",
		".a > .b",
		".a + .b",
		".a ~ .b",
		":hover",
		"::before",
		":nth-child(2n+1)",
		":not(.a, .b)",
		"[disabled]",
		`[href^="http"]`,
		"%base",
		".a, .b",
	}
	for _, sel := range tests {
		t.Run(sel, func(t *testing.T) {
			ss := parseSheet(t, sel+" { color: red; }")
			rs := ss.Statements[0].(*Ruleset)
			if got := rs.Selectors.String(); got != sel {
				t.Errorf("selectors = %q, want %q", got, sel)
			}
		})
	}
}

func TestParseMedia(t *testing.T) {
	ss := parseSheet(t, "@media screen and (min-width: 100px) { .a { color: red; } }")
	m, ok := ss.Statements[0].(*Media)
	if !ok {
		t.Fatalf("statement is %T, want *Media", ss.Statements[0])
	}
	if m.Query != "screen and (min-width: 100px)" {
		t.Errorf("query = %q", m.Query)
	}
	if len(m.Statements) != 1 {
		t.Fatalf("media holds %d statements, want 1", len(m.Statements))
	}
	if _, ok := m.Statements[0].(*Ruleset); !ok {
		t.Errorf("inner statement is %T, want *Ruleset", m.Statements[0])
	}
}

func TestParseMediaNested(t *testing.T) {
	parseErr(t, ".a { @media screen { .b { color: red; } } }",
		"@media may only be used at the root of the document.")
}

func TestParseExtend(t *testing.T) {
	ss := parseSheet(t, ".a { @extend .b; }")
	rs := ss.Statements[0].(*Ruleset)
	ext, ok := rs.Statements[0].(*Extend)
	if !ok {
		t.Fatalf("inner statement is %T, want *Extend", rs.Statements[0])
	}
	if len(ext.Targets) != 1 || ext.Targets[0].String() != ".b" {
		t.Errorf("targets = %v, want [.b]", ext.Targets)
	}
	if ext.Optional {
		t.Error("extend without !optional marked optional")
	}
}

func TestParseExtendOptional(t *testing.T) {
	ss := parseSheet(t, ".a { @extend .b !optional; }")
	ext := ss.Statements[0].(*Ruleset).Statements[0].(*Extend)
	if !ext.Optional {
		t.Error("!optional not recognized")
	}
	if len(ext.Targets) != 1 || ext.Targets[0].String() != ".b" {
		t.Errorf("targets = %v, want [.b]", ext.Targets)
	}
}

func TestParseExtendMultipleTargets(t *testing.T) {
	ss := parseSheet(t, ".a { @extend .b, .c; }")
	ext := ss.Statements[0].(*Ruleset).Statements[0].(*Extend)
	if len(ext.Targets) != 2 {
		t.Fatalf("parsed %d targets, want 2", len(ext.Targets))
	}
	if ext.Targets[0].String() != ".b" || ext.Targets[1].String() != ".c" {
		t.Errorf("targets = [%s, %s], want [.b, .c]", ext.Targets[0], ext.Targets[1])
	}
}

func TestParseExtendRejectsComplex(t *testing.T) {
	parseErr(t, ".a { @extend .b .c; }", "isn't a simple or compound selector")
}

func TestParseComments(t *testing.T) {
	ss := parseSheet(t, "/* keep */\n.a { color: red; // drop\n}")
	if len(ss.Statements) != 2 {
		t.Fatalf("parsed %d statements, want 2", len(ss.Statements))
	}
	c, ok := ss.Statements[0].(*Comment)
	if !ok {
		t.Fatalf("first statement is %T, want *Comment", ss.Statements[0])
	}
	if c.Text != "/* keep */" {
		t.Errorf("comment = %q", c.Text)
	}
	rs := ss.Statements[1].(*Ruleset)
	d := rs.Statements[0].(*Declaration)
	if d.Value != "red" {
		t.Errorf("value = %q, line comment leaked into it", d.Value)
	}
}

func TestParseLineCommentKeepsPositions(t *testing.T) {
	ss := parseSheet(t, "// heading\n.a { color: red; }")
	rs := ss.Statements[0].(*Ruleset)
	if rs.Pos.Line != 2 {
		t.Errorf("ruleset line = %d, want 2", rs.Pos.Line)
	}
}

func TestParseDeclarationValueSpacing(t *testing.T) {
	ss := parseSheet(t, `.a { font: 12px   "My  Font"; }`)
	d := ss.Statements[0].(*Ruleset).Statements[0].(*Declaration)
	if d.Value != `12px "My  Font"` {
		t.Errorf("value = %q, want runs collapsed outside strings only", d.Value)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name, src, want string
	}{
		{"stray brace", "}", `unexpected "}"`},
		{"unclosed block", ".a { color: red;", "unexpected end of input"},
		{"missing colon", ".a { color red; }", `expected ":"`},
		{"empty value", ".a { color: ; }", "has no value"},
		{"unknown at-rule", "@import \"x\";", "unsupported at-rule"},
		{"trailing combinator", ".a > { color: red; }", "ends with a combinator"},
		{"empty media query", "@media { .a { color: red; } }", "@media requires a query"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			parseErr(t, tc.src, tc.want)
		})
	}
}

func TestParseErrorPosition(t *testing.T) {
	_, err := NewParser(nil).Parse(".a {\n  color: red;\n  @import \"x\";\n}")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.HasPrefix(err.Error(), "3:3:") {
		t.Errorf("error = %q, want position prefix 3:3:", err)
	}
}
