package sass

import (
	"fmt"
	"strings"

	"github.com/tdewolff/parse/v2/css"

	"sassc/common"
	"sassc/selector"
)

// parseSelectorList parses a comma separated selector list from a token run.
// A member preceded by a line break keeps that break for nested-style output.
func parseSelectorList(toks []token) (*selector.List, error) {
	segs := splitTopCommas(toks)
	list := &selector.List{Pos: runPos(toks)}
	for _, seg := range segs {
		lineBreak := false
		for len(seg) > 0 && seg[0].tt == css.WhitespaceToken {
			if strings.Contains(seg[0].data, "\n") {
				lineBreak = true
			}
			seg = seg[1:]
		}
		c, err := parseComplex(seg, runPos(toks))
		if err != nil {
			return nil, err
		}
		c.LineBreak = lineBreak
		list.Append(c)
	}
	if len(list.Members) == 0 {
		return nil, fmt.Errorf("%s: empty selector", runPos(toks))
	}
	return list, nil
}

// parseCompoundList parses the target list of an extend directive. Every
// member must be a single compound selector.
func parseCompoundList(toks []token, pos common.Position) ([]*selector.Compound, error) {
	segs := splitTopCommas(toks)
	var out []*selector.Compound
	for _, seg := range segs {
		c, err := parseComplex(seg, pos)
		if err != nil {
			return nil, err
		}
		if c.Tail != nil || c.Combinator != selector.CombinatorDescendant {
			return nil, fmt.Errorf("%s: can't extend %s: selector isn't a simple or compound selector", pos, c.String())
		}
		out = append(out, c.Head)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%s: @extend requires a selector", pos)
	}
	return out, nil
}

// splitTopCommas splits a token run on commas outside brackets and function
// arguments.
func splitTopCommas(toks []token) [][]token {
	var segs [][]token
	depth := 0
	start := 0
	for i, t := range toks {
		switch t.tt {
		case css.FunctionToken, css.LeftParenthesisToken, css.LeftBracketToken:
			depth++
		case css.RightParenthesisToken, css.RightBracketToken:
			depth--
		case css.CommaToken:
			if depth == 0 {
				segs = append(segs, toks[start:i])
				start = i + 1
			}
		}
	}
	if seg := toks[start:]; !blankRun(seg) || len(segs) > 0 {
		segs = append(segs, seg)
	}
	return segs
}

func blankRun(toks []token) bool {
	for _, t := range toks {
		if t.tt != css.WhitespaceToken {
			return false
		}
	}
	return true
}

func runPos(toks []token) common.Position {
	for _, t := range toks {
		if t.tt != css.WhitespaceToken {
			return t.pos
		}
	}
	if len(toks) > 0 {
		return toks[0].pos
	}
	return common.Position{Line: 1, Col: 1}
}

// parseComplex parses one complex selector. A leading combinator is legal
// only inside a nested ruleset; nesting expansion rejects it at the top
// level where there is no parent to attach to.
func parseComplex(toks []token, pos common.Position) (*selector.Complex, error) {
	var head, last *selector.Complex
	comb := selector.CombinatorDescendant
	pending := false
	i := 0
	for i < len(toks) {
		t := toks[i]
		switch {
		case t.tt == css.WhitespaceToken:
			i++
		case isCombinatorDelim(t):
			if pending {
				return nil, fmt.Errorf("%s: unexpected combinator %q", t.pos, t.data)
			}
			comb = delimCombinator(t.data)
			pending = true
			i++
		default:
			cmp, n, err := parseCompound(toks, i)
			if err != nil {
				return nil, err
			}
			i = n
			link := &selector.Complex{Combinator: comb, Head: cmp, Pos: cmp.Pos}
			if head == nil {
				head = link
			} else {
				last.Tail = link
			}
			last = link
			comb = selector.CombinatorDescendant
			pending = false
		}
	}
	if head == nil {
		return nil, fmt.Errorf("%s: empty selector", pos)
	}
	if pending {
		return nil, fmt.Errorf("%s: selector ends with a combinator", pos)
	}
	return head, nil
}

func isCombinatorDelim(t token) bool {
	return t.tt == css.DelimToken && (t.data == ">" || t.data == "+" || t.data == "~")
}

func delimCombinator(d string) selector.Combinator {
	switch d {
	case ">":
		return selector.CombinatorChild
	case "+":
		return selector.CombinatorAdjacent
	default:
		return selector.CombinatorFollowing
	}
}

// parseCompound parses one compound selector starting at toks[i] and returns
// the index just past it.
func parseCompound(toks []token, i int) (*selector.Compound, int, error) {
	cmp := &selector.Compound{Pos: toks[i].pos}
	for i < len(toks) {
		t := toks[i]
		switch {
		case t.tt == css.WhitespaceToken || isCombinatorDelim(t):
			return cmp, i, nil
		case t.tt == css.IdentToken:
			cmp.Simples = append(cmp.Simples, &selector.Type{Name: t.data, Pos: t.pos})
			i++
		case t.tt == css.DelimToken && t.data == "*":
			cmp.Simples = append(cmp.Simples, &selector.Type{Name: "*", Pos: t.pos})
			i++
		case t.tt == css.HashToken:
			cmp.Simples = append(cmp.Simples, &selector.ID{Name: strings.TrimPrefix(t.data, "#"), Pos: t.pos})
			i++
		case t.tt == css.DelimToken && t.data == ".":
			name, n, err := identAfter(toks, i+1, t)
			if err != nil {
				return nil, 0, err
			}
			cmp.Simples = append(cmp.Simples, &selector.Class{Name: name, Pos: t.pos})
			i = n
		case t.tt == css.DelimToken && t.data == "%":
			name, n, err := identAfter(toks, i+1, t)
			if err != nil {
				return nil, 0, err
			}
			cmp.Simples = append(cmp.Simples, &selector.Placeholder{Name: name, Pos: t.pos})
			i = n
		case t.tt == css.DelimToken && t.data == "&":
			cmp.Simples = append(cmp.Simples, &selector.Parent{Pos: t.pos})
			i++
		case t.tt == css.ColonToken:
			s, n, err := parsePseudo(toks, i)
			if err != nil {
				return nil, 0, err
			}
			cmp.Simples = append(cmp.Simples, s)
			i = n
		case t.tt == css.LeftBracketToken:
			s, n, err := parseAttribute(toks, i)
			if err != nil {
				return nil, 0, err
			}
			cmp.Simples = append(cmp.Simples, s)
			i = n
		default:
			return nil, 0, fmt.Errorf("%s: unexpected %q in selector", t.pos, t.data)
		}
	}
	return cmp, i, nil
}

func identAfter(toks []token, i int, lead token) (string, int, error) {
	if i >= len(toks) || toks[i].tt != css.IdentToken {
		return "", 0, fmt.Errorf("%s: expected identifier after %q", lead.pos, lead.data)
	}
	return toks[i].data, i + 1, nil
}

func parsePseudo(toks []token, i int) (selector.Simple, int, error) {
	pos := toks[i].pos
	i++
	element := false
	if i < len(toks) && toks[i].tt == css.ColonToken {
		element = true
		i++
	}
	if i >= len(toks) {
		return nil, 0, fmt.Errorf("%s: expected pseudo-class name", pos)
	}
	t := toks[i]
	switch t.tt {
	case css.IdentToken:
		return &selector.Pseudo{Name: t.data, Element: element, Pos: pos}, i + 1, nil
	case css.FunctionToken:
		name := strings.TrimSuffix(t.data, "(")
		inner, n, err := functionArg(toks, i)
		if err != nil {
			return nil, 0, err
		}
		lower := strings.ToLower(name)
		if !element && (lower == "not" || lower == "matches") {
			list, err := parseSelectorList(inner)
			if err != nil {
				return nil, 0, err
			}
			return &selector.Wrapped{Name: name, List: list, Pos: pos}, n, nil
		}
		return &selector.Pseudo{Name: name, Arg: runText(inner), Element: element, Pos: pos}, n, nil
	}
	return nil, 0, fmt.Errorf("%s: expected pseudo-class name, got %q", t.pos, t.data)
}

// functionArg returns the tokens between a function opener at toks[i] and its
// matching close paren, plus the index past the close.
func functionArg(toks []token, i int) ([]token, int, error) {
	depth := 1
	for j := i + 1; j < len(toks); j++ {
		switch toks[j].tt {
		case css.FunctionToken, css.LeftParenthesisToken:
			depth++
		case css.RightParenthesisToken:
			depth--
			if depth == 0 {
				return toks[i+1 : j], j + 1, nil
			}
		}
	}
	return nil, 0, fmt.Errorf("%s: unbalanced parentheses in %q", toks[i].pos, toks[i].data)
}

func parseAttribute(toks []token, i int) (selector.Simple, int, error) {
	pos := toks[i].pos
	j := skipWS(toks, i+1)
	if j >= len(toks) || toks[j].tt != css.IdentToken {
		return nil, 0, fmt.Errorf("%s: expected attribute name", pos)
	}
	attr := &selector.Attribute{Name: toks[j].data, Pos: pos}
	j = skipWS(toks, j+1)
	if j < len(toks) && toks[j].tt != css.RightBracketToken {
		switch toks[j].tt {
		case css.IncludeMatchToken, css.DashMatchToken, css.PrefixMatchToken, css.SuffixMatchToken, css.SubstringMatchToken:
			attr.Matcher = toks[j].data
		case css.DelimToken:
			if toks[j].data != "=" {
				return nil, 0, fmt.Errorf("%s: unexpected %q in attribute selector", toks[j].pos, toks[j].data)
			}
			attr.Matcher = "="
		default:
			return nil, 0, fmt.Errorf("%s: unexpected %q in attribute selector", toks[j].pos, toks[j].data)
		}
		j = skipWS(toks, j+1)
		if j >= len(toks) || (toks[j].tt != css.IdentToken && toks[j].tt != css.StringToken) {
			return nil, 0, fmt.Errorf("%s: expected attribute value", pos)
		}
		attr.Value = toks[j].data
		j = skipWS(toks, j+1)
	}
	if j >= len(toks) || toks[j].tt != css.RightBracketToken {
		return nil, 0, fmt.Errorf("%s: expected \"]\"", pos)
	}
	return attr, j + 1, nil
}

func skipWS(toks []token, i int) int {
	for i < len(toks) && toks[i].tt == css.WhitespaceToken {
		i++
	}
	return i
}

func runText(toks []token) string {
	var b strings.Builder
	for _, t := range toks {
		if t.tt == css.WhitespaceToken {
			b.WriteByte(' ')
		} else {
			b.WriteString(t.data)
		}
	}
	return strings.TrimSpace(b.String())
}
