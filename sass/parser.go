package sass

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"

	"sassc/common"
)

// token is a single lexed token with its source position.
type token struct {
	tt   css.TokenType
	data string
	pos  common.Position
}

// Parser builds the rule tree for one stylesheet at a time.
type Parser struct {
	log  *zap.Logger
	toks []token
	i    int
}

func NewParser(log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{log: log.Named("parse")}
}

// Parse reads source text into an unflattened rule tree. Line comments are
// consumed before lexing; block comments survive as statements.
func (p *Parser) Parse(src string) (*Stylesheet, error) {
	p.toks = tokenize(stripLineComments(src))
	p.i = 0
	stmts, err := p.parseStatements(true)
	if err != nil {
		return nil, err
	}
	p.log.Debug("parsed stylesheet", zap.Int("statements", len(stmts)))
	return &Stylesheet{Statements: stmts}, nil
}

// stripLineComments blanks // comments to end of line, leaving offsets and
// line breaks intact so token positions stay true to the source. Comment
// markers inside quoted strings are left alone.
func stripLineComments(src string) string {
	b := []byte(src)
	var quote byte
	for i := 0; i < len(b); i++ {
		c := b[i]
		switch {
		case quote != 0:
			if c == '\\' {
				i++
			} else if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case c == '/' && i+1 < len(b) && b[i+1] == '*':
			for i += 2; i+1 < len(b); i++ {
				if b[i] == '*' && b[i+1] == '/' {
					i++
					break
				}
			}
		case c == '/' && i+1 < len(b) && b[i+1] == '/':
			for ; i < len(b) && b[i] != '\n'; i++ {
				b[i] = ' '
			}
		}
	}
	return string(b)
}

func tokenize(src string) []token {
	lines := lineOffsets(src)
	l := css.NewLexer(parse.NewInputString(src))
	var toks []token
	off := 0
	for {
		tt, data := l.Next()
		if tt == css.ErrorToken {
			return toks
		}
		toks = append(toks, token{tt: tt, data: string(data), pos: offsetPosition(lines, off)})
		off += len(data)
	}
}

func lineOffsets(src string) []int {
	offs := []int{0}
	for i := 0; i < len(src); i++ {
		if src[i] == '\n' {
			offs = append(offs, i+1)
		}
	}
	return offs
}

func offsetPosition(lines []int, off int) common.Position {
	i := sort.Search(len(lines), func(i int) bool { return lines[i] > off }) - 1
	return common.Position{Line: i + 1, Col: off - lines[i] + 1}
}

func (p *Parser) peek() (token, bool) {
	if p.i >= len(p.toks) {
		return token{}, false
	}
	return p.toks[p.i], true
}

func (p *Parser) next() (token, bool) {
	t, ok := p.peek()
	if ok {
		p.i++
	}
	return t, ok
}

func (p *Parser) skipSpace() {
	for p.i < len(p.toks) && p.toks[p.i].tt == css.WhitespaceToken {
		p.i++
	}
}

// endPos is the position just past the last token, for end-of-input errors.
func (p *Parser) endPos() common.Position {
	if len(p.toks) == 0 {
		return common.Position{Line: 1, Col: 1}
	}
	last := p.toks[len(p.toks)-1]
	pos := last.pos
	for _, c := range last.data {
		if c == '\n' {
			pos.Line++
			pos.Col = 1
		} else {
			pos.Col++
		}
	}
	return pos
}

// parseStatements consumes statements until end of input (top level) or a
// closing brace (nested). The brace itself is left for the caller.
func (p *Parser) parseStatements(top bool) ([]Statement, error) {
	var stmts []Statement
	for {
		p.skipSpace()
		t, ok := p.peek()
		if !ok {
			if !top {
				return nil, fmt.Errorf("%s: unexpected end of input, expected \"}\"", p.endPos())
			}
			return stmts, nil
		}
		if t.tt == css.RightBraceToken {
			if top {
				return nil, fmt.Errorf("%s: unexpected \"}\"", t.pos)
			}
			return stmts, nil
		}
		st, err := p.parseStatement(top)
		if err != nil {
			return nil, err
		}
		if st != nil {
			stmts = append(stmts, st)
		}
	}
}

func (p *Parser) parseStatement(top bool) (Statement, error) {
	t, _ := p.peek()
	switch t.tt {
	case css.CommentToken:
		p.i++
		return &Comment{Text: t.data, Pos: t.pos}, nil
	case css.AtKeywordToken:
		switch strings.ToLower(t.data) {
		case "@media":
			if !top {
				return nil, fmt.Errorf("%s: @media may only be used at the root of the document.", t.pos)
			}
			return p.parseMedia()
		case "@extend":
			return p.parseExtend()
		default:
			return nil, fmt.Errorf("%s: unsupported at-rule %q", t.pos, t.data)
		}
	case css.SemicolonToken:
		p.i++
		return nil, nil
	}
	if p.rulesetAhead() {
		return p.parseRuleset()
	}
	return p.parseDeclaration()
}

// rulesetAhead reports whether the upcoming statement opens a block, by
// scanning for the first of "{", ";" or "}".
func (p *Parser) rulesetAhead() bool {
	for i := p.i; i < len(p.toks); i++ {
		switch p.toks[i].tt {
		case css.LeftBraceToken:
			return true
		case css.SemicolonToken, css.RightBraceToken:
			return false
		}
	}
	return false
}

func (p *Parser) parseRuleset() (Statement, error) {
	start := p.i
	for p.i < len(p.toks) && p.toks[p.i].tt != css.LeftBraceToken {
		p.i++
	}
	sels, err := parseSelectorList(p.toks[start:p.i])
	if err != nil {
		return nil, err
	}
	p.i++ // consume "{"
	stmts, err := p.parseStatements(false)
	if err != nil {
		return nil, err
	}
	p.i++ // consume "}"
	p.log.Debug("parsed ruleset", zap.String("selectors", sels.String()), zap.Int("statements", len(stmts)))
	return &Ruleset{Selectors: sels, Statements: stmts, Pos: p.toks[start].pos}, nil
}

func (p *Parser) parseMedia() (Statement, error) {
	at, _ := p.next()
	var query strings.Builder
	for {
		t, ok := p.peek()
		if !ok {
			return nil, fmt.Errorf("%s: unexpected end of input in @media query", p.endPos())
		}
		if t.tt == css.LeftBraceToken {
			break
		}
		if t.tt == css.WhitespaceToken {
			query.WriteByte(' ')
		} else {
			query.WriteString(t.data)
		}
		p.i++
	}
	p.i++ // consume "{"
	stmts, err := p.parseStatements(false)
	if err != nil {
		return nil, err
	}
	p.i++ // consume "}"
	q := strings.TrimSpace(query.String())
	if q == "" {
		return nil, fmt.Errorf("%s: @media requires a query", at.pos)
	}
	return &Media{Query: q, Statements: stmts, Pos: at.pos}, nil
}

func (p *Parser) parseExtend() (Statement, error) {
	at, _ := p.next()
	start := p.i
	for p.i < len(p.toks) {
		tt := p.toks[p.i].tt
		if tt == css.SemicolonToken || tt == css.RightBraceToken {
			break
		}
		p.i++
	}
	toks := p.toks[start:p.i]
	if p.i < len(p.toks) && p.toks[p.i].tt == css.SemicolonToken {
		p.i++
	}

	optional := false
	for len(toks) > 0 && toks[len(toks)-1].tt == css.WhitespaceToken {
		toks = toks[:len(toks)-1]
	}
	if n := len(toks); n >= 2 && toks[n-1].tt == css.IdentToken &&
		strings.EqualFold(toks[n-1].data, "optional") &&
		toks[n-2].tt == css.DelimToken && toks[n-2].data == "!" {
		optional = true
		toks = toks[:n-2]
	}

	targets, err := parseCompoundList(toks, at.pos)
	if err != nil {
		return nil, err
	}
	return &Extend{Targets: targets, Optional: optional, Pos: at.pos}, nil
}

func (p *Parser) parseDeclaration() (Statement, error) {
	t, ok := p.next()
	if !ok || t.tt != css.IdentToken {
		return nil, fmt.Errorf("%s: expected property name, got %q", t.pos, t.data)
	}
	p.skipSpace()
	c, ok := p.next()
	if !ok || c.tt != css.ColonToken {
		return nil, fmt.Errorf("%s: expected \":\" after %q", t.pos, t.data)
	}
	var val strings.Builder
	for {
		v, ok := p.peek()
		if !ok || v.tt == css.SemicolonToken || v.tt == css.RightBraceToken {
			break
		}
		if v.tt == css.WhitespaceToken {
			val.WriteByte(' ')
		} else {
			val.WriteString(v.data)
		}
		p.i++
	}
	if v, ok := p.peek(); ok && v.tt == css.SemicolonToken {
		p.i++
	}
	value := strings.TrimSpace(val.String())
	if value == "" {
		return nil, fmt.Errorf("%s: property %q has no value", t.pos, t.data)
	}
	return &Declaration{Property: t.data, Value: value, Pos: t.pos}, nil
}
