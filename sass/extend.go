package sass

import (
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"sassc/selector"
)

// BuildSubsetMap collects every extend directive of a flattened tree into a
// subset map keyed by extendee. Each selector list member becomes its own
// extender.
func BuildSubsetMap(ss *Stylesheet) *selector.SubsetMap {
	m := selector.NewSubsetMap()
	collectExtends(ss.Statements, "", m)
	return m
}

func collectExtends(stmts []Statement, media string, m *selector.SubsetMap) {
	for _, st := range stmts {
		switch s := st.(type) {
		case *Media:
			collectExtends(s.Statements, s.Query, m)
		case *Ruleset:
			for _, inner := range s.Statements {
				ext, ok := inner.(*Extend)
				if !ok {
					continue
				}
				for _, target := range ext.Targets {
					for _, member := range s.Selectors.Members {
						m.Put(selector.Extension{
							Extender: member,
							Extendee: target,
							Media:    media,
							Optional: ext.Optional,
						})
					}
				}
			}
		}
	}
}

// ApplyExtensions rewrites every ruleset's selector list through the subset
// map. Failures are collected per ruleset so one bad extend does not hide
// another.
func ApplyExtensions(ss *Stylesheet, m *selector.SubsetMap, log *zap.Logger) error {
	if m.Empty() {
		return nil
	}
	x := selector.NewExtender(m, log)
	var errs error
	var walk func(stmts []Statement, media string)
	walk = func(stmts []Statement, media string) {
		for _, st := range stmts {
			switch s := st.(type) {
			case *Media:
				walk(s.Statements, s.Query)
			case *Ruleset:
				ext, err := x.ExtendSelectorList(s.Selectors, media, false, make(map[string]struct{}))
				if err != nil {
					errs = multierr.Append(errs, err)
					continue
				}
				s.Selectors = ext
			}
		}
	}
	walk(ss.Statements, "")
	return errs
}

// VerifyExtends reports every non-optional extend whose target matched
// nothing. Duplicate extender and extendee pairs produce one error.
func VerifyExtends(m *selector.SubsetMap) error {
	var errs error
	seen := make(map[string]struct{})
	for _, e := range m.Entries() {
		if e.Optional || e.Extendee.Extended {
			continue
		}
		key := e.Extender.String() + "\x00" + e.Extendee.String()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		errs = multierr.Append(errs, fmt.Errorf("%q failed to @extend %q. The selector %q was not found.",
			e.Extender.String(), e.Extendee.String(), e.Extendee.String()))
	}
	return errs
}

// StripPlaceholders removes placeholder selectors and every extend
// directive. Rulesets left with no selectors or no printable
// statements drop out, as do media blocks emptied by the removal.
func StripPlaceholders(ss *Stylesheet) {
	ss.Statements = stripStatements(ss.Statements)
}

func stripStatements(stmts []Statement) []Statement {
	var out []Statement
	for _, st := range stmts {
		switch s := st.(type) {
		case *Media:
			inner := stripStatements(s.Statements)
			if len(inner) == 0 {
				continue
			}
			s.Statements = inner
			out = append(out, s)
		case *Ruleset:
			sels := selector.RemovePlaceholders(s.Selectors)
			if len(sels.Members) == 0 {
				continue
			}
			var kept []Statement
			for _, inner := range s.Statements {
				if _, ok := inner.(*Extend); ok {
					continue
				}
				kept = append(kept, inner)
			}
			if len(kept) == 0 {
				continue
			}
			s.Selectors = sels
			s.Statements = kept
			out = append(out, s)
		default:
			out = append(out, st)
		}
	}
	return out
}
