// Package sass compiles a small SCSS dialect to CSS: nested rulesets,
// extend directives, media blocks and raw declarations.
package sass

import (
	"sassc/common"
	"sassc/selector"
)

// Statement is a node of the rule tree.
type Statement interface {
	stmtNode()
}

// Ruleset is a selector list with a block of statements. After nesting
// expansion the block holds no rulesets and Depth, used for nested-style
// output, counts the enclosing rulesets that kept statements of their own.
type Ruleset struct {
	Selectors  *selector.List
	Statements []Statement
	Depth      int
	Pos        common.Position
}

// Declaration is a property with its raw value text.
type Declaration struct {
	Property string
	Value    string
	Pos      common.Position
}

// Extend records an extend directive: the enclosing rule wants to match
// wherever any of the target compounds matches.
type Extend struct {
	Targets  []*selector.Compound
	Optional bool
	Pos      common.Position
}

// Media is a media block with its query kept verbatim.
type Media struct {
	Query      string
	Statements []Statement
	Pos        common.Position
}

// Comment is a loud comment, preserved in output.
type Comment struct {
	Text string
	Pos  common.Position
}

func (*Ruleset) stmtNode()     {}
func (*Declaration) stmtNode() {}
func (*Extend) stmtNode()      {}
func (*Media) stmtNode()       {}
func (*Comment) stmtNode()     {}

// Stylesheet is the root of the rule tree. Style and Precision control
// serialization and are set by the compiler before emission.
type Stylesheet struct {
	Statements []Statement
	Style      common.OutputStyle
	Precision  int
}
