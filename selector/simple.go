package selector

import (
	"strings"

	"sassc/common"
)

// Simple is a single simple selector. The canonical text form returned by
// String is the identity used for keys, set membership and deduplication.
type Simple interface {
	String() string
	Specificity() int
	Position() common.Position
}

const (
	specType  = 1
	specClass = 100
	specID    = 10000
)

// Type matches elements by tag name. Name "*" is the universal selector.
type Type struct {
	Name string
	Pos  common.Position
}

func (s *Type) String() string            { return s.Name }
func (s *Type) Position() common.Position { return s.Pos }

func (s *Type) Specificity() int {
	if s.Name == "*" {
		return 0
	}
	return specType
}

// Class matches elements by class attribute.
type Class struct {
	Name string
	Pos  common.Position
}

func (s *Class) String() string            { return "." + s.Name }
func (s *Class) Specificity() int          { return specClass }
func (s *Class) Position() common.Position { return s.Pos }

// ID matches elements by id attribute.
type ID struct {
	Name string
	Pos  common.Position
}

func (s *ID) String() string            { return "#" + s.Name }
func (s *ID) Specificity() int          { return specID }
func (s *ID) Position() common.Position { return s.Pos }

// Attribute matches on an attribute. Value keeps the source form, quotes
// included; Matcher is empty for bare existence tests.
type Attribute struct {
	Name    string
	Matcher string
	Value   string
	Pos     common.Position
}

func (s *Attribute) String() string            { return "[" + s.Name + s.Matcher + s.Value + "]" }
func (s *Attribute) Specificity() int          { return specClass }
func (s *Attribute) Position() common.Position { return s.Pos }

// Pseudo is a pseudo-class or pseudo-element, optionally with a raw
// functional argument that is not itself a selector.
type Pseudo struct {
	Name    string
	Arg     string
	Element bool
	Pos     common.Position
}

func (s *Pseudo) String() string {
	var b strings.Builder
	b.WriteString(":")
	if s.Element {
		b.WriteString(":")
	}
	b.WriteString(s.Name)
	if len(s.Arg) != 0 {
		b.WriteString("(")
		b.WriteString(s.Arg)
		b.WriteString(")")
	}
	return b.String()
}

func (s *Pseudo) Specificity() int {
	if s.Element {
		return specType
	}
	return specClass
}

func (s *Pseudo) Position() common.Position { return s.Pos }

// Placeholder is usable only as an extendee and never reaches the output.
type Placeholder struct {
	Name string
	Pos  common.Position
}

func (s *Placeholder) String() string            { return "%" + s.Name }
func (s *Placeholder) Specificity() int          { return specClass }
func (s *Placeholder) Position() common.Position { return s.Pos }

// Wrapped is a functional pseudo-class whose argument is a selector list,
// such as :not(...) or :matches(...).
type Wrapped struct {
	Name string
	List *List
	Pos  common.Position
}

func (s *Wrapped) String() string            { return ":" + s.Name + "(" + s.List.String() + ")" }
func (s *Wrapped) Specificity() int          { return specClass }
func (s *Wrapped) Position() common.Position { return s.Pos }

// Parent is the nesting reference "&". It never survives nesting expansion.
type Parent struct {
	Pos common.Position
}

func (s *Parent) String() string            { return "&" }
func (s *Parent) Specificity() int          { return 0 }
func (s *Parent) Position() common.Position { return s.Pos }

func isPseudoElement(s Simple) bool {
	p, ok := s.(*Pseudo)
	return ok && p.Element
}
