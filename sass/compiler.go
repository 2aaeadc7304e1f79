package sass

import (
	"go.uber.org/zap"

	"sassc/common"
)

// Compiler runs the full pipeline: parse, flatten nesting, resolve extends,
// strip placeholders. One Compiler may compile any number of stylesheets.
type Compiler struct {
	log       *zap.Logger
	style     common.OutputStyle
	precision int
}

func NewCompiler(style common.OutputStyle, precision int, log *zap.Logger) *Compiler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Compiler{log: log.Named("compile"), style: style, precision: precision}
}

// Compile turns source text into a finished stylesheet ready for emission.
func (c *Compiler) Compile(src string) (*Stylesheet, error) {
	ss, err := NewParser(c.log).Parse(src)
	if err != nil {
		return nil, err
	}
	if err := Flatten(ss); err != nil {
		return nil, err
	}
	m := BuildSubsetMap(ss)
	if !m.Empty() {
		if err := ApplyExtensions(ss, m, c.log); err != nil {
			return nil, err
		}
		if err := VerifyExtends(m); err != nil {
			return nil, err
		}
	}
	StripPlaceholders(ss)
	ss.Style = c.style
	ss.Precision = c.precision
	c.log.Debug("compiled stylesheet",
		zap.Stringer("style", c.style),
		zap.Int("precision", c.precision),
		zap.Int("statements", len(ss.Statements)))
	return ss, nil
}

// CompileString is Compile plus emission.
func (c *Compiler) CompileString(src string) (string, error) {
	ss, err := c.Compile(src)
	if err != nil {
		return "", err
	}
	return ss.String(), nil
}
