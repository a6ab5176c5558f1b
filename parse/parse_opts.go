package parse

import (
	"github.com/signadot/rson-format/go-rson/ir"
	"github.com/signadot/rson-format/go-rson/token"
)

type parseOpts struct {
	filename  string
	strict    bool
	positions map[*ir.Node]token.Pos
	defs      map[string]*ir.Node
}

func (o *parseOpts) TokenizeOpts() []token.TokenOpt {
	if o.filename == "" {
		return nil
	}
	return []token.TokenOpt{token.TokenFilename(o.filename)}
}

type ParseOption func(*parseOpts)

// ParseFilename names the input in error positions.
func ParseFilename(name string) ParseOption {
	return func(o *parseOpts) { o.filename = name }
}

// ParseStrict makes anything but the end of input after the top level value
// an error. By default trailing content is ignored.
func ParseStrict() ParseOption {
	return func(o *parseOpts) { o.strict = true }
}

// ParsePositions records in m the start position of each value built from
// the input. A value reached through references is recorded once, at its
// definition.
func ParsePositions(m map[*ir.Node]token.Pos) ParseOption {
	return func(o *parseOpts) {
		o.positions = m
	}
}

// ParseDefinitions stores in m every definition of the document, name to
// value, after a successful parse. The values are the nodes of the
// returned tree, so members may be selected by identity with them.
func ParseDefinitions(m map[string]*ir.Node) ParseOption {
	return func(o *parseOpts) {
		o.defs = m
	}
}
