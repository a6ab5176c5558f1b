package main

import (
	"strings"

	"github.com/signadot/rson-format/go-rson/libdiff"
	"github.com/signadot/rson-format/go-rson/token"

	"github.com/fatih/color"
)

type ColorAttr int

const (
	PosColor ColorAttr = iota
	OKColor
	ErrColor
	PathColor
)

type Colors struct {
	Default func(string, ...any) string
	Tokens  map[token.TokenType]func(string, ...any) string
	Attrs   map[ColorAttr]func(string, ...any) string
	Ops     map[libdiff.Op]func(string, ...any) string
}

// NewColors returns the terminal palette. It enables color output even if
// stdout is not a terminal.
func NewColors() *Colors {
	color.NoColor = false
	colors := &Colors{
		Default: colorDefault,
		Tokens:  map[token.TokenType]func(string, ...any) string{},
		Attrs:   map[ColorAttr]func(string, ...any) string{},
		Ops:     map[libdiff.Op]func(string, ...any) string{},
	}
	sep := color.RGB(255, 0, 196).SprintfFunc()
	for _, tt := range []token.TokenType{
		token.TLCurl, token.TRCurl, token.TLSquare, token.TRSquare, token.TComma, token.TColon,
	} {
		colors.Tokens[tt] = sep
	}
	colors.Tokens[token.TString] = color.RGB(8, 196, 16).SprintfFunc()
	colors.Tokens[token.TNumber] = color.RGB(128, 216, 236).SprintfFunc()
	colors.Tokens[token.TTrue] = color.CyanString
	colors.Tokens[token.TFalse] = color.CyanString
	colors.Tokens[token.TNull] = color.RGB(168, 0, 196).SprintfFunc()
	colors.Tokens[token.TRef] = color.RGB(196, 96, 16).SprintfFunc()
	colors.Tokens[token.TDef] = color.RGB(196, 168, 128).SprintfFunc()
	colors.Tokens[token.TEOF] = color.RGB(96, 96, 96).SprintfFunc()

	colors.Attrs[PosColor] = color.RGB(74, 92, 138).SprintfFunc()
	colors.Attrs[OKColor] = color.GreenString
	colors.Attrs[ErrColor] = color.RedString
	colors.Attrs[PathColor] = color.RGB(128, 168, 196).SprintfFunc()

	colors.Ops[libdiff.Insert] = color.GreenString
	colors.Ops[libdiff.Delete] = color.RedString
	colors.Ops[libdiff.Replace] = color.YellowString

	for k, f := range colors.Tokens {
		colors.Tokens[k] = escaped(f)
	}
	for k, f := range colors.Attrs {
		colors.Attrs[k] = escaped(f)
	}
	for k, f := range colors.Ops {
		colors.Ops[k] = escaped(f)
	}
	return colors
}

// NoColors returns a palette which leaves text unchanged.
func NoColors() *Colors {
	return &Colors{Default: colorDefault}
}

func escaped(f func(string, ...any) string) func(string, ...any) string {
	return func(v string, _ ...any) string {
		return f(strings.ReplaceAll(v, "%", "%%"))
	}
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Token(tt token.TokenType, s string) string {
	return c.get(c.Tokens[tt])(s)
}

func (c *Colors) Attr(a ColorAttr, s string) string {
	return c.get(c.Attrs[a])(s)
}

func (c *Colors) Op(o libdiff.Op, s string) string {
	return c.get(c.Ops[o])(s)
}

func (c *Colors) get(f func(string, ...any) string) func(string, ...any) string {
	if f == nil {
		return c.Default
	}
	return f
}
