package token

import (
	"fmt"
	"strconv"
)

type TokenType int

const (
	TEOF TokenType = iota
	TLCurl
	TRCurl
	TLSquare
	TRSquare
	TComma
	TColon
	TString
	TNumber
	TRef
	TDef
	TTrue
	TFalse
	TNull
	TWhitespace
	TComment
)

var typeNames = map[TokenType]string{
	TEOF:        "TEOF",
	TLCurl:      "TLCurl",
	TRCurl:      "TRCurl",
	TLSquare:    "TLSquare",
	TRSquare:    "TRSquare",
	TComma:      "TComma",
	TColon:      "TColon",
	TString:     "TString",
	TNumber:     "TNumber",
	TRef:        "TRef",
	TDef:        "TDef",
	TTrue:       "TTrue",
	TFalse:      "TFalse",
	TNull:       "TNull",
	TWhitespace: "TWhitespace",
	TComment:    "TComment",
}

func (t TokenType) String() string {
	s, ok := typeNames[t]
	if ok {
		return s
	}
	return "TokenType(" + strconv.Itoa(int(t)) + ")"
}

// IsWhitespace reports whether tokens of type t carry no meaning for the
// parser.
func (t TokenType) IsWhitespace() bool {
	switch t {
	case TWhitespace, TComment:
		return true
	default:
		return false
	}
}

// Describe gives a human readable name of t for error messages.
func (t TokenType) Describe() string {
	switch t {
	case TEOF:
		return "end of input"
	case TLCurl:
		return "'{'"
	case TRCurl:
		return "'}'"
	case TLSquare:
		return "'['"
	case TRSquare:
		return "']'"
	case TComma:
		return "','"
	case TColon:
		return "':'"
	case TString:
		return "string"
	case TNumber:
		return "number"
	case TRef:
		return "reference"
	case TDef:
		return "definition"
	case TTrue:
		return "true"
	case TFalse:
		return "false"
	case TNull:
		return "null"
	case TWhitespace:
		return "whitespace"
	case TComment:
		return "comment"
	}
	return t.String()
}

// Token is a lexical token together with its source span.
//
// Text is the decoded value of a TString, the literal text of a TNumber and
// the identifier of a TRef or TDef. For punctuation and keywords it is the
// source text.
type Token struct {
	Type  TokenType
	Text  string
	Start Pos
	End   Pos
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %s", t.Type, t.Start)
}

// Describe renders t for error messages.
func (t *Token) Describe() string {
	switch t.Type {
	case TString:
		return "string " + strconv.Quote(t.Text)
	case TNumber:
		return "number " + t.Text
	case TRef:
		return "reference $" + t.Text
	case TDef:
		return "definition (" + t.Text + ")"
	default:
		return t.Type.Describe()
	}
}

func (t *Token) String() string {
	return fmt.Sprintf("%s (%d:%d-%d:%d): %s", t.Type,
		t.Start.Line, t.Start.Col, t.End.Line, t.End.Col, t.Text)
}
