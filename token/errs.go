package token

import (
	"errors"
	"fmt"
)

var (
	ErrUnexpectedChar = errors.New("unexpected character")
	ErrUnexpectedEOF  = errors.New("unexpected end of input")
)

// TokenizeErr is a lexical error. Char is the offending character, or -1
// when the input ended early.
type TokenizeErr struct {
	Err  error
	Char rune
	Pos  Pos
}

func (e *TokenizeErr) Unwrap() error {
	return e.Err
}

func (e *TokenizeErr) Error() string {
	if e.Char < 0 {
		return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos)
	}
	return fmt.Sprintf("%s %q at %s", e.Err.Error(), e.Char, e.Pos)
}

func NewTokenizeErr(e error, c rune, p Pos) *TokenizeErr {
	return &TokenizeErr{Err: e, Char: c, Pos: p}
}

func UnexpectedCharErr(c rune, p Pos) error {
	return NewTokenizeErr(ErrUnexpectedChar, c, p)
}

func UnexpectedEOFErr(p Pos) error {
	return NewTokenizeErr(ErrUnexpectedEOF, -1, p)
}
