package parse

import (
	"errors"
	"fmt"

	"github.com/signadot/rson-format/go-rson/token"
)

var (
	ErrUnexpectedToken = errors.New("unexpected token")
	ErrUndefinedRef    = errors.New("undefined reference")
	ErrNumber          = errors.New("invalid number")

	// lexical errors, re-exported so callers can classify any parse error
	// with this package alone.
	ErrUnexpectedChar = token.ErrUnexpectedChar
	ErrUnexpectedEOF  = token.ErrUnexpectedEOF
)

// SyntaxErr reports a token the grammar does not allow where it was found.
// Err is ErrUnexpectedToken, or ErrUnexpectedEOF if Found is the end of
// input.
type SyntaxErr struct {
	Err      error
	Expected string
	Found    token.Token
}

func (e *SyntaxErr) Unwrap() error {
	return e.Err
}

func (e *SyntaxErr) Error() string {
	if e.Found.Type == token.TEOF {
		return fmt.Sprintf("%s: expected %s at %s", e.Err, e.Expected, e.Found.Start)
	}
	return fmt.Sprintf("%s: expected %s, found %s at %s",
		e.Err, e.Expected, e.Found.Describe(), e.Found.Start)
}

func syntaxErr(expected string, found token.Token) error {
	err := ErrUnexpectedToken
	if found.Type == token.TEOF {
		err = ErrUnexpectedEOF
	}
	return &SyntaxErr{Err: err, Expected: expected, Found: found}
}

// RefErr reports a reference to a name which is never defined. Pos is the
// position of the first such reference.
type RefErr struct {
	Name string
	Pos  token.Pos
}

func (e *RefErr) Unwrap() error {
	return ErrUndefinedRef
}

func (e *RefErr) Error() string {
	return fmt.Sprintf("%s $%s at %s", ErrUndefinedRef, e.Name, e.Pos)
}

func numberErr(tok token.Token, err error) error {
	return fmt.Errorf("%w %s at %s: %w", ErrNumber, tok.Text, tok.Start, err)
}
