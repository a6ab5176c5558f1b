package token

import (
	"io"
	"strings"

	"github.com/signadot/rson-format/go-rson/debug"
)

// Tokenizer produces RSON tokens from an io.Reader with one token of
// lookahead. The current token is always a semantic token: whitespace and
// comments are consumed between tokens and never returned.
type Tokenizer struct {
	src   *source
	opt   *tokenOpts
	tok   Token
	start Pos
	buf   strings.Builder
}

// NewTokenizer creates a Tokenizer positioned at the first token of r. An
// error lexing that first token is returned here.
func NewTokenizer(r io.Reader, opts ...TokenOpt) (*Tokenizer, error) {
	opt := &tokenOpts{}
	for _, o := range opts {
		o(opt)
	}
	t := &Tokenizer{
		src: newSource(r, opt),
		opt: opt,
	}
	if err := t.advance(); err != nil {
		return nil, err
	}
	return t, nil
}

// Token returns the current token.
func (t *Tokenizer) Token() Token {
	return t.tok
}

// EOF reports whether the current token is TEOF.
func (t *Tokenizer) EOF() bool {
	return t.tok.Type == TEOF
}

// Next advances past the current token and returns the new current token.
// At end of input Next keeps returning the TEOF token.
func (t *Tokenizer) Next() (Token, error) {
	if t.tok.Type == TEOF {
		return t.tok, nil
	}
	if err := t.advance(); err != nil {
		return t.tok, err
	}
	return t.tok, nil
}

func (t *Tokenizer) advance() error {
	for {
		tok, err := t.lex()
		if t.src.err != nil {
			return t.src.err
		}
		if err != nil {
			return err
		}
		if tok.Type.IsWhitespace() {
			continue
		}
		if debug.Tokens() {
			debug.Logf("token %s\n", tok.String())
		}
		t.tok = tok
		return nil
	}
}

func (t *Tokenizer) emit(tt TokenType, text string) (Token, error) {
	return Token{
		Type:  tt,
		Text:  text,
		Start: t.start,
		End:   t.src.pos,
	}, nil
}

// unexpected reports c, the rune at the current position, as an error.
func (t *Tokenizer) unexpected(c rune) error {
	if c == eof {
		return UnexpectedEOFErr(t.src.pos)
	}
	return UnexpectedCharErr(c, t.src.pos)
}

func (t *Tokenizer) lex() (Token, error) {
	t.start = t.src.pos
	c := t.src.peek()
	switch c {
	case eof:
		return t.emit(TEOF, "")
	case ' ', '\t', '\r', '\n':
		t.src.read()
		return t.emit(TWhitespace, string(c))
	case '/':
		return t.comment()
	case '{':
		return t.punct(c, TLCurl)
	case '}':
		return t.punct(c, TRCurl)
	case '[':
		return t.punct(c, TLSquare)
	case ']':
		return t.punct(c, TRSquare)
	case ',':
		return t.punct(c, TComma)
	case ':':
		return t.punct(c, TColon)
	case '"':
		return t.quoted()
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return t.number()
	case '(':
		return t.def()
	case '$':
		return t.ref()
	case 't':
		return t.keyword("true", TTrue)
	case 'f':
		return t.keyword("false", TFalse)
	case 'n':
		return t.keyword("null", TNull)
	default:
		return Token{}, t.unexpected(c)
	}
}

func (t *Tokenizer) punct(c rune, tt TokenType) (Token, error) {
	t.src.read()
	return t.emit(tt, string(c))
}

func (t *Tokenizer) comment() (Token, error) {
	t.buf.Reset()
	t.buf.WriteRune(t.src.read())
	switch t.src.peek() {
	case '/':
		for {
			c := t.src.peek()
			if c == '\n' || c == eof {
				break
			}
			t.buf.WriteRune(t.src.read())
		}
	case '*':
		t.buf.WriteRune(t.src.read())
		for {
			// an unterminated block comment extends to the end of input
			c := t.src.read()
			if c == eof {
				break
			}
			t.buf.WriteRune(c)
			if c == '*' && t.src.peek() == '/' {
				t.buf.WriteRune(t.src.read())
				break
			}
		}
	default:
		return Token{}, UnexpectedCharErr('/', t.start)
	}
	return t.emit(TComment, t.buf.String())
}

func (t *Tokenizer) keyword(word string, tt TokenType) (Token, error) {
	for _, w := range word {
		c := t.src.peek()
		if c != w {
			return Token{}, t.unexpected(c)
		}
		t.src.read()
	}
	return t.emit(tt, word)
}

func (t *Tokenizer) def() (Token, error) {
	t.src.read()
	name, err := t.ident()
	if err != nil {
		return Token{}, err
	}
	c := t.src.peek()
	if c != ')' {
		return Token{}, t.unexpected(c)
	}
	t.src.read()
	return t.emit(TDef, name)
}

func (t *Tokenizer) ref() (Token, error) {
	t.src.read()
	name, err := t.ident()
	if err != nil {
		return Token{}, err
	}
	return t.emit(TRef, name)
}

func (t *Tokenizer) ident() (string, error) {
	c := t.src.peek()
	if !identStart(c) {
		return "", t.unexpected(c)
	}
	t.buf.Reset()
	for identPart(t.src.peek()) {
		t.buf.WriteRune(t.src.read())
	}
	return t.buf.String(), nil
}

func identStart(c rune) bool {
	return c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func identPart(c rune) bool {
	return identStart(c) || asciiDigit(c)
}
