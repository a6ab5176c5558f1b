package token

import (
	"unicode/utf16"
	"unicode/utf8"
)

// quoted lexes a double quoted string, decoding escapes. Control characters
// are passed through as is.
func (t *Tokenizer) quoted() (Token, error) {
	t.src.read()
	t.buf.Reset()
	for {
		c := t.src.peek()
		switch c {
		case eof:
			return Token{}, t.unexpected(c)
		case '"':
			t.src.read()
			return t.emit(TString, t.buf.String())
		case '\\':
			t.src.read()
			if err := t.escape(); err != nil {
				return Token{}, err
			}
		default:
			t.buf.WriteRune(t.src.read())
		}
	}
}

func (t *Tokenizer) escape() error {
	c := t.src.peek()
	switch c {
	case '"', '\\', '/':
		t.buf.WriteRune(c)
	case 'b':
		t.buf.WriteByte('\b')
	case 'f':
		t.buf.WriteByte('\f')
	case 'n':
		t.buf.WriteByte('\n')
	case 'r':
		t.buf.WriteByte('\r')
	case 't':
		t.buf.WriteByte('\t')
	case 'u':
		t.src.read()
		return t.unicodeEscape()
	default:
		return t.unexpected(c)
	}
	t.src.read()
	return nil
}

// unicodeEscape decodes the XXXX of \uXXXX. A high surrogate directly
// followed by an escaped low surrogate yields the combined code point.
func (t *Tokenizer) unicodeEscape() error {
	r, err := t.hex4()
	if err != nil {
		return err
	}
	for utf16.IsSurrogate(r) {
		if r >= 0xdc00 || string(t.src.peekBytes(2)) != `\u` {
			t.buf.WriteRune(utf8.RuneError)
			return nil
		}
		t.src.read()
		t.src.read()
		r2, err := t.hex4()
		if err != nil {
			return err
		}
		if dr := utf16.DecodeRune(r, r2); dr != utf8.RuneError {
			t.buf.WriteRune(dr)
			return nil
		}
		// r is unpaired, r2 may still pair with what follows
		t.buf.WriteRune(utf8.RuneError)
		r = r2
	}
	t.buf.WriteRune(r)
	return nil
}

func (t *Tokenizer) hex4() (rune, error) {
	var r rune
	for range 4 {
		c := t.src.peek()
		v, ok := hexVal(c)
		if !ok {
			return 0, t.unexpected(c)
		}
		t.src.read()
		r = r<<4 | v
	}
	return r, nil
}

func hexVal(c rune) (rune, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
