package token

// number lexes -?(0|[1-9][0-9]*)(\.[0-9]+)?([eE][+-]?[0-9]+)?
//
// The integer part ends after a leading 0, so "007" is the number 0
// followed by another number token.
func (t *Tokenizer) number() (Token, error) {
	t.buf.Reset()
	if t.src.peek() == '-' {
		t.buf.WriteRune(t.src.read())
	}
	switch c := t.src.peek(); {
	case c == '0':
		t.buf.WriteRune(t.src.read())
	case asciiDigit(c):
		t.digits()
	default:
		return Token{}, t.unexpected(c)
	}
	if t.src.peek() == '.' {
		t.buf.WriteRune(t.src.read())
		if err := t.someDigits(); err != nil {
			return Token{}, err
		}
	}
	switch t.src.peek() {
	case 'e', 'E':
		t.buf.WriteRune(t.src.read())
		switch t.src.peek() {
		case '+', '-':
			t.buf.WriteRune(t.src.read())
		}
		if err := t.someDigits(); err != nil {
			return Token{}, err
		}
	}
	return t.emit(TNumber, t.buf.String())
}

func (t *Tokenizer) someDigits() error {
	if c := t.src.peek(); !asciiDigit(c) {
		return t.unexpected(c)
	}
	t.digits()
	return nil
}

func (t *Tokenizer) digits() {
	for asciiDigit(t.src.peek()) {
		t.buf.WriteRune(t.src.read())
	}
}

func asciiDigit(c rune) bool {
	switch c {
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return true
	default:
		return false
	}
}

// IsInteger reports whether the text of a TNumber token denotes an integer,
// that is, it has neither a fraction nor an exponent.
func IsInteger(num string) bool {
	for i := 0; i < len(num); i++ {
		switch num[i] {
		case '.', 'e', 'E':
			return false
		}
	}
	return true
}
