package token

import "io"

// Tokenize returns all tokens of r, ending with the TEOF token.
func Tokenize(dst []Token, r io.Reader, opts ...TokenOpt) ([]Token, error) {
	t, err := NewTokenizer(r, opts...)
	if err != nil {
		return nil, err
	}
	for {
		tok := t.Token()
		dst = append(dst, tok)
		if tok.Type == TEOF {
			return dst, nil
		}
		if _, err := t.Next(); err != nil {
			return nil, err
		}
	}
}
