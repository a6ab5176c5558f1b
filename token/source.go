package token

import (
	"bufio"
	"errors"
	"io"
)

const eof rune = -1

const defaultBufferSize = 4096

// source is a rune reader with one rune of lookahead. Lookahead is served
// by the buffer, so the underlying reader is only ever read forward.
type source struct {
	r   *bufio.Reader
	pos Pos
	err error
}

func newSource(r io.Reader, opt *tokenOpts) *source {
	size := opt.bufSize
	if size == 0 {
		size = defaultBufferSize
	}
	return &source{
		r:   bufio.NewReaderSize(r, size),
		pos: startPos(opt.filename),
	}
}

// peek returns the next rune without consuming it, or eof. A read error
// other than io.EOF is kept in s.err and also reported as eof.
func (s *source) peek() rune {
	if s.err != nil {
		return eof
	}
	r, _, err := s.r.ReadRune()
	if err != nil {
		if !errors.Is(err, io.EOF) {
			s.err = err
		}
		return eof
	}
	_ = s.r.UnreadRune()
	return r
}

// peekBytes returns the next n bytes without consuming them. Fewer bytes are
// returned near the end of input.
func (s *source) peekBytes(n int) []byte {
	if s.err != nil {
		return nil
	}
	d, _ := s.r.Peek(n)
	return d
}

// read consumes and returns the next rune, advancing the position.
func (s *source) read() rune {
	if s.err != nil {
		return eof
	}
	r, sz, err := s.r.ReadRune()
	if err != nil {
		if !errors.Is(err, io.EOF) {
			s.err = err
		}
		return eof
	}
	if r == '\n' {
		s.pos.nextLine()
		return r
	}
	// an invalid utf8 byte comes through as utf8.RuneError with sz 1
	s.pos.nextCol(1, sz)
	return r
}
