package token

import (
	"fmt"
	"strconv"
)

// Pos is a position in an RSON document. Line and Col are 1-based and count
// runes; Offset is the 0-based byte offset.
type Pos struct {
	Filename string
	Offset   int
	Line     int
	Col      int
}

func startPos(filename string) Pos {
	return Pos{Filename: filename, Line: 1, Col: 1}
}

func (p *Pos) nextCol(n, bytes int) {
	p.Col += n
	p.Offset += bytes
}

// nextLine is called after consuming a '\n'.
func (p *Pos) nextLine() {
	p.Line++
	p.Col = 1
	p.Offset++
}

func (p Pos) IsValid() bool {
	return p.Line > 0
}

func (p Pos) String() string {
	lc := strconv.Itoa(p.Line) + ":" + strconv.Itoa(p.Col)
	if p.Filename == "" {
		return lc
	}
	return fmt.Sprintf("%s:%s", p.Filename, lc)
}
