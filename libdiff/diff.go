package libdiff

import (
	"fmt"

	"github.com/signadot/rson-format/go-rson/ir"
)

type Op int

const (
	Insert Op = iota
	Delete
	Replace
)

func (o Op) String() string {
	switch o {
	case Insert:
		return "+"
	case Delete:
		return "-"
	case Replace:
		return "~"
	default:
		return "?"
	}
}

// Change is one difference. From is nil for an Insert and To is nil for a
// Delete.
type Change struct {
	Op   Op
	Path string
	From *ir.Node
	To   *ir.Node
}

func (c *Change) String() string {
	switch c.Op {
	case Insert:
		return fmt.Sprintf("%s %s: %s", c.Op, c.Path, c.To.Dump())
	case Delete:
		return fmt.Sprintf("%s %s: %s", c.Op, c.Path, c.From.Dump())
	default:
		return fmt.Sprintf("%s %s: %s -> %s", c.Op, c.Path, c.From.Dump(), c.To.Dump())
	}
}

// Diff returns the changes turning from into to, in document order. It
// returns nil if ir.Equal(from, to), up to object key order.
func Diff(from, to *ir.Node) []Change {
	d := &differ{inProgress: map[[2]*ir.Node]struct{}{}}
	d.diff("$", from, to)
	return d.changes
}

type differ struct {
	inProgress map[[2]*ir.Node]struct{}
	changes    []Change
}

func (d *differ) add(op Op, path string, from, to *ir.Node) {
	d.changes = append(d.changes, Change{Op: op, Path: path, From: from, To: to})
}

func (d *differ) diff(path string, from, to *ir.Node) {
	if from == to {
		return
	}
	if from == nil || to == nil || from.Type != to.Type {
		d.add(Replace, path, from, to)
		return
	}
	if from.Type.IsLeaf() {
		if !ir.Equal(from, to) {
			d.add(Replace, path, from, to)
		}
		return
	}
	k := [2]*ir.Node{from, to}
	if _, ok := d.inProgress[k]; ok {
		return
	}
	d.inProgress[k] = struct{}{}
	defer delete(d.inProgress, k)
	if from.Type == ir.ObjectType {
		d.object(path, from, to)
		return
	}
	d.array(path, from, to)
}
