package libdiff

import (
	"strconv"
	"strings"

	"github.com/signadot/rson-format/go-rson/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// array diffs the sequences of element summaries: a summary is the type of
// a container, or type and value of a scalar. Matching elements are
// recursed into. A run of deletions followed by insertions is paired up
// into replacements, which recurse when both sides are containers of the
// same type.
//
// Deleted and replaced elements are reported at their index in from,
// inserted ones at their index in to.
func (d *differ) array(path string, from, to *ir.Node) {
	m := map[string]rune{}
	fromRunes := mapValues(m, from)
	toRunes := mapValues(m, to)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)

	var pending []int
	flush := func() {
		for _, i := range pending {
			d.add(Delete, indexPath(path, i), from.Values[i], nil)
		}
		pending = pending[:0]
	}
	fi, ti := 0, 0
	for i := range diffs {
		diff := &diffs[i]
		switch diff.Type {
		case diffpatch.DiffDelete:
			for range diff.Text {
				pending = append(pending, fi)
				fi++
			}
		case diffpatch.DiffEqual:
			flush()
			for range diff.Text {
				d.diff(indexPath(path, fi), from.Values[fi], to.Values[ti])
				fi++
				ti++
			}
		case diffpatch.DiffInsert:
			for range diff.Text {
				if len(pending) == 0 {
					d.add(Insert, indexPath(path, ti), nil, to.Values[ti])
					ti++
					continue
				}
				di := pending[0]
				pending = pending[1:]
				d.diff(indexPath(path, di), from.Values[di], to.Values[ti])
				ti++
			}
		}
	}
	flush()
}

func mapValues(m map[string]rune, node *ir.Node) []rune {
	rs := make([]rune, len(node.Values))
	for i, v := range node.Values {
		sum := summaryStr(v)
		r, ok := m[sum]
		if !ok {
			r = rune(len(m))
			m[sum] = r
		}
		rs[i] = r
	}
	return rs
}

func summaryStr(node *ir.Node) string {
	if node == nil {
		return "<nil>"
	}
	switch node.Type {
	case ir.ObjectType, ir.ArrayType, ir.NullType:
		return node.Type.String()
	case ir.BoolType:
		return node.Type.String() + "-" + strconv.FormatBool(node.Bool)
	case ir.StringType:
		if strings.Contains(node.String, "\n") {
			return node.Type.String() + "/m"
		}
		return node.Type.String() + "-" + node.String
	case ir.IntType:
		return node.Type.String() + "-" + strconv.FormatInt(node.Int64, 10)
	case ir.FloatType:
		return node.Type.String() + "-" + strconv.FormatFloat(node.Float64, 'g', -1, 64)
	default:
		return "?"
	}
}

func indexPath(path string, i int) string {
	return path + "[" + strconv.Itoa(i) + "]"
}
