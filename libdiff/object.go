package libdiff

import (
	"github.com/signadot/rson-format/go-rson/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// object diffs the sequences of field names, then recurses on fields present
// on both sides. A field which only moved is diffed where it was deleted.
func (d *differ) object(path string, from, to *ir.Node) {
	fieldMap := map[string]rune{}
	fromRunes := mapFields(fieldMap, from)
	toRunes := mapFields(fieldMap, to)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)
	fi, ti := 0, 0
	for i := range diffs {
		diff := &diffs[i]
		switch diff.Type {
		case diffpatch.DiffDelete:
			for range diff.Text {
				f := from.Fields[fi]
				if tv := to.Get(f); tv != nil {
					d.diff(fieldPath(path, f), from.Values[fi], tv)
				} else {
					d.add(Delete, fieldPath(path, f), from.Values[fi], nil)
				}
				fi++
			}
		case diffpatch.DiffEqual:
			for range diff.Text {
				d.diff(fieldPath(path, from.Fields[fi]), from.Values[fi], to.Values[ti])
				fi++
				ti++
			}
		case diffpatch.DiffInsert:
			for range diff.Text {
				f := to.Fields[ti]
				if !from.Has(f) {
					d.add(Insert, fieldPath(path, f), nil, to.Values[ti])
				}
				ti++
			}
		}
	}
}

func mapFields(m map[string]rune, node *ir.Node) []rune {
	rs := make([]rune, len(node.Fields))
	for i, f := range node.Fields {
		r, ok := m[f]
		if !ok {
			r = rune(len(m))
			m[f] = r
		}
		rs[i] = r
	}
	return rs
}

func fieldPath(path, field string) string {
	return path + "." + ir.QuoteField(field)
}
