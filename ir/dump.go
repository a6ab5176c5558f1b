package ir

import (
	"strconv"
	"strings"
)

// Dump renders y on one line for debugging. A container that contains
// itself is rendered as <cycle> where it recurs. Dump is not an encoder:
// definitions and references are not reconstructed.
func (y *Node) Dump() string {
	b := &strings.Builder{}
	y.dump(b, map[*Node]struct{}{})
	return b.String()
}

func (y *Node) dump(b *strings.Builder, path map[*Node]struct{}) {
	if y == nil {
		b.WriteString("<nil>")
		return
	}
	switch y.Type {
	case NullType:
		b.WriteString("null")
	case BoolType:
		b.WriteString(strconv.FormatBool(y.Bool))
	case IntType:
		b.WriteString(strconv.FormatInt(y.Int64, 10))
	case FloatType:
		b.WriteString(strconv.FormatFloat(y.Float64, 'g', -1, 64))
	case StringType:
		b.WriteString(strconv.Quote(y.String))
	case ArrayType, ObjectType:
		if _, ok := path[y]; ok {
			b.WriteString("<cycle>")
			return
		}
		path[y] = struct{}{}
		defer delete(path, y)
		lb, rb := byte('['), byte(']')
		if y.Type == ObjectType {
			lb, rb = '{', '}'
		}
		b.WriteByte(lb)
		for i, v := range y.Values {
			if i > 0 {
				b.WriteString(", ")
			}
			if y.Type == ObjectType {
				b.WriteString(strconv.Quote(y.Fields[i]))
				b.WriteString(": ")
			}
			v.dump(b, path)
		}
		b.WriteByte(rb)
	default:
		b.WriteString("<unknown>")
	}
}
