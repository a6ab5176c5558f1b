package ir

import (
	"fmt"
)

// ToAny converts y to plain Go values: nil, bool, int64, float64, string,
// []any and map[string]any. Aliased values are converted once per
// occurrence; a cycle yields ErrCycle.
func ToAny(y *Node) (any, error) {
	return toAny(y, map[*Node]struct{}{})
}

func toAny(y *Node, path map[*Node]struct{}) (any, error) {
	if y == nil {
		return nil, nil
	}
	switch y.Type {
	case NullType:
		return nil, nil
	case BoolType:
		return y.Bool, nil
	case IntType:
		return y.Int64, nil
	case FloatType:
		return y.Float64, nil
	case StringType:
		return y.String, nil
	case ArrayType, ObjectType:
	default:
		return nil, fmt.Errorf("unknown type %d", y.Type)
	}
	if _, ok := path[y]; ok {
		return nil, ErrCycle
	}
	path[y] = struct{}{}
	defer delete(path, y)
	if y.Type == ArrayType {
		res := make([]any, len(y.Values))
		for i, v := range y.Values {
			a, err := toAny(v, path)
			if err != nil {
				return nil, err
			}
			res[i] = a
		}
		return res, nil
	}
	res := make(map[string]any, len(y.Values))
	for i, v := range y.Values {
		a, err := toAny(v, path)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", y.Fields[i], err)
		}
		res[y.Fields[i]] = a
	}
	return res, nil
}

// FromAny converts plain Go values, as produced by ToAny or
// encoding/json, to a Node.
func FromAny(v any) (*Node, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case bool:
		return FromBool(x), nil
	case int:
		return FromInt(int64(x)), nil
	case int64:
		return FromInt(x), nil
	case float64:
		return FromFloat(x), nil
	case string:
		return FromString(x), nil
	case []any:
		res := NewArray()
		for _, e := range x {
			n, err := FromAny(e)
			if err != nil {
				return nil, err
			}
			res.Append(n)
		}
		return res, nil
	case map[string]any:
		m := make(map[string]*Node, len(x))
		for k, e := range x {
			n, err := FromAny(e)
			if err != nil {
				return nil, err
			}
			m[k] = n
		}
		return FromMap(m), nil
	default:
		return nil, fmt.Errorf("cannot convert %T", v)
	}
}
