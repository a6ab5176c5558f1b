package ir

// Equal reports whether a and b are structurally equal: same types, same
// scalar values, same object keys in the same order and equal children.
// Int and Float values are never equal to each other.
//
// Equal terminates on cyclic graphs; a pair of nodes already under
// comparison is assumed equal.
func Equal(a, b *Node) bool {
	return equal(a, b, map[[2]*Node]struct{}{})
}

func equal(a, b *Node, inProgress map[[2]*Node]struct{}) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case NullType:
		return true
	case BoolType:
		return a.Bool == b.Bool
	case IntType:
		return a.Int64 == b.Int64
	case FloatType:
		return a.Float64 == b.Float64
	case StringType:
		return a.String == b.String
	}
	if len(a.Values) != len(b.Values) {
		return false
	}
	if a.Type == ObjectType {
		for i := range a.Fields {
			if a.Fields[i] != b.Fields[i] {
				return false
			}
		}
	}
	k := [2]*Node{a, b}
	if _, ok := inProgress[k]; ok {
		return true
	}
	inProgress[k] = struct{}{}
	for i := range a.Values {
		if !equal(a.Values[i], b.Values[i], inProgress) {
			return false
		}
	}
	return true
}
