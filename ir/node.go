package ir

import (
	"maps"
	"slices"
)

// objects reaching this many keys through Set get a key index
const indexThreshold = 8

type Node struct {
	Type   Type
	Fields []string
	Values []*Node

	String  string
	Bool    bool
	Int64   int64
	Float64 float64

	index map[string]int
}

func Null() *Node {
	return &Node{Type: NullType}
}

func FromBool(v bool) *Node {
	return &Node{
		Type: BoolType,
		Bool: v,
	}
}

func FromInt(v int64) *Node {
	return &Node{
		Type:  IntType,
		Int64: v,
	}
}

func FromFloat(f float64) *Node {
	return &Node{
		Type:    FloatType,
		Float64: f,
	}
}

func FromString(v string) *Node {
	return &Node{
		Type:   StringType,
		String: v,
	}
}

func FromSlice(ySlice []*Node) *Node {
	res := &Node{
		Type:   ArrayType,
		Values: make([]*Node, len(ySlice)),
	}
	copy(res.Values, ySlice)
	return res
}

func NewArray() *Node {
	return &Node{Type: ArrayType}
}

func NewObject() *Node {
	return &Node{Type: ObjectType}
}

type KeyVal struct {
	Key string
	Val *Node
}

// FromKeyVals creates an object from kvs in order. A repeated key keeps
// its first position and its last value.
func FromKeyVals(kvs []KeyVal) *Node {
	res := NewObject()
	for _, kv := range kvs {
		res.Set(kv.Key, kv.Val)
	}
	return res
}

// FromMap creates an object with the keys of yMap in sorted order.
func FromMap(yMap map[string]*Node) *Node {
	res := NewObject()
	for _, key := range slices.Sorted(maps.Keys(yMap)) {
		res.Set(key, yMap[key])
	}
	return res
}

// Same reports whether a and b are the same value, as opposed to equal
// values.
func Same(a, b *Node) bool {
	return a == b
}

// Is reports whether y and o are the same value.
func (y *Node) Is(o *Node) bool {
	return y == o
}

// Len returns the number of elements of an array or members of an object.
func (y *Node) Len() int {
	switch y.Type {
	case ArrayType, ObjectType:
		return len(y.Values)
	default:
		return 0
	}
}

// Index returns the i'th element of an array, or nil if y is not an array
// or i is out of range.
func (y *Node) Index(i int) *Node {
	if y.Type != ArrayType || i < 0 || i >= len(y.Values) {
		return nil
	}
	return y.Values[i]
}

// Get returns the value of field in an object, or nil.
func (y *Node) Get(field string) *Node {
	if y.Type != ObjectType {
		return nil
	}
	i := y.find(field)
	if i < 0 {
		return nil
	}
	return y.Values[i]
}

func (y *Node) Has(field string) bool {
	return y.Type == ObjectType && y.find(field) >= 0
}

func (y *Node) Keys() []string {
	if y.Type != ObjectType {
		return nil
	}
	return slices.Clone(y.Fields)
}

// Set sets field to v in an object and returns the index of the member.
// An existing field keeps its position.
func (y *Node) Set(field string, v *Node) int {
	if y.index == nil && len(y.Fields) >= indexThreshold {
		y.index = make(map[string]int, len(y.Fields))
		for i, f := range y.Fields {
			if _, ok := y.index[f]; !ok {
				y.index[f] = i
			}
		}
	}
	if i := y.find(field); i >= 0 {
		y.Values[i] = v
		return i
	}
	i := len(y.Fields)
	y.Fields = append(y.Fields, field)
	y.Values = append(y.Values, v)
	if y.index != nil {
		y.index[field] = i
	}
	return i
}

// Append appends v to an array and returns its index.
func (y *Node) Append(v *Node) int {
	y.Values = append(y.Values, v)
	return len(y.Values) - 1
}

func (y *Node) find(field string) int {
	if y.index != nil {
		i, ok := y.index[field]
		if !ok {
			return -1
		}
		return i
	}
	for i, f := range y.Fields {
		if f == field {
			return i
		}
	}
	return -1
}

// Visit calls f on y and, when f returns true before descending, on each
// node below y. f is called again with isPost set after a node's children.
// A node reachable along several paths is visited once.
func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	return y.visit(f, map[*Node]struct{}{})
}

func (y *Node) visit(f func(y *Node, isPost bool) (bool, error), seen map[*Node]struct{}) error {
	if _, ok := seen[y]; ok {
		return nil
	}
	seen[y] = struct{}{}
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if yy == nil {
				continue
			}
			if err := yy.visit(f, seen); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}
