package ir

import "testing"

func cyc(tail *Node) *Node {
	root := NewObject()
	root.Set("n", tail)
	root.Set("self", root)
	return root
}

func TestEqual(t *testing.T) {
	one := FromInt(1)
	tests := []struct {
		name string
		a, b *Node
		want bool
	}{
		{"nulls", Null(), Null(), true},
		{"ints", FromInt(1), FromInt(1), true},
		{"int float", FromInt(1), FromFloat(1), false},
		{"strings", FromString("a"), FromString("b"), false},
		{"bools", FromBool(true), FromBool(true), true},
		{"nil", nil, Null(), false},
		{
			"arrays",
			FromSlice([]*Node{one, FromString("x")}),
			FromSlice([]*Node{FromInt(1), FromString("x")}),
			true,
		},
		{
			"array lengths",
			FromSlice([]*Node{one}),
			FromSlice([]*Node{one, one}),
			false,
		},
		{
			"key order",
			FromKeyVals([]KeyVal{{"a", one}, {"b", one}}),
			FromKeyVals([]KeyVal{{"b", one}, {"a", one}}),
			false,
		},
		{
			"objects",
			FromKeyVals([]KeyVal{{"a", one}, {"b", Null()}}),
			FromKeyVals([]KeyVal{{"a", FromInt(1)}, {"b", Null()}}),
			true,
		},
		{"array object", NewArray(), NewObject(), false},
		{"cycles", cyc(one), cyc(FromInt(1)), true},
		{"cycles differ", cyc(one), cyc(FromInt(2)), false},
	}
	for _, tt := range tests {
		if got := Equal(tt.a, tt.b); got != tt.want {
			t.Errorf("%s: got %t want %t", tt.name, got, tt.want)
		}
		if got := Equal(tt.b, tt.a); got != tt.want {
			t.Errorf("%s reversed: got %t want %t", tt.name, got, tt.want)
		}
	}
}
