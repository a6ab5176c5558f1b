package ir

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestToAny(t *testing.T) {
	shared := FromKeyVals([]KeyVal{{"name", FromString("dev")}})
	doc := FromKeyVals([]KeyVal{
		{"roles", FromSlice([]*Node{shared})},
		{"members", FromSlice([]*Node{
			FromKeyVals([]KeyVal{{"role", shared}, {"age", FromInt(30)}}),
			FromKeyVals([]KeyVal{{"role", shared}, {"score", FromFloat(0.5)}}),
		})},
		{"ok", FromBool(true)},
		{"none", Null()},
	})
	got, err := ToAny(doc)
	if err != nil {
		t.Fatal(err)
	}
	dev := map[string]any{"name": "dev"}
	want := map[string]any{
		"roles": []any{dev},
		"members": []any{
			map[string]any{"role": dev, "age": int64(30)},
			map[string]any{"role": dev, "score": 0.5},
		},
		"ok":   true,
		"none": nil,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestToAnyCycle(t *testing.T) {
	arr := NewArray()
	arr.Append(FromInt(1))
	arr.Append(FromSlice([]*Node{arr}))
	_, err := ToAny(arr)
	if !errors.Is(err, ErrCycle) {
		t.Errorf("got %v", err)
	}
	obj := NewObject()
	obj.Set("me", obj)
	_, err = ToAny(obj)
	if !errors.Is(err, ErrCycle) {
		t.Errorf("got %v", err)
	}
}

func TestFromAny(t *testing.T) {
	in := map[string]any{
		"b": []any{int64(1), 2, 2.5, "s", nil, false},
		"a": map[string]any{},
	}
	y, err := FromAny(in)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := y.Dump(), `{"a": {}, "b": [1, 2, 2.5, "s", null, false]}`; got != want {
		t.Errorf("got %s want %s", got, want)
	}
	if _, err := FromAny(struct{}{}); err == nil {
		t.Error("expected error")
	}
	if _, err := FromAny([]any{uint8(1)}); err == nil {
		t.Error("expected error")
	}
}
