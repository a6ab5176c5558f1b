package libdiff_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/rson-format/go-rson/libdiff"
	"github.com/signadot/rson-format/go-rson/parse"
)

type diffTest struct {
	from, to string
	want     []string
}

func TestDiff(t *testing.T) {
	dts := []diffTest{
		{
			from: `{"a": [1, 2], "b": {"c": null}}`,
			to:   `{"a": [1, 2], "b": {"c": null}}`,
		},
		{
			from: `{"a": 1, "b": 2}`,
			to:   `{"a": 1, "b": 3, "c": 4}`,
			want: []string{"~ $.b: 2 -> 3", "+ $.c: 4"},
		},
		{
			from: `{"a": 1, "b": 2}`,
			to:   `{"b": 2}`,
			want: []string{"- $.a: 1"},
		},
		{
			from: `{"a": 1, "b": 2}`,
			to:   `{"b": 2, "a": 1}`,
		},
		{
			from: `[1, 2, 3]`,
			to:   `[1, 9, 2, 3]`,
			want: []string{"+ $[1]: 9"},
		},
		{
			from: `[1, 2, 3]`,
			to:   `[1, 3]`,
			want: []string{"- $[1]: 2"},
		},
		{
			from: `[1, 2, 3]`,
			to:   `[1, 5, 3]`,
			want: []string{"~ $[1]: 2 -> 5"},
		},
		{
			from: `{"m": [{"role": "a"}]}`,
			to:   `{"m": [{"role": "b"}]}`,
			want: []string{`~ $.m[0].role: "a" -> "b"`},
		},
		{
			from: `{"a": 1}`,
			to:   `{"a": "1"}`,
			want: []string{`~ $.a: 1 -> "1"`},
		},
		{
			from: `{"a": 1}`,
			to:   `{"a": 1.0}`,
			want: []string{`~ $.a: 1 -> 1`},
		},
		{
			from: `{"a.b": [true]}`,
			to:   `{"a.b": [false]}`,
			want: []string{"~ $.'a.b'[0]: true -> false"},
		},
		{
			from: `{"self": $me, "n": 1}(me)`,
			to:   `{"self": $me, "n": 2}(me)`,
			want: []string{"~ $.n: 1 -> 2"},
		},
		{
			from: `{"r": {"x": 1}(r), "s": $r}`,
			to:   `{"r": {"x": 1}, "s": {"x": 1}}`,
		},
	}
	for _, dt := range dts {
		from, err := parse.ParseString(dt.from)
		if err != nil {
			t.Fatal(err)
		}
		to, err := parse.ParseString(dt.to)
		if err != nil {
			t.Fatal(err)
		}
		changes := libdiff.Diff(from, to)
		var got []string
		for i := range changes {
			got = append(got, changes[i].String())
		}
		if diff := cmp.Diff(dt.want, got); diff != "" {
			t.Errorf("%s -> %s (-want +got):\n%s", dt.from, dt.to, diff)
		}
	}
}

func TestDiffOps(t *testing.T) {
	from, err := parse.ParseString(`{"gone": [1], "kept": 1}`)
	if err != nil {
		t.Fatal(err)
	}
	to, err := parse.ParseString(`{"kept": 1, "new": {}}`)
	if err != nil {
		t.Fatal(err)
	}
	changes := libdiff.Diff(from, to)
	if len(changes) != 2 {
		t.Fatalf("got %d changes", len(changes))
	}
	del, ins := changes[0], changes[1]
	if del.Op != libdiff.Delete || del.To != nil || !del.From.Is(from.Get("gone")) {
		t.Errorf("got %s", del.String())
	}
	if ins.Op != libdiff.Insert || ins.From != nil || !ins.To.Is(to.Get("new")) {
		t.Errorf("got %s", ins.String())
	}
}
