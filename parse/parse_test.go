package parse

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/rson-format/go-rson/ir"
	"github.com/signadot/rson-format/go-rson/token"
)

type parseTest struct {
	in   string
	dump string
}

func TestParse(t *testing.T) {
	pts := []parseTest{
		{in: `{"a": 1, "b": 2}`, dump: `{"a": 1, "b": 2}`},
		{in: `[1, 2, 3]`, dump: `[1, 2, 3]`},
		{in: "{ // a comment\n \"a\": 1 }", dump: `{"a": 1}`},
		{in: `{}`, dump: `{}`},
		{in: `[]`, dump: `[]`},
		{in: `[[], {}, [[]]]`, dump: `[[], {}, [[]]]`},
		{in: `"é\n"`, dump: `"é\n"`},
		{in: `"😀"`, dump: `"😀"`},
		{in: `"\ud83d"`, dump: `"�"`},
		{in: `[true, false, null]`, dump: `[true, false, null]`},
		{in: `{"z": 1, "a": 2, "m": 3}`, dump: `{"z": 1, "a": 2, "m": 3}`},
		{in: `{"k": 1, "j": 2, "k": 3}`, dump: `{"k": 3, "j": 2}`},
		{in: `[1(a), 2(a), $a]`, dump: `[1, 2, 2]`},
		{in: `[1(a), $a, 2(a), $a]`, dump: `[1, 1, 2, 2]`},
		{in: `[$a, 1(a), 2(a)]`, dump: `[2, 1, 2]`},
		{in: `{"self": $me}(me)`, dump: `{"self": <cycle>}`},
		{in: "/* lead */ [ /* in */ 1 /* mid */ , // x\n 2 ] // trail", dump: `[1, 2]`},
		{in: `1 2`, dump: `1`},
		{in: `{} {`, dump: `{}`},
	}
	for _, pt := range pts {
		y, err := ParseString(pt.in)
		if err != nil {
			t.Errorf("%q: %v", pt.in, err)
			continue
		}
		if got := y.Dump(); got != pt.dump {
			t.Errorf("%q: got %s want %s", pt.in, got, pt.dump)
		}
	}
}

func TestParseNumbers(t *testing.T) {
	tests := []struct {
		in  string
		typ ir.Type
		i   int64
		f   float64
	}{
		{in: "42", typ: ir.IntType, i: 42},
		{in: "-0", typ: ir.IntType, i: 0},
		{in: "0", typ: ir.IntType, i: 0},
		{in: "-17", typ: ir.IntType, i: -17},
		{in: "9223372036854775807", typ: ir.IntType, i: 9223372036854775807},
		{in: "-9223372036854775808", typ: ir.IntType, i: -9223372036854775808},
		{in: "0.5", typ: ir.FloatType, f: 0.5},
		{in: "1.0", typ: ir.FloatType, f: 1},
		{in: "1e10", typ: ir.FloatType, f: 1e10},
		{in: "1E+2", typ: ir.FloatType, f: 100},
		{in: "-2.5e-3", typ: ir.FloatType, f: -2.5e-3},
	}
	for _, tt := range tests {
		y, err := ParseString(tt.in)
		if err != nil {
			t.Errorf("%s: %v", tt.in, err)
			continue
		}
		if y.Type != tt.typ {
			t.Errorf("%s: got %s want %s", tt.in, y.Type, tt.typ)
			continue
		}
		if y.Int64 != tt.i || y.Float64 != tt.f {
			t.Errorf("%s: got %s", tt.in, y.Dump())
		}
	}
}

func TestAliases(t *testing.T) {
	y, err := ParseString(`{"role": {"name": "Eng"}(myrole), "ref": $myrole}`)
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Same(y.Get("role"), y.Get("ref")) {
		t.Error("backward reference is a copy")
	}

	y, err = ParseString(`[$later, {"x": 1}(later)]`)
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Same(y.Index(0), y.Index(1)) {
		t.Error("forward reference is a copy")
	}
	if got := y.Index(0).Dump(); got != `{"x": 1}` {
		t.Errorf("got %s", got)
	}

	// the same name referenced at several depths, before and after
	y, err = ParseString(`{
		"a": [$t, {"b": [$t]}],
		"t": {"v": [1, 2]}(t),
		"c": {"d": {"e": $t}}
	}`)
	if err != nil {
		t.Fatal(err)
	}
	def := y.Get("t")
	for _, p := range []string{"$.a[0]", "$.a[1].b[0]", "$.c.d.e"} {
		got, err := y.GetPath(p)
		if err != nil {
			t.Fatal(err)
		}
		if !ir.Same(got, def) {
			t.Errorf("%s is not the definition", p)
		}
	}
	// a definition on a scalar shares the scalar node
	y, err = ParseString(`["x"(s), $s]`)
	if err != nil {
		t.Fatal(err)
	}
	if !y.Index(0).Is(y.Index(1)) {
		t.Error("scalar reference is a copy")
	}
}

func TestDuplicateKeyAndForwardRef(t *testing.T) {
	// a forward reference overwritten by a later duplicate key does not
	// come back when resolved
	y, err := ParseString(`{"k": $later, "k": 1, "l": [2](later)}`)
	if err != nil {
		t.Fatal(err)
	}
	if got := y.Dump(); got != `{"k": 1, "l": [2]}` {
		t.Errorf("got %s", got)
	}
	y, err = ParseString(`{"k": 1, "k": $later, "l": [2](later)}`)
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Same(y.Get("k"), y.Get("l")) {
		t.Errorf("got %s", y.Dump())
	}
	// an undefined name is an error even where its slot was overwritten
	_, err = ParseString(`{"k": $nope, "k": 1}`)
	if !errors.Is(err, ErrUndefinedRef) {
		t.Errorf("got %v", err)
	}
}

func TestCommentsInsensitive(t *testing.T) {
	plain, err := ParseString(`{"a":[1,{"b":null}(n)],"c":$n}`)
	if err != nil {
		t.Fatal(err)
	}
	noisy, err := ParseString(`
// header
{ "a" /* key */ : [ 1 , { "b" : null } (n) ] ,
  /* between */ "c" : $n // trailing
}`)
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(plain, noisy) {
		t.Errorf("%s != %s", plain.Dump(), noisy.Dump())
	}
}

type parseErrTest struct {
	in  string
	err error
	msg string
}

func TestParseErrors(t *testing.T) {
	pets := []parseErrTest{
		{in: ``, err: ErrUnexpectedEOF, msg: "unexpected end of input: expected value at 1:1"},
		{in: "  // only a comment\n", err: ErrUnexpectedEOF},
		{in: `{"a": "unterminated`, err: ErrUnexpectedEOF, msg: "unexpected end of input at 1:20"},
		{in: `{"a": 1`, err: ErrUnexpectedEOF, msg: "unexpected end of input: expected ',' or '}' at 1:8"},
		{in: `[1, 2`, err: ErrUnexpectedEOF},
		{in: `{"a"`, err: ErrUnexpectedEOF},
		{in: `$x`, err: ErrUnexpectedToken, msg: "unexpected token: expected value, found reference $x at 1:1"},
		{in: `(x)`, err: ErrUnexpectedToken},
		{in: `[1,]`, err: ErrUnexpectedToken, msg: "unexpected token: expected value, found ']' at 1:4"},
		{in: `{"a": 1,}`, err: ErrUnexpectedToken, msg: "unexpected token: expected string key, found '}' at 1:9"},
		{in: `{a: 1}`, err: ErrUnexpectedChar},
		{in: `{1: 1}`, err: ErrUnexpectedToken},
		{in: `{"a" 1}`, err: ErrUnexpectedToken, msg: "unexpected token: expected ':', found number 1 at 1:6"},
		{in: `{"a": 1 "b": 2}`, err: ErrUnexpectedToken},
		{in: `[1 2]`, err: ErrUnexpectedToken},
		{in: `[,]`, err: ErrUnexpectedToken},
		{in: `[1(a)(b)]`, err: ErrUnexpectedToken},
		{in: `{"a": $b(c)}`, err: ErrUnexpectedToken},
		{in: `007`, err: ErrUnexpectedToken},
		{in: `[007]`, err: ErrUnexpectedToken},
		{in: `[-01]`, err: ErrUnexpectedToken},
		{in: `[1, @]`, err: ErrUnexpectedChar, msg: "unexpected character '@' at 1:5"},
		{in: `[$nope]`, err: ErrUndefinedRef, msg: "undefined reference $nope at 1:2"},
		{in: `{"a": [1, $x, $y]}(y)`, err: ErrUndefinedRef, msg: "undefined reference $x at 1:11"},
		{in: `9223372036854775808`, err: ErrNumber},
		{in: `[-9223372036854775809]`, err: ErrNumber},
		{in: `1e400`, err: ErrNumber},
		{in: `{"a": [1, {"b": tru}]}`, err: ErrUnexpectedChar},
	}
	for _, pet := range pets {
		_, err := ParseString(pet.in)
		if err == nil {
			t.Errorf("%q: expected error", pet.in)
			continue
		}
		if !errors.Is(err, pet.err) {
			t.Errorf("%q: got %v want %v", pet.in, err, pet.err)
			continue
		}
		if pet.msg != "" && err.Error() != pet.msg {
			t.Errorf("%q: got message %q want %q", pet.in, err.Error(), pet.msg)
		}
	}
}

func TestErrorDetails(t *testing.T) {
	_, err := ParseString("[\n  1,\n  $missing\n]", ParseFilename("team.rson"))
	var refErr *RefErr
	if !errors.As(err, &refErr) {
		t.Fatalf("got %T %v", err, err)
	}
	if refErr.Name != "missing" || refErr.Pos.String() != "team.rson:3:3" {
		t.Errorf("got %s at %s", refErr.Name, refErr.Pos)
	}

	_, err = ParseString(`{"a": ]`)
	var synErr *SyntaxErr
	if !errors.As(err, &synErr) {
		t.Fatalf("got %T %v", err, err)
	}
	if synErr.Found.Type != token.TRSquare || synErr.Expected != "value" {
		t.Errorf("got %s", synErr)
	}

	_, err = ParseString("\n\n   \"abc")
	var tokErr *token.TokenizeErr
	if !errors.As(err, &tokErr) {
		t.Fatalf("got %T %v", err, err)
	}
	if tokErr.Pos.Line != 3 || tokErr.Pos.Col != 8 {
		t.Errorf("got %s", tokErr.Pos)
	}
}

func TestParseStrict(t *testing.T) {
	for _, in := range []string{`1 2`, `{} []`, `[1] $x`, `"a" "b"`} {
		if _, err := ParseString(in); err != nil {
			t.Errorf("%q permissive: %v", in, err)
		}
		_, err := ParseString(in, ParseStrict())
		if !errors.Is(err, ErrUnexpectedToken) {
			t.Errorf("%q strict: got %v", in, err)
		}
	}
	for _, in := range []string{`1`, "[1] // done\n", `{"a": 1}(top)`, "\"x\" /* end */"} {
		if _, err := ParseString(in, ParseStrict()); err != nil {
			t.Errorf("%q strict: %v", in, err)
		}
	}
}

func TestParsePositions(t *testing.T) {
	in := "{\n \"a\": [1, 2],\n \"b\": $top\n}(top)"
	pos := map[*ir.Node]token.Pos{}
	y, err := ParseString(in, ParsePositions(pos))
	if err != nil {
		t.Fatal(err)
	}
	arr := y.Get("a")
	got := map[string]string{
		"top":  pos[y].String(),
		"a":    pos[arr].String(),
		"a[0]": pos[arr.Index(0)].String(),
		"a[1]": pos[arr.Index(1)].String(),
	}
	want := map[string]string{
		"top":  "1:1",
		"a":    "2:7",
		"a[0]": "2:8",
		"a[1]": "2:11",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if len(pos) != 4 {
		t.Errorf("recorded %d positions", len(pos))
	}
}

func TestParseDefinitions(t *testing.T) {
	in := `{
  "roles": [{"n": "admin"}(admin), {"n": "dev"}(dev)],
  "members": [{"role": $dev}, {"role": $admin}, {"role": $dev}]
}`
	defs := map[string]*ir.Node{}
	y, err := ParseString(in, ParseDefinitions(defs))
	if err != nil {
		t.Fatal(err)
	}
	if len(defs) != 2 {
		t.Fatalf("got %d definitions", len(defs))
	}
	var devs []int
	for i, m := range y.Get("members").Values {
		if m.Get("role").Is(defs["dev"]) {
			devs = append(devs, i)
		}
	}
	if diff := cmp.Diff([]int{0, 2}, devs); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}

	failed := map[string]*ir.Node{}
	if _, err := ParseString(`[1(a), $b]`, ParseDefinitions(failed)); err == nil {
		t.Fatal("expected error")
	}
	if len(failed) != 0 {
		t.Errorf("definitions stored on failure: %v", failed)
	}
}

func TestParseReaders(t *testing.T) {
	in := `{"list": [1, 2.5, "three", $x], "x": {"deep": [true]}(x)}`
	want, err := ParseString(in)
	if err != nil {
		t.Fatal(err)
	}
	got, err := Parse(iotest.OneByteReader(strings.NewReader(in)))
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(want, got) {
		t.Errorf("%s != %s", want.Dump(), got.Dump())
	}
	got, err = ParseBytes([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(want, got) {
		t.Errorf("%s != %s", want.Dump(), got.Dump())
	}
	if !got.Get("list").Index(3).Is(got.Get("x")) {
		t.Error("reference lost")
	}
}

func TestParseIndependent(t *testing.T) {
	// definitions do not leak between parses
	if _, err := ParseString(`[1(a)]`); err != nil {
		t.Fatal(err)
	}
	if _, err := ParseString(`[$a]`); !errors.Is(err, ErrUndefinedRef) {
		t.Errorf("got %v", err)
	}
}
