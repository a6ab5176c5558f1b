package debug

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/rson-format/go-rson/ir"

	"github.com/goccy/go-json"
)

var out io.Writer = os.Stderr

// SetOutput redirects debug logging, which goes to stderr by default.
func SetOutput(w io.Writer) {
	out = w
}

// RSON formats a node compactly under %s.
type RSON struct{ Node *ir.Node }

func (y RSON) String() string {
	return y.Node.Dump()
}

func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *ir.Node:
			args[i] = x.Dump()
		case bool, string, float64, int:

		default:
		}
	}
	fmt.Fprintf(out, msg, args...)
}
