package debug

import (
	"fmt"
	"os"
	"strconv"

	"github.com/goccy/go-json"
)

type debug struct {
	Tokens bool
	Parse  bool
	Refs   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Tokens = boolEnv("RSON_DEBUG_TOKENS")
	d.Parse = boolEnv("RSON_DEBUG_PARSE")
	d.Refs = boolEnv("RSON_DEBUG_REFS")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Tokens() bool {
	return d.Tokens
}
func Parse() bool {
	return d.Parse
}
func Refs() bool {
	return d.Refs
}

// Set overrides the environment switches, for use by command line flags.
func Set(tokens, parse, refs bool) {
	d.Tokens = tokens
	d.Parse = parse
	d.Refs = refs
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(out, "%v\n", v)
		return
	}
	out.Write(append(d, '\n'))
}
