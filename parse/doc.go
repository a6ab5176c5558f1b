// Package parse parses RSON text into IR nodes.
//
// # Usage
//
//	// Parse from a reader
//	node, err := parse.Parse(f, parse.ParseFilename("teams.rson"))
//	if err != nil {
//	    return err
//	}
//
//	// Parse from a string
//	node, err := parse.ParseString(`[{"x": 1}(later), $later]`)
//
// A value followed by `(name)` defines name; `$name` as an array element or
// object member value refers to it. References resolve to the defined node
// itself, whether they occur before or after the definition, so
//
//	node.Index(0) == node.Index(1)
//
// holds above. References used before their definition are resolved in a
// single pass once the whole document has been read.
//
// Errors can be classified with errors.Is against ErrUnexpectedChar,
// ErrUnexpectedEOF, ErrUnexpectedToken, ErrUndefinedRef and ErrNumber; each
// carries a line:column position.
//
// # Related Packages
//
//   - github.com/signadot/rson-format/go-rson/ir - IR representation
//   - github.com/signadot/rson-format/go-rson/token - Tokenization
package parse
