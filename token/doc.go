// Package token provides tokenization support for RSON.
//
// RSON is JSON with comments, value definitions and references:
//
//	{
//	  // roles are defined once
//	  "roles": [{"name": "Eng"}(eng)],
//	  /* and referenced, by identity, elsewhere */
//	  "members": [{"name": "ada", "role": $eng}]
//	}
//
// [NewTokenizer] reads from an [io.Reader] and exposes one token of lookahead
// through [Tokenizer.Token] and [Tokenizer.Next]. Whitespace and comments are
// skipped; callers only ever see semantic tokens, ending with [TEOF].
//
// [Tokenize] is a convenience for collecting all tokens of a document.
package token
