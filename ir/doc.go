// Package ir provides the value model for parsed RSON documents.
//
// # Overview
//
// A document is represented as a graph of *Node. A Node is a tagged union
// whose Type selects which fields carry the value:
//
//   - NullType: no payload
//   - BoolType: Bool
//   - IntType: Int64
//   - FloatType: Float64
//   - StringType: String
//   - ArrayType: Values
//   - ObjectType: Fields[i] is the key of Values[i]
//
// # Identity
//
// RSON references alias values: `$name` denotes the very node that was
// defined with `(name)`, so the same *Node may be reachable from several
// containers. Identity is a first class operation:
//
//	ir.Same(team.Get("lead"), defs["ada"])
//
// Structural equality is provided separately by [Equal]. Because a node may
// have several owners, nodes carry no parent links. References may also
// form cycles; [Node.Visit], [Equal], [Node.Dump] and the path functions
// all terminate on cyclic graphs, while [ToAny] reports [ErrCycle].
//
// # Creating Nodes
//
//	node := ir.FromString("hello")
//	num := ir.FromInt(42)
//	obj := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: "name", Val: ir.FromString("Eng")},
//	})
//	arr := ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromInt(2)})
//
// # Objects
//
// Keys keep the order in which they were first set. Setting an existing key
// replaces its value in place, so the last write wins. Objects should be
// modified through [Node.Set] so that the key index stays consistent.
//
// # Paths
//
// [Node.GetPath] and [Node.ListPath] navigate with JSONPath-like paths such
// as "$.members[0].role" or "$.members[*].name". Results are the nodes of
// the graph themselves, never copies, so they may be compared by identity.
//
// # Thread Safety
//
// Node structures are not thread-safe. A tree returned by a parse may be
// read concurrently as long as nobody modifies it.
package ir
