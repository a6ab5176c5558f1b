// Package libdiff computes the differences between two RSON value trees.
//
// # Usage
//
//	changes := libdiff.Diff(oldNode, newNode)
//	for _, c := range changes {
//	    fmt.Println(c)
//	}
//
// Changes are reported with the path of the affected value. Object members
// are matched by key and array elements by a summary of their content, so
// an element inserted in the middle of an array is reported once rather
// than as a change to every element after it.
//
// Diff compares values, not identities: an aliased value is compared at
// each place it occurs. Graphs with cycles are supported.
//
// # Related Packages
//
//   - github.com/signadot/rson-format/go-rson/ir - IR representation
package libdiff
