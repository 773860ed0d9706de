package tst

import "io"

// Tree is a ternary search tree over strings. Each node holds one character
// and branches left on a match and right on a mismatch.
//
// A Tree is not safe for concurrent use while Add is running. Concurrent
// Contains calls are fine as long as no Add races them.
type Tree interface {
	// Add merges word into the tree. Adding the empty word does nothing.
	Add(word string)
	// Contains reports whether word matches a recorded character path,
	// which includes every prefix of every added word.
	Contains(word string) bool
	// WriteDot writes the tree structure as a Graphviz digraph.
	WriteDot(w io.Writer) error
	// Nodes returns the number of character nodes in the tree.
	Nodes() int
}

// New returns a tree holding words, added in order.
func New(words ...string) Tree {
	t := &tree{}
	for _, w := range words {
		t.Add(w)
	}
	return t
}
