package tst

import (
	"bufio"
	"fmt"
	"io"
)

func (t *tree) Nodes() int {
	if t == nil {
		return 0
	}
	return len(t.nodes)
}

func (t *tree) Add(word string) {
	chars := []rune(word)
	if len(chars) == 0 {
		return
	}

	if t.empty() {
		t.extend(t.newNode(chars[0]), chars[1:])
		return
	}

	curr := int32(rootIdx)
	parent, matched := int32(nullIdx), false
	for i, c := range chars {
		for {
			if curr == nullIdx {
				n := t.newNode(c)
				*t.link(parent, matched) = n
				t.extend(n, chars[i+1:])
				return
			}
			if t.nodes[curr].value == c {
				parent, matched, curr = curr, true, t.nodes[curr].left
				break
			}
			parent, matched, curr = curr, false, t.nodes[curr].right
		}
	}
	// word ended on an existing path, nothing to allocate
}

// link returns the left link of parent when matched is set, else the right
// one. The pointer is only valid until the next allocation.
func (t *tree) link(parent int32, matched bool) *int32 {
	if matched {
		return &t.nodes[parent].left
	}
	return &t.nodes[parent].right
}

func (t *tree) Contains(word string) bool {
	if word == "" {
		return true
	}
	if t.empty() {
		return false
	}

	curr := int32(rootIdx)
	for _, c := range word {
		for {
			if curr == nullIdx {
				return false
			}
			n := &t.nodes[curr]
			if n.value == c {
				curr = n.left
				break
			}
			curr = n.right
		}
	}
	return true
}

func (t *tree) WriteDot(w io.Writer) error {
	dw := newDotWriter(w)
	dw.printf("digraph {\n")
	if !t.empty() {
		t.writeNode(dw, rootIdx, &nullNamer{})
	}
	dw.printf("}")
	return dw.Flush()
}

// dotWriter keeps the first write error and drops everything after it.
type dotWriter struct {
	*bufio.Writer
	err error
}

func newDotWriter(w io.Writer) *dotWriter {
	return &dotWriter{Writer: bufio.NewWriter(w)}
}

func (w *dotWriter) printf(format string, args ...interface{}) {
	if w.err != nil {
		return
	}
	_, w.err = fmt.Fprintf(w.Writer, format, args...)
}

func (w *dotWriter) Flush() error {
	if w.err == nil {
		w.err = w.Writer.Flush()
	}
	if w.err != nil {
		return fmt.Errorf("write dot: %w", w.err)
	}
	return nil
}
