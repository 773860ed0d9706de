package tst

import (
	"strconv"
	"strings"
)

var labelEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

func nodeName(idx int32) string {
	return nodePrefix + strconv.Itoa(int(idx))
}

func (nn *nullNamer) name() string {
	name := sentinelPrefix + strconv.Itoa(nn.next)
	nn.next++
	return name
}

func (n *node) label() string {
	return labelEscaper.Replace(string(n.value))
}

// writeNode emits the declaration of the node at idx, its left and right
// edges (declaring a sentinel for each absent child first), then the
// subtrees, left before right.
func (t *tree) writeNode(w *dotWriter, idx int32, nulls *nullNamer) {
	n := t.nodes[idx]
	name := nodeName(idx)
	w.printf("%s [label=\"%s\"];\n", name, n.label())

	for _, child := range [...]int32{n.left, n.right} {
		var childName string
		if child == nullIdx {
			childName = nulls.name()
			w.printf("%s [shape=point];\n", childName)
		} else {
			childName = nodeName(child)
		}
		w.printf("%s -> %s;\n", name, childName)
	}

	if n.left != nullIdx {
		t.writeNode(w, n.left, nulls)
	}
	if n.right != nullIdx {
		t.writeNode(w, n.right, nulls)
	}
}
