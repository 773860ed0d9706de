package tst

const (
	// DOT identifier prefixes
	nodePrefix     = "n"
	sentinelPrefix = "null"

	rootIdx = 0
	nullIdx = -1
)

type (
	tree struct {
		// nodes is the arena; a node's index is its identity
		nodes []node
	}

	node struct {
		value rune
		// left continues the match, right tries an alternative character
		left  int32
		right int32
	}

	// nullNamer mints sentinel names for absent children during one
	// serialization pass.
	nullNamer struct {
		next int
	}
)

func (t *tree) newNode(value rune) int32 {
	t.nodes = append(t.nodes, node{
		value: value,
		left:  nullIdx,
		right: nullIdx,
	})
	return int32(len(t.nodes) - 1)
}

// extend hangs a left spine holding chars below the node at idx.
func (t *tree) extend(idx int32, chars []rune) {
	for _, c := range chars {
		n := t.newNode(c)
		t.nodes[idx].left = n
		idx = n
	}
}

func (t *tree) empty() bool {
	return t == nil || len(t.nodes) == 0
}
