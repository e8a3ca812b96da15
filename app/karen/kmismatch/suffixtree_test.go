package kmismatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// walkSuffix follows the tree from the root matching s[pos:] edge by edge
// and returns the total number of characters consumed by the time a leaf
// (a node with no children) is reached.
func walkSuffix(t *suffixTree, s []byte, pos int) int {
	node := &t.nodes[rootID]
	consumed := 0
	cur := pos

	for {
		if len(node.children) == 0 {
			return consumed
		}

		childID, ok := node.children[s[cur]]
		if !ok {
			return consumed
		}
		child := &t.nodes[childID]

		for i := child.start; i < child.end && cur < len(s); i++ {
			if s[i] != s[cur] {
				return consumed
			}
			consumed++
			cur++
		}

		node = child
	}
}

func TestSuffixTreeEveryLeafRecognizesItsFullSuffix(t *testing.T) {
	s := []byte("banana$")
	tree := newSuffixTree(newByteView(s))

	for pos := range s {
		consumed := walkSuffix(tree, s, pos)
		assert.Equal(t, len(s)-pos, consumed, "suffix starting at %d should be fully recognized", pos)
	}
}

func TestSuffixTreeSingleCharacter(t *testing.T) {
	s := []byte("$")
	tree := newSuffixTree(newByteView(s))

	assert.Equal(t, 1, walkSuffix(tree, s, 0))
}

func TestSuffixTreeRepeatedCharacters(t *testing.T) {
	s := []byte("aaaa$")
	tree := newSuffixTree(newByteView(s))

	for pos := range s {
		assert.Equal(t, len(s)-pos, walkSuffix(tree, s, pos))
	}
}

func TestSuffixTreeEdgeLengthClampsToCurrentEnd(t *testing.T) {
	s := []byte("ab$")
	tree := newSuffixTree(newByteView(s))
	n := tree.nodes[rootID]
	assert.NotEmpty(t, n.children)

	// the leaf for suffix "ab$" has edge [0,3): capped at pos+1 early on
	leaf := tree.nodes[n.children['a']]
	assert.Equal(t, 1, leaf.edgeLength(0))
	assert.Equal(t, 3, leaf.edgeLength(2))
}
