package kmismatch

// noSuffixLink marks a node with no suffix link yet (the root, or an
// internal node still mid-construction).
const noSuffixLink = -1

// node is one edge-plus-destination of the suffix tree: start/end are the
// half-open bounds, into the source string, of the edge leading into this
// node from its parent. children is keyed by the leading byte of each
// child edge; Σ=256 makes a map cheaper in practice than a dense 256-slot
// table for all but the densest internal nodes, and preserves the "keys
// unique, order irrelevant" contract §3 asks for. suffixLink is a node id,
// never owning — the arena below owns every node by index.
type node struct {
	start, end int
	children   map[byte]int32
	suffixLink int32
}

func (n *node) edgeLength(pos int) int {
	end := n.end
	if pos+1 < end {
		end = pos + 1
	}
	return end - n.start
}

// suffixTree is Ukkonen's online construction over a byte string whose
// final byte must be unique. Nodes live in a flat arena addressed by
// index, so suffix links are just int32s and teardown is freeing one slice.
type suffixTree struct {
	s     byteView
	nodes []node
}

const rootID int32 = 0

func newSuffixTree(s byteView) *suffixTree {
	t := &suffixTree{s: s}
	t.newNode(0, 0) // root

	activeNode := rootID
	activeEdgeHead := 0
	activeLength := 0
	remainder := 0

	n := s.len()
	for pos := 0; pos < n; pos++ {
		c := s.at(pos)
		remainder++
		var suffixLinkSource int32 = noSuffixLink

		for remainder > 0 {
			if activeLength == 0 {
				activeEdgeHead = pos
			}

			edgeKey := s.at(activeEdgeHead)
			childID, ok := t.nodes[activeNode].children[edgeKey]

			if !ok {
				leaf := t.newNode(pos, n)
				t.nodes[activeNode].children[edgeKey] = leaf
				t.addSuffixLink(&suffixLinkSource, activeNode)
			} else {
				edge := &t.nodes[childID]
				edgeLen := edge.edgeLength(pos)

				if activeLength >= edgeLen {
					activeEdgeHead += edgeLen
					activeLength -= edgeLen
					activeNode = childID
					continue
				}

				if s.at(edge.start+activeLength) == c {
					activeLength++
					t.addSuffixLink(&suffixLinkSource, activeNode)
					break
				}

				splitID := t.newNode(edge.start, edge.start+activeLength)
				split := &t.nodes[splitID]
				edge = &t.nodes[childID] // re-fetch: newNode may grow t.nodes

				split.children[s.at(edge.start+activeLength)] = childID
				edge.start += activeLength

				leaf := t.newNode(pos, n)
				split.children[c] = leaf

				t.nodes[activeNode].children[edgeKey] = splitID
				t.addSuffixLink(&suffixLinkSource, splitID)
			}

			remainder--

			if activeNode == rootID && activeLength > 0 {
				activeLength--
				activeEdgeHead = pos - remainder + 1
			} else if t.nodes[activeNode].suffixLink != noSuffixLink {
				activeNode = t.nodes[activeNode].suffixLink
			} else {
				activeNode = rootID
			}
		}
	}

	return t
}

func (t *suffixTree) newNode(start, end int) int32 {
	id := int32(len(t.nodes))
	t.nodes = append(t.nodes, node{
		start:      start,
		end:        end,
		children:   make(map[byte]int32),
		suffixLink: noSuffixLink,
	})
	return id
}

func (t *suffixTree) addSuffixLink(source *int32, target int32) {
	if *source != noSuffixLink {
		t.nodes[*source].suffixLink = target
	}
	*source = target
}

func (t *suffixTree) numNodes() int { return len(t.nodes) }
