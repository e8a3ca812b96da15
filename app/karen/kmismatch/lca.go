package kmismatch

import "sort"

// lca answers lowest-common-ancestor queries between two suffixes of a
// suffix tree, expressed as the string-length of their deepest common
// prefix. It is built once from an Euler tour of the tree, reduced to a
// ±1 range-minimum query over the tour's depth sequence.
type lca struct {
	eulerNodes []int32 // N: node id visited at each step of the tour
	eulerDepth []int   // D: depth of N[i]; a ±1 sequence
	firstIndex []int   // I: first index into eulerNodes where a node id appears
	pathLength []int   // string-length of the root-to-node path, per node id
	leafOfPos  []int32 // leaf node id for the suffix starting at a given position

	depthRMQ *rmq
}

// dfsFrame is one level of the explicit stack standing in for recursion,
// per the design notes' "bound stack usage" guidance: pathological inputs
// (e.g. a run of identical bytes) can make the tree as deep as the string
// is long.
type dfsFrame struct {
	id            int32
	children      []byte
	nextChild     int
	depth, length int
}

func newLCA(t *suffixTree, sourceLen int) *lca {
	numNodes := t.numNodes()
	tourLen := numNodes*2 - 1

	l := &lca{
		firstIndex: make([]int, numNodes),
		pathLength: make([]int, numNodes),
		leafOfPos:  make([]int32, sourceLen),
	}

	nodeBuf := newBuffer[int32](tourLen)
	depthBuf := newBuffer[int](tourLen)

	push := func(id int32, depth, length int) {
		l.pathLength[id] = length
		nodeBuf.push(id)
		depthBuf.push(depth)
	}

	frames := newBuffer[dfsFrame](numNodes)
	push(rootID, 0, 0)
	frames.push(dfsFrame{id: rootID, children: sortedChildKeys(t.nodes[rootID].children)})

	for frames.len() > 0 {
		top := frames.at(frames.len() - 1)

		if top.nextChild < len(top.children) {
			key := top.children[top.nextChild]
			top.nextChild++
			frames.set(frames.len()-1, top)

			childID := t.nodes[top.id].children[key]
			child := &t.nodes[childID]
			childDepth := top.depth + 1
			childLength := top.length + (child.end - child.start)

			push(childID, childDepth, childLength)
			frames.push(dfsFrame{
				id:       childID,
				children: sortedChildKeys(t.nodes[childID].children),
				depth:    childDepth,
				length:   childLength,
			})
			continue
		}

		if len(top.children) == 0 {
			suffixStart := sourceLen - top.length
			l.leafOfPos[suffixStart] = top.id
		}

		frames.pop()
		if frames.len() > 0 {
			parent := frames.at(frames.len() - 1)
			push(parent.id, parent.depth, parent.length)
		}
	}

	l.eulerNodes = nodeBuf.data[:nodeBuf.len()]
	l.eulerDepth = depthBuf.data[:depthBuf.len()]

	seen := make([]bool, numNodes)
	for i, id := range l.eulerNodes {
		if !seen[id] {
			l.firstIndex[id] = i
			seen[id] = true
		}
	}

	l.depthRMQ = newRMQ(l.eulerDepth)

	return l
}

// lcp returns the length of the longest common prefix between the suffix
// of the tree's source string starting at s1 and the one starting at s2.
func (l *lca) lcp(s1, s2 int) int {
	leaf1 := l.leafOfPos[s1]
	leaf2 := l.leafOfPos[s2]
	ancestorIdx := l.depthRMQ.query(l.firstIndex[leaf1], l.firstIndex[leaf2])
	ancestor := l.eulerNodes[ancestorIdx]
	return l.pathLength[ancestor]
}

func sortedChildKeys(children map[byte]int32) []byte {
	keys := make([]byte, 0, len(children))
	for k := range children {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
