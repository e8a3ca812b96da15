package kmismatch

// sentinel is the byte appended to P||T to force every suffix to end in a
// leaf. It is only a unique terminator if 0x00 occurs in neither P nor T;
// nothing checks this, so callers passing binary payloads must hold that
// precondition themselves (per §7).
const sentinel byte = 0x00

// lcpEngine owns the concatenated string P||T||sentinel, its suffix tree,
// and the LCA index over it, exposing O(1) longest-common-prefix queries
// between any suffix of P and any suffix of T.
type lcpEngine struct {
	concat   []byte
	nP, nT   int
	lca      *lca
}

func newLCPEngine(p, t []byte) *lcpEngine {
	nP, nT := len(p), len(t)
	concat := make([]byte, 0, nP+nT+1)
	concat = append(concat, p...)
	concat = append(concat, t...)
	concat = append(concat, sentinel)

	tree := newSuffixTree(newByteView(concat))

	return &lcpEngine{
		concat: concat,
		nP:     nP,
		nT:     nT,
		lca:    newLCA(tree, len(concat)),
	}
}

// lcp returns the length of the longest common prefix of P[iP..] and
// T[iT..]. Both indices are programmer-supplied and must be in range;
// an out-of-range query panics rather than returning an error, per §7.
func (e *lcpEngine) lcp(iP, iT int) int {
	if iP < 0 || iP >= e.nP {
		panic("kmismatch: lcp query iP out of range")
	}
	if iT < 0 || iT >= e.nT {
		panic("kmismatch: lcp query iT out of range")
	}
	// The suffix of P runs on into T inside concat; cap the shared prefix at
	// the end of P. The suffix of T already stops at the sentinel.
	return min(e.lca.lcp(iP, e.nP+iT), e.nP-iP)
}
