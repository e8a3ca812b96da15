package index

import trie "github.com/dghubble/trie"

// PathIndex maps a subtitle file's path to the episodes it produced,
// keyed by `/`-separated path segments via dghubble/trie's PathTrie — a
// natural fit for filesystem paths. The cache validity check in Load does
// not consult it, and a cache-loaded corpus leaves it empty.
type PathIndex struct {
	trie *trie.PathTrie
}

func NewPathIndex() *PathIndex {
	return &PathIndex{trie: trie.NewPathTrie()}
}

// Insert records that path produced episodes.
func (idx *PathIndex) Insert(path string, episodes any) {
	idx.trie.Put(path, episodes)
}

// Get returns the episodes recorded for the exact path, or nil.
func (idx *PathIndex) Get(path string) any {
	return idx.trie.Get(path)
}

// WalkPrefix visits every path under prefix (e.g. a directory), calling fn
// with each path and its recorded episodes. Walking stops if fn returns an
// error, which WalkPrefix then returns.
func (idx *PathIndex) WalkPrefix(prefix string, fn func(path string, episodes any) error) error {
	// PathTrie has no prefix-scoped walk; filter a full walk instead.
	return idx.trie.Walk(func(key string, value any) error {
		if len(key) < len(prefix) || key[:len(prefix)] != prefix {
			return nil
		}
		return fn(key, value)
	})
}
