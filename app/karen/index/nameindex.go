// Package index holds small auxiliary lookups over a loaded subtitle
// corpus, built once at startup and read-only afterward.
package index

import radix "github.com/armon/go-radix"

// NameIndex maps an episode name to every *Episode sharing that name (a
// name can span several on-disk subtitle files, per loadMultiEpisode's
// multi-cour splitting) and supports O(prefix length) prefix lookups.
type NameIndex struct {
	tree *radix.Tree
}

func NewNameIndex() *NameIndex {
	return &NameIndex{tree: radix.New()}
}

// episodeEntry is kept as a type alias so the radix tree's interface{}
// values aren't ambiguous about what they hold.
type episodeEntry = any

// Insert records that ep is one of the episodes named name.
func (idx *NameIndex) Insert(name string, ep episodeEntry) {
	existing, ok := idx.tree.Get(name)
	if !ok {
		idx.tree.Insert(name, []episodeEntry{ep})
		return
	}
	list := existing.([]episodeEntry)
	idx.tree.Insert(name, append(list, ep))
}

// Get returns every episode recorded under the exact name.
func (idx *NameIndex) Get(name string) []episodeEntry {
	existing, ok := idx.tree.Get(name)
	if !ok {
		return nil
	}
	return existing.([]episodeEntry)
}

// WithPrefix returns every episode whose name starts with prefix.
func (idx *NameIndex) WithPrefix(prefix string) []episodeEntry {
	var results []episodeEntry
	idx.tree.WalkPrefix(prefix, func(_ string, v any) bool {
		results = append(results, v.([]episodeEntry)...)
		return false
	})
	return results
}

// Len reports the number of distinct episode names recorded.
func (idx *NameIndex) Len() int { return idx.tree.Len() }
