package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPathIndexInsertAndGet(t *testing.T) {
	idx := NewPathIndex()
	idx.Insert("/subs/show/ep1.srt", []string{"ep1"})

	got := idx.Get("/subs/show/ep1.srt")
	assert.Equal(t, []string{"ep1"}, got)
	assert.Nil(t, idx.Get("/subs/show/missing.srt"))
}

func TestPathIndexWalkPrefix(t *testing.T) {
	idx := NewPathIndex()
	idx.Insert("/subs/showA/ep1.srt", 1)
	idx.Insert("/subs/showA/ep2.srt", 2)
	idx.Insert("/subs/showB/ep1.srt", 3)

	var seen []string
	err := idx.WalkPrefix("/subs/showA", func(path string, episodes any) error {
		seen = append(seen, path)
		return nil
	})
	assert.NoError(t, err)
	assert.Len(t, seen, 2)
}
