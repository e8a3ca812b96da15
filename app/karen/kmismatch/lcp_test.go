package kmismatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLCPEngineMatchesWithinPattern(t *testing.T) {
	e := newLCPEngine([]byte("banana"), []byte("xxbananaxx"))

	assert.Equal(t, 6, e.lcp(0, 2)) // P[0:] == "banana" aligns fully at T[2:]
}

func TestLCPEngineMismatchBoundary(t *testing.T) {
	e := newLCPEngine([]byte("abc"), []byte("abd"))

	assert.Equal(t, 2, e.lcp(0, 0)) // "abc" vs "abd" share "ab"
}

func TestLCPEngineOutOfRangePanics(t *testing.T) {
	e := newLCPEngine([]byte("abc"), []byte("de"))

	assert.Panics(t, func() { e.lcp(3, 0) })
	assert.Panics(t, func() { e.lcp(-1, 0) })
	assert.Panics(t, func() { e.lcp(0, 2) })
	assert.Panics(t, func() { e.lcp(0, -1) })
}

func TestLCPEngineNoCommonPrefix(t *testing.T) {
	e := newLCPEngine([]byte("abc"), []byte("xyz"))
	assert.Equal(t, 0, e.lcp(0, 0))
}
