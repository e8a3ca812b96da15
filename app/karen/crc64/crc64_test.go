package crc64

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCRC64(t *testing.T) {
	hash := New()
	hash.Write([]byte("123456789"))
	sum := hash.Sum64()

	assert.Equal(t, uint64(16845390139448941002), sum)
}

func TestCRC64Reset(t *testing.T) {
	hash := New()
	hash.Write([]byte("garbage that shouldn't matter"))
	hash.Reset()
	hash.Write([]byte("123456789"))

	assert.Equal(t, uint64(16845390139448941002), hash.Sum64())
}

func TestCRC64WriteIncremental(t *testing.T) {
	whole := New()
	whole.Write([]byte("123456789"))

	piecewise := New()
	piecewise.Write([]byte("123"))
	piecewise.Write([]byte("456"))
	piecewise.Write([]byte("789"))

	assert.Equal(t, whole.Sum64(), piecewise.Sum64())
}
