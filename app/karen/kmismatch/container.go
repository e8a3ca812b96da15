package kmismatch

import "unsafe"

// byteView is a window into a byte slice owned by someone else. It never
// copies; the owner (the concatenated P||T||sentinel buffer built by
// newLCPEngine) must outlive every view taken from it.
type byteView struct {
	data       []byte
	start, end int
}

func newByteView(data []byte) byteView {
	return byteView{data: data, start: 0, end: len(data)}
}

func (v byteView) len() int { return v.end - v.start }

func (v byteView) at(i int) byte {
	if i < 0 || i >= v.len() {
		panic("kmismatch: byteView index out of range")
	}
	return v.data[v.start+i]
}

// slice returns the sub-view [from, to) of v, sharing the same backing array.
func (v byteView) slice(from, to int) byteView {
	if from < 0 || to > v.len() || from > to {
		panic("kmismatch: byteView.slice out of range")
	}
	return byteView{data: v.data, start: v.start + from, end: v.start + to}
}

func (v byteView) bytes() []byte {
	return v.data[v.start:v.end]
}

// string returns v as a string without copying. The returned string is only
// valid as long as the owning buffer is not mutated; the core never mutates
// it after construction, so this is safe for the lifetime of an LCP engine.
func (v byteView) string() string {
	b := v.bytes()
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}

// buffer is a fixed-capacity dense array. It supports O(1) indexed access
// and behaves like a stack up to its capacity via push/pop — exactly the
// append pointer the Euler-tour DFS needs to fill N, D and leaves without
// ever reallocating.
type buffer[T any] struct {
	data []T
	n    int // number of elements pushed so far
}

func newBuffer[T any](capacity int) buffer[T] {
	return buffer[T]{data: make([]T, capacity)}
}

func (b *buffer[T]) push(v T) {
	if b.n >= len(b.data) {
		panic("kmismatch: buffer.push exceeds capacity")
	}
	b.data[b.n] = v
	b.n++
}

func (b *buffer[T]) pop() T {
	if b.n == 0 {
		panic("kmismatch: buffer.pop on empty buffer")
	}
	b.n--
	return b.data[b.n]
}

func (b *buffer[T]) len() int { return b.n }

func (b *buffer[T]) at(i int) T {
	if i < 0 || i >= b.n {
		panic("kmismatch: buffer index out of range")
	}
	return b.data[i]
}

func (b *buffer[T]) set(i int, v T) {
	if i < 0 || i >= b.n {
		panic("kmismatch: buffer index out of range")
	}
	b.data[i] = v
}

// full reports whether the buffer has reached its fixed capacity.
func (b *buffer[T]) full() bool { return b.n == len(b.data) }

// multiArray is a dense array whose shape is fixed at construction. A
// coordinate tuple is mapped to a linear offset via precomputed row
// multipliers, matching the C-order layout of the original MultiArray.
type multiArray[T any] struct {
	data        []T
	dimensions  []int
	multipliers []int // multipliers[i] is the stride of dimension i
}

func newMultiArray[T any](dimensions ...int) multiArray[T] {
	n := 1
	for _, d := range dimensions {
		n *= d
	}

	multipliers := make([]int, len(dimensions))
	stride := 1
	for i := len(dimensions) - 1; i >= 0; i-- {
		multipliers[i] = stride
		stride *= dimensions[i]
	}

	return multiArray[T]{
		data:        make([]T, n),
		dimensions:  dimensions,
		multipliers: multipliers,
	}
}

func (m *multiArray[T]) offset(coordinates ...int) int {
	if len(coordinates) != len(m.dimensions) {
		panic("kmismatch: multiArray coordinate arity mismatch")
	}
	offset := 0
	for i, c := range coordinates {
		if c < 0 || c >= m.dimensions[i] {
			panic("kmismatch: multiArray coordinate out of range")
		}
		offset += c * m.multipliers[i]
	}
	return offset
}

func (m *multiArray[T]) get(coordinates ...int) T {
	return m.data[m.offset(coordinates...)]
}

func (m *multiArray[T]) set(v T, coordinates ...int) {
	m.data[m.offset(coordinates...)] = v
}
