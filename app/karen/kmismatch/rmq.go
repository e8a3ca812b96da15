package kmismatch

import "math/bits"

// rmq answers constant-time range-minimum queries on an array whose
// adjacent entries differ by exactly ±1 (the Euler-tour depth sequence is
// exactly such an array). It implements the Bender–Farach-Colton √log
// block scheme: each block is reduced to a signature, a lookup table
// answers any in-block query by signature, and a sparse table answers any
// whole-block range.
type rmq struct {
	data []int // the ±1 array itself (kept for tie-breaking comparisons)

	blockWidth int // b
	signature  []int // per-block signature, one bit per adjacent rise
	inBlock    multiArray[int] // [signature][l][r] -> block-relative argmin

	sparse multiArray[int] // [y][x] -> absolute index into data, argmin over block range [x, x+2^y)
	numY   int
}

func newRMQ(data []int) *rmq {
	n := len(data)
	if n < 2 {
		panic("kmismatch: rmq requires at least 2 elements")
	}

	b := bitLen(n) / 2
	if b < 1 {
		b = 1
	}

	r := &rmq{data: data, blockWidth: b}
	r.buildInBlockTable()

	nUnits := n / b
	nLast := n % b
	nd := nUnits
	if nLast != 0 {
		nd++
	}
	numY := bitLen(nd) + 1
	r.numY = numY

	r.signature = make([]int, nd)
	r.sparse = newMultiArray[int](numY, nd)

	for i := range nUnits {
		sig := r.blockSignature(data, i*b, b)
		r.signature[i] = sig
		r.sparse.set(i*b+r.inBlock.get(sig, 0, b-1), 0, i)
	}
	if nLast != 0 {
		sig := r.blockSignature(data, nUnits*b, nLast)
		r.signature[nUnits] = sig
		r.sparse.set(nUnits*b+r.inBlock.get(sig, 0, nLast-1), 0, nUnits)
	}

	for y := 0; y < numY-1; y++ {
		for x := 0; x+(1<<(y+1)) <= nd; x++ {
			left := r.sparse.get(y, x)
			right := r.sparse.get(y, x+(1<<y))
			if data[left] <= data[right] {
				r.sparse.set(left, y+1, x)
			} else {
				r.sparse.set(right, y+1, x)
			}
		}
	}

	return r
}

// blockSignature computes the b-bit rise/fall signature of a block of the
// given width starting at offset. Bit j is set iff data[offset+j+1] >
// data[offset+j]; unset (trailing, unused) bits stay zero.
func (r *rmq) blockSignature(data []int, offset, width int) int {
	sig := 0
	for j := 0; j < width-1; j++ {
		if data[offset+j+1]-data[offset+j] > 0 {
			sig |= 1 << j
		}
	}
	return sig
}

// buildInBlockTable precomputes, for every possible b-bit signature and
// every sub-range [l,r] within a block, the block-relative index of the
// minimum of the ±1 "partial sum" walk the signature describes.
func (r *rmq) buildInBlockTable() {
	b := r.blockWidth
	numSignatures := 1 << b
	r.inBlock = newMultiArray[int](numSignatures, b, b)

	for sig := range numSignatures {
		for l := 0; l < b; l++ {
			argmin := l
			value, min := 0, 0
			r.inBlock.set(argmin, sig, l, l)
			for rr := l + 1; rr < b; rr++ {
				bit := sig >> (rr - 1) & 1
				value += bit*2 - 1
				if value < min {
					min = value
					argmin = rr
				}
				r.inBlock.set(argmin, sig, l, rr)
			}
		}
	}
}

// query returns the index, within [l,r] (inclusive), of the minimum value
// of data. Ties are broken by earliest position.
func (r *rmq) query(l, r2 int) int {
	if l > r2 {
		l, r2 = r2, l
	}
	end := r2 + 1 // exclusive

	b := r.blockWidth
	lBlock := (l + b - 1) / b
	rBlock := end / b

	best := l

	better := func(candidate int) {
		if r.data[candidate] < r.data[best] {
			best = candidate
		}
	}

	lSmall := l % b
	rSmall := end % b

	// Candidates are offered left to right so that the strict comparison in
	// better keeps the earliest of equal minima.
	if rBlock < lBlock {
		better(rBlock*b + r.inBlock.get(r.signature[rBlock], lSmall, rSmall-1))
	} else {
		if lBlock*b != l {
			better((lBlock-1)*b + r.inBlock.get(r.signature[lBlock-1], lSmall, b-1))
		}
		if lBlock < rBlock {
			p := bitLen(rBlock - lBlock)
			better(r.sparse.get(p, lBlock))
			better(r.sparse.get(p, rBlock-(1<<p)))
		}
		if rBlock*b != end {
			better(rBlock*b + r.inBlock.get(r.signature[rBlock], 0, rSmall-1))
		}
	}

	return best
}

// bitLen returns floor(log2(n)) for n >= 1, and 0 for n <= 0.
func bitLen(n int) int {
	if n <= 0 {
		return 0
	}
	return bits.Len(uint(n)) - 1
}
