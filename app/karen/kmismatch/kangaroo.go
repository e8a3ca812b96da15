package kmismatch

// Mismatches is the outcome of aligning a pattern against one offset of a
// text: either the pattern matched within the allowed mismatch budget, at
// the given count, or it did not match at all.
type Mismatches struct {
	ok    bool
	count uint32
}

// Ok reports whether the alignment stayed within the mismatch budget.
func (m Mismatches) Ok() bool { return m.ok }

// Count returns the number of mismatches found. It is only meaningful when
// Ok reports true.
func (m Mismatches) Count() uint32 { return m.count }

// Less reports whether both m and other are matches and m has fewer
// mismatches. A non-match is never less than anything, and nothing is less
// than a non-match.
func (m Mismatches) Less(other Mismatches) bool {
	return m.ok && other.ok && m.count < other.count
}

func noMatch() Mismatches { return Mismatches{ok: false} }

func matched(count uint32) Mismatches { return Mismatches{ok: true, count: count} }

// MinKangaroo finds, over every alignment of P against T, the minimum
// number of mismatches observed while jumping past matching runs via LCP
// queries, stopping an alignment early once it exceeds k mismatches.
//
// An alignment i ranges over the closed interval [0, len(T)-len(P)]; when
// len(T) == len(P) there is exactly one alignment, i == 0, and both
// endpoints of the interval coincide, rather than the original
// implementation's off-by-one that skipped it.
func MinKangaroo(k uint32, p, t []byte) Mismatches {
	nP, nT := len(p), len(t)
	if nP == 0 {
		return matched(0)
	}
	if nT < nP {
		return noMatch()
	}

	engine := newLCPEngine(p, t)

	best := noMatch()
	for i := 0; i <= nT-nP; i++ {
		candidate := kangarooAt(engine, k, nP, i)
		if candidate.Ok() && (!best.Ok() || candidate.Less(best)) {
			best = candidate
		}
	}
	return best
}

// kangarooAt counts mismatches for the single alignment of P against
// T[i:i+len(P)], jumping past every run of matching bytes via one LCP
// query per mismatch, for O(k) queries total on a match within budget.
func kangarooAt(engine *lcpEngine, k uint32, nP, i int) Mismatches {
	var mismatches uint32
	pos := 0

	for pos < nP {
		run := engine.lcp(pos, i+pos)
		pos += run
		if pos >= nP {
			break
		}

		mismatches++
		if mismatches > k {
			return noMatch()
		}
		pos++
	}

	return matched(mismatches)
}
