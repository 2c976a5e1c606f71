// File: dense.go
// Role: the dense (2-D flat-slice) Cache storage strategy — O(N^2) memory,
// guaranteed O(1) access. Selected via twopath.KindDense.
package twopath

import "github.com/networkee/ergmee/core"

// denseStorage backs every variant with a flat []uint64 sized for the
// bound graph's shape. Symmetric variants (In, Out, Two, A2P, B2P) are
// indexed by a canonicalized (lo,hi) pair so each unordered pair occupies
// exactly one slot.
type denseStorage struct {
	n, nA, nB int
	mix       []uint64 // n*n, ordered
	in        []uint64 // n*n, canonical
	out       []uint64 // n*n, canonical
	two       []uint64 // n*n, canonical
	a2p       []uint64 // nA*nA, canonical
	b2p       []uint64 // nB*nB, canonical
}

func newDenseStorage(g *core.Graph) *denseStorage {
	n := g.N()
	d := &denseStorage{n: n}
	if g.Bipartite() {
		d.nA = g.ModeACount()
		d.nB = n - d.nA
		d.a2p = make([]uint64, d.nA*d.nA)
		d.b2p = make([]uint64, d.nB*d.nB)

		return d
	}
	if g.Directed() {
		d.mix = make([]uint64, n*n)
		d.in = make([]uint64, n*n)
		d.out = make([]uint64, n*n)

		return d
	}
	d.two = make([]uint64, n*n)

	return d
}

func canon(i, j int) (int, int) {
	if i <= j {
		return i, j
	}

	return j, i
}

func (d *denseStorage) get(v Variant, i, j int) uint64 {
	switch v {
	case Mix:
		return d.mix[i*d.n+j]
	case In:
		lo, hi := canon(i, j)

		return d.in[lo*d.n+hi]
	case Out:
		lo, hi := canon(i, j)

		return d.out[lo*d.n+hi]
	case Two:
		lo, hi := canon(i, j)

		return d.two[lo*d.n+hi]
	case A2P:
		lo, hi := canon(i, j)

		return d.a2p[lo*d.nA+hi]
	case B2P:
		lo, hi := canon(i-d.nA, j-d.nA)

		return d.b2p[lo*d.nB+hi]
	default:
		return 0
	}
}

func (d *denseStorage) add(v Variant, i, j int, delta int64) {
	switch v {
	case Mix:
		d.mix[i*d.n+j] = addChecked(d.mix[i*d.n+j], delta)
	case In:
		lo, hi := canon(i, j)
		idx := lo*d.n + hi
		d.in[idx] = addChecked(d.in[idx], delta)
	case Out:
		lo, hi := canon(i, j)
		idx := lo*d.n + hi
		d.out[idx] = addChecked(d.out[idx], delta)
	case Two:
		lo, hi := canon(i, j)
		idx := lo*d.n + hi
		d.two[idx] = addChecked(d.two[idx], delta)
	case A2P:
		lo, hi := canon(i, j)
		idx := lo*d.nA + hi
		d.a2p[idx] = addChecked(d.a2p[idx], delta)
	case B2P:
		lo, hi := canon(i-d.nA, j-d.nA)
		idx := lo*d.nB + hi
		d.b2p[idx] = addChecked(d.b2p[idx], delta)
	}
}

func (d *denseStorage) clear() {
	zero(d.mix)
	zero(d.in)
	zero(d.out)
	zero(d.two)
	zero(d.a2p)
	zero(d.b2p)
}

func zero(s []uint64) {
	for i := range s {
		s[i] = 0
	}
}

// addChecked applies delta to val and panics on underflow: a negative
// result means an upstream caller violated the increment/decrement
// invariant, which is a programming error, not a recoverable condition
// (SPEC_FULL.md §9: no recoverable errors inside the sampler hot path).
func addChecked(val uint64, delta int64) uint64 {
	next := int64(val) + delta
	if next < 0 {
		panic("twopath: counter underflow")
	}

	return uint64(next)
}
