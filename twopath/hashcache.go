// File: hashcache.go
// Role: the hash-table Cache storage strategy — sub-quadratic memory for
// sparse graphs, zero entries absent. Selected via twopath.KindHash.
package twopath

// hashStorage backs every variant with its own map keyed by a packed pair.
// An absent key is semantically a count of zero; inserting a zero-valued
// entry is forbidden and a decrement to zero deletes the entry, per
// spec.md §3's cache invariant.
type hashStorage struct {
	mix map[uint64]uint64 // ordered key
	in  map[uint64]uint64 // canonical key
	out map[uint64]uint64 // canonical key
	two map[uint64]uint64 // canonical key
	a2p map[uint64]uint64 // canonical key, global node indices
	b2p map[uint64]uint64 // canonical key, global node indices
}

func newHashStorage() *hashStorage {
	return &hashStorage{
		mix: make(map[uint64]uint64),
		in:  make(map[uint64]uint64),
		out: make(map[uint64]uint64),
		two: make(map[uint64]uint64),
		a2p: make(map[uint64]uint64),
		b2p: make(map[uint64]uint64),
	}
}

func packOrdered(i, j int) uint64 {
	return uint64(uint32(i))<<32 | uint64(uint32(j))
}

func packCanonical(i, j int) uint64 {
	lo, hi := canon(i, j)

	return packOrdered(lo, hi)
}

func (h *hashStorage) get(v Variant, i, j int) uint64 {
	switch v {
	case Mix:
		return h.mix[packOrdered(i, j)]
	case In:
		return h.in[packCanonical(i, j)]
	case Out:
		return h.out[packCanonical(i, j)]
	case Two:
		return h.two[packCanonical(i, j)]
	case A2P:
		return h.a2p[packCanonical(i, j)]
	case B2P:
		return h.b2p[packCanonical(i, j)]
	default:
		return 0
	}
}

func (h *hashStorage) add(v Variant, i, j int, delta int64) {
	var m map[uint64]uint64
	var key uint64
	switch v {
	case Mix:
		m, key = h.mix, packOrdered(i, j)
	case In:
		m, key = h.in, packCanonical(i, j)
	case Out:
		m, key = h.out, packCanonical(i, j)
	case Two:
		m, key = h.two, packCanonical(i, j)
	case A2P:
		m, key = h.a2p, packCanonical(i, j)
	case B2P:
		m, key = h.b2p, packCanonical(i, j)
	default:
		return
	}

	next := addChecked(m[key], delta)
	if next == 0 {
		delete(m, key)

		return
	}
	m[key] = next
}

func (h *hashStorage) clear() {
	h.mix = make(map[uint64]uint64)
	h.in = make(map[uint64]uint64)
	h.out = make(map[uint64]uint64)
	h.two = make(map[uint64]uint64)
	h.a2p = make(map[uint64]uint64)
	h.b2p = make(map[uint64]uint64)
}
