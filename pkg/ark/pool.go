package ark

import (
	"math/rand/v2"
)

// Pool is a consumable, uniformly shuffled ordering over a set of linear
// indices. Draws advance a cursor through the stored permutation; drawn
// indices are never redrawn. Indices consumed through a sibling pool are
// removed from the undrawn remainder via Remove.
//
// A Pool is an explicit buffer plus cursor rather than anything closure
// based, so the cross-pool removal step stays a visible, testable mutation.
type Pool struct {
	indices []int // permutation; [0:cursor] drawn, [cursor:] undrawn
	cursor  int
	total   int // initial size, fixed at construction
}

// NewPool builds a pool over the full index range 1..n.
func NewPool(rng *rand.Rand, n int) *Pool {
	indices := make([]int, n)
	for i := range indices {
		indices[i] = i + 1
	}
	rng.Shuffle(n, func(i, j int) {
		indices[i], indices[j] = indices[j], indices[i]
	})
	return &Pool{indices: indices, total: n}
}

// NewPoolFrom builds a pool over an explicit index set, such as the
// alliterating subset. The input is copied before shuffling.
func NewPoolFrom(rng *rand.Rand, indices []int) *Pool {
	owned := append([]int(nil), indices...)
	rng.Shuffle(len(owned), func(i, j int) {
		owned[i], owned[j] = owned[j], owned[i]
	})
	return &Pool{indices: owned, total: len(owned)}
}

// Draw returns the next k undrawn indices in stored permutation order and
// advances the cursor past them. When k exceeds the undrawn remainder it
// fails with InsufficientCapacityError and mutates nothing.
func (p *Pool) Draw(k int) ([]int, error) {
	if k > p.Remaining() {
		return nil, &InsufficientCapacityError{Requested: k, Remaining: p.Remaining()}
	}
	drawn := append([]int(nil), p.indices[p.cursor:p.cursor+k]...)
	p.cursor += k
	return drawn, nil
}

// Remove deletes the given indices from the undrawn portion of the pool,
// preserving the relative order of the untouched remainder. An index that is
// absent (already drawn here, or never part of this pool) is a no-op.
func (p *Pool) Remove(indices []int) {
	if len(indices) == 0 || p.Remaining() == 0 {
		return
	}
	doomed := make(map[int]bool, len(indices))
	for _, idx := range indices {
		doomed[idx] = true
	}
	kept := p.indices[:p.cursor]
	for _, idx := range p.indices[p.cursor:] {
		if !doomed[idx] {
			kept = append(kept, idx)
		}
	}
	p.indices = kept
}

// Remaining returns the count of undrawn indices.
func (p *Pool) Remaining() int {
	return len(p.indices) - p.cursor
}

// Total returns the pool's initial size. Total()−Remaining() is the number
// of indices issued so far, whether drawn here or removed as consumed by the
// sibling pool.
func (p *Pool) Total() int {
	return p.total
}
