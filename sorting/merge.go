package sorting

import (
	"go.uber.org/zap"
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/lvsort/sequence"
)

// Merge sorts s in ascending order with a top-down merge sort.
//
// Algorithm Outline:
//  1. Allocate one scratch buffer aux of length n.
//  2. sort(lo, hi): if lo >= hi return; mid = lo + (hi-lo)/2;
//     sort(lo, mid); sort(mid+1, hi); merge(lo, mid, hi).
//  3. merge copies s[lo..hi] into aux[lo..hi], then interleaves the halves
//     back into s. On ties the left element goes first. Only the left
//     remainder is drained: the right remainder is already in place.
//
// Complexity: O(n log n) time, O(n) extra space. Stable.
func Merge[T constraints.Ordered](s sequence.Sequence[T], opts ...Option) error {
	return MergeFunc(s, sequence.Compare[T], opts...)
}

// MergeFunc is Merge with a caller-supplied comparator. Elements for which
// cmp returns 0 keep their input order.
func MergeFunc[T any](s sequence.Sequence[T], cmp sequence.CompareFunc[T], opts ...Option) error {
	cfg, err := prepare(MethodMerge, s, cmp, opts)
	if err != nil {
		return err
	}

	n := s.Len()
	if n < 2 {
		cfg.logger.Debug("sorting: done", zap.Int("len", n), zap.Int("merges", 0))
		return nil
	}
	m := &merger[T]{s: s, aux: make([]T, n), cmp: cmp}
	m.sort(0, n-1)

	cfg.logger.Debug("sorting: done", zap.Int("len", n), zap.Int("merges", m.merges))
	return nil
}

// merger carries the state shared by every level of the recursion.
type merger[T any] struct {
	s      sequence.Sequence[T]
	aux    []T
	cmp    sequence.CompareFunc[T]
	merges int
}

// sort orders the inclusive range [lo, hi].
func (m *merger[T]) sort(lo, hi int) {
	if lo >= hi {
		return
	}
	mid := lo + (hi-lo)/2
	m.sort(lo, mid)
	m.sort(mid+1, hi)
	m.merge(lo, mid, hi)
}

// merge combines the sorted runs [lo, mid] and [mid+1, hi].
func (m *merger[T]) merge(lo, mid, hi int) {
	// already ordered across the seam
	if m.cmp(m.s.At(mid), m.s.At(mid+1)) <= 0 {
		return
	}
	m.merges++

	for k := lo; k <= hi; k++ {
		m.aux[k] = m.s.At(k)
	}

	a, b, k := lo, mid+1, lo
	for a <= mid && b <= hi {
		if m.cmp(m.aux[b], m.aux[a]) < 0 {
			m.s.Set(k, m.aux[b])
			b++
		} else {
			m.s.Set(k, m.aux[a])
			a++
		}
		k++
	}
	for a <= mid {
		m.s.Set(k, m.aux[a])
		a++
		k++
	}
}
