package sorting

import (
	"math/rand"

	"go.uber.org/zap"
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/lvsort/sequence"
)

// Quick sorts s in ascending order with a randomized quicksort.
//
// Algorithm Outline:
//  1. sort(lo, hi): while lo < hi:
//     p = partition(lo, hi)
//     recurse into the smaller of [lo, p-1] and [p+1, hi],
//     continue the loop on the larger one.
//  2. partition(lo, hi):
//     pick a uniform random pivot index in [lo, hi], swap it to lo;
//     i = lo+1, j = hi; while i <= j:
//     s[i] <= pivot → i++
//     s[j] >= pivot → j--
//     otherwise     → swap(i, j), i++, j--
//     swap(lo, i-1) and return i-1.
//
// Pivots come from the RNG in the options (WithSeed / WithRand). Without
// either, a fixed default seed is used, so results are reproducible.
//
// Complexity: O(n log n) expected time, O(n²) worst case.
// Stack depth is O(log n) because only the smaller side recurses. Not stable.
func Quick[T constraints.Ordered](s sequence.Sequence[T], opts ...Option) error {
	return QuickFunc(s, sequence.Compare[T], opts...)
}

// QuickFunc is Quick with a caller-supplied comparator.
func QuickFunc[T any](s sequence.Sequence[T], cmp sequence.CompareFunc[T], opts ...Option) error {
	cfg, err := prepare(MethodQuick, s, cmp, opts)
	if err != nil {
		return err
	}

	q := &quicker[T]{s: s, cmp: cmp, rng: cfg.rng}
	q.sort(0, s.Len()-1, 1)

	cfg.logger.Debug("sorting: done",
		zap.Int("len", s.Len()),
		zap.Int("partitions", q.partitions),
		zap.Int("max_depth", q.maxDepth),
	)
	return nil
}

// quicker carries the state shared by every level of the recursion.
type quicker[T any] struct {
	s          sequence.Sequence[T]
	cmp        sequence.CompareFunc[T]
	rng        *rand.Rand
	partitions int
	maxDepth   int
}

// sort orders the inclusive range [lo, hi]; depth is the current stack depth.
// Only calls that partition count towards maxDepth.
func (q *quicker[T]) sort(lo, hi, depth int) {
	if lo < hi && depth > q.maxDepth {
		q.maxDepth = depth
	}
	for lo < hi {
		p := q.partition(lo, hi)
		if p-lo < hi-p {
			q.sort(lo, p-1, depth+1)
			lo = p + 1
		} else {
			q.sort(p+1, hi, depth+1)
			hi = p - 1
		}
	}
}

// partition rearranges [lo, hi] around a random pivot and returns the
// pivot's final index: everything before it is <= pivot, everything after
// it is >= pivot.
func (q *quicker[T]) partition(lo, hi int) int {
	q.partitions++

	idx := randomIndex(q.rng, lo, hi)
	pivot := q.s.At(idx)
	sequence.Swap(q.s, lo, idx)

	i, j := lo+1, hi
	for i <= j {
		switch {
		case q.cmp(q.s.At(i), pivot) <= 0:
			i++
		case q.cmp(q.s.At(j), pivot) >= 0:
			j--
		default:
			sequence.Swap(q.s, i, j)
			i++
			j--
		}
	}
	sequence.Swap(q.s, lo, i-1)

	return i - 1
}
