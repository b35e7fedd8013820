package sorting

import (
	"go.uber.org/zap"
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/lvsort/sequence"
)

// Selection sorts s in ascending order with selection sort.
//
// Algorithm Outline:
//  1. For boundary = n-1 down to 1:
//     find the first index of the maximum in [0, boundary],
//     swap it into boundary.
//
// Every pass scans the whole unsorted prefix, sorted input included.
//
// Complexity: O(n²) time, O(1) extra space. Not stable.
func Selection[T constraints.Ordered](s sequence.Sequence[T], opts ...Option) error {
	return SelectionFunc(s, sequence.Compare[T], opts...)
}

// SelectionFunc is Selection with a caller-supplied comparator.
func SelectionFunc[T any](s sequence.Sequence[T], cmp sequence.CompareFunc[T], opts ...Option) error {
	cfg, err := prepare(MethodSelection, s, cmp, opts)
	if err != nil {
		return err
	}

	var (
		n     = s.Len()
		swaps int
	)
	for boundary := n - 1; boundary > 0; boundary-- {
		maxIdx := 0
		for j := 1; j <= boundary; j++ {
			if cmp(s.At(j), s.At(maxIdx)) > 0 {
				maxIdx = j
			}
		}
		if maxIdx != boundary {
			sequence.Swap(s, maxIdx, boundary)
			swaps++
		}
	}

	cfg.logger.Debug("sorting: done", zap.Int("len", n), zap.Int("swaps", swaps))
	return nil
}
