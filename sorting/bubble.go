package sorting

import (
	"go.uber.org/zap"
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/lvsort/sequence"
)

// Bubble sorts s in ascending order with bubble sort.
//
// Algorithm Outline:
//  1. For pass = 0 .. n-2:
//     for j = 0 .. n-2-pass: swap s[j], s[j+1] if s[j] > s[j+1].
//  2. With WithEarlyExit, stop after a pass that swapped nothing.
//
// By default all n-1 passes run even on sorted input.
//
// Complexity: O(n²) time (O(n) on sorted input with WithEarlyExit),
// O(1) extra space.
func Bubble[T constraints.Ordered](s sequence.Sequence[T], opts ...Option) error {
	return BubbleFunc(s, sequence.Compare[T], opts...)
}

// BubbleFunc is Bubble with a caller-supplied comparator.
func BubbleFunc[T any](s sequence.Sequence[T], cmp sequence.CompareFunc[T], opts ...Option) error {
	cfg, err := prepare(MethodBubble, s, cmp, opts)
	if err != nil {
		return err
	}

	var (
		n      = s.Len()
		passes int
		swaps  int
	)
	for pass := 0; pass < n-1; pass++ {
		swapped := false
		for j := 0; j < n-1-pass; j++ {
			if cmp(s.At(j), s.At(j+1)) > 0 {
				sequence.Swap(s, j, j+1)
				swapped = true
				swaps++
			}
		}
		passes++
		if cfg.earlyExit && !swapped {
			break
		}
	}

	cfg.logger.Debug("sorting: done",
		zap.Int("len", n),
		zap.Int("passes", passes),
		zap.Int("swaps", swaps),
		zap.Bool("early_exit", cfg.earlyExit),
	)
	return nil
}
