package sorting

import (
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/lvsort/sequence"
)

// IsSorted reports whether s is non-decreasing under sequence.Compare.
// nil and empty sequences are sorted.
func IsSorted[T constraints.Ordered](s sequence.Sequence[T]) bool {
	return IsSortedFunc(s, sequence.Compare[T])
}

// IsSortedFunc reports whether s is non-decreasing under cmp.
// nil and empty sequences are sorted; a nil cmp reports false for any
// sequence with two or more elements.
//
// Complexity: O(n).
func IsSortedFunc[T any](s sequence.Sequence[T], cmp sequence.CompareFunc[T]) bool {
	if s == nil || s.Len() < 2 {
		return true
	}
	if cmp == nil {
		return false
	}
	for i := s.Len() - 1; i > 0; i-- {
		if cmp(s.At(i), s.At(i-1)) < 0 {
			return false
		}
	}
	return true
}

// prepare validates the common arguments of every comparison sort and
// resolves its options.
func prepare[T any](method string, s sequence.Sequence[T], cmp sequence.CompareFunc[T], opts []Option) (*config, error) {
	if err := sequence.Validate(s, cmp); err != nil {
		return nil, errors.Wrap(err, method)
	}

	return newConfig(method, opts)
}
