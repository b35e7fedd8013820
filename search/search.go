package search

import (
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/lvsort/sequence"
)

// Search — bisection with an optional floor/ceil fallback.
//
// Algorithm Outline:
//  1. low = 0, high = n-1, floor = ceil = NotFound.
//  2. While low <= high:
//     mid = low + (high-low)/2
//     S[mid] == v → return mid
//     S[mid] <  v → floor = mid, low  = mid+1
//     S[mid] >  v → ceil  = mid, high = mid-1
//  3. ModeExact → NotFound; ModeFloor → floor; ModeCeil → ceil.
//
// The last index that moved low upward is the greatest one below v, and the
// last that moved high downward is the least one above it, so a single loop
// serves all three modes.
//
// Errors:
//   - ErrNilSequence / ErrNilCompare — missing arguments.
//   - ErrUnknownMode                — mode outside {ModeExact, ModeFloor, ModeCeil}.
//   - ErrNotFound                   — nothing satisfies the mode.
func Search[T constraints.Ordered](s sequence.Sequence[T], target T, mode Mode) (int, error) {
	return SearchFunc(s, target, mode, sequence.Compare[T])
}

// SearchFunc is Search with a caller-supplied comparator. s must be
// ascending under cmp.
func SearchFunc[T any](s sequence.Sequence[T], target T, mode Mode, cmp sequence.CompareFunc[T]) (int, error) {
	return search(MethodSearch, s, target, mode, cmp)
}

// BinarySearch returns an index holding target, or (NotFound, ErrNotFound).
func BinarySearch[T constraints.Ordered](s sequence.Sequence[T], target T) (int, error) {
	return search(MethodBinarySearch, s, target, ModeExact, sequence.Compare[T])
}

// BinarySearchFunc is BinarySearch with a caller-supplied comparator.
func BinarySearchFunc[T any](s sequence.Sequence[T], target T, cmp sequence.CompareFunc[T]) (int, error) {
	return search(MethodBinarySearch, s, target, ModeExact, cmp)
}

// Floor returns an index holding target if one exists, otherwise the
// greatest index whose element is below target.
func Floor[T constraints.Ordered](s sequence.Sequence[T], target T) (int, error) {
	return search(MethodFloor, s, target, ModeFloor, sequence.Compare[T])
}

// FloorFunc is Floor with a caller-supplied comparator.
func FloorFunc[T any](s sequence.Sequence[T], target T, cmp sequence.CompareFunc[T]) (int, error) {
	return search(MethodFloor, s, target, ModeFloor, cmp)
}

// Ceil returns an index holding target if one exists, otherwise the least
// index whose element is above target.
func Ceil[T constraints.Ordered](s sequence.Sequence[T], target T) (int, error) {
	return search(MethodCeil, s, target, ModeCeil, sequence.Compare[T])
}

// CeilFunc is Ceil with a caller-supplied comparator.
func CeilFunc[T any](s sequence.Sequence[T], target T, cmp sequence.CompareFunc[T]) (int, error) {
	return search(MethodCeil, s, target, ModeCeil, cmp)
}

// search validates the arguments and runs the shared bisection loop.
func search[T any](method string, s sequence.Sequence[T], target T, mode Mode, cmp sequence.CompareFunc[T]) (int, error) {
	if err := sequence.Validate(s, cmp); err != nil {
		return NotFound, errors.Wrap(err, method)
	}
	if mode < ModeExact || mode > ModeCeil {
		return NotFound, errors.Wrapf(ErrUnknownMode, "%s: %v", method, mode)
	}

	var (
		low   = 0
		high  = s.Len() - 1
		floor = NotFound
		ceil  = NotFound
		mid   int
		c     int
	)
	for low <= high {
		mid = low + (high-low)/2
		c = cmp(s.At(mid), target)
		switch {
		case c == 0:
			return mid, nil
		case c < 0:
			floor = mid
			low = mid + 1
		default:
			ceil = mid
			high = mid - 1
		}
	}

	var idx int
	switch mode {
	case ModeFloor:
		idx = floor
	case ModeCeil:
		idx = ceil
	default:
		idx = NotFound
	}
	if idx == NotFound {
		return NotFound, errors.Wrap(ErrNotFound, method)
	}

	return idx, nil
}
