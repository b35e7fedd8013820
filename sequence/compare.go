package sequence

import "golang.org/x/exp/constraints"

// Compare returns -1, 0 or +1 depending on whether a is less than, equal to
// or greater than b.
//
// For floating-point types a NaN is considered less than any non-NaN value
// and equal to another NaN, so Compare is a total order even on floats.
//
// Complexity: O(1).
func Compare[T constraints.Ordered](a, b T) int {
	aNaN := isNaN(a)
	bNaN := isNaN(b)
	if aNaN {
		if bNaN {
			return 0
		}
		return -1
	}
	if bNaN {
		return +1
	}
	if a < b {
		return -1
	}
	if a > b {
		return +1
	}
	return 0
}

// Less reports whether a sorts before b under Compare.
func Less[T constraints.Ordered](a, b T) bool {
	return Compare(a, b) < 0
}

// Reverse returns a comparator describing the opposite order of cmp.
// A nil cmp yields nil so that callers still see ErrNilCompare.
func Reverse[T any](cmp CompareFunc[T]) CompareFunc[T] {
	if cmp == nil {
		return nil
	}
	return func(a, b T) int { return cmp(b, a) }
}

// isNaN reports whether x is a NaN without depending on math for every T.
func isNaN[T constraints.Ordered](x T) bool {
	return x != x
}

// Validate returns ErrNilSequence or ErrNilCompare for the first missing
// argument, or nil when both are usable.
func Validate[T any](s Sequence[T], cmp CompareFunc[T]) error {
	if s == nil {
		return ErrNilSequence
	}
	if cmp == nil {
		return ErrNilCompare
	}
	return nil
}
