package sorting

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/lvsort/sequence"
)

// radixBase is the number of buckets per digit pass.
const radixBase = 10

// Radix sorts non-negative integers in ascending order with an LSD decimal
// radix sort.
//
// Algorithm Outline:
//  1. Reject the input with ErrNegativeKey if any element is negative.
//  2. d = DigitCount(max); an empty sequence needs no pass.
//  3. For pass = 0 .. d-1 with divisor = 10^pass:
//     copy s into tmp; count digit (v/divisor)%10 into 10 buckets;
//     turn counts into prefix sums; walk tmp back to front and write each
//     element to s[--count[digit]].
//
// Back-to-front placement keeps equal digits in input order, which is what
// makes the later passes correct.
//
// Complexity: O(d·n) time, O(n) extra space. Stable.
func Radix[T constraints.Integer](s sequence.Sequence[T], opts ...Option) error {
	if s == nil {
		return errors.Wrap(sequence.ErrNilSequence, MethodRadix)
	}
	var zero T
	for i, n := 0, s.Len(); i < n; i++ {
		if v := s.At(i); v < zero {
			return errors.Wrapf(ErrNegativeKey, "%s: element %d is %d", MethodRadix, i, v)
		}
	}

	return radix(MethodRadix, s, func(v T) uint64 { return uint64(v) }, opts)
}

// RadixByKey sorts s in ascending order of key(v) with the same LSD decimal
// radix sort as Radix. Elements with equal keys keep their input order.
// key is called O(d·n) times and must be deterministic.
func RadixByKey[T any](s sequence.Sequence[T], key func(T) uint64, opts ...Option) error {
	if s == nil {
		return errors.Wrap(sequence.ErrNilSequence, MethodRadix)
	}
	if key == nil {
		return errors.Wrap(ErrNilKey, MethodRadix)
	}

	return radix(MethodRadix, s, key, opts)
}

// DigitCount returns the number of decimal digits of |v|. Zero has one
// digit.
//
// Complexity: O(digits).
func DigitCount[T constraints.Integer](v T) int {
	var zero T
	var u uint64
	if v < zero {
		// -(v+1) cannot overflow, even for the minimum value of T.
		u = uint64(-(v + 1)) + 1
	} else {
		u = uint64(v)
	}

	return digitCount(u)
}

// digitCount returns the number of decimal digits of u, at least 1.
func digitCount(u uint64) int {
	d := 1
	for u >= radixBase {
		u /= radixBase
		d++
	}
	return d
}

// radix runs the digit passes over already validated input.
func radix[T any](method string, s sequence.Sequence[T], key func(T) uint64, opts []Option) error {
	cfg, err := newConfig(method, opts)
	if err != nil {
		return err
	}

	n := s.Len()
	passes := 0
	if n > 0 {
		var maxKey uint64
		for i := 0; i < n; i++ {
			if k := key(s.At(i)); k > maxKey {
				maxKey = k
			}
		}
		passes = digitCount(maxKey)

		tmp := make([]T, n)
		divisor := uint64(1)
		for pass := 0; pass < passes; pass++ {
			cfg.onPass(pass, divisor)
			radixPass(s, tmp, key, divisor)
			cfg.logger.Debug("sorting: radix pass", zap.Int("pass", pass), zap.Uint64("divisor", divisor))
			if pass+1 < passes {
				divisor *= radixBase
			}
		}
	}

	cfg.logger.Debug("sorting: done", zap.Int("len", n), zap.Int("passes", passes))
	return nil
}

// radixPass is one stable counting sort of s keyed on the digit selected by
// divisor. tmp must have length s.Len().
func radixPass[T any](s sequence.Sequence[T], tmp []T, key func(T) uint64, divisor uint64) {
	var count [radixBase]int
	for i := range tmp {
		tmp[i] = s.At(i)
		count[(key(tmp[i])/divisor)%radixBase]++
	}
	for d := 1; d < radixBase; d++ {
		count[d] += count[d-1]
	}
	for i := len(tmp) - 1; i >= 0; i-- {
		d := (key(tmp[i]) / divisor) % radixBase
		count[d]--
		s.Set(count[d], tmp[i])
	}
}
