package sorting_test

import (
	"math"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsort/sequence"
	"github.com/katalvlaran/lvsort/sorting"
)

func TestQuick_Empty(t *testing.T) {
	xs := []int{}
	require.NoError(t, sorting.Quick(sequence.Of(xs)))
	assert.Equal(t, []int{}, xs)
}

// TestQuick_SameSeedSameWrites locks pivot determinism: identical seeds
// produce identical write traces, different seeds generally do not.
func TestQuick_SameSeedSameWrites(t *testing.T) {
	input := randomInts(rand.New(rand.NewSource(seedData)), nMaxLen, keySpan)

	run := func(opts ...sorting.Option) []int {
		s := &tracedSeq{data: slices.Clone(input)}
		require.NoError(t, sorting.Quick[int](s, opts...))
		require.True(t, sorting.IsSorted[int](s))
		return s.writes
	}

	a := run(sorting.WithSeed(seedPivot))
	b := run(sorting.WithSeed(seedPivot))
	assert.Equal(t, a, b, "same seed must replay the same pivots")

	assert.Equal(t, run(), run(sorting.WithSeed(0)), "seed 0 selects the default seed")
	assert.NotEqual(t, a, run(sorting.WithSeed(seedPivot+1)))
}

func TestQuick_WithRandAdvancesCallerRNG(t *testing.T) {
	r := rand.New(rand.NewSource(seedPivot))
	ref := rand.New(rand.NewSource(seedPivot))

	xs := []int{4, 2, 9, 1, 7, 3}
	require.NoError(t, sorting.Quick(sequence.Of(xs), sorting.WithRand(r)))
	assert.Equal(t, []int{1, 2, 3, 4, 7, 9}, xs)
	assert.NotEqual(t, ref.Int63(), r.Int63(), "the supplied RNG must have been consumed")
}

func TestQuick_DepthIsLogarithmic(t *testing.T) {
	for name, xs := range map[string][]int{
		"ascending": ascending(nLarge),
		"random":    randomInts(rand.New(rand.NewSource(seedData)), nLarge, keySpan),
	} {
		t.Run(name, func(t *testing.T) {
			logger, logs := observedLogger()
			require.NoError(t, sorting.Quick(sequence.Of(xs), sorting.WithLogger(logger)))
			require.True(t, sorting.IsSorted(sequence.Of(xs)))

			fields := doneFields(t, logs)
			assert.Equal(t, sorting.MethodQuick, fields["algo"])
			assert.Equal(t, int64(nLarge), fields["len"])
			depth, ok := fields["max_depth"].(int64)
			require.True(t, ok)
			assert.LessOrEqual(t, float64(depth), math.Log2(nLarge)+1,
				"only the smaller side recurses, so depth <= log2(n)+1")
		})
	}
}

func TestQuick_AllEqualLarge(t *testing.T) {
	xs := make([]int, nLarge)
	for i := range xs {
		xs[i] = 5
	}
	require.NoError(t, sorting.Quick(sequence.Of(xs)))
	assert.True(t, sorting.IsSorted(sequence.Of(xs)))
}

func ascending(n int) []int {
	xs := make([]int, n)
	for i := range xs {
		xs[i] = i
	}
	return xs
}

// TestQuick_DepthCountsPartitioningCallsOnly checks the logged depth for
// inputs too short to partition and for the smallest that needs one.
func TestQuick_DepthCountsPartitioningCallsOnly(t *testing.T) {
	for _, tc := range []struct {
		name       string
		xs         []int
		partitions int64
		depth      int64
	}{
		{"empty", []int{}, 0, 0},
		{"single", []int{7}, 0, 0},
		{"pair", []int{2, 1}, 1, 1},
	} {
		t.Run(tc.name, func(t *testing.T) {
			logger, logs := observedLogger()
			require.NoError(t, sorting.Quick(sequence.Of(tc.xs), sorting.WithLogger(logger)))
			require.True(t, sorting.IsSorted(sequence.Of(tc.xs)))

			fields := doneFields(t, logs)
			assert.Equal(t, tc.partitions, fields["partitions"])
			assert.Equal(t, tc.depth, fields["max_depth"])
		})
	}
}
