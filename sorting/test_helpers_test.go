// Package sorting_test contains shared fixtures for the sorting tests.
//
// Purpose:
//   - One table (intSorters) so every property is checked on every algorithm.
//   - Seeded generators only; no time-based randomness in tests.
//   - A traced Sequence to observe writes, and a zap observer for log fields.

package sorting_test

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/lvsort/sequence"
	"github.com/katalvlaran/lvsort/sorting"
)

// Seeds and sizes used across tests (avoid magic numbers in test bodies).
const (
	seedData  int64 = 2024
	seedPivot int64 = 99

	nRounds = 100
	nMaxLen = 64
	nLarge  = 4096
	keySpan = 1000
)

// intSorter is one sorting entry point instantiated for int.
type intSorter struct {
	name string
	sort func(sequence.Sequence[int], ...sorting.Option) error
}

// intSorters lists every algorithm that accepts []int. All test inputs fed
// through this table are non-negative so Radix can take part.
var intSorters = []intSorter{
	{sorting.MethodSelection, sorting.Selection[int]},
	{sorting.MethodBubble, sorting.Bubble[int]},
	{sorting.MethodMerge, sorting.Merge[int]},
	{sorting.MethodQuick, sorting.Quick[int]},
	{sorting.MethodRadix, sorting.Radix[int]},
}

// funcSorter is one comparator-driven entry point instantiated for record.
type funcSorter struct {
	name   string
	sort   func(sequence.Sequence[record], sequence.CompareFunc[record], ...sorting.Option) error
	stable bool
}

var funcSorters = []funcSorter{
	{sorting.MethodSelection, sorting.SelectionFunc[record], false},
	{sorting.MethodBubble, sorting.BubbleFunc[record], false},
	{sorting.MethodMerge, sorting.MergeFunc[record], true},
	{sorting.MethodQuick, sorting.QuickFunc[record], false},
}

// record is a keyed element whose Tag exposes reordering of equal keys.
type record struct {
	Key int
	Tag string
}

// byKey orders records by Key only.
func byKey(a, b record) int { return sequence.Compare(a.Key, b.Key) }

// randomInts returns n values in [0, span) drawn from r.
func randomInts(r *rand.Rand, n, span int) []int {
	xs := make([]int, n)
	for i := range xs {
		xs[i] = r.Intn(span)
	}
	return xs
}

// randomRecords returns n records with keys in [0, span) tagged by their
// input position.
func randomRecords(r *rand.Rand, n, span int) []record {
	rs := make([]record, n)
	for i := range rs {
		rs[i] = record{Key: r.Intn(span), Tag: string(rune('a' + i%26))}
		rs[i].Tag += string(rune('0' + i/26%10))
	}
	return rs
}

// sortedCopy returns an ascending copy of xs as the reference result.
func sortedCopy(xs []int) []int {
	out := slices.Clone(xs)
	slices.Sort(out)
	return out
}

// requireStableByKey checks that got is xs stably sorted by Key.
func requireStableByKey(t *testing.T, xs, got []record) {
	t.Helper()
	want := slices.Clone(xs)
	slices.SortStableFunc(want, byKey)
	require.Equal(t, want, got)
}

// observedLogger returns a Debug-level zap logger and the sink it writes to.
func observedLogger() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return zap.New(core), logs
}

// doneFields returns the context of the single "sorting: done" entry.
func doneFields(t *testing.T, logs *observer.ObservedLogs) map[string]interface{} {
	t.Helper()
	entries := logs.FilterMessage("sorting: done").All()
	require.Len(t, entries, 1)
	return entries[0].ContextMap()
}

// tracedSeq is a Sequence without a Swap method that records every written
// index, so two runs can be compared write-for-write.
type tracedSeq struct {
	data   []int
	writes []int
}

func (s *tracedSeq) Len() int         { return len(s.data) }
func (s *tracedSeq) At(i int) int     { return s.data[i] }
func (s *tracedSeq) Set(i int, v int) { s.data[i] = v; s.writes = append(s.writes, i) }
