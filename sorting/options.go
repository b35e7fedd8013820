// SPDX-License-Identifier: MIT
// Package sorting: functional options.
//
// Contract:
//   • Options are functional (type Option func(*config)).
//   • Option constructors validate and panic on meaningless inputs;
//     algorithms themselves never panic.
//   • Quick is deterministic unless the caller supplies its own RNG:
//     no time-based seeding happens anywhere.

package sorting

import (
	"math/rand"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Option customizes a single sort call.
type Option func(*config)

// config is the resolved per-call configuration.
type config struct {
	seed      int64
	rng       *rand.Rand
	earlyExit bool
	logger    *zap.Logger
	onPass    func(pass int, divisor uint64)
}

// newConfig applies opts over the defaults. A nil entry in opts is reported
// as ErrOptionViolation.
func newConfig(method string, opts []Option) (*config, error) {
	c := &config{
		seed:   defaultRNGSeed,
		logger: zap.NewNop(),
		onPass: func(int, uint64) {},
	}
	for i, opt := range opts {
		if opt == nil {
			return nil, errors.Wrapf(ErrOptionViolation, "%s: option %d is nil", method, i)
		}
		opt(c)
	}
	if c.rng == nil {
		c.rng = rngFromSeed(c.seed)
	}
	c.logger = c.logger.With(zap.String("algo", method))

	return c, nil
}

// WithSeed seeds the pivot RNG used by Quick. Seed 0 selects the package
// default seed, so WithSeed(0) behaves exactly like no option.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.seed = seed
		c.rng = nil
	}
}

// WithRand supplies the pivot RNG used by Quick. The RNG is advanced by the
// call and must not be shared across goroutines. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("sorting: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithEarlyExit lets Bubble stop after the first pass that performs no swap.
// Without it Bubble always runs n-1 passes.
func WithEarlyExit() Option {
	return func(c *config) {
		c.earlyExit = true
	}
}

// WithLogger attaches a zap logger; sorts emit Debug entries describing the
// work they did. Panics on nil; the default is zap.NewNop().
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("sorting: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}

// WithOnPass registers a callback invoked by Radix before each digit pass,
// with the zero-based pass number and the divisor 10^pass. A nil fn is
// ignored.
func WithOnPass(fn func(pass int, divisor uint64)) Option {
	return func(c *config) {
		if fn != nil {
			c.onPass = fn
		}
	}
}
