// Package generator holds the random state shared by one generation run.
//
// A Generator replaces process-global fake-data sources: everything a record
// builder draws (names, choices, dates, identifiers) comes through it, so a
// fixed seed plus a fixed clock reproduces a run exactly.
package generator

import (
	"math/rand/v2"
	"time"
)

// ProgressEvery is how many records are produced between progress callbacks.
const ProgressEvery = 10

// ProgressFunc receives the number of records produced so far and the target.
type ProgressFunc func(done, total int)

// Generator is the explicit context for one generation run.
type Generator struct {
	rand       *rand.Rand
	names      NameSource
	now        func() time.Time
	onProgress ProgressFunc

	seed   int64
	seeded bool
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed makes the run reproducible. The same seed drives both the random
// source and, unless WithNameSource overrides it, the name source.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
		g.seeded = true
	}
}

// WithNameSource replaces the default name source.
func WithNameSource(names NameSource) Option {
	return func(g *Generator) {
		g.names = names
	}
}

// WithClock anchors relative date windows to now() instead of time.Now.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		g.now = now
	}
}

// WithProgress registers a callback fired every ProgressEvery records and on completion.
func WithProgress(fn ProgressFunc) Option {
	return func(g *Generator) {
		g.onProgress = fn
	}
}

// New builds a Generator. Without WithSeed it is non-deterministic and uses
// the process-global name source.
func New(opts ...Option) *Generator {
	g := &Generator{now: time.Now}
	for _, opt := range opts {
		opt(g)
	}

	if g.seeded {
		s := uint64(g.seed)
		g.rand = rand.New(rand.NewPCG(s, s))
		if g.names == nil {
			g.names = NewSeededNames(g.seed)
		}
	} else {
		g.rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
		if g.names == nil {
			g.names = GlobalNames()
		}
	}

	return g
}

// Names returns the name source of this run.
func (g *Generator) Names() NameSource {
	return g.names
}

// Seeded reports whether the run is reproducible.
func (g *Generator) Seeded() bool {
	return g.seeded
}

// IntN returns a uniform int in [0, n). It panics if n <= 0.
func (g *Generator) IntN(n int) int {
	return g.rand.IntN(n)
}

// Progress reports done/total to the registered callback when due.
func (g *Generator) Progress(done, total int) {
	if g.onProgress == nil {
		return
	}
	if done%ProgressEvery == 0 || done == total {
		g.onProgress(done, total)
	}
}

// Choice returns a uniformly chosen element of items. items must not be empty.
func Choice[T any](g *Generator, items []T) T {
	return items[g.rand.IntN(len(items))]
}

// Sample returns k distinct elements of items in random order.
// k is clamped to len(items).
func Sample[T any](g *Generator, items []T, k int) []T {
	if k > len(items) {
		k = len(items)
	}
	pool := make([]T, len(items))
	copy(pool, items)

	// partial Fisher-Yates: the first k slots end up as the sample
	for i := range k {
		j := i + g.rand.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k]
}
