package generator

import (
	"github.com/orayew2002/usergen/domain"
)

// maxDrawAttempts bounds random draws before the pool falls back to probing.
const maxDrawAttempts = 64

// NumberPool hands out distinct integers with a fixed number of digits.
type NumberPool struct {
	min  int
	size int
	used map[int]struct{}
}

// NewNumberPool returns a pool over [10^(digits-1), 10^digits).
func NewNumberPool(digits int) *NumberPool {
	lo, hi := 1, 10
	for i := 1; i < digits; i++ {
		lo *= 10
		hi *= 10
	}
	if digits == 1 {
		lo = 0
	}
	return &NumberPool{min: lo, size: hi - lo, used: make(map[int]struct{})}
}

// Size returns how many distinct values the pool can yield.
func (p *NumberPool) Size() int {
	return p.size
}

// Draw returns an unused number. Random draws are tried first; after
// maxDrawAttempts collisions the pool probes upward from the last draw.
// A full pool fails with domain.ErrExhausted instead of repeating values.
func (p *NumberPool) Draw(g *Generator) (int, error) {
	if len(p.used) >= p.size {
		return 0, domain.NewExhausted("number pool of %d values is exhausted", p.size)
	}

	offset := 0
	for range maxDrawAttempts {
		offset = g.IntN(p.size)
		if p.take(p.min + offset) {
			return p.min + offset, nil
		}
	}

	for i := 1; i < p.size; i++ {
		n := p.min + (offset+i)%p.size
		if p.take(n) {
			return n, nil
		}
	}

	return 0, domain.NewExhausted("number pool of %d values is exhausted", p.size)
}

func (p *NumberPool) take(n int) bool {
	if _, taken := p.used[n]; taken {
		return false
	}
	p.used[n] = struct{}{}
	return true
}
