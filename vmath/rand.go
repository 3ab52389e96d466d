package vmath

import "time"

// FastRand is a xorshift64 generator
// Not safe for concurrent use; the simulation owns one instance per stage
type FastRand struct {
	state uint64
}

// NewFastRand seeds a generator, zero seeds fall back to the clock
func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

// Intn returns a value in [0, n), zero for non-positive n
func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Spread returns Intn(n) - Intn(n), a triangular distribution over (-n, n)
func (r *FastRand) Spread(n int) int {
	return r.Intn(n) - r.Intn(n)
}

// Coin returns true with probability one half
func (r *FastRand) Coin() bool {
	return r.Next()&1 == 1
}
