package random

const (
	M = uint32(2147483647) // 2^31-1
	A = uint32(16807)      // bits 14, 8, 7, 5, 2, 1, 0
)

// Random is a simple multiplicative congruential generator. It is cheap,
// deterministic for a given seed, and good enough for spreading test
// keys; it is not a source of cryptographic randomness.
type Random struct {
	seed uint32
}

func New(s uint32) *Random {
	r := &Random{}
	if s == 0 || s == 2147483647 {
		s = 1
	}
	r.seed = s & 0x7fffffff

	return r
}

func (r *Random) Next() uint32 {
	product := uint64(r.seed) * uint64(A)
	r.seed = uint32(product>>31) + (uint32(product) & M)

	// The first reduction may overflow by 1 bit
	if r.seed > M {
		r.seed -= M
	}

	return r.seed
}

// Uniform returns a uniformly distributed value in the range [0..n-1]
// REQUIRES: n > 0
func (r *Random) Uniform(n int) uint32 {
	return r.Next() % uint32(n)
}

// OneIn randomly returns true ~"1/n" of the time, and false otherwise.
// REQUIRES: n > 0
func (r *Random) OneIn(n int) bool {
	return (r.Next() % uint32(n)) == 0
}

// Skewed picks "base" uniformly from range [0,maxLog] and then returns
// "base" random bits, biasing exponentially towards smaller numbers.
func (r *Random) Skewed(maxLog int) uint32 {
	return r.Uniform(1 << r.Uniform(maxLog+1))
}
