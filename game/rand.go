package game

// Randomizer supplies uniform integers in [0, n). *math/rand.Rand satisfies it.
type Randomizer interface {
	Intn(n int) int
}

// Rand is a xorshift32 generator. It is small enough for the device and
// reproducible from its seed.
type Rand struct {
	state uint32
}

// NewRand seeds a generator. A zero seed is replaced by a fixed constant.
func NewRand(seed uint32) *Rand {
	if seed == 0 {
		seed = 0x9e3779b9
	}
	return &Rand{state: seed}
}

// Uint32 advances the generator.
func (r *Rand) Uint32() uint32 {
	r.state = xorshift32(r.state)
	return r.state
}

// Intn returns a value in [0, n). It panics if n <= 0.
func (r *Rand) Intn(n int) int {
	if n <= 0 {
		panic("game: invalid argument to Intn")
	}
	return int(r.Uint32() % uint32(n))
}

func xorshift32(x uint32) uint32 {
	if x == 0 {
		x = 0x6d2b79f5
	}
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	return x
}
