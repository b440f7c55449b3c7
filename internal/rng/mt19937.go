// Package rng provides the random sources used by the turn generator.
//
// Source is satisfied by *math/rand/v2.Rand and by MT19937, a Mersenne Twister
// whose seeding and derived draws follow CPython's random module bit for bit.
// Recorded reference sequences therefore stay reproducible across languages.
package rng

import "math/bits"

// Source is the random stream consumed by the generator.
// A Source is not safe for concurrent use.
type Source interface {
	// Float64 returns a uniform value in [0, 1).
	Float64() float64
	// IntN returns a uniform value in [0, n). It panics if n <= 0.
	IntN(n int) int
}

const (
	mtN         = 624
	mtM         = 397
	mtMatrixA   = 0x9908b0df
	mtUpperMask = 0x80000000
	mtLowerMask = 0x7fffffff
)

// MT19937 is the 32-bit Mersenne Twister.
type MT19937 struct {
	state [mtN]uint32
	index int
}

// NewMT19937 returns a generator seeded with seed.
func NewMT19937(seed int64) *MT19937 {
	m := &MT19937{}
	m.Seed(seed)
	return m
}

// Seed resets the generator. The absolute value of seed is split into 32-bit
// little-endian words and fed to init_by_array, as CPython does for ints.
func (m *MT19937) Seed(seed int64) {
	u := uint64(seed)
	if seed < 0 {
		u = uint64(-(seed + 1)) + 1
	}
	key := []uint32{uint32(u)}
	if hi := uint32(u >> 32); hi != 0 {
		key = append(key, hi)
	}
	m.initByArray(key)
}

func (m *MT19937) initGenrand(s uint32) {
	m.state[0] = s
	for i := 1; i < mtN; i++ {
		prev := m.state[i-1]
		m.state[i] = 1812433253*(prev^(prev>>30)) + uint32(i)
	}
	m.index = mtN
}

func (m *MT19937) initByArray(key []uint32) {
	m.initGenrand(19650218)
	mt := &m.state
	i, j := 1, 0

	k := max(mtN, len(key))
	for ; k > 0; k-- {
		prev := mt[i-1]
		mt[i] = (mt[i] ^ ((prev ^ (prev >> 30)) * 1664525)) + key[j] + uint32(j)
		i++
		j++
		if i >= mtN {
			mt[0] = mt[mtN-1]
			i = 1
		}
		if j >= len(key) {
			j = 0
		}
	}
	for k = mtN - 1; k > 0; k-- {
		prev := mt[i-1]
		mt[i] = (mt[i] ^ ((prev ^ (prev >> 30)) * 1566083941)) - uint32(i)
		i++
		if i >= mtN {
			mt[0] = mt[mtN-1]
			i = 1
		}
	}
	mt[0] = 0x80000000
}

func (m *MT19937) twist() {
	mt := &m.state
	for k := range mtN {
		y := (mt[k] & mtUpperMask) | (mt[(k+1)%mtN] & mtLowerMask)
		v := mt[(k+mtM)%mtN] ^ (y >> 1)
		if y&1 != 0 {
			v ^= mtMatrixA
		}
		mt[k] = v
	}
	m.index = 0
}

// Uint32 returns the next tempered 32-bit output.
func (m *MT19937) Uint32() uint32 {
	if m.index >= mtN {
		m.twist()
	}
	y := m.state[m.index]
	m.index++

	y ^= y >> 11
	y ^= (y << 7) & 0x9d2c5680
	y ^= (y << 15) & 0xefc60000
	y ^= y >> 18
	return y
}

// Float64 returns a 53-bit uniform value in [0, 1) built from two outputs.
func (m *MT19937) Float64() float64 {
	a := m.Uint32() >> 5
	b := m.Uint32() >> 6
	return (float64(a)*67108864.0 + float64(b)) * (1.0 / 9007199254740992.0)
}

// Bits returns the top k bits of one output, 1 <= k <= 32.
func (m *MT19937) Bits(k int) uint32 {
	return m.Uint32() >> (32 - k)
}

// IntN draws k = bitlen(n) bits and rejects values >= n.
// Only n < 2^32 is supported.
func (m *MT19937) IntN(n int) int {
	if n <= 0 {
		panic("rng: invalid argument to IntN")
	}
	if uint64(n) > 1<<32 {
		panic("rng: IntN bound exceeds 32 bits")
	}
	k := bits.Len(uint(n))
	if k > 32 {
		k = 32
	}
	for {
		r := int(m.Bits(k))
		if r < n {
			return r
		}
	}
}
