package rng

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
)

// NewSeed generates a non-negative seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("rng: read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:]) >> 1), nil
}

// NewPCG returns a math/rand/v2 generator for callers that do not need
// cross-language reproducibility.
func NewPCG(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

// NewChaCha8 returns a math/rand/v2 ChaCha8 generator keyed by seed.
func NewChaCha8(seed int64) *rand.Rand {
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:], uint64(seed))
	return rand.New(rand.NewChaCha8(key))
}

var (
	_ Source = (*MT19937)(nil)
	_ Source = (*rand.Rand)(nil)
)
