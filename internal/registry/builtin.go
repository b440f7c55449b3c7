package registry

import "github.com/vovakirdan/tenpin/internal/rng"

// DefaultSource is the source whose output is fixed per seed across releases.
const DefaultSource = "mt19937"

func init() {
	Register(DefaultSource, "Mersenne Twister (MT19937)", func(seed int64) rng.Source {
		return rng.NewMT19937(seed)
	})
	Register("pcg", "PCG (math/rand/v2)", func(seed int64) rng.Source {
		return rng.NewPCG(seed)
	})
	Register("chacha8", "ChaCha8 (math/rand/v2)", func(seed int64) rng.Source {
		return rng.NewChaCha8(seed)
	})
}
