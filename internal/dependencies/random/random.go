package random

import (
	"math/rand/v2"
	"sync"
)

// IDAlphabet is the character set used for generated identifiers
const IDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Random provides random number generation that can be mocked for testing
type Random interface {
	// Intn returns a random int in [0, n)
	Intn(n int) int

	// String generates a random string of the given length from the given alphabet
	String(length int, alphabet string) string
}

// Source implements Random on a PCG generator. It is safe for concurrent use,
// which the tournament runner relies on.
type Source struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New creates a Source seeded from the runtime's entropy
func New() *Source {
	return &Source{rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// NewSeeded creates a reproducible Source
func NewSeeded(seed uint64) *Source {
	return &Source{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Intn returns a random int in [0, n), or 0 if n <= 0
func (r *Source) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.IntN(n)
}

// String generates a random string of the given length from the given alphabet
func (r *Source) String(length int, alphabet string) string {
	if length <= 0 || len(alphabet) == 0 {
		return ""
	}
	result := make([]byte, length)
	for i := 0; i < length; i++ {
		result[i] = alphabet[r.Intn(len(alphabet))]
	}
	return string(result)
}
