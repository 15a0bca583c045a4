// Package accountnum produces 10-digit account numbers. Each digit is drawn
// independently and uniformly from 0-9; leading zeros are allowed. Uniqueness
// is enforced by the account store at insertion time, not here.
package accountnum

import (
	"math/rand/v2"
	"sync"
)

const numberLength = 10

// Generator wraps an injected random source so number generation stays
// deterministic under test and free of hidden shared state.
type Generator struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func New(src rand.Source) *Generator {
	return &Generator{rnd: rand.New(src)}
}

func (g *Generator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	buf := make([]byte, numberLength)
	for i := range buf {
		buf[i] = byte('0' + g.rnd.IntN(10))
	}
	return string(buf)
}
