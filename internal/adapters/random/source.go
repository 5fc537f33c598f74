package random

import (
	"time"

	"golang.org/x/exp/rand"
)

type source struct {
	rnd *rand.Rand
}

// New returns a seeded PCG source. A zero seed is replaced by the clock.
func New(seed uint64) source {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return source{rnd: rand.New(rand.NewSource(seed))}
}

func (s source) Intn(n int) int {
	return s.rnd.Intn(n)
}

func (s source) Heads() bool {
	return s.rnd.Intn(2) == 0
}
