// Package generator carves perfect mazes into fresh grids.
package generator

import (
	"math/rand"
	"time"

	"growmaze/pkg/engine/world"
)

// GridGenerator is an interface for maze generation algorithms
type GridGenerator interface {
	Generate(cols, rows int, start world.Pos) *world.Grid
	Name() string
}

// Source picks a uniform index in [0, n). *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// NewSeededSource returns a math/rand source for the given seed.
// A zero seed means "seed from the clock".
func NewSeededSource(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// DefaultGenerator returns the generator used by new games
func DefaultGenerator(seed int64) GridGenerator {
	return NewBacktracker(NewSeededSource(seed))
}
