package crunchbang

import (
	"fmt"
	"math/rand/v2"

	"codeberg.org/crunchbang/crunchbang/dice"
)

// RNG is the game's single source of randomness. It wraps a PCG generator so
// that its exact state can be saved and restored.
type RNG struct {
	pcg  *rand.PCG
	rand *rand.Rand
	pos  int64 // number of draws since creation
}

// NewRNG returns a generator seeded with the two given values.
func NewRNG(seed1, seed2 uint64) *RNG {
	pcg := rand.NewPCG(seed1, seed2)
	return &RNG{pcg: pcg, rand: rand.New(pcg)}
}

// IntN returns a random int in [0, n). It panics if n <= 0.
func (r *RNG) IntN(n int) int {
	r.pos++
	return r.rand.IntN(n)
}

// Roll returns a random integer in [1, sides].
func (r *RNG) Roll(sides int) int {
	return r.IntN(sides) + 1
}

// RollDice rolls the given dice expression.
func (r *RNG) RollDice(d dice.Dice) int {
	return d.Roll(r)
}

// WeightedSelect returns an index chosen by weighted random selection. Non
// positive weights are never chosen. It returns -1 if no weight is positive.
func (r *RNG) WeightedSelect(weights []int) int {
	total := 0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total == 0 {
		return -1
	}
	roll := r.IntN(total)
	cumulative := 0
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		cumulative += w
		if roll < cumulative {
			return i
		}
	}
	return len(weights) - 1
}

// Shuffle pseudo-randomizes the order of n elements.
func (r *RNG) Shuffle(n int, swap func(i, j int)) {
	r.pos++
	r.rand.Shuffle(n, swap)
}

// Position returns the number of draws made since creation.
func (r *RNG) Position() int64 {
	return r.pos
}

// Rand returns the underlying generator, for use with gruid map generation.
func (r *RNG) Rand() *rand.Rand {
	return r.rand
}

// MarshalBinary returns the generator state.
func (r *RNG) MarshalBinary() ([]byte, error) {
	return r.pcg.MarshalBinary()
}

// RestoreRNG returns a generator in the exact state described by data.
func RestoreRNG(data []byte, pos int64) (*RNG, error) {
	pcg := &rand.PCG{}
	if err := pcg.UnmarshalBinary(data); err != nil {
		return nil, fmt.Errorf("restoring rng: %w", err)
	}
	return &RNG{pcg: pcg, rand: rand.New(pcg), pos: pos}, nil
}
