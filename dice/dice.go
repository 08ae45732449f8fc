// Package dice parses and rolls dice expressions like "2d6+1".
package dice

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidExpression indicates a malformed dice expression.
var ErrInvalidExpression = errors.New("invalid dice expression")

// Source is the randomness provider for dice rolls. A *rand.Rand from
// math/rand/v2 satisfies it.
type Source interface {
	// IntN returns a non-negative random int in [0, n).
	IntN(n int) int
}

// Dice describes N dice of the given number of sides plus a flat modifier.
// A zero N means a constant value equal to Mod.
type Dice struct {
	N     int // number of dice
	Sides int // sides per die
	Mod   int // flat modifier (may be negative)
}

// Parse parses expressions of the form "NdM", "NdM+K", "NdM-K", "dM" or a
// plain constant "K".
func Parse(s string) (Dice, error) {
	expr := strings.ToLower(strings.TrimSpace(s))
	if expr == "" {
		return Dice{}, fmt.Errorf("%w: empty", ErrInvalidExpression)
	}
	i := strings.IndexByte(expr, 'd')
	if i < 0 {
		k, err := strconv.Atoi(expr)
		if err != nil {
			return Dice{}, fmt.Errorf("%w: %q", ErrInvalidExpression, s)
		}
		return Dice{Mod: k}, nil
	}
	d := Dice{N: 1}
	if i > 0 {
		n, err := strconv.Atoi(expr[:i])
		if err != nil || n <= 0 {
			return Dice{}, fmt.Errorf("%w: bad dice count in %q", ErrInvalidExpression, s)
		}
		d.N = n
	}
	rest := expr[i+1:]
	sides := rest
	if j := strings.IndexAny(rest, "+-"); j >= 0 {
		sides = rest[:j]
		mod, err := strconv.Atoi(rest[j:])
		if err != nil {
			return Dice{}, fmt.Errorf("%w: bad modifier in %q", ErrInvalidExpression, s)
		}
		d.Mod = mod
	}
	m, err := strconv.Atoi(sides)
	if err != nil || m <= 0 {
		return Dice{}, fmt.Errorf("%w: bad sides in %q", ErrInvalidExpression, s)
	}
	d.Sides = m
	return d, nil
}

// MustParse is like Parse but panics on error. It is intended for
// package-level defaults.
func MustParse(s string) Dice {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Roll returns the sum of the dice rolled with src plus the modifier.
func (d Dice) Roll(src Source) int {
	total := d.Mod
	for range d.N {
		total += src.IntN(d.Sides) + 1
	}
	return total
}

// Min returns the smallest possible roll.
func (d Dice) Min() int {
	return d.N + d.Mod
}

// Max returns the largest possible roll.
func (d Dice) Max() int {
	return d.N*d.Sides + d.Mod
}

// IsZero reports whether d is the zero value.
func (d Dice) IsZero() bool {
	return d == Dice{}
}

func (d Dice) String() string {
	if d.N == 0 {
		return strconv.Itoa(d.Mod)
	}
	s := fmt.Sprintf("%dd%d", d.N, d.Sides)
	if d.Mod != 0 {
		s += fmt.Sprintf("%+d", d.Mod)
	}
	return s
}
