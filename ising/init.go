package ising

import "github.com/katalvlaran/beliefprop/core"

// NewUniformInitializer returns a core.MessageInitializer drawing
// independent Uniform[lower, upper) samples from rng: a stateful,
// non-goroutine-shared generator wrapped in a plain closure rather than
// exposed as a type.
func NewUniformInitializer(lower, upper float64, rng core.RNG) core.MessageInitializer[Message] {
	span := upper - lower
	return func() Message {
		return Message(lower + span*rng.Float64())
	}
}
