package ising_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/beliefprop/ising"
)

func TestNewUniformInitializer_DrawsWithinBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	init := ising.NewUniformInitializer(-1, 1, rng)

	for i := 0; i < 200; i++ {
		v := float64(init())
		assert.GreaterOrEqual(t, v, -1.0)
		assert.Less(t, v, 1.0)
	}
}

func TestNewUniformInitializer_IsDeterministicForAFixedSeed(t *testing.T) {
	a := ising.NewUniformInitializer(0, 1, rand.New(rand.NewSource(9)))
	b := ising.NewUniformInitializer(0, 1, rand.New(rand.NewSource(9)))

	for i := 0; i < 10; i++ {
		assert.Equal(t, a(), b())
	}
}
