package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParallelMaxFor_EmptyRange(t *testing.T) {
	assert.Equal(t, 0.0, parallelMaxFor(0, func(int) float64 { return 99 }))
}

func TestParallelMaxFor_ReturnsMax(t *testing.T) {
	values := []float64{3, 1, 4, 1, 5, 9, 2, 6}
	got := parallelMaxFor(len(values), func(i int) float64 { return values[i] })
	assert.Equal(t, 9.0, got)
}

func TestParallelMaxFor_SingleElement(t *testing.T) {
	got := parallelMaxFor(1, func(int) float64 { return -3 })
	// fn(0) = -3 but the zero-initialized local max never drops below 0.
	assert.Equal(t, 0.0, got)
}
