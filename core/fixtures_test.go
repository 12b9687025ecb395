package core_test

import (
	"math"

	"github.com/katalvlaran/beliefprop/core"
)

// testMsg is the minimal core.Message fixture shared by this package's
// tests: a bare float64 with an absolute-difference discrepancy.
type testMsg float64

func (m testMsg) Discrepancy(other testMsg) float64 {
	return math.Abs(float64(m - other))
}

// constFactor always emits a fixed value on every edge regardless of
// incoming or params, letting a test drive RunMessagePassingParallel to a
// known, immediate convergence.
type constFactor struct {
	degree int
	value  testMsg
}

func (f constFactor) Degree() int { return f.degree }

func (f constFactor) SendMessages(incoming []testMsg, outgoing []testMsg, _ struct{}) {
	for k := range outgoing {
		outgoing[k] = f.value
	}
}

func (f constFactor) Marginal(incoming []testMsg) core.Marginal {
	return core.Marginal{Shape: []int{f.degree}, Data: make([]float64, f.degree)}
}

func (f constFactor) Potential() core.Marginal {
	return core.Marginal{Shape: []int{f.degree}, Data: make([]float64, f.degree)}
}

// negateFactor emits the negation of the single other neighbour's last
// value on a degree-2 edge, which never settles under zero damping, for
// exercising the failure-to-converge path deterministically.
type negateFactor struct{}

func (negateFactor) Degree() int { return 2 }

func (negateFactor) SendMessages(incoming []testMsg, outgoing []testMsg, _ struct{}) {
	outgoing[0] = -incoming[1]
	outgoing[1] = -incoming[0]
}

func (negateFactor) Marginal(incoming []testMsg) core.Marginal {
	return core.Marginal{Shape: []int{2}, Data: []float64{0, 0}}
}

func (negateFactor) Potential() core.Marginal {
	return core.Marginal{Shape: []int{2}, Data: []float64{0, 0}}
}

// identityVariable republishes its single incoming value unchanged.
type identityVariable struct{}

func (identityVariable) SendMessages(incoming []testMsg, outgoing []testMsg, _ struct{}) {
	for k := range outgoing {
		outgoing[k] = incoming[k]
	}
}

func (identityVariable) Marginal(incoming []testMsg) core.Marginal {
	return core.Marginal{Shape: []int{1}, Data: []float64{1}}
}

func (identityVariable) Sample(incoming []testMsg, rng core.RNG) int {
	if incoming[0] >= 0 {
		return 1
	}
	return -1
}

func (identityVariable) SampleToMessage(s int) testMsg {
	return testMsg(s) * 1e6
}

// clampTestFactor is the degree-1 factor FreezeVariable attaches in these
// tests, satisfying core.ClampFactor.
type clampTestFactor struct {
	value testMsg
}

func (c clampTestFactor) Degree() int { return 1 }

func (c clampTestFactor) SendMessages(incoming []testMsg, outgoing []testMsg, _ struct{}) {
	outgoing[0] = c.value
}

func (c clampTestFactor) Marginal(incoming []testMsg) core.Marginal {
	return core.Marginal{Shape: []int{1}, Data: []float64{1}}
}

func (c clampTestFactor) Potential() core.Marginal {
	return core.Marginal{Shape: []int{1}, Data: []float64{1}}
}

func (c clampTestFactor) FromMessage(m testMsg) core.ClampFactor[testMsg, struct{}] {
	return clampTestFactor{value: m}
}

// constInit returns a core.MessageInitializer always producing v.
func constInit(v testMsg) core.MessageInitializer[testMsg] {
	return func() testMsg { return v }
}
