package core

// Marginal is a dense, row-major tensor over the ±-valued support of one or
// more variables: a factor's Marginal has one axis per adjacent variable, a
// variable's Marginal has exactly one axis. Shape[i] is the support size of
// axis i (2 for a binary spin). Data has length equal to the product of
// Shape and sums to 1 within numerical tolerance for every marginal this
// engine returns; a Factor's Potential tensor uses the same layout but need
// not be normalized.
type Marginal struct {
	Shape []int
	Data  []float64
}

// Sum returns the total mass of the tensor. A correctly normalized Marginal
// reports 1 within floating-point tolerance.
func (m Marginal) Sum() float64 {
	var total float64
	for _, v := range m.Data {
		total += v
	}
	return total
}

// Normalize scales Data in place so Sum() == 1. It is a no-op on a
// zero-mass tensor (left unchanged, since there is no meaningful scale to
// apply).
func (m Marginal) Normalize() {
	total := m.Sum()
	if total == 0 {
		return
	}
	for i := range m.Data {
		m.Data[i] /= total
	}
}

// RNG is the sequential random source the engine threads through Sample and
// through message initializers. *math/rand.Rand satisfies it directly; the
// engine never shares an RNG across goroutines.
type RNG interface {
	Float64() float64
	Int63() int64
}

// Scheduler is a pure, cheap, thread-shareable function from iteration
// index to a hyper-parameter value. Run calls it once per iteration outside
// the parallel region, never inside a worker goroutine.
type Scheduler[P any] func(iteration int) P

// Info is the successful result of Run: the iteration at which the
// discrepancy threshold was met, its value, and the full per-iteration
// history (including the final, sub-threshold entry).
type Info struct {
	Iterations      int
	LastDiscrepancy float64
	History         []float64
}

// SamplingInfo is the successful result of Sample: one decimated value and
// one Run-iteration count per variable, in variable-index order.
type SamplingInfo[S any] struct {
	Samples         []S
	Iterations      []int
	TotalIterations int
}

// RunConfig collects the positional arguments of RunMessagePassingParallel
// into a single value that Run accepts, for callers who prefer
// functional-option construction. RunMessagePassingParallel and Sample
// take their parameters positionally; NewRunConfig is sugar layered on top,
// never required.
type RunConfig[PF, PV any] struct {
	MaxIter       int
	MinIter       int
	Threshold     float64
	FactorSched   Scheduler[PF]
	VariableSched Scheduler[PV]
}

// RunOption mutates a RunConfig under construction.
type RunOption[PF, PV any] func(*RunConfig[PF, PV])

// WithMaxIter sets the iteration budget.
func WithMaxIter[PF, PV any](n int) RunOption[PF, PV] {
	return func(c *RunConfig[PF, PV]) { c.MaxIter = n }
}

// WithMinIter sets the minimum number of iterations before convergence may
// be declared.
func WithMinIter[PF, PV any](n int) RunOption[PF, PV] {
	return func(c *RunConfig[PF, PV]) { c.MinIter = n }
}

// WithThreshold sets the discrepancy threshold below which the loop stops.
func WithThreshold[PF, PV any](t float64) RunOption[PF, PV] {
	return func(c *RunConfig[PF, PV]) { c.Threshold = t }
}

// WithFactorScheduler sets the per-iteration factor hyper-parameter
// function.
func WithFactorScheduler[PF, PV any](s Scheduler[PF]) RunOption[PF, PV] {
	return func(c *RunConfig[PF, PV]) { c.FactorSched = s }
}

// WithVariableScheduler sets the per-iteration variable hyper-parameter
// function.
func WithVariableScheduler[PF, PV any](s Scheduler[PV]) RunOption[PF, PV] {
	return func(c *RunConfig[PF, PV]) { c.VariableSched = s }
}

// NewRunConfig builds a RunConfig from functional options, applied
// left-to-right and deterministically.
func NewRunConfig[PF, PV any](opts ...RunOption[PF, PV]) RunConfig[PF, PV] {
	var c RunConfig[PF, PV]
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
