package core

import (
	"errors"

	"github.com/katalvlaran/beliefprop/telemetry"
)

// FactorGraph runs parallel belief propagation over a bipartite graph of
// FactorNode and VariableNode values sharing message type M.
//
// factors and variables are insertion-ordered; variable order is fixed at
// build time and is the reporting order for VariableMarginals. Factor order
// is insertion order, extended by clamp factors FreezeVariable appends.
//
// msgFactorToVar and msgVarToFactor are the two flat, EdgeID-indexed
// message arrays every node's edges slice points into; see doc.go for why
// this layout makes the parallel phases race-free.
type FactorGraph[M Message[M], PF any, PV any, S any] struct {
	factors   []*FactorNode[M, PF]
	variables []*VariableNode[M, PV, S]

	msgFactorToVar []M
	msgVarToFactor []M

	frozen []bool // frozen[v] once FreezeVariable(v) has been called

	logger *telemetry.Logger
}

// NewFactorGraph assembles a FactorGraph from already-constructed nodes and
// message storage. This is the seam the builder package uses; callers
// outside this module should go through builder.Builder instead of calling
// this directly, since it performs no validation of its own.
func NewFactorGraph[M Message[M], PF any, PV any, S any](
	factors []*FactorNode[M, PF],
	variables []*VariableNode[M, PV, S],
	msgFactorToVar []M,
	msgVarToFactor []M,
	logger *telemetry.Logger,
) *FactorGraph[M, PF, PV, S] {
	return &FactorGraph[M, PF, PV, S]{
		factors:        factors,
		variables:      variables,
		msgFactorToVar: msgFactorToVar,
		msgVarToFactor: msgVarToFactor,
		frozen:         make([]bool, len(variables)),
		logger:         logger,
	}
}

// NumFactors returns the current factor count, including any clamp factors
// appended by FreezeVariable.
func (g *FactorGraph[M, PF, PV, S]) NumFactors() int { return len(g.factors) }

// NumVariables returns the fixed variable count established at build time.
func (g *FactorGraph[M, PF, PV, S]) NumVariables() int { return len(g.variables) }

// SetLogger attaches a telemetry.Logger the run loop reports iteration,
// convergence, freeze, and sample events to. A nil logger disables
// reporting (the zero value already behaves this way).
func (g *FactorGraph[M, PF, PV, S]) SetLogger(logger *telemetry.Logger) {
	g.logger = logger
}

// FactorDegrees returns the incidence count of every factor, in insertion
// order.
func (g *FactorGraph[M, PF, PV, S]) FactorDegrees() []int {
	out := make([]int, len(g.factors))
	for i, f := range g.factors {
		out[i] = f.Degree()
	}
	return out
}

// VariableDegrees returns the incidence count of every variable, in
// insertion order.
func (g *FactorGraph[M, PF, PV, S]) VariableDegrees() []int {
	out := make([]int, len(g.variables))
	for i, v := range g.variables {
		out[i] = v.Degree()
	}
	return out
}

// VariableMarginals returns every variable's marginal distribution, in
// insertion order.
func (g *FactorGraph[M, PF, PV, S]) VariableMarginals() []Marginal {
	out := make([]Marginal, len(g.variables))
	for i, v := range g.variables {
		out[i] = v.Payload().Marginal(v.readIncoming(g.msgFactorToVar))
	}
	return out
}

// FactorMarginals returns every factor's joint marginal distribution, in
// insertion order.
func (g *FactorGraph[M, PF, PV, S]) FactorMarginals() []Marginal {
	out := make([]Marginal, len(g.factors))
	for i, f := range g.factors {
		out[i] = f.Payload().Marginal(f.readIncoming(g.msgVarToFactor))
	}
	return out
}

// Factors returns every factor's standalone potential tensor, in insertion
// order.
func (g *FactorGraph[M, PF, PV, S]) Factors() []Marginal {
	out := make([]Marginal, len(g.factors))
	for i, f := range g.factors {
		out[i] = f.Payload().Potential()
	}
	return out
}

// RunMessagePassingParallel runs synchronous-flooding belief propagation
// for up to maxIter iterations. Each iteration evaluates
// every factor concurrently, publishes their messages, then evaluates every
// variable concurrently and publishes theirs; the iteration's discrepancy
// is the max across both phases. The loop stops successfully once
// discrepancy drops below threshold and at least minIter iterations have
// run, or fails once maxIter iterations have been spent without doing so.
func (g *FactorGraph[M, PF, PV, S]) RunMessagePassingParallel(
	maxIter, minIter int,
	threshold float64,
	facSched Scheduler[PF],
	varSched Scheduler[PV],
) (Info, error) {
	history := make([]float64, 0, maxIter)

	for i := 0; i < maxIter; i++ {
		facParams := facSched(i)
		varParams := varSched(i)

		deltaF := parallelMaxFor(len(g.factors), func(k int) float64 {
			n := g.factors[k]
			n.evalMessages(g.msgVarToFactor, facParams)
			d := n.evalDiscrepancy(g.msgFactorToVar)
			n.sendMessages(g.msgFactorToVar)
			return d
		})

		deltaV := parallelMaxFor(len(g.variables), func(k int) float64 {
			n := g.variables[k]
			n.evalMessages(g.msgFactorToVar, varParams)
			d := n.evalDiscrepancy(g.msgVarToFactor)
			n.sendMessages(g.msgVarToFactor)
			return d
		})

		delta := deltaF
		if deltaV > delta {
			delta = deltaV
		}
		history = append(history, delta)
		g.logger.Iteration(i, delta)

		if delta < threshold && i+1 >= minIter {
			g.logger.Converged(i, delta)
			return Info{Iterations: i, LastDiscrepancy: delta, History: history}, nil
		}
	}

	last := 0.0
	if len(history) > 0 {
		last = history[len(history)-1]
	}
	g.logger.Failed(maxIter, last)
	return Info{}, &MessagePassingFailedError{Iterations: maxIter, LastDiscrepancy: last, History: history}
}

// Run is sugar over RunMessagePassingParallel taking a RunConfig built with
// the functional-option helpers in types.go.
func (g *FactorGraph[M, PF, PV, S]) Run(cfg RunConfig[PF, PV]) (Info, error) {
	return g.RunMessagePassingParallel(cfg.MaxIter, cfg.MinIter, cfg.Threshold, cfg.FactorSched, cfg.VariableSched)
}

// FreezeVariable appends a new unary clamp factor emitting message m,
// adjacent to variables[varIx], decimating that variable.
// Freezing the same variable twice is rejected with ErrAlreadyFrozen: repeated
// freezing's semantics are otherwise undefined, so this implementation
// refuses rather than silently producing meaningless marginals.
func (g *FactorGraph[M, PF, PV, S]) FreezeVariable(clamp ClampFactor[M, PF], m M, varIx int) error {
	if varIx < 0 || varIx >= len(g.variables) {
		return &VariableOutOfRangeError{Count: len(g.variables), Index: varIx}
	}
	if g.frozen[varIx] {
		return ErrAlreadyFrozen
	}

	f := clamp.FromMessage(m)
	if f.Degree() != 1 {
		panic("core: ClampFactor.FromMessage returned a factor of degree != 1")
	}

	id := EdgeID(len(g.msgFactorToVar))
	// The clamp factor always emits m regardless of its (absent) input, so
	// both slots of the new edge start at m; the first evaluation will
	// republish m into msgFactorToVar unchanged, so the clamp factor's own
	// discrepancy is zero from the start. The variable-side slot is
	// overwritten by the variable's first update, whose discrepancy against
	// m is generally non-zero.
	g.msgFactorToVar = append(g.msgFactorToVar, m)
	g.msgVarToFactor = append(g.msgVarToFactor, m)

	g.factors = append(g.factors, NewFactorNode[M, PF](f, []EdgeID{id}))
	g.variables[varIx].growEdge(id, m, m)
	g.frozen[varIx] = true

	g.logger.Froze(varIx)
	return nil
}

// Sample performs sequential decimation: for each variable in
// index order, draw a value from its current marginal, freeze it, and run
// RunMessagePassingParallel to repropagate before moving to the next
// variable. The graph is fully clamped on return; callers who need the
// unclamped graph afterwards must Clone before calling Sample.
func (g *FactorGraph[M, PF, PV, S]) Sample(
	maxIter, minIter int,
	threshold float64,
	rng RNG,
	facSched Scheduler[PF],
	varSched Scheduler[PV],
	clamp ClampFactor[M, PF],
) (SamplingInfo[S], error) {
	n := len(g.variables)
	samples := make([]S, n)
	iterations := make([]int, n)
	total := 0

	for i := 0; i < n; i++ {
		v := g.variables[i]
		s := v.Payload().Sample(v.readIncoming(g.msgFactorToVar), rng)
		samples[i] = s

		m := v.Payload().SampleToMessage(s)
		if err := g.FreezeVariable(clamp, m, i); err != nil {
			return SamplingInfo[S]{}, err
		}

		info, err := g.RunMessagePassingParallel(maxIter, minIter, threshold, facSched, varSched)
		if err != nil {
			var mpErr *MessagePassingFailedError
			if ok := errors.As(err, &mpErr); ok {
				return SamplingInfo[S]{}, &SamplingFailedError{
					Frozen:          i,
					TotalIterations: total + mpErr.Iterations,
					LastDiscrepancy: mpErr.LastDiscrepancy,
					History:         mpErr.History,
				}
			}
			return SamplingInfo[S]{}, err
		}

		iterations[i] = info.Iterations
		total += info.Iterations
	}

	g.logger.Sampled(n, total)
	return SamplingInfo[S]{Samples: samples, Iterations: iterations, TotalIterations: total}, nil
}
