package ising

import (
	"math"

	"github.com/katalvlaran/beliefprop/core"
)

// Coupling is the degree-2 Ising factor: log psi(s1, s2) = J*s1*s2 + H[0]*s1
// + H[1]*s2. Rule selects SumProduct (LogSumExp) or MaxProduct
// (max) aggregation in SendMessages; Marginal and Potential are rule-
// independent (max-product "beliefs" are read the same way, then the
// caller argmaxes them).
type Coupling struct {
	J    float64
	H    [2]float64
	Rule Rule
}

// Degree always returns 2 for a pairwise coupling.
func (c Coupling) Degree() int { return 2 }

func (c Coupling) logPsi(sOut, sIn float64, hOut, hIn float64) float64 {
	return c.J*sOut*sIn + hOut*sOut + hIn*sIn
}

// SendMessages implements the leave-one-out SumProduct/MaxProduct coupling
// update: outgoing[k] is the message to neighbour k computed
// from incoming[1-k], the current outgoing[k] (for damping), and params.
func (c Coupling) SendMessages(incoming []Message, outgoing []Message, params FactorParams) {
	for k := 0; k < 2; k++ {
		other := 1 - k
		m := float64(incoming[other])
		hOut, hIn := c.H[k], c.H[other]

		nuUp := LogSigmoid(m)
		nuDown := LogSigmoid(-m)

		beta := params.Beta
		if c.Rule == MaxProduct {
			beta = 1
		}
		lOuIu := beta * c.logPsi(1, 1, hOut, hIn)
		lOuId := beta * c.logPsi(1, -1, hOut, hIn)
		lOdIu := beta * c.logPsi(-1, 1, hOut, hIn)
		lOdId := beta * c.logPsi(-1, -1, hOut, hIn)

		var newVal float64
		if c.Rule == MaxProduct {
			newVal = math.Max(lOuIu+nuUp, lOuId+nuDown) - math.Max(lOdIu+nuUp, lOdId+nuDown)
		} else {
			newVal = LogSumExp(lOuIu+nuUp, lOuId+nuDown) - LogSumExp(lOdIu+nuUp, lOdId+nuDown)
		}

		gamma := params.Gamma
		outgoing[k] = Message((1-gamma)*newVal + gamma*float64(outgoing[k]))
	}
}

// Marginal returns the joint distribution over the two adjacent spins, in
// the fixed state order (up,up), (up,down), (down,up), (down,down).
func (c Coupling) Marginal(incoming []Message) core.Marginal {
	m1, m2 := float64(incoming[0]), float64(incoming[1])
	states := [2]float64{1, -1}
	data := make([]float64, 0, 4)
	for _, s1 := range states {
		for _, s2 := range states {
			l := c.logPsi(s1, s2, c.H[0], c.H[1])
			data = append(data, math.Exp(l+LogSigmoid(s1*m1)+LogSigmoid(s2*m2)))
		}
	}
	mar := core.Marginal{Shape: []int{2, 2}, Data: data}
	mar.Normalize()
	return mar
}

// Potential returns the standalone tensor psi_f, unnormalized, in the same
// state order as Marginal.
func (c Coupling) Potential() core.Marginal {
	states := [2]float64{1, -1}
	data := make([]float64, 0, 4)
	for _, s1 := range states {
		for _, s2 := range states {
			data = append(data, math.Exp(c.logPsi(s1, s2, c.H[0], c.H[1])))
		}
	}
	return core.Marginal{Shape: []int{2, 2}, Data: data}
}

// Clamp is the degree-1 unary factor FreezeVariable attaches to decimate a
// variable: it emits M verbatim regardless of its input.
type Clamp struct {
	M Message
}

// Degree always returns 1 for a clamp factor.
func (c Clamp) Degree() int { return 1 }

// SendMessages ignores incoming and params and always emits M.
func (c Clamp) SendMessages(incoming []Message, outgoing []Message, params FactorParams) {
	outgoing[0] = c.M
}

// Marginal returns p(s) proportional to exp(LogSigmoid(s*M)), s in {+1,-1}.
func (c Clamp) Marginal(incoming []Message) core.Marginal {
	return c.potential()
}

// Potential returns the same tensor as Marginal: a clamp factor's belief
// does not depend on its (ignored) input.
func (c Clamp) Potential() core.Marginal {
	return c.potential()
}

func (c Clamp) potential() core.Marginal {
	m := float64(c.M)
	data := []float64{math.Exp(LogSigmoid(m)), math.Exp(LogSigmoid(-m))}
	mar := core.Marginal{Shape: []int{2}, Data: data}
	mar.Normalize()
	return mar
}

// FromMessage returns a new Clamp emitting m, satisfying core.ClampFactor.
func (c Clamp) FromMessage(m Message) core.ClampFactor[Message, FactorParams] {
	return Clamp{M: m}
}
