package ising

import "github.com/katalvlaran/beliefprop/core"

// Sample is a decimated spin value.
type Sample int8

const (
	SpinUp   Sample = 1
	SpinDown Sample = -1
)

// Variable is the Ising instantiation of core.Variable. Rule selects
// Bernoulli sampling (SumProduct) or mode extraction (MaxProduct, ties
// toward SpinDown); the leave-one-out SendMessages update and the sigmoid
// Marginal are the same for both rules.
type Variable struct {
	Rule Rule
}

func sumMessages(incoming []Message) float64 {
	var total float64
	for _, m := range incoming {
		total += float64(m)
	}
	return total
}

// SendMessages implements outgoing[k] <- (1-gamma)*(sum(incoming)-incoming[k]) + gamma*outgoing[k].
func (v Variable) SendMessages(incoming []Message, outgoing []Message, params VariableParams) {
	sum := sumMessages(incoming)
	gamma := params.Gamma
	for k := range outgoing {
		leaveOneOut := sum - float64(incoming[k])
		outgoing[k] = Message((1-gamma)*leaveOneOut + gamma*float64(outgoing[k]))
	}
}

// Marginal returns [p_up, p_down] = [sigma(sum(incoming)), 1-p_up].
func (v Variable) Marginal(incoming []Message) core.Marginal {
	pUp := Sigmoid(sumMessages(incoming))
	return core.Marginal{Shape: []int{2}, Data: []float64{pUp, 1 - pUp}}
}

// Sample draws SpinUp/SpinDown. Under SumProduct it draws Bernoulli(p_up);
// under MaxProduct it returns the sign of the sum, with ties (sum == 0)
// broken toward SpinDown.
func (v Variable) Sample(incoming []Message, rng core.RNG) Sample {
	sum := sumMessages(incoming)
	if v.Rule == MaxProduct {
		if sum > 0 {
			return SpinUp
		}
		return SpinDown
	}
	if rng.Float64() < Sigmoid(sum) {
		return SpinUp
	}
	return SpinDown
}

// SampleToMessage maps a decimated spin to a saturating log-ratio.
func (v Variable) SampleToMessage(s Sample) Message {
	if s == SpinUp {
		return Message(clampMagnitude)
	}
	return Message(-clampMagnitude)
}
