package builder

import (
	"github.com/katalvlaran/beliefprop/core"
	"github.com/katalvlaran/beliefprop/telemetry"
)

// Builder incrementally assembles a core.FactorGraph sharing message type M,
// factor-parameter type PF, variable-parameter type PV, and sample type S.
// The zero value is not usable; construct one with New or NewWithCapacity.
type Builder[M core.Message[M], PF any, PV any, S any] struct {
	variablePayload core.Variable[M, PV, S]

	varEdges   [][]core.EdgeID
	facPayload []core.Factor[M, PF]
	facEdges   [][]core.EdgeID

	msgFactorToVar []M
	msgVarToFactor []M

	logger *telemetry.Logger
}

// New creates an empty Builder. variablePayload is the single Variable
// implementation shared by every variable this Builder will create. The
// Variable interface carries no per-site data, so one value suffices for
// the whole graph (e.g. one ising.Variable fixes the SumProduct/MaxProduct
// rule for every site).
func New[M core.Message[M], PF any, PV any, S any](variablePayload core.Variable[M, PV, S]) *Builder[M, PF, PV, S] {
	return &Builder[M, PF, PV, S]{variablePayload: variablePayload}
}

// NewWithCapacity is New plus pre-sized variable and factor slices, for
// large topologies built by a caller (e.g. a Curie-Weiss or lattice harness) that knows its final
// size in advance.
func NewWithCapacity[M core.Message[M], PF any, PV any, S any](
	variablePayload core.Variable[M, PV, S],
	numVariables, capFactors int,
) *Builder[M, PF, PV, S] {
	b := New[M, PF, PV, S](variablePayload)
	b.varEdges = make([][]core.EdgeID, 0, numVariables)
	b.facPayload = make([]core.Factor[M, PF], 0, capFactors)
	b.facEdges = make([][]core.EdgeID, 0, capFactors)
	return b
}

// WithLogger attaches a telemetry.Logger the resulting graph will report
// run-loop events to, and returns the Builder for chaining.
func (b *Builder[M, PF, PV, S]) WithLogger(logger *telemetry.Logger) *Builder[M, PF, PV, S] {
	b.logger = logger
	return b
}

// AddVariable appends a disconnected variable node and returns its index.
func (b *Builder[M, PF, PV, S]) AddVariable() int {
	b.varEdges = append(b.varEdges, nil)
	return len(b.varEdges) - 1
}

// AddFactor appends f as a new factor node adjacent to the variables named
// by neighbours, and returns the new factor's index.
//
// Validates f.Degree() == len(neighbours) (else *core.DegreeMismatchError)
// and every neighbours[k] < current variable count (else
// *core.VariableOutOfRangeError). init is called twice per edge to obtain
// independent initial values for the factor-side and variable-side message
// slots.
func (b *Builder[M, PF, PV, S]) AddFactor(f core.Factor[M, PF], neighbours []int, init core.MessageInitializer[M]) (int, error) {
	if f.Degree() != len(neighbours) {
		return -1, &core.DegreeMismatchError{Declared: f.Degree(), Provided: len(neighbours)}
	}
	for _, v := range neighbours {
		if v < 0 || v >= len(b.varEdges) {
			return -1, &core.VariableOutOfRangeError{Count: len(b.varEdges), Index: v}
		}
	}

	facIx := len(b.facPayload)
	edges := make([]core.EdgeID, len(neighbours))
	for k, v := range neighbours {
		id := core.EdgeID(len(b.msgFactorToVar))

		// Two independent draws: one for the factor's outgoing/variable's
		// incoming slot, one for the variable's outgoing/factor's incoming
		// slot.
		b.msgFactorToVar = append(b.msgFactorToVar, init())
		b.msgVarToFactor = append(b.msgVarToFactor, init())

		edges[k] = id
		b.varEdges[v] = append(b.varEdges[v], id)
	}

	b.facPayload = append(b.facPayload, f)
	b.facEdges = append(b.facEdges, edges)
	return facIx, nil
}

// Build materializes the finished core.FactorGraph. After Build, further
// topology changes on this Builder are not meaningful; the returned graph
// accepts further mutation only through its own FreezeVariable.
func (b *Builder[M, PF, PV, S]) Build() *core.FactorGraph[M, PF, PV, S] {
	factors := make([]*core.FactorNode[M, PF], len(b.facPayload))
	for i, p := range b.facPayload {
		factors[i] = core.NewFactorNode[M, PF](p, b.facEdges[i])
	}

	variables := make([]*core.VariableNode[M, PV, S], len(b.varEdges))
	for i, edges := range b.varEdges {
		variables[i] = core.NewVariableNode[M, PV, S](b.variablePayload, edges)
	}

	return core.NewFactorGraph[M, PF, PV, S](factors, variables, b.msgFactorToVar, b.msgVarToFactor, b.logger)
}
