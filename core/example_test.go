package core_test

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/beliefprop/builder"
	"github.com/katalvlaran/beliefprop/core"
	"github.com/katalvlaran/beliefprop/ising"
)

// ExampleFactorGraph_Run demonstrates core.FactorGraph.Run with a RunConfig
// built from the functional-option helpers, on a trivial two-variable
// coupling graph.
func ExampleFactorGraph_Run() {
	b := builder.New[ising.Message, ising.FactorParams, ising.VariableParams, ising.Sample](
		ising.Variable{Rule: ising.SumProduct},
	)
	b.AddVariable()
	b.AddVariable()

	init := ising.NewUniformInitializer(-0.01, 0.01, rand.New(rand.NewSource(1)))
	if _, err := b.AddFactor(ising.Coupling{J: 1.0, Rule: ising.SumProduct}, []int{0, 1}, init); err != nil {
		panic(err)
	}

	g := b.Build()
	cfg := core.NewRunConfig[ising.FactorParams, ising.VariableParams](
		core.WithMaxIter[ising.FactorParams, ising.VariableParams](200),
		core.WithMinIter[ising.FactorParams, ising.VariableParams](1),
		core.WithThreshold[ising.FactorParams, ising.VariableParams](1e-8),
		core.WithFactorScheduler[ising.FactorParams, ising.VariableParams](ising.StandardFactorScheduler(0.1)),
		core.WithVariableScheduler[ising.FactorParams, ising.VariableParams](ising.StandardVariableScheduler(0.1)),
	)

	info, err := g.Run(cfg)
	if err != nil {
		panic(err)
	}

	fmt.Println(info.Iterations >= 0)
	// Output:
	// true
}
