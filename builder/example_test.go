package builder_test

import (
	"fmt"

	"github.com/katalvlaran/beliefprop/builder"
	"github.com/katalvlaran/beliefprop/ising"
)

// ExampleBuilder demonstrates assembling a three-variable chain (two
// pairwise couplings) and inspecting the resulting degree sequence.
func ExampleBuilder() {
	b := builder.New[ising.Message, ising.FactorParams, ising.VariableParams, ising.Sample](
		ising.Variable{Rule: ising.SumProduct},
	)
	for i := 0; i < 3; i++ {
		b.AddVariable()
	}

	zero := func() ising.Message { return 0 }
	mustAdd := func(neighbours []int) {
		if _, err := b.AddFactor(ising.Coupling{J: 1}, neighbours, zero); err != nil {
			panic(err)
		}
	}
	mustAdd([]int{0, 1})
	mustAdd([]int{1, 2})

	g := b.Build()
	fmt.Println(g.VariableDegrees())
	// Output:
	// [1 2 1]
}
