// errors.go — re-exported core error sentinels, so callers branch with
// errors.Is against the sentinel regardless of which package returned it.
package builder

import "github.com/katalvlaran/beliefprop/core"

var (
	// ErrDegreeMismatch indicates AddFactor received a neighbour list whose
	// length disagrees with the factor's declared Degree().
	ErrDegreeMismatch = core.ErrDegreeMismatch

	// ErrVariableOutOfRange indicates a variable index was used that is not
	// below the current variable count.
	ErrVariableOutOfRange = core.ErrVariableOutOfRange
)
