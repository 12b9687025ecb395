package core

// EdgeID indexes one of the two flat message arrays owned by a FactorGraph.
// A factor and a variable share exactly one EdgeID per incidence; the
// factor writes msgFactorToVar[id] and reads msgVarToFactor[id], the
// variable does the reverse. Builder assigns EdgeIDs sequentially as edges
// are added.
type EdgeID int

// FactorNode owns one Factor payload together with its incidence and
// staging buffers.
type FactorNode[M Message[M], P any] struct {
	payload Factor[M, P]

	// edges[k] is the edge id shared with this node's k-th neighbour
	// variable. len(edges) == payload.Degree() always.
	edges []EdgeID

	// incoming/outgoing are private staging buffers, one slot per
	// neighbour, reused across every call to evalMessages.
	incoming []M
	outgoing []M
}

// NewFactorNode constructs a FactorNode from a Factor payload and the edge
// ids assigned to it by a Builder. len(edges) must equal payload.Degree();
// callers outside this module only reach this via the builder package,
// which enforces that invariant before calling here.
func NewFactorNode[M Message[M], P any](payload Factor[M, P], edges []EdgeID) *FactorNode[M, P] {
	return &FactorNode[M, P]{
		payload:  payload,
		edges:    edges,
		incoming: make([]M, len(edges)),
		outgoing: make([]M, len(edges)),
	}
}

// Degree returns the number of adjacent variables.
func (n *FactorNode[M, P]) Degree() int { return len(n.edges) }

// Payload exposes the underlying Factor for readers (marginals, potential).
func (n *FactorNode[M, P]) Payload() Factor[M, P] { return n.payload }

// evalMessages reads the current variable-published values for every
// incident edge from g.msgVarToFactor, then asks the payload to compute new
// outgoing values into this node's private staging buffer. It must be
// called before evalDiscrepancy/sendMessages in the same phase.
func (n *FactorNode[M, P]) evalMessages(msgVarToFactor []M, params P) {
	for k, e := range n.edges {
		n.incoming[k] = msgVarToFactor[e]
	}
	n.payload.SendMessages(n.incoming, n.outgoing, params)
}

// evalDiscrepancy compares the freshly staged outgoing values against what
// is currently published in msgFactorToVar (i.e. what the neighbour last
// received) and returns the maximum discrepancy across this node's edges.
func (n *FactorNode[M, P]) evalDiscrepancy(msgFactorToVar []M) float64 {
	var maxDelta float64
	for k, e := range n.edges {
		d := n.outgoing[k].Discrepancy(msgFactorToVar[e])
		if d > maxDelta {
			maxDelta = d
		}
	}
	return maxDelta
}

// sendMessages publishes the staged outgoing values into msgFactorToVar,
// making them visible to the variable phase of the same iteration.
func (n *FactorNode[M, P]) sendMessages(msgFactorToVar []M) {
	for k, e := range n.edges {
		msgFactorToVar[e] = n.outgoing[k]
	}
}

// readIncoming copies the current variable-side slots into a freshly
// allocated slice, for use by read-only accessors (FactorMarginals)
// outside the parallel loop.
func (n *FactorNode[M, P]) readIncoming(msgVarToFactor []M) []M {
	out := make([]M, len(n.edges))
	for k, e := range n.edges {
		out[k] = msgVarToFactor[e]
	}
	return out
}
