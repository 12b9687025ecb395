package core

// VariableNode is symmetric to FactorNode on the variable side.
type VariableNode[M Message[M], P any, S any] struct {
	payload Variable[M, P, S]

	// edges[k] is the edge id shared with this node's k-th neighbour
	// factor. len(edges) grows by one whenever FreezeVariable attaches a
	// clamp factor to this variable.
	edges []EdgeID

	incoming []M
	outgoing []M
}

// NewVariableNode constructs a VariableNode from a Variable payload and the
// edge ids assigned to it by a Builder. The same payload value is typically
// shared across every variable in a graph, since the Variable interface
// carries no per-site data of its own.
func NewVariableNode[M Message[M], P any, S any](payload Variable[M, P, S], edges []EdgeID) *VariableNode[M, P, S] {
	return &VariableNode[M, P, S]{
		payload:  payload,
		edges:    edges,
		incoming: make([]M, len(edges)),
		outgoing: make([]M, len(edges)),
	}
}

// Degree returns the number of adjacent factors.
func (n *VariableNode[M, P, S]) Degree() int { return len(n.edges) }

// Payload exposes the underlying Variable for readers (marginal, sample).
func (n *VariableNode[M, P, S]) Payload() Variable[M, P, S] { return n.payload }

func (n *VariableNode[M, P, S]) evalMessages(msgFactorToVar []M, params P) {
	for k, e := range n.edges {
		n.incoming[k] = msgFactorToVar[e]
	}
	n.payload.SendMessages(n.incoming, n.outgoing, params)
}

func (n *VariableNode[M, P, S]) evalDiscrepancy(msgVarToFactor []M) float64 {
	var maxDelta float64
	for k, e := range n.edges {
		d := n.outgoing[k].Discrepancy(msgVarToFactor[e])
		if d > maxDelta {
			maxDelta = d
		}
	}
	return maxDelta
}

func (n *VariableNode[M, P, S]) sendMessages(msgVarToFactor []M) {
	for k, e := range n.edges {
		msgVarToFactor[e] = n.outgoing[k]
	}
}

func (n *VariableNode[M, P, S]) readIncoming(msgFactorToVar []M) []M {
	out := make([]M, len(n.edges))
	for k, e := range n.edges {
		out[k] = msgFactorToVar[e]
	}
	return out
}

// growEdge appends a new incident edge id (used exclusively by
// FreezeVariable) and grows the staging buffers to match. The caller is
// responsible for providing independently-initialized incoming/outgoing
// values for the new slot.
func (n *VariableNode[M, P, S]) growEdge(e EdgeID, initIncoming, initOutgoing M) {
	n.edges = append(n.edges, e)
	n.incoming = append(n.incoming, initIncoming)
	n.outgoing = append(n.outgoing, initOutgoing)
}
