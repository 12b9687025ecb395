// Package builder incrementally assembles a core.FactorGraph: variables and
// factors are appended one at a time, with degree and index validation on
// every call, and Build materializes the finished graph.
//
// This package owns validation and bookkeeping; core owns the graph
// representation and the belief-propagation loop. Builder never reaches
// into core's unexported fields; it only calls core.NewFactorNode,
// core.NewVariableNode, and core.NewFactorGraph.
package builder
