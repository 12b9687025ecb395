// Package core implements the generic belief-propagation engine: message
// passing over a bipartite factor graph of FactorNode and VariableNode
// values, parameterized by the payload types a concrete model (see the
// ising package) supplies.
//
// Storage model: every edge is a slot in one of two flat arrays,
// msgFactorToVar and msgVarToFactor, filled by the builder and owned by the
// FactorGraph after Build, indexed by a global edge id assigned as
// Builder.AddFactor adds each edge. Every node holds only the edge ids it is
// incident to, never a pointer into a neighbour's storage. This removes all
// aliasing concerns, makes Clone a flat copy, and keeps the two parallel
// phases race-free by construction, since two nodes never own the same
// edge id.
//
// Concurrency model: FactorGraph.Run evaluates all factors concurrently,
// then all variables concurrently, once per iteration, via a bounded
// worker-pool parallel-for (see parallel.go). Within a phase every goroutine
// reads only the opposite side's published edge slots and writes only its
// own node's staging buffer plus the edge ids it owns, with no locking
// inside the loop.
package core
