// Package beliefprop is the module root for a belief-propagation engine on
// pairwise factor graphs over discrete variables.
//
// 🚀 What is beliefprop?
//
//	A generic, concurrency-safe library that brings together:
//
//	  • core       — the Message/Factor/Variable interfaces, the bipartite
//	                  FactorNode/VariableNode graph, and the parallel
//	                  sum-product / max-product message-passing loop.
//	  • builder    — incremental graph assembly with degree/index validation.
//	  • ising      — the ±1-spin instantiation: coupling and clamp factors,
//	                  SumProduct/MaxProduct rules, and hyper-parameter
//	                  schedulers.
//	  • telemetry  — structured logging for the run loop.
//
// ✨ Design
//
//   - Generic over payload — core is parameterized by the Message, factor
//     and variable parameter types, and the sample type; ising is one
//     instantiation, not a special case baked into core.
//   - Indirection-free delivery — every edge is a slot in one of two flat
//     arrays; nodes hold edge ids, never pointers into each other's
//     storage, so Clone is a flat copy and freezing never invalidates a
//     handle.
//   - No hidden concurrency — FactorGraph.RunMessagePassingParallel (also
//     reached through Run and Sample) is the only place goroutines are
//     spawned, and only for the two parallel-for phases per iteration.
//
// This package intentionally ships no cmd/, no serialization, and no example
// topology constructors (Curie-Weiss, lattices, random trees) — those are
// callers of this library, not part of it.
//
//	go get github.com/katalvlaran/beliefprop
package beliefprop
