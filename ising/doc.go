// Package ising instantiates the core belief-propagation engine for the
// ±1-spin (Ising) model: a scalar log-likelihood-ratio Message, degree-2
// Coupling and degree-1 Clamp factors, a single Variable type whose Sample
// behavior is selected by Rule, and the SumProduct/MaxProduct hyper-
// parameter schedulers.
//
// All arithmetic is carried out in log-domain via LogSumExp/LogSigmoid
// (logsumexp.go) to keep the factor update numerically stable across the
// wide dynamic range a clamp message's saturating constant introduces.
package ising
