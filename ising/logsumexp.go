package ising

import "math"

// LogSumExp returns log(e^a + e^b) computed without overflow.
func LogSumExp(a, b float64) float64 {
	hi, lo := a, b
	if b > a {
		hi, lo = b, a
	}
	if math.IsInf(hi, -1) {
		return hi
	}
	return hi + math.Log1p(math.Exp(lo-hi))
}

// LogSigmoid returns log(sigma(x)) = log(1 / (1 + e^-x)), computed as
// -LogSumExp(0, -x).
func LogSigmoid(x float64) float64 {
	return -LogSumExp(0, -x)
}

// Sigmoid returns 1 / (1 + e^-x).
func Sigmoid(x float64) float64 {
	return math.Exp(LogSigmoid(x))
}
