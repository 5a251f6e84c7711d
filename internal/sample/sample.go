// Package sample draws random samples for Monte Carlo error propagation.
package sample

import "math/rand"

// Normal returns n draws from a normal distribution with the given center
// and spread. A zero spread yields n copies of the center.
func Normal(rng *rand.Rand, center, spread float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = center + spread*rng.NormFloat64()
	}
	return out
}

// Bootstrap returns n draws from data with replacement. data must be
// non-empty.
func Bootstrap(rng *rand.Rand, data []float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = data[rng.Intn(len(data))]
	}
	return out
}
