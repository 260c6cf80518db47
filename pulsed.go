package bdata

import (
	"math"

	"github.com/gonum/floats"
)

// PulsedStrExp returns the average polarization at time t for a beam pulse of
// length delta. Probes arrive at a constant rate while the beam is on and
// decay with the probe lifetime, so the measurement is the arrival-time
// convolution of the stretched exponential, normalized by the number of
// probes still alive at t:
//
//	P(t) = I(t, min(t,Δ)) / (τ·(1-exp(-min(t,Δ)/τ))·exp(-(t-min(t,Δ))/τ))
//
// where I is IntegralStrExp. At t = 0 both numerator and denominator vanish
// and the result is NaN; callers evaluate at strictly positive times.
func PulsedStrExp(t, delta, lambda, beta, lifetime float64) float64 {
	on := math.Min(t, delta)
	num := IntegralStrExp(t, on, lambda, beta, lifetime)
	return num / pulseNorm(t, on, lifetime)
}

// PulsedMixedStrExp is PulsedStrExp for the two-component mixture with
// mixing fraction alpha.
func PulsedMixedStrExp(t, delta, lambda1, beta1, lambda2, beta2, alpha, lifetime float64) float64 {
	on := math.Min(t, delta)
	num := IntegralMixedStrExp(t, on, lambda1, beta1, lambda2, beta2, alpha, lifetime)
	return num / pulseNorm(t, on, lifetime)
}

// pulseNorm returns the number of live probes at t (per unit arrival rate)
// for a beam which was on during [0, on].
func pulseNorm(t, on, lifetime float64) float64 {
	return lifetime * (1 - math.Exp(-on/lifetime)) * math.Exp(-(t-on)/lifetime)
}

// PolarizationCurve samples f at n evenly spaced times spanning [t0, t1] and
// returns the grid along with the sampled values.
func PolarizationCurve(f func(float64) float64, t0, t1 float64, n int) (times, values []float64) {
	times = floats.Span(make([]float64, n), t0, t1)
	values = make([]float64, n)
	for i, t := range times {
		values[i] = f(t)
	}
	return
}
