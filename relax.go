package bdata

import "math"

// StrExp is a stretched exponential relaxation integrand bound to a given
// observation time. It weighs the relaxation by the exponential survival
// probability of a probe which arrived at tprime and is observed at T.
type StrExp struct {
	T        float64 // observation time
	Lambda   float64 // relaxation rate, 1/T1
	Beta     float64 // stretching exponent
	Lifetime float64 // probe lifetime
}

// NewStrExp returns a stretched exponential integrand for the given
// observation time, relaxation rate, stretching exponent and probe lifetime.
func NewStrExp(t, lambda, beta, lifetime float64) StrExp {
	return StrExp{T: t, Lambda: lambda, Beta: beta, Lifetime: lifetime}
}

// Evaluate returns exp((tprime-t)/lifetime) * exp(-((t-tprime)*lambda)^beta).
// With a non-integer Beta and tprime > T the power has a negative base and
// returns NaN per IEEE-754: callers integrate over tprime in [0, T].
func (s StrExp) Evaluate(tprime float64) float64 {
	return math.Exp((tprime-s.T)/s.Lifetime) * math.Exp(-math.Pow((s.T-tprime)*s.Lambda, s.Beta))
}

// MixedStrExp is a two-component stretched exponential relaxation integrand:
// a fraction Alpha of the probes relaxes with (Lambda1, Beta1) and the
// remainder with (Lambda2, Beta2).
type MixedStrExp struct {
	T        float64 // observation time
	Lambda1  float64 // relaxation rate of the first component
	Beta1    float64 // stretching exponent of the first component
	Lambda2  float64 // relaxation rate of the second component
	Beta2    float64 // stretching exponent of the second component
	Alpha    float64 // mixing fraction in [0,1]
	Lifetime float64 // probe lifetime
}

// NewMixedStrExp returns a two-component stretched exponential integrand.
// Alpha is not clamped: values outside [0,1] extrapolate the blend.
func NewMixedStrExp(t, lambda1, beta1, lambda2, beta2, alpha, lifetime float64) MixedStrExp {
	return MixedStrExp{T: t, Lambda1: lambda1, Beta1: beta1, Lambda2: lambda2, Beta2: beta2, Alpha: alpha, Lifetime: lifetime}
}

// Evaluate returns the lifetime-weighted blend of the two stretched
// exponential components at tprime. Same domain caveat as StrExp.Evaluate.
func (m MixedStrExp) Evaluate(tprime float64) float64 {
	dt := m.T - tprime
	return math.Exp(-dt/m.Lifetime) *
		(m.Alpha*math.Exp(-math.Pow(dt*m.Lambda1, m.Beta1)) +
			(1-m.Alpha)*math.Exp(-math.Pow(dt*m.Lambda2, m.Beta2)))
}
