package bdata

// IntegralStrExp returns the integral from 0 to tprime of the stretched
// exponential integrand bound to observation time t, i.e. the accumulated
// polarization of probes which arrived before tprime and are observed at t.
// Fitting pipelines call this with tprime = t (or the pulse length).
func IntegralStrExp(t, tprime, lambda, beta, lifetime float64) float64 {
	return Integrate(NewStrExp(t, lambda, beta, lifetime).Evaluate, 0, tprime, bdataConfig().tolerance)
}

// IntegralMixedStrExp is IntegralStrExp for the two-component mixture with
// mixing fraction alpha.
func IntegralMixedStrExp(t, tprime, lambda1, beta1, lambda2, beta2, alpha, lifetime float64) float64 {
	return Integrate(NewMixedStrExp(t, lambda1, beta1, lambda2, beta2, alpha, lifetime).Evaluate, 0, tprime, bdataConfig().tolerance)
}
