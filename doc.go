// Package bdata computes the relaxation integrals of pulsed-beam lifetime
// spectroscopy (β-NMR and μSR measurements).
//
// The probes implant continuously during a beam pulse and decay with a fixed
// lifetime, so the measured polarization at time t is a convolution over
// arrival times of a stretched-exponential relaxation function. There is no
// closed form for β ≠ 1, hence the numerical quadrature: [Integrate] is an
// adaptive tanh-sinh (double exponential) scheme, and [IntegralStrExp] and
// [IntegralMixedStrExp] apply it to the two relaxation shapes. [PulsedStrExp]
// and [PulsedMixedStrExp] build the beam-on/beam-off polarization curves on
// top of those integrals.
//
// All functions are pure and safe for concurrent use. Numeric faults (zero
// lifetime, negative base raised to a non-integer power) follow IEEE-754 and
// are not trapped.
package bdata
