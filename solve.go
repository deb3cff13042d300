// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2025.10.5
//

// Implements the inverse problems: recover the altitude that produces a
// target density, pressure, dynamic pressure or equivalent airspeed.
// The forward model is piecewise-analytic with no closed-form inverse,
// so a secant iteration with a fixed probe step is used. All four
// target quantities are monotonically decreasing in altitude over
// 0..300k ft, which the iteration relies on.

package stdatm

import (
	"math"

	"gonum.org/v1/gonum/diff/fd"
)

// Iteration constants for the altitude solvers
const (
	SOLVE_STEP      = 500.0  // Probe step for the local slope [ft]
	SOLVE_START     = 5000.0 // Initial altitude estimate [ft]
	SOLVE_TOL       = 5.0    // Convergence threshold between estimates [ft]
	SOLVE_MAX_LOOP  = 20     // Maximum number of iteration loops
	SOLVE_WARN_LOOP = 18     // Report the loop count above this
)

// solveAlt inverts the forward quantity f for the given target value.
// The local slope comes from a forward difference over SOLVE_STEP, and
// each iteration takes one Newton-style step toward the target. When
// the loop cap is hit the last estimate is returned as a best-effort
// result, never an error; a diagnostic is printed instead.
func solveAlt(target float64, f func(z float64) float64) float64 {
	settings := &fd.Settings{Formula: fd.Forward, Step: SOLVE_STEP}
	altOld := 0.0
	alt := SOLVE_START
	n := 0
	for math.Abs(alt-altOld) > SOLVE_TOL && n < SOLVE_MAX_LOOP {
		altOld = alt
		slope := fd.Derivative(f, altOld, settings)
		alt = altOld + (target-f(altOld))/slope
		n++
		PrintD(2, "solveAlt: n=%d alt=%.3f\n", n, alt)
	}
	PrintAIf(n > SOLVE_WARN_LOOP, "solveAlt: n = %d\n", n)
	return alt
}

// AltForDensity returns the altitude [ft] at which the profile density
// equals density [slug/ft^3].
func AltForDensity(density float64) float64 {
	return solveAlt(density, func(z float64) float64 {
		return pressureFt(z) / (Rair * temperatureFt(z))
	})
}

// AltForPressure returns the altitude at which the profile pressure
// equals pressure.
//
// Parameters:
//   - pressureUnits: psf, psi, Pa
//   - altUnits: ft, m, kft (output)
func AltForPressure(pressure float64, pressureUnits, altUnits string) (float64, error) {
	p, err := ConvertPressure(pressure, pressureUnits, "psf")
	if err != nil {
		return 0, err
	}
	alt := solveAlt(p, pressureFt)
	return ConvertAltitude(alt, "ft", altUnits)
}

// AltForQMach returns the altitude at which the dynamic pressure at the
// given Mach number equals q. The target is converted to a static
// pressure (p = 2q/(gamma*M^2)) and the pressure profile inverted,
// since pressure is the simpler monotonic function of altitude.
// With si, q is in Pa and the result in m; otherwise psf and ft.
func AltForQMach(q, mach float64, si bool) float64 {
	p := 2.0 * q / (GAMMA * SQ(mach))
	if si {
		p /= PSF2PA
	}
	alt := solveAlt(p, pressureFt)
	if si {
		return alt * FT2M
	}
	return alt
}

// AltForEasMach returns the altitude at which the equivalent airspeed
// at the given Mach number equals eas. EAS depends on both temperature
// and pressure, so the relation is inverted directly.
//
// Parameters:
//   - velocityUnits: ft/s, m/s, in/s, knots
//   - altUnits: ft, m, kft (output)
func AltForEasMach(eas, mach float64, velocityUnits, altUnits string) (float64, error) {
	v, err := ConvertVelocity(eas, velocityUnits, "ft/s")
	if err != nil {
		return 0, err
	}
	// eas(z) = a * M * sqrt(p/T) * k with k = sqrt(T0/p0)
	k := math.Sqrt(temperatureFt(0.0) / pressureFt(0.0))
	alt := solveAlt(v, func(z float64) float64 {
		t := temperatureFt(z)
		a := math.Sqrt(GAMMA * Rair * t)
		return a * mach * math.Sqrt(pressureFt(z)/t) * k
	})
	return ConvertAltitude(alt, "ft", altUnits)
}
