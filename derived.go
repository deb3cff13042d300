// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2025.10.5
//

// Implements the freestream quantities derived from the atmosphere profile:
// density (ideal gas law), speed of sound, velocity, Mach number, dynamic
// pressure, equivalent airspeed, viscosity and unit Reynolds number.

package stdatm

import (
	"math"
)

//-------------------------------------------------------------------
// Gas state
//-------------------------------------------------------------------

// Density returns the freestream density rho = p/(R*T).
//
// Parameters:
//   - alt: altitude in altUnits (ft, m, kft)
//   - densityUnits: slug/ft^3, slinch/in^3, kg/m^3
func Density(alt float64, altUnits, densityUnits string) (float64, error) {
	return DensityR(alt, Rair, altUnits, densityUnits)
}

// DensityR is Density with an explicit gas constant r
// [ft*lbf/(slug*R)], for gases other than dry air.
func DensityR(alt, r float64, altUnits, densityUnits string) (float64, error) {
	z, err := ConvertAltitude(alt, altUnits, "ft")
	if err != nil {
		return 0, err
	}
	rho := pressureFt(z) / (r * temperatureFt(z))
	return ConvertDensity(rho, "slug/ft^3", densityUnits)
}

// SpeedOfSound returns the freestream speed of sound a = sqrt(gamma*R*T).
//
// Parameters:
//   - alt: altitude in altUnits (ft, m, kft)
//   - velocityUnits: ft/s, m/s, in/s, knots
func SpeedOfSound(alt float64, altUnits, velocityUnits string) (float64, error) {
	z, err := ConvertAltitude(alt, altUnits, "ft")
	if err != nil {
		return 0, err
	}
	a := math.Sqrt(GAMMA * Rair * temperatureFt(z))
	return ConvertVelocity(a, "ft/s", velocityUnits)
}

// Velocity returns the true airspeed V = M*a.
func Velocity(alt, mach float64, altUnits, velocityUnits string) (float64, error) {
	a, err := SpeedOfSound(alt, altUnits, velocityUnits)
	if err != nil {
		return 0, err
	}
	return mach * a, nil
}

// MachNumber returns the freestream Mach number M = V/a.
func MachNumber(alt, velocity float64, altUnits, velocityUnits string) (float64, error) {
	a, err := SpeedOfSound(alt, altUnits, velocityUnits)
	if err != nil {
		return 0, err
	}
	return velocity / a, nil
}

//-------------------------------------------------------------------
// Aerodynamic quantities
//-------------------------------------------------------------------

// DynamicPressure returns q = gamma/2 * p * M^2 (= 0.7*p*M^2 for air).
//
// Parameters:
//   - alt: altitude in altUnits (ft, m, kft)
//   - pressureUnits: psf, psi, Pa
func DynamicPressure(alt, mach float64, altUnits, pressureUnits string) (float64, error) {
	z, err := ConvertAltitude(alt, altUnits, "ft")
	if err != nil {
		return 0, err
	}
	q := 0.7 * pressureFt(z) * SQ(mach)
	return ConvertPressure(q, "psf", pressureUnits)
}

// EquivalentAirspeed returns the equivalent airspeed at the given
// altitude and Mach number.
//
//	EAS = TAS * sqrt(rho/rho0)
//	    = a * M * sqrt(p*T0 / (T*p0))   (ideal gas substitution)
//
// Parameters:
//   - alt: altitude in altUnits (ft, m, kft)
//   - easUnits: ft/s, m/s, in/s, knots
func EquivalentAirspeed(alt, mach float64, altUnits, easUnits string) (float64, error) {
	z, err := ConvertAltitude(alt, altUnits, "ft")
	if err != nil {
		return 0, err
	}
	t0 := temperatureFt(0.0)
	p0 := pressureFt(0.0)
	t := temperatureFt(z)
	p := pressureFt(z)
	a := math.Sqrt(GAMMA * Rair * t)
	eas := a * mach * math.Sqrt((p*t0)/(t*p0))
	return ConvertVelocity(eas, "ft/s", easUnits)
}

//-------------------------------------------------------------------
// Viscosity
//-------------------------------------------------------------------

var dynViscTokens = []string{"(lbf*s)/ft^2", "(N*s)/m^2", "Pa*s"}
var kinViscTokens = []string{"ft^2/s", "m^2/s"}

// DynamicViscosity returns the freestream dynamic viscosity mu from
// Sutherland's law evaluated at the profile temperature.
//
// Parameters:
//   - alt: altitude in altUnits (ft, m, kft)
//   - viscUnits: (lbf*s)/ft^2, (N*s)/m^2, Pa*s
func DynamicViscosity(alt float64, altUnits, viscUnits string) (float64, error) {
	z, err := ConvertAltitude(alt, altUnits, "ft")
	if err != nil {
		return 0, err
	}
	mu := SutherlandViscosity(temperatureFt(z))
	switch viscUnits {
	case "(lbf*s)/ft^2":
		return mu, nil
	case "(N*s)/m^2", "Pa*s":
		return mu * PSFS2PAS, nil
	default:
		return 0, &InvalidUnitError{Dim: "visc_units", Unit: viscUnits, Valid: dynViscTokens}
	}
}

// KinematicViscosity returns nu = mu/rho.
//
// Parameters:
//   - alt: altitude in altUnits (ft, m, kft)
//   - viscUnits: ft^2/s, m^2/s
func KinematicViscosity(alt float64, altUnits, viscUnits string) (float64, error) {
	z, err := ConvertAltitude(alt, altUnits, "ft")
	if err != nil {
		return 0, err
	}
	t := temperatureFt(z)
	rho := pressureFt(z) / (Rair * t)
	nu := SutherlandViscosity(t) / rho
	switch viscUnits {
	case "ft^2/s":
		return nu, nil
	case "m^2/s":
		return nu * FT2M * FT2M, nil
	default:
		return 0, &InvalidUnitError{Dim: "visc_units", Unit: viscUnits, Valid: kinViscTokens}
	}
}

//-------------------------------------------------------------------
// Unit Reynolds number
//-------------------------------------------------------------------

// UnitReynoldsNumber returns the Reynolds number per unit length
// Re/L = rho*V/mu, composed from the primitive quantities.
// With si the altitude is taken in meters and the result is 1/m;
// otherwise ft and 1/ft.
func UnitReynoldsNumber(alt, mach float64, si bool) float64 {
	z := alt
	if si {
		z = alt / FT2M
	}
	t := temperatureFt(z)
	rho := pressureFt(z) / (Rair * t)
	v := mach * math.Sqrt(GAMMA*Rair*t)
	reL := rho * v / SutherlandViscosity(t)
	if si {
		return reL / FT2M
	}
	return reL
}

// UnitReynoldsNumber2 returns Re/L = p*a*M/(mu*R*T), the algebraic form
// of rho*V/mu that avoids recomputing the base quantities.
//
// Parameters:
//   - alt: altitude in altUnits (ft, m, kft)
//   - reLUnits: 1/ft, 1/m
func UnitReynoldsNumber2(alt, mach float64, altUnits, reLUnits string) (float64, error) {
	z, err := ConvertAltitude(alt, altUnits, "ft")
	if err != nil {
		return 0, err
	}
	t := temperatureFt(z)
	p := pressureFt(z)
	a := math.Sqrt(GAMMA * Rair * t)
	mu := SutherlandViscosity(t)
	reL := p * a * mach / (mu * Rair * t)
	switch reLUnits {
	case "1/ft":
		return reL, nil
	case "1/m":
		return reL / FT2M, nil
	default:
		return 0, &InvalidUnitError{Dim: "ReL_units", Unit: reLUnits, Valid: []string{"1/ft", "1/m"}}
	}
}
