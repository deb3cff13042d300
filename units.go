// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2025.10.5
//

// Implements scalar unit conversion for the quantities handled by the
// atmosphere model. Every factor is a pure multiplicative ratio; the
// internal (nominal) units are English: ft, ft/s, psf, slug/ft^3, R.

package stdatm

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// InvalidUnitError reports a unit token outside the supported set for
// its dimension.
type InvalidUnitError struct {
	Dim   string   // Dimension name, e.g. "alt_units"
	Unit  string   // The offending token
	Valid []string // Supported tokens for the dimension
}

func (e *InvalidUnitError) Error() string {
	return fmt.Sprintf("%s=%q is not valid; use %v", e.Dim, e.Unit, e.Valid)
}

// Supported unit tokens and their to-nominal factors (index aligned)
var (
	altTokens  = []string{"ft", "m", "kft"}
	altToFt    = []float64{1.0, 1.0 / FT2M, 1000.0}
	velTokens  = []string{"ft/s", "m/s", "in/s", "knots"}
	velToFps   = []float64{1.0, 1.0 / FT2M, 1.0 / 12.0, KT2FPS}
	presTokens = []string{"psf", "psi", "Pa"}
	presToPsf  = []float64{1.0, PSI2PSF, 1.0 / PSF2PA}
	densTokens = []string{"slug/ft^3", "slinch/in^3", "kg/m^3"}
	densToSlug = []float64{1.0, 20736.0, 1.0 / SLUG2KG} // 20736 = 12^4
	tempTokens = []string{"R", "K"}
	tempToR    = []float64{1.0, 1.0 / R2K}
)

// convert builds a single multiplicative factor from unitsIn to unitsOut
// through the nominal unit. Matching units return the input unchanged,
// not a factor of one, so the identity is exact.
func convert(dim string, tokens []string, factors []float64, v float64, unitsIn, unitsOut string) (float64, error) {
	if unitsIn == unitsOut {
		return v, nil
	}
	i := slices.Index(tokens, unitsIn)
	if i < 0 {
		return 0, &InvalidUnitError{Dim: dim + "_in", Unit: unitsIn, Valid: tokens}
	}
	j := slices.Index(tokens, unitsOut)
	if j < 0 {
		return 0, &InvalidUnitError{Dim: dim + "_out", Unit: unitsOut, Valid: tokens}
	}
	return v * factors[i] / factors[j], nil
}

// ConvertAltitude converts an altitude between ft, m and kft (nominal: ft).
func ConvertAltitude(alt float64, unitsIn, unitsOut string) (float64, error) {
	return convert("alt_units", altTokens, altToFt, alt, unitsIn, unitsOut)
}

// ConvertVelocity converts a velocity between ft/s, m/s, in/s and knots
// (nominal: ft/s).
func ConvertVelocity(velocity float64, unitsIn, unitsOut string) (float64, error) {
	return convert("velocity_units", velTokens, velToFps, velocity, unitsIn, unitsOut)
}

// ConvertPressure converts a pressure between psf, psi and Pa (nominal: psf).
func ConvertPressure(pressure float64, unitsIn, unitsOut string) (float64, error) {
	return convert("pressure_units", presTokens, presToPsf, pressure, unitsIn, unitsOut)
}

// ConvertDensity converts a density between slug/ft^3, slinch/in^3 and
// kg/m^3 (nominal: slug/ft^3).
func ConvertDensity(density float64, unitsIn, unitsOut string) (float64, error) {
	return convert("density_units", densTokens, densToSlug, density, unitsIn, unitsOut)
}

// ConvertTemperature converts an absolute temperature between degrees
// Rankine and Kelvin (nominal: R). Both scales are absolute, so the
// conversion is a pure scale with no offset.
func ConvertTemperature(temperature float64, unitsIn, unitsOut string) (float64, error) {
	return convert("temperature_units", tempTokens, tempToR, temperature, unitsIn, unitsOut)
}
