// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2025.10.5
//

package stdatm

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"
)

func TestSeaLevelDensity(t *testing.T) {
	rho, err := Density(0.0, "ft", "slug/ft^3")
	require.NoError(t, err)
	assert.InDelta(t, 0.0023769, rho, 5e-6)

	// kg/m^3 output
	rhoSI, err := Density(0.0, "ft", "kg/m^3")
	require.NoError(t, err)
	assert.InEpsilon(t, rho*515.378818, rhoSI, 1e-12)
}

func TestDensityGasConstantOverride(t *testing.T) {
	rho, err := Density(0.0, "ft", "slug/ft^3")
	require.NoError(t, err)
	rho2, err := DensityR(0.0, 1716.59, "ft", "slug/ft^3")
	require.NoError(t, err)
	assert.Less(t, rho2, rho)
	assert.InEpsilon(t, rho*1716.0/1716.59, rho2, 1e-12)
}

func TestSeaLevelSpeedOfSound(t *testing.T) {
	a, err := SpeedOfSound(0.0, "ft", "ft/s")
	require.NoError(t, err)
	assert.InDelta(t, 1116.4, a, 1.5)
	assert.InDelta(t, math.Sqrt(1.4*1716.0*518.0), a, 1e-9)
}

func TestVelocityMachRoundTrip(t *testing.T) {
	for _, alt := range []float64{0.0, 10000.0, 50000.0} {
		for _, mach := range []float64{0.3, 0.8, 1.2} {
			v, err := Velocity(alt, mach, "ft", "ft/s")
			require.NoError(t, err)
			back, err := MachNumber(alt, v, "ft", "ft/s")
			require.NoError(t, err)
			assert.InEpsilon(t, mach, back, 1e-12)
		}
	}
}

func TestDynamicPressure(t *testing.T) {
	const alt = 20000.0
	const mach = 0.8
	q, err := DynamicPressure(alt, mach, "ft", "psf")
	require.NoError(t, err)
	p, err := Pressure(alt, "ft", "psf")
	require.NoError(t, err)
	assert.InEpsilon(t, 0.5*GAMMA*p*mach*mach, q, 1e-12)

	// psi output
	qPsi, err := DynamicPressure(alt, mach, "ft", "psi")
	require.NoError(t, err)
	assert.InEpsilon(t, q/144.0, qPsi, 1e-12)
}

func TestEquivalentAirspeed(t *testing.T) {
	// At sea level EAS equals true airspeed
	const mach = 0.8
	eas, err := EquivalentAirspeed(0.0, mach, "ft", "ft/s")
	require.NoError(t, err)
	v, err := Velocity(0.0, mach, "ft", "ft/s")
	require.NoError(t, err)
	assert.InEpsilon(t, v, eas, 1e-12)

	// EAS decreases with altitude at fixed Mach
	prev := eas
	for _, alt := range []float64{10000.0, 30000.0, 60000.0, 100000.0} {
		eas, err = EquivalentAirspeed(alt, mach, "ft", "ft/s")
		require.NoError(t, err)
		assert.Less(t, eas, prev, "alt=%g", alt)
		prev = eas
	}
}

func TestSutherlandRegimes(t *testing.T) {
	// Low-temperature linear branch
	mu := SutherlandViscosity(200.0)
	assert.InEpsilon(t, 8.0382436e-10*200.0, mu, 1e-12)

	// Sutherland branch
	mu = SutherlandViscosity(500.0)
	assert.InEpsilon(t, 2.27e-8*math.Pow(500.0, 1.5)/(500.0+198.6), mu, 1e-12)
	assert.Greater(t, mu, 0.0)

	// Over-range extrapolation warns but still returns a finite value
	mu = SutherlandViscosity(6000.0)
	assert.False(t, math.IsNaN(mu))
	assert.False(t, math.IsInf(mu, 0))
	assert.Greater(t, mu, 0.0)
}

func TestViscosityUnits(t *testing.T) {
	mu, err := DynamicViscosity(0.0, "ft", "(lbf*s)/ft^2")
	require.NoError(t, err)
	muSI, err := DynamicViscosity(0.0, "ft", "Pa*s")
	require.NoError(t, err)
	assert.InEpsilon(t, mu*47.88026, muSI, 1e-12)

	nu, err := KinematicViscosity(0.0, "ft", "ft^2/s")
	require.NoError(t, err)
	nuSI, err := KinematicViscosity(0.0, "ft", "m^2/s")
	require.NoError(t, err)
	assert.InEpsilon(t, nu*0.3048*0.3048, nuSI, 1e-12)

	rho, err := Density(0.0, "ft", "slug/ft^3")
	require.NoError(t, err)
	assert.InEpsilon(t, mu/rho, nu, 1e-12)

	_, err = DynamicViscosity(0.0, "ft", "poise")
	require.Error(t, err)
	_, err = KinematicViscosity(0.0, "ft", "stokes")
	require.Error(t, err)
}

func TestUnitReynoldsNumberFormsAgree(t *testing.T) {
	for _, alt := range []float64{0.0, 10000.0, 36000.0, 50000.0, 80000.0, 150000.0} {
		for _, mach := range []float64{0.3, 0.8, 1.2} {
			re1 := UnitReynoldsNumber(alt, mach, false)
			re2, err := UnitReynoldsNumber2(alt, mach, "ft", "1/ft")
			require.NoError(t, err)
			assert.True(t, scalar.EqualWithinAbsOrRel(re1, re2, 1e-6, 1e-10),
				"alt=%g mach=%g: %v vs %v", alt, mach, re1, re2)
		}
	}
}

func TestUnitReynoldsNumberSI(t *testing.T) {
	const altFt = 25000.0
	const mach = 0.8
	reFt, err := UnitReynoldsNumber2(altFt, mach, "ft", "1/m")
	require.NoError(t, err)
	reSI := UnitReynoldsNumber(altFt*0.3048, mach, true)
	assert.True(t, scalar.EqualWithinAbsOrRel(reFt, reSI, 1e-6, 1e-10))

	_, err = UnitReynoldsNumber2(altFt, mach, "ft", "1/in")
	require.Error(t, err)
}
