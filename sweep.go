// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2025.10.5
//

package stdatm

import (
	"gonum.org/v1/gonum/floats"
)

// ------------------------------------
// Flight condition sweeps
// ------------------------------------

// AltRange returns n uniformly spaced altitudes over [zmin, zmax].
func AltRange(zmin, zmax float64, n int) []float64 {
	return floats.Span(make([]float64, n), zmin, zmax)
}

// AltSweep evaluates density and true airspeed over an altitude grid at
// a fixed Mach number.
//
// Parameters:
//   - alts: altitudes in altUnits (ft, m, kft)
//   - densityUnits: slug/ft^3, slinch/in^3, kg/m^3
//   - velocityUnits: ft/s, m/s, in/s, knots
func AltSweep(mach float64, alts []float64, altUnits, densityUnits, velocityUnits string) (rhos, vels []float64, err error) {
	rhos = make([]float64, len(alts))
	vels = make([]float64, len(alts))
	for i, alt := range alts {
		rhos[i], err = Density(alt, altUnits, densityUnits)
		if err != nil {
			return nil, nil, err
		}
		vels[i], err = Velocity(alt, mach, altUnits, velocityUnits)
		if err != nil {
			return nil, nil, err
		}
	}
	return rhos, vels, nil
}

// MachSweep evaluates density and true airspeed over a Mach grid at a
// fixed altitude. The density is constant over the grid; only the
// velocity varies.
func MachSweep(alt float64, machs []float64, altUnits, densityUnits, velocityUnits string) (rhos, vels []float64, err error) {
	rho, err := Density(alt, altUnits, densityUnits)
	if err != nil {
		return nil, nil, err
	}
	a, err := SpeedOfSound(alt, altUnits, velocityUnits)
	if err != nil {
		return nil, nil, err
	}
	rhos = make([]float64, len(machs))
	vels = make([]float64, len(machs))
	for i, mach := range machs {
		rhos[i] = rho
		vels[i] = mach * a
	}
	return rhos, vels, nil
}
