// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2025.10.5
//

// Implements the 1976-style standard atmosphere profile as a fixed table
// of six altitude layers (Bell Handbook of Aerodynamic Heating, Table C.1,
// valid to 300k ft). Above the top breakpoint the last layer's equations
// are extrapolated; below sea level the first layer's are.

package stdatm

import (
	"math"
)

//-------------------------------------------------------------------
// Layer table
//-------------------------------------------------------------------

// atmLayer holds one layer of the piecewise profile.
//
// Temperature: T = t0 + tGrad*(z - zBase)       [R]
// Pressure:    lnP = p0 + pLin*(z - zBase)      (logP = false)
//              lnP = p0 + pLog*ln(1 + pC*(z - zBase))  (logP = true)
type atmLayer struct {
	zBase float64 // Layer lower bound [ft]
	t0    float64 // Temperature at zBase [R]
	tGrad float64 // Temperature gradient [R/ft] (0 for isothermal layers)
	logP  bool    // Pressure form selector
	p0    float64 // ln(p) at zBase [p in psf]
	pLin  float64 // ln(p) slope [1/ft]
	pLog  float64 // ln(p) multiplier of the log term
	pC    float64 // Altitude scale inside the log term [1/ft]
}

// Layer breakpoints [ft]
const (
	ZBREAK1 = 36151.725
	ZBREAK2 = 82344.678
	ZBREAK3 = 155347.756
	ZBREAK4 = 175346.171
	ZBREAK5 = 249000.304
	ZBREAK6 = 299515.564 // Validity limit; the last layer extrapolates above it
)

var atmLayers = [...]atmLayer{
	{zBase: 0.0, t0: 518.0, tGrad: -0.003559996,
		logP: true, p0: 7.657389, pLog: 5.2561258, pC: -6.8634634e-6},
	{zBase: ZBREAK1, t0: 389.988, tGrad: 0.0,
		logP: false, p0: 6.158411, pLin: -4.77916918e-5},
	{zBase: ZBREAK2, t0: 389.988, tGrad: 0.0016273286,
		logP: true, p0: 3.950775, pLog: -11.3882724, pC: 4.17276598e-6},
	{zBase: ZBREAK3, t0: 508.788, tGrad: 0.0,
		logP: false, p0: 0.922461, pLin: -3.62635373e-5},
	{zBase: ZBREAK4, t0: 508.788, tGrad: -0.0020968273,
		logP: true, p0: 0.197235, pLog: 8.7602095, pC: -4.12122002e-6},
	{zBase: ZBREAK5, t0: 354.348, tGrad: 0.0,
		logP: false, p0: -2.971785, pLin: -5.1533546650e-5},
}

// findLayer selects the layer containing z (lower bound inclusive).
// Negative altitudes fall through to the first layer; altitudes above
// the last breakpoint select the last layer.
func findLayer(z float64) *atmLayer {
	for i := len(atmLayers) - 1; i > 0; i-- {
		if z >= atmLayers[i].zBase {
			return &atmLayers[i]
		}
	}
	return &atmLayers[0]
}

//-------------------------------------------------------------------
// English-unit kernels
//-------------------------------------------------------------------

// temperatureFt returns the freestream temperature [R] at z [ft].
func temperatureFt(z float64) float64 {
	l := findLayer(z)
	return l.t0 + l.tGrad*(z-l.zBase)
}

// pressureFt returns the freestream pressure [psf] at z [ft].
func pressureFt(z float64) float64 {
	l := findLayer(z)
	dz := z - l.zBase
	lnP := l.p0
	if l.logP {
		lnP += l.pLog * math.Log(1.0+l.pC*dz)
	} else {
		lnP += l.pLin * dz
	}
	return math.Exp(lnP)
}

//-------------------------------------------------------------------
// Public entry points
//-------------------------------------------------------------------

// Temperature returns the freestream temperature at the given altitude.
//
// Parameters:
//   - alt: altitude in altUnits (ft, m, kft)
//   - temperatureUnits: R, K
func Temperature(alt float64, altUnits, temperatureUnits string) (float64, error) {
	z, err := ConvertAltitude(alt, altUnits, "ft")
	if err != nil {
		return 0, err
	}
	return ConvertTemperature(temperatureFt(z), "R", temperatureUnits)
}

// Pressure returns the freestream pressure at the given altitude.
//
// Parameters:
//   - alt: altitude in altUnits (ft, m, kft)
//   - pressureUnits: psf, psi, Pa
func Pressure(alt float64, altUnits, pressureUnits string) (float64, error) {
	z, err := ConvertAltitude(alt, altUnits, "ft")
	if err != nil {
		return 0, err
	}
	return ConvertPressure(pressureFt(z), "psf", pressureUnits)
}
