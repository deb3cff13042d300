// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2025.10.5
//

package stdatm

import (
	"math"
)

// Sutherland's law constants for air (Bertin, Aerodynamics for Engineers,
// 4th ed., eq. 1.5b)
const (
	SUTH_TLIN  = 225.0         // Below this the linear fit applies [R]
	SUTH_TMAX  = 5400.0        // Upper validated temperature [R]
	SUTH_CLIN  = 8.0382436e-10 // Linear fit slope [(lbf*s)/(ft^2*R)]
	SUTH_COEF  = 2.27e-8       // Sutherland coefficient
	SUTH_CONST = 198.6         // Sutherland constant [R]
)

// SutherlandViscosity returns the dynamic viscosity of air
// [(lbf*s)/ft^2] at temperature t [R].
//
// A warning is printed above SUTH_TMAX, where the law is not validated;
// the extrapolated value is still returned.
func SutherlandViscosity(t float64) float64 {
	if t < SUTH_TLIN {
		return SUTH_CLIN * t
	}
	if t > SUTH_TMAX {
		PrintA("WARNING: viscosity - temperature is too large (T>%g) T=%g\n", SUTH_TMAX, t)
	}
	return SUTH_COEF * math.Pow(t, 1.5) / (t + SUTH_CONST)
}
