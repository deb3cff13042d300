// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2025.10.5
//

package stdatm

const (
	Rair     = 1716.0     // Gas constant of air [ft*lbf/(slug*R)]
	GAMMA    = 1.4        // Ratio of specific heats of air
	FT2M     = 0.3048     // Feet to meters
	KT2FPS   = 1.68781    // Knots to ft/s
	PSI2PSF  = 144.0      // psi to psf
	PSF2PA   = 47.880172  // psf to Pa
	PSFS2PAS = 47.88026   // (lbf*s)/ft^2 to Pa*s
	SLUG2KG  = 515.378818 // slug/ft^3 to kg/m^3
	R2K      = 5.0 / 9.0  // Degrees Rankine to Kelvin
)
