// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2025.10.5
//

package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	m "github.com/mkhts/stdatm"
)

func main() {

	// Parse command line arguments
	args, err := parseArgs()
	if err != nil {
		m.PrintE(err)
		flag.Usage()
		os.Exit(1)
	}

	// Run the main application
	if err := runApplication(args); err != nil {
		m.PrintE(err)
		os.Exit(1)
	}
}

// Command line options
type cmdOpt struct {
	alt   float64
	mach  float64
	si    bool
	sweep string
	dbg   int
}

// Parse command line arguments
func parseArgs() (cmdOpt, error) {
	args := cmdOpt{}
	flag.Float64Var(&args.alt, "alt", 0.0, "altitude [ft] ([m] with -si)")
	flag.Float64Var(&args.mach, "mach", 0.0, "Mach number")
	flag.BoolVar(&args.si, "si", false, "use SI units for input and output")
	flag.StringVar(&args.sweep, "sweep", "", "altitude sweep lo:hi:n instead of a single point")
	flag.IntVar(&args.dbg, "dbg", 0, "debug display level")
	flag.Parse()

	m.DBG_ = args.dbg

	if args.mach < 0.0 {
		return args, fmt.Errorf("mach must not be negative: %g", args.mach)
	}
	return args, nil
}

// Main application processing
func runApplication(args cmdOpt) error {
	if len(args.sweep) > 0 {
		return printSweep(args)
	}
	return printPoint(args)
}

// Unit tokens for the selected unit system
func unitTokens(si bool) (altU, velU, presU, densU, tempU string) {
	if si {
		return "m", "m/s", "Pa", "kg/m^3", "K"
	}
	return "ft", "ft/s", "psf", "slug/ft^3", "R"
}

// Print the full property set at a single altitude
func printPoint(args cmdOpt) error {
	altU, velU, presU, densU, tempU := unitTokens(args.si)

	t, err := m.Temperature(args.alt, altU, tempU)
	if err != nil {
		return err
	}
	p, err := m.Pressure(args.alt, altU, presU)
	if err != nil {
		return err
	}
	rho, err := m.Density(args.alt, altU, densU)
	if err != nil {
		return err
	}
	a, err := m.SpeedOfSound(args.alt, altU, velU)
	if err != nil {
		return err
	}
	mu, err := m.DynamicViscosity(args.alt, altU, dynViscUnits(args.si))
	if err != nil {
		return err
	}
	nu, err := m.KinematicViscosity(args.alt, altU, kinViscUnits(args.si))
	if err != nil {
		return err
	}

	fmt.Printf("alt = %14.4f [%s]\n", args.alt, altU)
	fmt.Printf("T   = %14.4f [%s]\n", t, tempU)
	fmt.Printf("p   = %14.4f [%s]\n", p, presU)
	fmt.Printf("rho = %14.6e [%s]\n", rho, densU)
	fmt.Printf("a   = %14.4f [%s]\n", a, velU)
	fmt.Printf("mu  = %14.6e [%s]\n", mu, dynViscUnits(args.si))
	fmt.Printf("nu  = %14.6e [%s]\n", nu, kinViscUnits(args.si))

	// Mach-dependent quantities
	if args.mach > 0.0 {
		v, err := m.Velocity(args.alt, args.mach, altU, velU)
		if err != nil {
			return err
		}
		q, err := m.DynamicPressure(args.alt, args.mach, altU, presU)
		if err != nil {
			return err
		}
		eas, err := m.EquivalentAirspeed(args.alt, args.mach, altU, velU)
		if err != nil {
			return err
		}
		reL := m.UnitReynoldsNumber(args.alt, args.mach, args.si)

		fmt.Printf("M   = %14.4f\n", args.mach)
		fmt.Printf("V   = %14.4f [%s]\n", v, velU)
		fmt.Printf("q   = %14.4f [%s]\n", q, presU)
		fmt.Printf("EAS = %14.4f [%s]\n", eas, velU)
		fmt.Printf("ReL = %14.6e [%s]\n", reL, reLUnits(args.si))
	}
	return nil
}

// Print density and velocity over an altitude sweep
func printSweep(args cmdOpt) error {
	zmin, zmax, n, err := parseSweep(args.sweep)
	if err != nil {
		return fmt.Errorf("failed to parse sweep range: %w", err)
	}

	altU, velU, _, densU, _ := unitTokens(args.si)
	alts := m.AltRange(zmin, zmax, n)
	rhos, vels, err := m.AltSweep(args.mach, alts, altU, densU, velU)
	if err != nil {
		return err
	}

	fmt.Printf("%% alt[%s]  rho[%s]  V[%s] (M=%.3f)\n", altU, densU, velU, args.mach)
	for i := range alts {
		fmt.Printf("%14.4f %14.6e %14.4f\n", alts[i], rhos[i], vels[i])
	}
	return nil
}

// Parse a sweep specification of the form lo:hi:n
func parseSweep(s string) (zmin, zmax float64, n int, err error) {
	f := strings.Split(s, ":")
	if len(f) != 3 {
		return 0, 0, 0, fmt.Errorf("invalid sweep %q; use lo:hi:n", s)
	}
	zmin, err = strconv.ParseFloat(f[0], 64)
	if err != nil {
		return 0, 0, 0, err
	}
	zmax, err = strconv.ParseFloat(f[1], 64)
	if err != nil {
		return 0, 0, 0, err
	}
	n, err = strconv.Atoi(f[2])
	if err != nil {
		return 0, 0, 0, err
	}
	if n < 2 {
		return 0, 0, 0, fmt.Errorf("sweep needs at least 2 points: %d", n)
	}
	return zmin, zmax, n, nil
}

func dynViscUnits(si bool) string {
	if si {
		return "Pa*s"
	}
	return "(lbf*s)/ft^2"
}

func kinViscUnits(si bool) string {
	if si {
		return "m^2/s"
	}
	return "ft^2/s"
}

func reLUnits(si bool) string {
	if si {
		return "1/m"
	}
	return "1/ft"
}
