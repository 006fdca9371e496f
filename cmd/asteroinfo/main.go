// Command asteroinfo estimates global asteroseismic parameters from a
// power spectrum file.
//
// Usage:
//
//	asteroinfo [flags] spectrum.csv
//
// The input file holds one "frequency,power" pair per line (whitespace
// separation also accepted; lines starting with '#' are skipped).
// Frequencies must be strictly increasing, conventionally in µHz.
//
// Examples:
//
//	asteroinfo kic8006161.csv
//	asteroinfo -filter-width 800 -window 300 kic8006161.csv
//	asteroinfo -regime rg -teff 4800 kic12008916.csv
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-astero/measure/deltanu"
	"github.com/cwbudde/algo-astero/measure/numax"
	"github.com/cwbudde/algo-astero/scaling"
	"github.com/cwbudde/algo-astero/spectrum"
)

func main() {
	filterWidth := flag.Float64("filter-width", 1000, "background filter width in frequency units")
	windowWidth := flag.Float64("window", 250, "sliding ACF window width in frequency units")
	step := flag.Float64("step", 0, "window step (default: window/10)")
	regime := flag.String("regime", "ms", "envelope-width regime: ms (main sequence) or rg (red giant)")
	teff := flag.Float64("teff", 0, "effective temperature in K; enables mass/radius/log g output")
	regrid := flag.Int("regrid", 0, "resample onto a uniform grid of this many points before analysis")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: asteroinfo [flags] spectrum.csv\n\n")
		fmt.Fprintf(os.Stderr, "Estimates nu_max and delta_nu from a frequency,power spectrum file\n")
		fmt.Fprintf(os.Stderr, "and, given -teff, stellar mass, radius and log g.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	ps, err := readSpectrum(flag.Arg(0))
	if err != nil {
		fatalf("read %s: %v", flag.Arg(0), err)
	}

	if *regrid > 0 {
		ps, err = spectrum.Regrid(ps, *regrid)
		if err != nil {
			fatalf("regrid: %v", err)
		}
	}

	var reg deltanu.Regime
	switch strings.ToLower(*regime) {
	case "ms":
		reg = deltanu.RegimeMainSequence
	case "rg":
		reg = deltanu.RegimeRedGiant
	default:
		fatalf("unknown regime %q (want ms or rg)", *regime)
	}

	snr, err := spectrum.Flatten(ps, *filterWidth)
	if err != nil {
		fatalf("flatten: %v", err)
	}

	nm, err := numax.Estimate(snr, numax.Config{
		WindowWidth: *windowWidth,
		StepSize:    *step,
	})
	if err != nil {
		fatalf("nu_max: %v", err)
	}

	dn, err := deltanu.Estimate(snr, nm.Numax, deltanu.Config{Regime: reg})
	if err != nil {
		fatalf("delta_nu: %v", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "bins\t%d\n", ps.Len())
	fmt.Fprintf(w, "range\t%.2f – %.2f\n", ps.MinFreq(), ps.MaxFreq())
	fmt.Fprintf(w, "nu_max\t%.2f\n", nm.Numax)
	fmt.Fprintf(w, "delta_nu\t%.3f\n", dn.Deltanu)
	fmt.Fprintf(w, "delta_nu prior\t%.3f\n", dn.Prior)
	fmt.Fprintf(w, "envelope window\t%.2f – %.2f\n", dn.WindowLow, dn.WindowHigh)

	if *teff > 0 {
		params, err := scaling.Estimate(nm.Numax, dn.Deltanu, *teff)
		if err != nil {
			fatalf("scaling: %v", err)
		}

		fmt.Fprintf(w, "mass\t%.3f Msun\n", params.Mass)
		fmt.Fprintf(w, "radius\t%.3f Rsun\n", params.Radius)
		fmt.Fprintf(w, "log g\t%.3f\n", params.LogG)
	}

	w.Flush()
}

// readSpectrum parses a two-column frequency/power file. Columns may be
// separated by a comma or whitespace; '#' lines are comments.
func readSpectrum(path string) (*spectrum.PowerSpectrum, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var freq, power []float64

	sc := bufio.NewScanner(f)
	line := 0
	for sc.Scan() {
		line++

		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.FieldsFunc(text, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t' || r == ';'
		})
		if len(fields) < 2 {
			return nil, fmt.Errorf("line %d: expected two columns", line)
		}

		fv, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: bad frequency %q", line, fields[0])
		}

		pv, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: bad power %q", line, fields[1])
		}

		freq = append(freq, fv)
		power = append(power, pv)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return spectrum.New(freq, power)
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "asteroinfo: "+format+"\n", args...)
	os.Exit(1)
}
