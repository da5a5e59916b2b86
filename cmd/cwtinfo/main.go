// Command cwtinfo prints the band layout of a CWT filterbank
// configuration: per-band frequencies, scales, decimation factors,
// and group delays, plus the anti-aliasing filters installed for the
// decimated rates. Per-band window sizes are not printed.
//
// Usage:
//
//	cwtinfo [flags]
//
// Examples:
//
//	cwtinfo
//	cwtinfo -samplerate 44100 -min 20 -max 5000 -bpo 12
//	cwtinfo -family paul -opt aggressive2
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-cwt/cwt/filterbank"
	"github.com/cwbudde/algo-cwt/cwt/lowpass"
	"github.com/cwbudde/algo-cwt/cwt/wavelet"
)

var optimisations = map[string]filterbank.Optimisation{
	"none":        filterbank.None,
	"standard1":   filterbank.Standard1,
	"standard2":   filterbank.Standard2,
	"aggressive1": filterbank.Aggressive1,
	"aggressive2": filterbank.Aggressive2,
}

func main() {
	sampleRate := flag.Float64("samplerate", 100, "input sample rate in Hz")
	freqMin := flag.Float64("min", 1, "lowest analyzed frequency in Hz")
	freqMax := flag.Float64("max", 30, "highest analyzed frequency in Hz")
	bpo := flag.Float64("bpo", 4, "bands per octave")
	familyName := flag.String("family", "morlet", "wavelet family: morlet or paul")
	optName := flag.String("opt", "none", "optimisation: none, standard1, standard2, aggressive1, aggressive2")
	delay := flag.Float64("delay", wavelet.DefaultDelay, "analysis delay in e-folding times")
	flag.Parse()

	var family wavelet.Family
	switch strings.ToLower(*familyName) {
	case "morlet":
		family = wavelet.Morlet
	case "paul":
		family = wavelet.Paul
	default:
		fmt.Fprintf(os.Stderr, "cwtinfo: unknown family %q\n", *familyName)
		os.Exit(2)
	}

	opt, ok := optimisations[strings.ToLower(*optName)]
	if !ok {
		fmt.Fprintf(os.Stderr, "cwtinfo: unknown optimisation %q\n", *optName)
		os.Exit(2)
	}

	fb, err := filterbank.New(*sampleRate, *freqMin, *freqMax, *bpo,
		filterbank.WithFamily(family),
		filterbank.WithOptimisation(opt),
		filterbank.WithDelay(*delay),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cwtinfo: %v\n", err)
		os.Exit(1)
	}

	fmt.Print(fb.Info())
	fmt.Println()

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "band\tfreq (Hz)\tscale\tfactor\tdelay (samples)")
	freqs := fb.Frequencies()
	scales := fb.Scales()
	factors := fb.DownsamplingFactors()
	delays := fb.DelaysInSamples()
	for i := 0; i < fb.Size(); i++ {
		factor := 1
		if factors != nil {
			factor = factors[i]
		}
		fmt.Fprintf(tw, "%d\t%.3f\t%.5f\t%d\t%d\n", i, freqs[i], scales[i], factor, delays[i])
	}
	tw.Flush()

	if factors != nil {
		printAntiAliasSummary(factors)
	}
}

// printAntiAliasSummary reports the stop-band attenuation of the
// Chebyshev anti-aliasing filter at each decimated rate, probed at the
// decimated Nyquist frequency.
func printAntiAliasSummary(factors []int) {
	seen := map[int]bool{}
	var rates []int
	for _, f := range factors {
		if f > 1 && !seen[f] {
			seen[f] = true
			rates = append(rates, f)
		}
	}
	if len(rates) == 0 {
		return
	}

	fmt.Println("\nanti-aliasing filters:")
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "rate\tcutoff\tattenuation at decimated Nyquist")
	for _, rate := range rates {
		// Same design the filterbank installs for this rate.
		lp, err := lowpass.New(0.8 / float64(rate))
		if err != nil {
			fmt.Fprintf(os.Stderr, "cwtinfo: %v\n", err)
			os.Exit(1)
		}
		const nfft = 4096
		mag, err := lp.MagnitudeResponse(nfft)
		if err != nil {
			fmt.Fprintf(os.Stderr, "cwtinfo: %v\n", err)
			os.Exit(1)
		}
		// Normalized frequency 1/rate corresponds to the decimated
		// Nyquist on the full-rate grid.
		bin := nfft / 2 / rate
		att := 20 * math.Log10(mag[bin])
		fmt.Fprintf(tw, "%d\t%.4f\t%.1f dB\n", rate, lp.Cutoff.Get(), att)
	}
	tw.Flush()
}
