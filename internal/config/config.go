// Package config holds the command line options for the overlay.
package config

import (
	"flag"
	"fmt"
	"math"
)

const (
	DefaultSpeed        = 1.0
	DefaultCornerMargin = 5
)

// Options are the three runtime knobs. Everything else is fixed.
type Options struct {
	// Speed multiplies the base logo velocity. Must be finite and > 0.
	Speed float64
	// CornerMargin is the distance in pixels from a corner within which a
	// wall bounce counts as a corner hit. Must be >= 0.
	CornerMargin int
	// Trace draws the path of the logo's center point.
	Trace bool
}

// Parse reads options from args (not including the program name).
// Flag syntax errors terminate the process via the flag package; values that
// parse but fail validation are returned as an error.
func Parse(args []string) (Options, error) {
	var opts Options
	fs := flag.NewFlagSet("dvdbounce", flag.ExitOnError)
	fs.Float64Var(&opts.Speed, "speed", DefaultSpeed, "multiply logo speed by this value (> 0)")
	fs.IntVar(&opts.CornerMargin, "corner", DefaultCornerMargin, "corner hit margin in pixels (>= 0)")
	fs.BoolVar(&opts.Trace, "trace", false, "draw center-point trace path")
	if err := fs.Parse(args); err != nil {
		return Options{}, err
	}
	if err := opts.Validate(); err != nil {
		return Options{}, err
	}
	return opts, nil
}

// Validate checks option values, returning a descriptive error for the first
// violation found.
func (o Options) Validate() error {
	if o.Speed <= 0 || math.IsNaN(o.Speed) || math.IsInf(o.Speed, 0) {
		return fmt.Errorf("speed must be a finite value greater than 0, got %g", o.Speed)
	}
	if o.CornerMargin < 0 {
		return fmt.Errorf("corner margin must be an integer >= 0, got %d", o.CornerMargin)
	}
	return nil
}
