package misorient

import (
	"io"
	"time"
)

// Options are the run-time switches of the CLI.
type Options struct {
	ConfigPath string
	Format     string
	Lang       string
	Precision  int
	PNGOut     string // overrides the config's pngOut when set; PNGDisabled turns the plot off
}

// Run loads one grain pair, computes its misorientation, disorientation and
// rotation axis, writes the report to out and optionally plots the axis.
func Run(opts Options, out io.Writer) error {
	if opts.ConfigPath == "" {
		opts.ConfigPath = ConfigPath
	}
	if opts.Lang == "" {
		opts.Lang = Lang
	}
	if opts.Precision <= 0 {
		opts.Precision = Precision
	}
	rep, err := newReporter(opts.Format, opts.Lang, opts.Precision)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(opts.ConfigPath)
	if err != nil {
		return err
	}
	pair, err := cfg.Build()
	if err != nil {
		return err
	}

	start := time.Now()
	res, err := Compute(pair.GA, pair.GB)
	if err != nil {
		return err
	}
	DebugLog("Computed in %s", time.Since(start))

	if err := rep.Report(out, res); err != nil {
		return err
	}

	pngOut := cfg.PNGOut
	switch opts.PNGOut {
	case "":
	case PNGDisabled:
		pngOut = ""
	default:
		pngOut = opts.PNGOut
	}
	if pngOut != "" {
		if err := SaveAxisPNG(res.Axis, pngOut, cfg.PNGSize); err != nil {
			return err
		}
		DebugLog("Saved axis plot: %s", pngOut)
	}
	return nil
}
