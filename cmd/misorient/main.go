package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/pprof"

	"github.com/caarlos0/env/v11"

	"github.com/lukaszgryglicki/misorient/internal/misorient"
)

// Config holds the CLI configuration: environment first, flags override.
type Config struct {
	ConfigPath string `env:"MISORIENT_CONFIG"    envDefault:"pairs/config.json"`
	Format     string `env:"MISORIENT_FORMAT"    envDefault:"text"`
	Lang       string `env:"MISORIENT_LANG"      envDefault:"en"`
	Precision  int    `env:"MISORIENT_PRECISION" envDefault:"2"`
	PNGOut     string `env:"MISORIENT_PNG"`
	Debug      bool   `env:"DEBUG"`
	Profile    bool   `env:"PROFILE"`
}

// parseConfig parses env and then flags; a positional argument is the
// config path.
func parseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs.StringVar(&cfg.ConfigPath, "config", cfg.ConfigPath, "path to the JSON file with gA and gB")
	fs.StringVar(&cfg.Format, "format", cfg.Format, "output format: text or json")
	fs.StringVar(&cfg.Lang, "lang", cfg.Lang, "language tag used to format numbers")
	fs.IntVar(&cfg.Precision, "precision", cfg.Precision, "decimals in text output")
	fs.StringVar(&cfg.PNGOut, "png", cfg.PNGOut, "write a stereographic plot of the rotation axis to this file (\"-\" disables the config's pngOut)")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "enable debug logging")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 0 {
		cfg.ConfigPath = fs.Arg(0)
	}
	return cfg, nil
}

func exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

func main() {
	cfg, err := parseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		exitf("Error: %v", err)
	}

	if cfg.Debug {
		misorient.Debug = true
	}
	if cfg.Profile {
		f, err := os.Create("cpu.out")
		if err != nil {
			exitf("Error: %v", err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			exitf("Error: %v", err)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	err = misorient.Run(misorient.Options{
		ConfigPath: cfg.ConfigPath,
		Format:     cfg.Format,
		Lang:       cfg.Lang,
		Precision:  cfg.Precision,
		PNGOut:     cfg.PNGOut,
	}, os.Stdout)
	if err != nil {
		if cfg.Profile {
			pprof.StopCPUProfile()
		}
		exitf("Error: %v", err)
	}
}
