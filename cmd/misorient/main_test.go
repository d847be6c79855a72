package main

import (
	"flag"
	"testing"
)

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := parseConfig(flag.NewFlagSet("misorient", flag.ContinueOnError), nil)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ConfigPath != "pairs/config.json" || cfg.Format != "text" || cfg.Lang != "en" || cfg.Precision != 2 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.PNGOut != "" || cfg.Debug || cfg.Profile {
		t.Fatalf("unexpected switches: %+v", cfg)
	}
}

func TestParseConfigEnvAndFlags(t *testing.T) {
	t.Setenv("MISORIENT_FORMAT", "json")
	t.Setenv("MISORIENT_PRECISION", "4")
	t.Setenv("MISORIENT_PNG", "env.png")
	t.Setenv("DEBUG", "true")

	fs := flag.NewFlagSet("misorient", flag.ContinueOnError)
	cfg, err := parseConfig(fs, []string{"-png", "flag.png", "-lang", "de", "pair.json"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Format != "json" || cfg.Precision != 4 || !cfg.Debug {
		t.Fatalf("env not applied: %+v", cfg)
	}
	if cfg.PNGOut != "flag.png" || cfg.Lang != "de" {
		t.Fatalf("flags did not override env: %+v", cfg)
	}
	if cfg.ConfigPath != "pair.json" {
		t.Fatalf("positional config path ignored: %+v", cfg)
	}
}

func TestParseConfigBadEnv(t *testing.T) {
	t.Setenv("MISORIENT_PRECISION", "two")
	if _, err := parseConfig(flag.NewFlagSet("misorient", flag.ContinueOnError), nil); err == nil {
		t.Fatal("non-numeric precision accepted")
	}
}
