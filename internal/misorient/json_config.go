package misorient

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// Config is one grain pair plus optional plot settings.
// Matrices are plain nested JSON arrays; nothing is evaluated.
type Config struct {
	GA      [][]Real `json:"gA"`
	GB      [][]Real `json:"gB"`
	PNGOut  string   `json:"pngOut,omitempty"`
	PNGSize int      `json:"pngSize,omitempty"`
}

// Pair is the validated orientation pair of a Config.
type Pair struct {
	GA, GB Mat3
}

// Build validates the matrix shapes and returns the pair.
func (c Config) Build() (Pair, error) {
	if c.GA == nil || c.GB == nil {
		return Pair{}, errors.New("config must define both gA and gB")
	}
	gA, err := Mat3FromRows(c.GA)
	if err != nil {
		return Pair{}, fmt.Errorf("gA: %w", err)
	}
	gB, err := Mat3FromRows(c.GB)
	if err != nil {
		return Pair{}, fmt.Errorf("gB: %w", err)
	}
	if !IsRotation(gA, RotationTol) {
		DebugLog("gA is not a proper rotation, results may be meaningless: %+v", gA)
	}
	if !IsRotation(gB, RotationTol) {
		DebugLog("gB is not a proper rotation, results may be meaningless: %+v", gB)
	}
	return Pair{GA: gA, GB: gB}, nil
}

func loadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	// Defaults / validation
	if cfg.PNGSize <= 0 {
		cfg.PNGSize = PNGSize
	}
	if cfg.GA == nil || cfg.GB == nil {
		return nil, fmt.Errorf("config %s must define both gA and gB", path)
	}
	DebugLog("Loaded config from %s: gA=%v, gB=%v, png=%q (%d px)", path, cfg.GA, cfg.GB, cfg.PNGOut, cfg.PNGSize)
	return &cfg, nil
}
