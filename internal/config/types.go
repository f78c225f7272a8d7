// Package config loads and validates the cgegen model file.
//
// A model file declares the symbolic backend, the named coordinate
// dimensions, and a list of production technologies to generate equations
// for. Configuration layers, highest priority last applied first:
// flags > CGEGEN_ env vars > cgegen.yaml > defaults.
package config

import "github.com/opencge/cgegen/pkg/production"

// Technology type names accepted in the model file.
const (
	TypeCES           = "ces"
	TypeDixitStiglitz = "dixit_stiglitz"
	TypeLeontief      = "leontief"
)

// Config holds the full model configuration.
type Config struct {
	Backend      string              `koanf:"backend"`
	OutputFormat string              `koanf:"output"`
	Verbose      bool                `koanf:"verbose"`
	Coords       map[string][]string `koanf:"coords"`
	Technologies []Technology        `koanf:"technologies"`
}

// Technology declares one production technology in the model file.
// Symbol names are passed through to the generators verbatim; dims select
// the coordinate dimensions the specification is broadcast over.
type Technology struct {
	Name         string   `koanf:"name"`
	Type         string   `koanf:"type"`
	Factors      []string `koanf:"factors"`
	FactorPrices []string `koanf:"factor_prices"`
	Output       string   `koanf:"output"`
	OutputPrice  string   `koanf:"output_price"`
	TFP          string   `koanf:"tfp"`
	FactorShares []string `koanf:"factor_shares"`
	Epsilon      string   `koanf:"epsilon"`
	Dims         []string `koanf:"dims"`
}

// ProductionCoords converts the declared coordinates to the core type.
func (c *Config) ProductionCoords() production.Coords {
	if c.Coords == nil {
		return nil
	}
	return production.Coords(c.Coords)
}

// Default configuration values.
const (
	DefaultBackend = "summation"
	DefaultOutput  = "auto" // Auto-detect: TTY=text, non-TTY=markdown
)
