// Package assembly turns a validated model configuration into generated
// equation sets. It applies the documented call pattern for each
// technology: scalar specifications are broadcast across their declared
// dimensions before the flat-list generators run, while Dixit-Stiglitz and
// two-dimensional Leontief technologies pass base names through because
// their generators render the indexing themselves.
package assembly

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/opencge/cgegen/internal/config"
	"github.com/opencge/cgegen/pkg/backend"
	"github.com/opencge/cgegen/pkg/production"
)

// TechnologyEquations holds the generated equations for one technology,
// production/zero-profit condition first, factor demands after, in factor
// order.
type TechnologyEquations struct {
	Name      string   `json:"name"`
	Type      string   `json:"type"`
	Equations []string `json:"equations"`
}

// Assembler generates equations for every technology in a model.
type Assembler struct {
	logger *slog.Logger
}

// New creates an Assembler. A nil logger discards all output.
func New(logger *slog.Logger) *Assembler {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Assembler{logger: logger}
}

// Assemble generates equation sets for all technologies in declaration
// order. The first generator error aborts the run; partial results are
// never returned.
func (a *Assembler) Assemble(cfg *config.Config) ([]TechnologyEquations, error) {
	b, err := backend.Parse(cfg.Backend)
	if err != nil {
		return nil, err
	}
	coords := cfg.ProductionCoords()

	results := make([]TechnologyEquations, 0, len(cfg.Technologies))
	for _, tech := range cfg.Technologies {
		a.logger.Debug("generating equations",
			"technology", tech.Name,
			"type", tech.Type,
			"backend", b.String())

		equations, err := a.assembleOne(tech, coords, b)
		if err != nil {
			return nil, fmt.Errorf("technology %q: %w", tech.Name, err)
		}

		a.logger.Debug("generated equations", "technology", tech.Name, "count", len(equations))
		results = append(results, TechnologyEquations{
			Name:      tech.Name,
			Type:      tech.Type,
			Equations: equations,
		})
	}

	return results, nil
}

func (a *Assembler) assembleOne(tech config.Technology, coords production.Coords, b backend.Backend) ([]string, error) {
	switch tech.Type {
	case config.TypeCES:
		factors, prices, shares, err := broadcast(tech, coords)
		if err != nil {
			return nil, err
		}
		return production.CES(factors, prices, tech.Output, tech.OutputPrice, tech.TFP, shares, tech.Epsilon)

	case config.TypeDixitStiglitz:
		if len(tech.Dims) != 1 {
			return nil, fmt.Errorf("dixit_stiglitz requires exactly one dim, got %d", len(tech.Dims))
		}
		var shares []string
		if len(tech.FactorShares) > 0 {
			shares = tech.FactorShares
		}
		prod, demand, err := production.DixitStiglitz(
			tech.Factors, tech.FactorPrices,
			tech.Output, tech.OutputPrice, tech.Epsilon,
			tech.Dims[0], coords, b,
			tech.TFP, shares,
		)
		if err != nil {
			return nil, err
		}
		return []string{prod, demand}, nil

	case config.TypeLeontief:
		factors, prices, shares := tech.Factors, tech.FactorPrices, tech.FactorShares
		if len(tech.Dims) == 1 {
			var err error
			factors, prices, shares, err = broadcast(tech, coords)
			if err != nil {
				return nil, err
			}
		}
		return production.Leontief(factors, prices, tech.Output, tech.OutputPrice, shares, tech.Dims, coords, b)

	default:
		return nil, fmt.Errorf("unknown technology type %q", tech.Type)
	}
}

// broadcast expands scalar factor families across the technology's
// declared dims. Already-flat lists pass through unchanged.
func broadcast(tech config.Technology, coords production.Coords) (factors, prices, shares []string, err error) {
	if len(tech.Dims) == 0 {
		return tech.Factors, tech.FactorPrices, tech.FactorShares, nil
	}
	unpacked, err := production.UnpackInputs(tech.Dims, coords, tech.Factors, tech.FactorPrices, tech.FactorShares)
	if err != nil {
		return nil, nil, nil, err
	}
	return unpacked[0], unpacked[1], unpacked[2], nil
}
