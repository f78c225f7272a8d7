package config

import (
	"fmt"

	"github.com/opencge/cgegen/pkg/backend"
)

// Validate checks the structural validity of the model configuration.
// Arity and length contracts between factor lists are left to the
// generators, which report them with precise typed errors; this pass
// rejects what no generator call could recover from: unknown backend,
// unknown technology type, missing required symbol names, and dims that
// reference undeclared coordinate dimensions.
func (c *Config) Validate() error {
	if _, err := backend.Parse(c.Backend); err != nil {
		return err
	}

	if len(c.Technologies) == 0 {
		return fmt.Errorf("model declares no technologies")
	}

	seen := make(map[string]bool, len(c.Technologies))
	for i, tech := range c.Technologies {
		if tech.Name == "" {
			return fmt.Errorf("technology %d: name is required", i)
		}
		if seen[tech.Name] {
			return fmt.Errorf("technology %q: duplicate name", tech.Name)
		}
		seen[tech.Name] = true

		if err := tech.validate(c.Coords); err != nil {
			return fmt.Errorf("technology %q: %w", tech.Name, err)
		}
	}

	return nil
}

func (t *Technology) validate(coords map[string][]string) error {
	switch t.Type {
	case TypeCES, TypeDixitStiglitz, TypeLeontief:
	case "":
		return fmt.Errorf("type is required (one of %s, %s, %s)", TypeCES, TypeDixitStiglitz, TypeLeontief)
	default:
		return fmt.Errorf("unknown type %q (one of %s, %s, %s)", t.Type, TypeCES, TypeDixitStiglitz, TypeLeontief)
	}

	if len(t.Factors) == 0 {
		return fmt.Errorf("factors are required")
	}
	if len(t.FactorPrices) == 0 {
		return fmt.Errorf("factor_prices are required")
	}
	if t.Output == "" {
		return fmt.Errorf("output is required")
	}
	if t.OutputPrice == "" {
		return fmt.Errorf("output_price is required")
	}

	// Leontief is the only technology without an elasticity: the
	// zero-profit form has no substitution term.
	if t.Type != TypeLeontief && t.Epsilon == "" {
		return fmt.Errorf("epsilon is required for %s", t.Type)
	}

	for _, dim := range t.Dims {
		if _, ok := coords[dim]; !ok {
			return fmt.Errorf("dim %q not declared in coords", dim)
		}
	}

	switch t.Type {
	case TypeCES:
		if t.TFP == "" {
			return fmt.Errorf("tfp is required for ces")
		}
		if len(t.FactorShares) == 0 {
			return fmt.Errorf("factor_shares are required for ces")
		}
	case TypeDixitStiglitz:
		if len(t.Dims) != 1 {
			return fmt.Errorf("dixit_stiglitz requires exactly one dim, got %d", len(t.Dims))
		}
	case TypeLeontief:
		if len(t.Dims) == 0 || len(t.Dims) > 2 {
			return fmt.Errorf("leontief requires one or two dims, got %d", len(t.Dims))
		}
		if len(t.FactorShares) == 0 {
			return fmt.Errorf("factor_shares are required for leontief")
		}
	}

	return nil
}
