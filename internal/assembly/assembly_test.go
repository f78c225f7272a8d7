package assembly

import (
	"testing"

	"github.com/opencge/cgegen/internal/config"
	"github.com/opencge/cgegen/internal/testutil"
	"github.com/opencge/cgegen/pkg/production"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssemble_BroadcastCES(t *testing.T) {
	cfg := &config.Config{
		Backend: "summation",
		Coords:  map[string][]string{"i": {"AGR", "IND"}},
		Technologies: []config.Technology{
			{
				Name:         "sector_production",
				Type:         config.TypeCES,
				Factors:      []string{"L"},
				FactorPrices: []string{"w"},
				Output:       "Y",
				OutputPrice:  "P_Y",
				TFP:          "A",
				FactorShares: []string{"alpha"},
				Epsilon:      "epsilon",
				Dims:         []string{"i"},
			},
		},
	}

	asm := New(testutil.NewTestLogger(t))
	results, err := asm.Assemble(cfg)
	require.NoError(t, err)
	require.Len(t, results, 1)

	tech := results[0]
	assert.Equal(t, "sector_production", tech.Name)
	assert.Equal(t, config.TypeCES, tech.Type)
	// One production equation plus one demand per broadcast factor.
	require.Len(t, tech.Equations, 3)
	assert.Equal(t, "L_AGR = Y / A * ((alpha_AGR) * P_Y * A / w_AGR) ** epsilon", tech.Equations[1])
	assert.Equal(t, "L_IND = Y / A * ((alpha_IND) * P_Y * A / w_IND) ** epsilon", tech.Equations[2])
}

func TestAssemble_FlatCES(t *testing.T) {
	cfg := &config.Config{
		Backend: "summation",
		Technologies: []config.Technology{
			{
				Name:         "value_added",
				Type:         config.TypeCES,
				Factors:      []string{"L", "K"},
				FactorPrices: []string{"w", "r"},
				Output:       "VA",
				OutputPrice:  "P_VA",
				TFP:          "A",
				FactorShares: []string{"alpha"},
				Epsilon:      "epsilon",
			},
		},
	}

	asm := New(nil)
	results, err := asm.Assemble(cfg)
	require.NoError(t, err)
	require.Len(t, results[0].Equations, 3)

	// The complementary share is synthesized for the second factor.
	assert.Contains(t, results[0].Equations[2], "(1 - alpha)")
}

func TestAssemble_DixitStiglitz(t *testing.T) {
	cfg := &config.Config{
		Backend: "vectorized",
		Coords:  map[string][]string{"i": {"A", "B", "C"}},
		Technologies: []config.Technology{
			{
				Name:         "armington",
				Type:         config.TypeDixitStiglitz,
				Factors:      []string{"Y_d"},
				FactorPrices: []string{"P_d"},
				Output:       "C",
				OutputPrice:  "P_C",
				Epsilon:      "sigma",
				Dims:         []string{"i"},
			},
		},
	}

	asm := New(testutil.NewTestLogger(t))
	results, err := asm.Assemble(cfg)
	require.NoError(t, err)
	require.Len(t, results[0].Equations, 2)

	assert.Equal(t, "C = (Y_d ** ((sigma - 1) / sigma)).sum() ** (sigma / (sigma - 1))", results[0].Equations[0])
	assert.Equal(t, "Y_d = C / (P_C / P_d) ** sigma", results[0].Equations[1])
}

func TestAssemble_Leontief2D(t *testing.T) {
	cfg := &config.Config{
		Backend: "summation",
		Coords: map[string][]string{
			"i": {"AGR", "IND"},
			"j": {"AGR", "IND"},
		},
		Technologies: []config.Technology{
			{
				Name:         "input_output",
				Type:         config.TypeLeontief,
				Factors:      []string{"X"},
				FactorPrices: []string{"P_X"},
				Output:       "Y",
				OutputPrice:  "P_Y",
				FactorShares: []string{"phi"},
				Dims:         []string{"i", "j"},
			},
		},
	}

	asm := New(testutil.NewTestLogger(t))
	results, err := asm.Assemble(cfg)
	require.NoError(t, err)
	require.Len(t, results[0].Equations, 2)

	assert.Equal(t,
		"P_Y * Y = Sum(P_X.subs({i:j}) * X.subs([(i, a), (j, i), (a, j)]), (j, 0, 1))",
		results[0].Equations[0])
	assert.Equal(t, "X = phi * Y.subs({i:j})", results[0].Equations[1])
}

func TestAssemble_Leontief1DBroadcast(t *testing.T) {
	cfg := &config.Config{
		Backend: "summation",
		Coords:  map[string][]string{"i": {"AGR", "IND"}},
		Technologies: []config.Technology{
			{
				Name:         "final_demand",
				Type:         config.TypeLeontief,
				Factors:      []string{"X"},
				FactorPrices: []string{"P_X"},
				Output:       "C",
				OutputPrice:  "P_C",
				FactorShares: []string{"phi"},
				Dims:         []string{"i"},
			},
		},
	}

	asm := New(nil)
	results, err := asm.Assemble(cfg)
	require.NoError(t, err)
	require.Len(t, results[0].Equations, 3)

	assert.Equal(t, "P_C * C = P_X_AGR * X_AGR + P_X_IND * X_IND", results[0].Equations[0])
	assert.Equal(t, "X_AGR = C * phi_AGR", results[0].Equations[1])
	assert.Equal(t, "X_IND = C * phi_IND", results[0].Equations[2])
}

func TestAssemble_DeclarationOrderPreserved(t *testing.T) {
	cfg := &config.Config{
		Backend: "vectorized",
		Coords: map[string][]string{
			"i": {"AGR", "IND"},
			"j": {"AGR", "IND"},
		},
		Technologies: []config.Technology{
			{
				Name: "b_second", Type: config.TypeLeontief,
				Factors: []string{"X"}, FactorPrices: []string{"P_X"},
				Output: "Y", OutputPrice: "P_Y",
				FactorShares: []string{"phi"}, Dims: []string{"i", "j"},
			},
			{
				Name: "a_first", Type: config.TypeCES,
				Factors: []string{"L", "K"}, FactorPrices: []string{"w", "r"},
				Output: "VA", OutputPrice: "P_VA", TFP: "A",
				FactorShares: []string{"alpha"}, Epsilon: "epsilon",
			},
		},
	}

	asm := New(nil)
	results, err := asm.Assemble(cfg)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "b_second", results[0].Name)
	assert.Equal(t, "a_first", results[1].Name)
}

func TestAssemble_Errors(t *testing.T) {
	t.Run("generator error names the technology", func(t *testing.T) {
		cfg := &config.Config{
			Backend: "summation",
			Coords:  map[string][]string{"i": {"AGR", "IND"}},
			Technologies: []config.Technology{
				{
					Name: "mismatched_leontief", Type: config.TypeLeontief,
					Factors: []string{"X", "Z"}, FactorPrices: []string{"P_X", "P_Z", "P_W"},
					Output: "Y", OutputPrice: "P_Y",
					FactorShares: []string{"phi", "psi"}, Dims: []string{"i"},
				},
			},
		}

		_, err := New(nil).Assemble(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `technology "mismatched_leontief"`)

		var lenErr *production.LengthMismatchError
		require.ErrorAs(t, err, &lenErr)
	})

	t.Run("unparsable backend", func(t *testing.T) {
		cfg := &config.Config{Backend: "numba"}
		_, err := New(nil).Assemble(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "backend must be one of")
	})
}
