package production

import (
	"fmt"
	"strings"

	"github.com/opencge/cgegen/pkg/backend"
)

// Leontief generates string equations representing a fixed-proportions
// production process:
//
//	Y = min_i(X_i / alpha_i)
//
// The minimum operator is non-differentiable, so instead of the production
// function the generator returns the equivalent zero-profit condition
//
//	P_Y * Y = sum_i P_i * X_i
//
// together with the linear factor demands X_i = alpha_i * Y.
//
// A single dimension dispatches to the one-dimensional path, which
// requires at least two factors and returns the zero-profit condition plus
// one demand per factor. Exactly two dims dispatch to the two-dimensional
// path, which requires exactly one factor: the factor is a sector-by-sector
// input-output matrix indexed by both dims, with supply on the first
// dimension and demand on the second. Any other dims count is a
// cardinality error.
func Leontief(factors, factorPrices []string, output, outputPrice string, factorShares []string, dims []string, coords Coords, b backend.Backend) ([]string, error) {
	err := checkPairwiseLengthsMatch(
		[]string{"factors", "factor_prices", "factor_shares"},
		[][]string{factors, factorPrices, factorShares},
	)
	if err != nil {
		return nil, err
	}

	if len(dims) == 1 {
		if len(factors) < 2 {
			return nil, &CardinalityError{
				Fn:   "leontief",
				Arg:  "factors",
				Want: "at least two factors when one dimension is given",
				Got:  len(factors),
			}
		}
		return leontief1D(factors, factorPrices, output, outputPrice, factorShares), nil
	}

	if len(dims) != 2 {
		return nil, &CardinalityError{
			Fn:   "leontief",
			Arg:  "dims",
			Want: "one or two dimensions",
			Got:  len(dims),
		}
	}
	if len(factors) != 1 {
		return nil, &CardinalityError{
			Fn:   "leontief",
			Arg:  "factors",
			Want: "exactly one factor when two dimensions are given",
			Got:  len(factors),
		}
	}
	return leontief2D(factors[0], factorPrices[0], output, outputPrice, factorShares[0], dims, coords, b)
}

// leontief1D covers ordinary factor lists indexed by a single dimension.
// The equations are backend-independent: no aggregation syntax appears.
func leontief1D(factors, factorPrices []string, output, outputPrice string, factorShares []string) []string {
	terms := make([]string, len(factors))
	for i, factor := range factors {
		terms[i] = fmt.Sprintf("%s * %s", factorPrices[i], factor)
	}
	zeroProfit := fmt.Sprintf("%s * %s = %s", outputPrice, output, strings.Join(terms, " + "))

	equations := make([]string, 0, len(factors)+1)
	equations = append(equations, zeroProfit)
	for i, factor := range factors {
		equations = append(equations, fmt.Sprintf("%s = %s * %s", factor, output, factorShares[i]))
	}
	return equations
}

// leontief2D covers the input-output matrix case. The factor is an N x N
// matrix indexed by (core, batch): rows are supply by the core sector,
// columns are demand by the batch sector. The zero-profit condition sums
// across rows, which for scalar-indexed symbols needs the index machinery
// in transpose.go; the vectorized backend broadcasts natively and needs
// neither swap nor transpose.
func leontief2D(factor, factorPrice, output, outputPrice, factorShare string, dims []string, coords Coords, b backend.Backend) ([]string, error) {
	core, batch := dims[0], dims[1]

	var zeroProfit, factorDemand string
	switch b {
	case backend.Summation:
		labels, ok := coords[batch]
		if !ok {
			return nil, &DimensionError{Missing: []string{batch}}
		}
		transposed, err := transpose(factor, core, batch, coords)
		if err != nil {
			return nil, err
		}
		rhs := fmt.Sprintf(
			"Sum(%s * %s, (%s, 0, %d))",
			swapAxes(factorPrice, core, batch), transposed, batch, len(labels)-1,
		)
		zeroProfit = fmt.Sprintf("%s * %s = %s", outputPrice, output, rhs)
		factorDemand = fmt.Sprintf("%s = %s * %s", factor, factorShare, swapAxes(output, core, batch))

	case backend.Vectorized:
		zeroProfit = fmt.Sprintf("%s * %s = (%s[:, None] * %s).sum(axis=0).ravel()", outputPrice, output, factorPrice, factor)
		factorDemand = fmt.Sprintf("%s = %s * %s[None]", factor, factorShare, output)

	default:
		return nil, &backend.UnsupportedError{Value: b.String()}
	}

	return []string{zeroProfit, factorDemand}, nil
}
