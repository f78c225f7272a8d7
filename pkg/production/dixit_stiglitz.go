package production

import (
	"fmt"

	"github.com/opencge/cgegen/pkg/backend"
)

// DixitStiglitz generates string equations representing a Dixit-Stiglitz
// production process: a CES aggregate over a set of product varieties
// indexed by a single dimension.
//
// Despite the plural argument names, this technology takes a single factor;
// the names stay plural for call-signature symmetry with CES. factors and
// factorPrices must have exactly one element, factorShares nil or exactly
// one element. An empty tfp omits the technology term from the rendered
// equations, and a nil factorShares omits the share term; omission is
// textual, equivalent to setting the term to 1 but kept out of the string.
//
// dim must be a key of coords; the summation upper bound is
// len(coords[dim]) - 1. When tfp is supplied, the factor demand renders it
// both outside and inside the inner parenthesis; the duplication is part
// of the textual contract.
//
// Returns exactly two equations: the production function and the factor
// demand.
func DixitStiglitz(factors, factorPrices []string, output, outputPrice, epsilon, dim string, coords Coords, b backend.Backend, tfp string, factorShares []string) (string, string, error) {
	for _, arg := range []struct {
		name  string
		value []string
	}{
		{"factors", factors},
		{"factor_prices", factorPrices},
	} {
		if len(arg.value) != 1 {
			return "", "", &CardinalityError{
				Fn:   "dixit-stiglitz",
				Arg:  arg.name,
				Want: "only a single factor input",
				Got:  len(arg.value),
			}
		}
	}
	if factorShares != nil && len(factorShares) != 1 {
		return "", "", &CardinalityError{
			Fn:   "dixit-stiglitz",
			Arg:  "factor_shares",
			Want: "only a single factor input",
			Got:  len(factorShares),
		}
	}

	factor := factors[0]
	factorPrice := factorPrices[0]

	shareStr := ""
	if factorShares != nil {
		shareStr = factorShares[0] + " * "
	}
	tfpStr := ""
	if tfp != "" {
		tfpStr = tfp + " * "
	}

	kernel := fmt.Sprintf("%s%s ** ((%s - 1) / %s)", shareStr, factor, epsilon, epsilon)

	labels, ok := coords[dim]
	if !ok {
		return "", "", &DimensionError{Missing: []string{dim}}
	}
	dimLen := len(labels) - 1

	var rhs string
	switch b {
	case backend.Summation:
		rhs = fmt.Sprintf("Sum(%s, (%s, 0, %d)) ** (%s / (%s - 1))", kernel, dim, dimLen, epsilon, epsilon)
	case backend.Vectorized:
		rhs = fmt.Sprintf("(%s).sum() ** (%s / (%s - 1))", kernel, epsilon, epsilon)
	default:
		return "", "", &backend.UnsupportedError{Value: b.String()}
	}

	productionFunction := fmt.Sprintf("%s = %s%s", output, tfpStr, rhs)

	factorDemand := fmt.Sprintf(
		"%s = %s / %s(%s%s%s / %s) ** %s",
		factor, output, tfpStr, tfpStr, shareStr, outputPrice, factorPrice, epsilon,
	)

	return productionFunction, factorDemand, nil
}
