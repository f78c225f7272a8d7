package production

import (
	"fmt"
	"strings"
)

// CES generates string equations representing a constant elasticity of
// substitution production process:
//
//	Y = A * (sum_i alpha_i * X_i ** ((eps - 1) / eps)) ** (eps / (eps - 1))
//
// where tfp is the total factor productivity parameter A, factorShares are
// the alpha_i, and epsilon is the elasticity of substitution. Profit
// maximization yields the factor demands
//
//	X_i = Y / A * (alpha_i * P_Y * A / P_i) ** eps
//
// This is the N-factor case; multi-dimensional factor families must be
// flattened with UnpackInputs before calling. With exactly two factors and
// a single share, the second share is synthesized as "1 - share".
//
// Returns the production equation followed by one demand equation per
// factor, in factor order.
func CES(factors, factorPrices []string, output, outputPrice, tfp string, factorShares []string, epsilon string) ([]string, error) {
	factorShares = completeShares(factorShares, factors)

	err := checkPairwiseLengthsMatch(
		[]string{"factors", "factor_prices", "factor_shares"},
		[][]string{factors, factorPrices, factorShares},
	)
	if err != nil {
		return nil, err
	}

	inner := make([]string, len(factors))
	for i, factor := range factors {
		inner[i] = fmt.Sprintf("(%s) * %s ** ((%s - 1) / %s)", factorShares[i], factor, epsilon, epsilon)
	}

	equations := make([]string, 0, len(factors)+1)
	equations = append(equations, fmt.Sprintf(
		"%s = %s * (%s) ** (%s / (%s - 1))",
		output, tfp, strings.Join(inner, " + "), epsilon, epsilon,
	))

	for i, factor := range factors {
		equations = append(equations, fmt.Sprintf(
			"%s = %s / %s * ((%s) * %s * %s / %s) ** %s",
			factor, output, tfp, factorShares[i], outputPrice, tfp, factorPrices[i], epsilon,
		))
	}

	return equations, nil
}
