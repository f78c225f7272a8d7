package production

import (
	"errors"
	"fmt"
)

// swapAxes renders the textual substitution of index i with index j on x.
// It turns a column-indexed expression into a row-indexed one (or vice
// versa) so that labels agree across the two sides of an equation.
func swapAxes(x, i, j string) string {
	return fmt.Sprintf("%s.subs({%s:%s})", x, i, j)
}

// freeIndex returns the first lowercase ASCII letter not declared as a
// dimension name in coords. The alphabetical tie-break is part of the
// output contract for the summation backend.
func freeIndex(coords Coords) (string, error) {
	for c := 'a'; c <= 'z'; c++ {
		if _, ok := coords[string(c)]; !ok {
			return string(c), nil
		}
	}
	return "", errors.New("no free index letter: every lowercase letter is declared as a dimension")
}

// transpose renders the exchange of indices i and j on x as a three-way
// cycle through a temporary dummy index, so the two substitutions do not
// clobber each other:
//
//	x.subs([(i, tmp), (j, i), (tmp, j)])
//
// applied in that exact order.
func transpose(x, i, j string, coords Coords) (string, error) {
	tmp, err := freeIndex(coords)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s.subs([(%s, %s), (%s, %s), (%s, %s)])", x, i, tmp, j, i, tmp, j), nil
}
