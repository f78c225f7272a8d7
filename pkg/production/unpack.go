package production

import (
	"fmt"
	"strings"
)

// Coords maps a dimension name to its ordered coordinate labels.
// Label order is significant: it determines generated symbol suffix order
// and, for two-dimensional Leontief technologies, axis length.
type Coords map[string][]string

// UnpackInputs broadcasts scalar symbol names across the given dimensions.
//
// Every input is a slice of names; a one-element slice is the canonical
// encoding of a bare name. If every input is already list-valued (length
// greater than one), or if dims/coords are absent, the inputs are returned
// unchanged. Otherwise every dim must be a key of coords and every input
// must be scalar; each input then expands to one generated name per tuple
// of the Cartesian product of coords[dim] over dims, in dims order with
// the last dimension varying fastest. Generated names join the base name
// and the tuple's labels with underscores:
//
//	UnpackInputs([]string{"i", "j"}, Coords{"i": {"A", "B"}, "j": {"X", "Y"}}, []string{"foo"})
//
// yields [[foo_A_X foo_A_Y foo_B_X foo_B_Y]].
func UnpackInputs(dims []string, coords Coords, inputs ...[]string) ([][]string, error) {
	allLists := true
	for _, in := range inputs {
		if len(in) <= 1 {
			allLists = false
			break
		}
	}
	if allLists {
		return inputs, nil
	}

	if len(dims) == 0 || coords == nil {
		return inputs, nil
	}

	var missing []string
	for _, dim := range dims {
		if _, ok := coords[dim]; !ok {
			missing = append(missing, dim)
		}
	}
	if len(missing) > 0 {
		return nil, &DimensionError{Missing: missing}
	}

	for i, in := range inputs {
		if len(in) != 1 {
			return nil, fmt.Errorf("cannot broadcast input %d over dims %s: input is already list-valued (length %d) while others are scalar", i, strings.Join(dims, ", "), len(in))
		}
	}

	labels := make([][]string, len(dims))
	for i, dim := range dims {
		labels[i] = coords[dim]
	}

	outputs := make([][]string, len(inputs))
	for _, tuple := range cartesianProduct(labels) {
		for i, in := range inputs {
			parts := append([]string{in[0]}, tuple...)
			outputs[i] = append(outputs[i], strings.Join(parts, "_"))
		}
	}

	return outputs, nil
}

// cartesianProduct enumerates tuples in row-major order: the first axis
// varies slowest, the last fastest.
func cartesianProduct(axes [][]string) [][]string {
	tuples := [][]string{{}}
	for _, axis := range axes {
		next := make([][]string, 0, len(tuples)*len(axis))
		for _, tuple := range tuples {
			for _, label := range axis {
				extended := make([]string, len(tuple), len(tuple)+1)
				copy(extended, tuple)
				next = append(next, append(extended, label))
			}
		}
		tuples = next
	}
	return tuples
}

// checkPairwiseLengthsMatch validates that every pair of parallel argument
// lists agrees in length. The first mismatching pair, in combination
// order, produces a *LengthMismatchError naming both arguments.
func checkPairwiseLengthsMatch(names []string, args [][]string) error {
	for i := 0; i < len(args); i++ {
		for j := i + 1; j < len(args); j++ {
			if len(args[i]) != len(args[j]) {
				return &LengthMismatchError{
					Name1: names[i],
					Name2: names[j],
					Len1:  len(args[i]),
					Len2:  len(args[j]),
				}
			}
		}
	}
	return nil
}
