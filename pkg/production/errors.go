package production

import (
	"fmt"
	"strings"
)

// LengthMismatchError indicates that two parallel argument lists disagree
// in length. Name1 and Name2 identify the offending arguments.
type LengthMismatchError struct {
	Name1 string
	Name2 string
	Len1  int
	Len2  int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("lengths of %s and %s do not match (%d != %d)", e.Name1, e.Name2, e.Len1, e.Len2)
}

// DimensionError indicates that one or more requested dimension names are
// absent from the supplied coordinates.
type DimensionError struct {
	Missing []string
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("dimensions %s not found in coords", strings.Join(e.Missing, ", "))
}

// CardinalityError indicates that a factor-count/dimension-count
// combination violates a generator's arity contract.
type CardinalityError struct {
	Fn   string // generator name
	Arg  string // offending argument
	Want string // expected arity, in words
	Got  int
}

func (e *CardinalityError) Error() string {
	return fmt.Sprintf("%s expects %s, but %s has length %d", e.Fn, e.Want, e.Arg, e.Got)
}
