// Package backend identifies the symbolic backends that generated equations
// target. The two backends differ only in aggregation syntax: Summation
// renders closed-form sums over an index (`Sum(expr, (i, 0, n))`), while
// Vectorized renders array reductions (`(expr).sum()`). Elementwise
// operations are interoperable between backends.
package backend

import (
	"fmt"
	"strings"
)

// Backend selects the aggregation syntax of the downstream symbolic system.
type Backend int

// Supported backends.
const (
	// Summation targets scalar-indexed symbols and finite sums.
	Summation Backend = iota
	// Vectorized targets array symbols with axis-aligned broadcasting.
	Vectorized
)

// String returns the canonical lowercase name of the backend.
func (b Backend) String() string {
	switch b {
	case Summation:
		return "summation"
	case Vectorized:
		return "vectorized"
	default:
		return fmt.Sprintf("backend(%d)", int(b))
	}
}

// Valid reports whether b is one of the supported backends.
func (b Backend) Valid() bool {
	return b == Summation || b == Vectorized
}

// Names returns the canonical backend names in declaration order.
func Names() []string {
	return []string{Summation.String(), Vectorized.String()}
}

// Parse converts a backend name to a Backend value.
// Returns an *UnsupportedError for anything other than the supported names.
func Parse(s string) (Backend, error) {
	switch strings.ToLower(s) {
	case "summation":
		return Summation, nil
	case "vectorized":
		return Vectorized, nil
	default:
		return Summation, &UnsupportedError{Value: s}
	}
}

// MarshalText implements encoding.TextMarshaler.
func (b Backend) MarshalText() ([]byte, error) {
	if !b.Valid() {
		return nil, &UnsupportedError{Value: b.String()}
	}
	return []byte(b.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *Backend) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// UnsupportedError indicates a backend value outside the supported set.
type UnsupportedError struct {
	Value string
}

func (e *UnsupportedError) Error() string {
	quoted := make([]string, 0, 2)
	for _, name := range Names() {
		quoted = append(quoted, fmt.Sprintf("%q", name))
	}
	return fmt.Sprintf("backend must be one of %s, found %q", strings.Join(quoted, " or "), e.Value)
}
