package rules

import "slices"

// HasSignature reports whether params matches expected exactly in count,
// order and names. Defaults, annotations and star markers are not part of
// the comparison.
func HasSignature(params []string, expected ...string) bool {
	return slices.Equal(params, expected)
}
