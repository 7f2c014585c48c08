// Package version implements the comparison policy used to decide whether an
// installed package satisfies a minimum-version requirement.
package version

import (
	"strconv"
	"strings"
)

// Result classifies an installed version against an expected minimum.
type Result int

const (
	// Lower means the installed version does not satisfy the expected one.
	Lower Result = iota - 1
	// Equal means the versions are equivalent, or no constraint applied.
	Equal
	// Higher means the installed version exceeds the expected one.
	Higher
)

// String returns the canonical name of the result.
func (r Result) String() string {
	switch r {
	case Lower:
		return "lower"
	case Higher:
		return "higher"
	default:
		return "equal"
	}
}

// Compare reports how installed relates to expected.
//
// A blank or whitespace-only value on either side means there is no
// constraint to violate and yields Equal. When both strings parse as dotted
// sequences of non-negative integers they are compared component-wise, the
// shorter side zero-padded, and the result describes the installed version
// relative to the expected one.
//
// Anything else falls back to exact string equality, then to raw code-point
// ordering of the two arguments. The fallback is a degraded mode kept for
// version strings the tool reports as free text (e.g. "Unknown" or
// pre-release suffixes); callers must not rely on it for ordering guarantees.
// Compare never fails; it always returns one of the three results.
func Compare(expected, installed string) Result {
	if strings.TrimSpace(expected) == "" || strings.TrimSpace(installed) == "" {
		return Equal
	}

	want, okWant := parseDotted(expected)
	have, okHave := parseDotted(installed)
	if okWant && okHave {
		return compareComponents(want, have)
	}

	if expected == installed {
		return Equal
	}
	if expected < installed {
		return Lower
	}
	return Higher
}

// parseDotted splits s into its dot-separated integer components. It reports
// false if any component is not a non-negative integer.
func parseDotted(s string) ([]int, bool) {
	segments := strings.Split(strings.TrimSpace(s), ".")
	components := make([]int, 0, len(segments))
	for _, segment := range segments {
		n, err := strconv.Atoi(segment)
		if err != nil || n < 0 {
			return nil, false
		}
		components = append(components, n)
	}
	return components, true
}

func compareComponents(want, have []int) Result {
	length := len(want)
	if len(have) > length {
		length = len(have)
	}

	for i := 0; i < length; i++ {
		w, h := 0, 0
		if i < len(want) {
			w = want[i]
		}
		if i < len(have) {
			h = have[i]
		}
		if h > w {
			return Higher
		}
		if h < w {
			return Lower
		}
	}
	return Equal
}
