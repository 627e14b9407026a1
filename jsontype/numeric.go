package jsontype

import (
	"regexp"
	"strconv"
	"strings"
)

// numericPattern accepts an optional sign, digits with an optional decimal
// point (or a leading point) and an optional exponent, surrounded by optional
// whitespace. Hexadecimal, "Inf" and "NaN" are not numeric.
var numericPattern = regexp.MustCompile(`^[ \t\n\r\v\f]*[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?[ \t\n\r\v\f]*$`)

// IsNumeric reports whether s is the textual representation of a number.
func IsNumeric(s string) bool {
	return numericPattern.MatchString(s)
}

// ParseNumeric parses a string accepted by IsNumeric. Integral literals that
// fit an int64 are returned exactly as isInt; everything else is returned as
// a float64, which may be infinite for out-of-range exponents.
func ParseNumeric(s string) (i int64, f float64, isInt bool, ok bool) {
	if !IsNumeric(s) {
		return 0, 0, false, false
	}

	s = strings.TrimSpace(s)

	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, float64(n), true, true
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil && f == 0 {
		return 0, 0, false, false
	}

	return 0, f, false, true
}
