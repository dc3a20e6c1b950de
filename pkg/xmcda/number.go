package xmcda

import (
	"math"
	"strconv"
	"strings"

	"github.com/matzehuels/valdigraph/pkg/valuation"
)

// Number is the XMCDA numeric value: exactly one of a <real> or an <integer>
// child. Decoding prefers the real encoding and falls back to the integer
// one when the real child is missing or unparseable.
type Number struct {
	Real    *string `xml:"real,omitempty"`
	Integer *string `xml:"integer,omitempty"`
}

// RealNumber returns the real encoding of v in its shortest form.
func RealNumber(v float64) Number {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	return Number{Real: &s}
}

// IntegerNumber returns the integer encoding of floor(v).
func IntegerNumber(v float64) Number {
	s := strconv.FormatInt(int64(math.Floor(v)), 10)
	return Number{Integer: &s}
}

// Float returns the numeric value and whether one could be read.
func (n *Number) Float() (float64, bool) {
	if n == nil {
		return 0, false
	}
	if n.Real != nil {
		if v, err := strconv.ParseFloat(strings.TrimSpace(*n.Real), 64); err == nil && !math.IsNaN(v) && !math.IsInf(v, 0) {
			return v, true
		}
	}
	if n.Integer != nil {
		if v, err := strconv.ParseInt(strings.TrimSpace(*n.Integer), 10, 64); err == nil {
			return float64(v), true
		}
	}
	return 0, false
}

// fixedNumber returns the real encoding of v with exactly two decimals.
func fixedNumber(v float64) Number {
	s := valuation.Format(v)
	return Number{Real: &s}
}
