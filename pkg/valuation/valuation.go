// Package valuation holds the valuation domain of a valued digraph and the
// two-decimal fixed-point helpers applied wherever relation values cross a
// boundary (decoding, editing, inversion and serialization).
//
// A [Domain] is the (min, med, max) scale against which relation values are
// classified. The median is always derived: Med = Min + (Max-Min)/2.
//
// Relation values are float64 throughout the module, but every value that is
// stored or written goes through [Trunc2] or [Round2] first. Both helpers
// correct for binary representation error (0.29*100 is 28.999999999999996)
// so repeated edit/export cycles do not drift.
package valuation

import (
	"math"
	"strconv"

	"github.com/matzehuels/valdigraph/pkg/errors"
)

// Default bounds used when a session starts without a document.
const (
	DefaultMin = 0.0
	DefaultMax = 1.0
)

// scale is the fixed-point factor for two decimals.
const scale = 100

// epsilon absorbs representation error when a value is scaled to hundredths.
const epsilon = 1e-9

// Domain is the valuation scale of a digraph.
// The zero value is not usable; construct with [New] or [Default].
type Domain struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
	Med float64 `json:"med"`
}

// New returns the domain [min, max] with its derived median.
// It fails with INVALID_INPUT unless both bounds are finite and min < max.
func New(min, max float64) (Domain, error) {
	if !finite(min) || !finite(max) {
		return Domain{}, errors.New(errors.ErrCodeInvalidInput, "valuation bounds must be finite numbers")
	}
	if !(min < max) {
		return Domain{}, errors.New(errors.ErrCodeInvalidInput, "valuation minimum %s must be below maximum %s", Format(min), Format(max))
	}
	return Domain{Min: min, Max: max, Med: min + (max-min)/2}, nil
}

// Default returns the domain {0, 0.5, 1} used for new, empty sessions.
func Default() Domain {
	d, _ := New(DefaultMin, DefaultMax)
	return d
}

// Contains reports whether v lies inside [Min, Max].
func (d Domain) Contains(v float64) bool {
	return v >= d.Min && v <= d.Max
}

// Pending returns Max+1, the out-of-range value written on both directions of
// a freshly connected pair. Two values above Max classify as an
// initialization arc.
func (d Domain) Pending() float64 {
	return d.Max + 1
}

// Invert mirrors v across the median: Round2(Max - v + Min).
// Inverting twice restores any two-decimal value.
func (d Domain) Invert(v float64) float64 {
	return Round2(d.Max - v + d.Min)
}

// Trunc2 truncates v towards negative infinity at two decimals,
// so 0.879 becomes 0.87 and -0.291 becomes -0.30. Values too large to
// scale are returned unchanged.
func Trunc2(v float64) float64 {
	if !scalable(v) {
		return v
	}
	return math.Floor(v*scale+epsilon) / scale
}

// Round2 rounds v half away from zero at two decimals. Values too large to
// scale are returned unchanged.
func Round2(v float64) float64 {
	if !scalable(v) {
		return v
	}
	return math.Round(v*scale) / scale
}

// Format renders v with exactly two decimals ("0.50").
func Format(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// scalable reports whether v*scale stays finite.
func scalable(v float64) bool {
	return finite(v) && math.Abs(v) <= math.MaxFloat64/scale
}
