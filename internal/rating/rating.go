// Package rating turns an average rating into five star units.
package rating

import (
	"math"
	"math/big"
	"strconv"
)

// Units is the number of star positions in a rating
const Units = 5

// State is the fill of one star position
type State int

const (
	Empty State = iota
	Half
	Full
)

func (s State) String() string {
	switch s {
	case Full:
		return "full"
	case Half:
		return "half"
	default:
		return "empty"
	}
}

// Glyph returns the terminal symbol for the state
func (s State) Glyph() string {
	switch s {
	case Full:
		return "★"
	case Half:
		return "⯪"
	default:
		return "☆"
	}
}

// Stars maps r onto the five positions. Position p (1-indexed) is Full when
// r >= p, Half when r >= p-0.5 and Empty otherwise. Defined for any input:
// NaN and negatives give five Empty, anything from 5 up gives five Full.
func Stars(r float64) [Units]State {
	var out [Units]State
	for i := range out {
		p := float64(i + 1)
		switch {
		case r >= p:
			out[i] = Full
		case r >= p-0.5:
			out[i] = Half
		default:
			out[i] = Empty
		}
	}
	return out
}

// Round rounds r to one decimal place using the exact binary value of r.
// 1.45 is stored as 1.4499... and becomes 1.4; exact ties such as 2.25 go
// away from zero.
func Round(r float64) float64 {
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return r
	}

	x := new(big.Float).SetPrec(256).SetFloat64(math.Abs(r))
	x.Mul(x, big.NewFloat(10))
	n, _ := x.Int(nil)
	frac := new(big.Float).Sub(x, new(big.Float).SetInt(n))
	if frac.Cmp(big.NewFloat(0.5)) >= 0 {
		n.Add(n, big.NewInt(1))
	}

	v, err := strconv.ParseFloat(n.String()+"e-1", 64)
	if err != nil {
		return r
	}
	if r < 0 {
		v = -v
	}
	return v
}

// Label formats r with exactly one decimal, e.g. "4.2"
func Label(r float64) string {
	return strconv.FormatFloat(Round(r), 'f', 1, 64)
}

// Glyphs renders the five states as a string of symbols
func Glyphs(states [Units]State) string {
	var b []byte
	for _, s := range states {
		b = append(b, s.Glyph()...)
	}
	return string(b)
}
