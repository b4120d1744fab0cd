package dimen

import "fmt"

// Fr is a fractional unit for proportional space distribution, comparable to
// CSS flex units or TeX's fil. Fractional values are additive; the sum of all
// queued fractions within one region is the divisor used when the leftover
// space is finally distributed.
type Fr float64

// Share resolves the fraction against the sum of all fractions and the
// remaining space to distribute. A non-positive total yields zero.
func (f Fr) Share(total Fr, remaining Dimen) Dimen {
	if total <= 0 || remaining <= 0 {
		return 0
	}
	return Dimen(float64(remaining) * float64(f) / float64(total))
}

// IsZero returns true for a zero fraction.
func (f Fr) IsZero() bool {
	return f == 0
}

func (f Fr) String() string {
	return fmt.Sprintf("%gfr", float64(f))
}
