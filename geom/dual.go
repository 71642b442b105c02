/* Package geom provides the algebra of rigid motions: dual numbers,
quaternions and dual quaternions.

basic reminders
  ε² = 0
  (a + bε)(c + dε) = ac + (ad + bc)ε + bdε²
                   = ac + (ad + bc)ε

  q = r + dε, unit when |r| = 1 and r·d = 0
  translation t is encoded as d = ½tr
*/
package geom

import (
	"fmt"
	"math"
)

// Dual is a dual number Re + Duε.
type Dual struct {
	Re, Du float64
}

func (a Dual) Add(b Dual) Dual { return Dual{a.Re + b.Re, a.Du + b.Du} }
func (a Dual) Sub(b Dual) Dual { return Dual{a.Re - b.Re, a.Du - b.Du} }
func (a Dual) Neg() Dual       { return Dual{-a.Re, -a.Du} }

// Conj returns the dual conjugate Re - Duε.
func (a Dual) Conj() Dual { return Dual{a.Re, -a.Du} }

func (a Dual) Scale(s float64) Dual { return Dual{a.Re * s, a.Du * s} }

// Mul returns ab; the εε cross term vanishes.
func (a Dual) Mul(b Dual) Dual {
	return Dual{a.Re * b.Re, a.Re*b.Du + a.Du*b.Re}
}

// Inverse returns 1/a - (b/a²)ε.
func (a Dual) Inverse() Dual {
	if a.Re == 0 {
		fail("Dual.Inverse", ErrDivisionByZero)
	}
	return Dual{1 / a.Re, -a.Du / (a.Re * a.Re)}
}

func (a Dual) Div(b Dual) Dual { return a.Mul(b.Inverse()) }

// Sqrt returns √a + (b/2√a)ε.
func (a Dual) Sqrt() Dual {
	switch {
	case a.Re < 0:
		fail("Dual.Sqrt", ErrDomain)
	case a.Re == 0:
		if a.Du != 0 {
			fail("Dual.Sqrt", ErrDivisionByZero)
		}
		return Dual{}
	}
	r := math.Sqrt(a.Re)
	return Dual{r, a.Du / (2 * r)}
}

func (a Dual) String() string { return fmt.Sprintf("%v + %vε", a.Re, a.Du) }
