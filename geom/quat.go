package geom

import (
	"fmt"
	"math"
)

// Quat is the quaternion S + V.
type Quat struct {
	V Vec
	S float64
}

func QuatIdent() Quat { return Quat{S: 1} }

// AxisAngle returns the rotation of angle radians about axis.
func AxisAngle(axis Vec, angle float64) Quat {
	if axis.NormSq() == 0 {
		fail("AxisAngle", ErrDegenerate)
	}
	s, c := math.Sincos(angle / 2)
	return Quat{axis.Unit().Scale(s), c}
}

// hamilton returns (v1, s1)(v2, s2) = (v2s1 + v1s2 + v1×v2, s1s2 - v1·v2).
func hamilton(v1 Vec, s1 float64, v2 Vec, s2 float64) Quat {
	return Quat{
		v2.Scale(s1).Add(v1.Scale(s2)).Add(v1.Cross(v2)),
		s1*s2 - v1.Dot(v2),
	}
}

func (a Quat) AddScalar(s float64) Quat { return Quat{a.V, a.S + s} }
func (a Quat) SubScalar(s float64) Quat { return Quat{a.V, a.S - s} }
func (a Quat) Add(b Quat) Quat          { return Quat{a.V.Add(b.V), a.S + b.S} }
func (a Quat) Sub(b Quat) Quat          { return Quat{a.V.Sub(b.V), a.S - b.S} }
func (a Quat) Neg() Quat                { return Quat{a.V.Neg(), -a.S} }
func (a Quat) Scale(s float64) Quat     { return Quat{a.V.Scale(s), a.S * s} }

// Mul returns the Hamilton product ab; not commutative.
func (a Quat) Mul(b Quat) Quat { return hamilton(a.V, a.S, b.V, b.S) }

func (a Quat) Div(s float64) Quat {
	if s == 0 {
		fail("Quat.Div", ErrDivisionByZero)
	}
	return Quat{a.V.Scale(1 / s), a.S / s}
}

func (a Quat) NormSq() float64 { return a.S*a.S + a.V.NormSq() }
func (a Quat) Norm() float64   { return math.Sqrt(a.NormSq()) }

// Unit returns a normalized.
func (a Quat) Unit() Quat {
	n := a.Norm()
	if n == 0 || !finite(n) {
		fail("Quat.Unit", ErrDegenerate)
	}
	return a.Div(n)
}

func (a Quat) Conj() Quat { return Quat{a.V.Neg(), a.S} }

// Inverse returns the reciprocal Conj/NormSq.
func (a Quat) Inverse() Quat {
	n := a.NormSq()
	if n == 0 {
		fail("Quat.Inverse", ErrDivisionByZero)
	}
	return a.Conj().Div(n)
}

// Quo returns ab⁻¹.
func (a Quat) Quo(b Quat) Quat { return a.Mul(b.Inverse()) }

// Transform rotates p by a as the sandwich a p a⁻¹.
func (a Quat) Transform(p Vec) Vec {
	return a.Mul(p.Quat()).Mul(a.Inverse()).V
}

func (a Quat) String() string { return fmt.Sprintf("%s + %v", a.V, a.S) }
