package geom

import (
	"fmt"
	"math"
)

// DualQuat is the dual quaternion S + V over dual numbers. A unit DualQuat
// encodes a rigid motion: the real part is the rotation r and the dual part
// is ½tr for translation t.
type DualQuat struct {
	V DualVec
	S Dual
}

func DualQuatIdent() DualQuat { return DualQuat{S: Dual{Re: 1}} }

// FromTranslation returns the pure translation by v.
func FromTranslation(v Vec) DualQuat {
	return DualQuat{
		V: DualVec{Dual{Du: v.X / 2}, Dual{Du: v.Y / 2}, Dual{Du: v.Z / 2}},
		S: Dual{Re: 1},
	}
}

// FromRotation lifts q to a dual quaternion with zero dual part.
func FromRotation(q Quat) DualQuat { return DualQuat{q.V.Dual(), Dual{Re: q.S}} }

// FromAxisAngle returns the pure rotation of angle radians about axis.
func FromAxisAngle(axis Vec, angle float64) DualQuat { return FromRotation(AxisAngle(axis, angle)) }

// FromPosition lifts point p to 1 + pε; this is a point operand for
// Transform, not a motion.
func FromPosition(p Vec) DualQuat {
	return DualQuat{
		V: DualVec{Dual{Du: p.X}, Dual{Du: p.Y}, Dual{Du: p.Z}},
		S: Dual{Re: 1},
	}
}

func dualHamilton(v1 DualVec, s1 Dual, v2 DualVec, s2 Dual) DualQuat {
	return DualQuat{
		v2.Scale(s1).Add(v1.Scale(s2)).Add(v1.Cross(v2)),
		s1.Mul(s2).Sub(v1.Dot(v2)),
	}
}

func (a DualQuat) AddScalar(s Dual) DualQuat { return DualQuat{a.V, a.S.Add(s)} }
func (a DualQuat) SubScalar(s Dual) DualQuat { return DualQuat{a.V, a.S.Sub(s)} }
func (a DualQuat) Add(b DualQuat) DualQuat   { return DualQuat{a.V.Add(b.V), a.S.Add(b.S)} }
func (a DualQuat) Sub(b DualQuat) DualQuat   { return DualQuat{a.V.Sub(b.V), a.S.Sub(b.S)} }
func (a DualQuat) Neg() DualQuat             { return DualQuat{a.V.Neg(), a.S.Neg()} }
func (a DualQuat) Scale(s Dual) DualQuat     { return DualQuat{a.V.Scale(s), a.S.Mul(s)} }

// Mul returns the product ab, the motion b followed by a.
func (a DualQuat) Mul(b DualQuat) DualQuat { return dualHamilton(a.V, a.S, b.V, b.S) }

func (a DualQuat) Div(s Dual) DualQuat { return a.Scale(s.Inverse()) }

func (a DualQuat) NormSq() Dual { return a.S.Mul(a.S).Add(a.V.NormSq()) }
func (a DualQuat) Norm() Dual   { return a.NormSq().Sqrt() }

// Unit divides a by its dual norm, restoring both the unit length of the
// real part and the orthogonality of real and dual parts. A zero or
// non-finite norm is degenerate.
func (a DualQuat) Unit() DualQuat {
	n := a.NormSq()
	if n.Re == 0 || !finite(n.Re) || !finite(n.Du) {
		fail("DualQuat.Unit", ErrDegenerate)
	}
	return a.Div(n.Sqrt())
}

// Conj negates the vector part.
func (a DualQuat) Conj() DualQuat { return DualQuat{a.V.Neg(), a.S} }

// ConjDual negates the dual part of every component.
func (a DualQuat) ConjDual() DualQuat { return DualQuat{a.V.Conj(), a.S.Conj()} }

// Inverse returns the reciprocal Conj/NormSq. For a unit a this is the
// inverse motion.
func (a DualQuat) Inverse() DualQuat {
	n := a.NormSq()
	if n.Re == 0 {
		fail("DualQuat.Inverse", ErrDivisionByZero)
	}
	return a.Conj().Div(n)
}

// Quo returns ab⁻¹, the motion that takes b to a.
func (a DualQuat) Quo(b DualQuat) DualQuat { return a.Mul(b.Inverse()) }

// Real returns the rotation part.
func (a DualQuat) Real() Quat { return Quat{a.V.Real(), a.S.Re} }

// Dual returns the dual part.
func (a DualQuat) Dual() Quat { return Quat{a.V.Dual(), a.S.Du} }

// Transform applies the rigid motion a to point p.
func (a DualQuat) Transform(p Vec) Vec {
	return a.Mul(FromPosition(p)).Mul(a.ConjDual().Inverse()).V.Dual()
}

// Translation decodes t = 2dr* of a unit a.
func (a DualQuat) Translation() Vec { return a.Dual().Mul(a.Real().Conj()).V.Scale(2) }

// Lerp blends a and b linearly by t and renormalizes. This is not a screw
// interpolation: speed is not constant and large angles shrink mid-blend.
func (a DualQuat) Lerp(b DualQuat, t float64) DualQuat {
	u, v := Dual{Re: 1 - t}, Dual{Re: t}
	return a.Scale(u).Add(b.Scale(v)).Unit()
}

// Equal reports whether a and b agree within eps component-wise.
func (a DualQuat) Equal(b DualQuat, eps float64) bool {
	d := a.Sub(b)
	for _, x := range [...]float64{d.V.X.Re, d.V.Y.Re, d.V.Z.Re, d.S.Re, d.V.X.Du, d.V.Y.Du, d.V.Z.Du, d.S.Du} {
		if math.Abs(x) > eps {
			return false
		}
	}
	return true
}

func (a DualQuat) String() string { return fmt.Sprintf("%s + %s", a.V, a.S) }
