package geom

import "fmt"

// DualVec is a vector of dual numbers; as a dual quaternion it is the pure
// part with zero scalar.
type DualVec struct {
	X, Y, Z Dual
}

func (a DualVec) Add(b DualVec) DualVec { return DualVec{a.X.Add(b.X), a.Y.Add(b.Y), a.Z.Add(b.Z)} }
func (a DualVec) Sub(b DualVec) DualVec { return DualVec{a.X.Sub(b.X), a.Y.Sub(b.Y), a.Z.Sub(b.Z)} }
func (a DualVec) Neg() DualVec          { return DualVec{a.X.Neg(), a.Y.Neg(), a.Z.Neg()} }
func (a DualVec) Conj() DualVec         { return DualVec{a.X.Conj(), a.Y.Conj(), a.Z.Conj()} }
func (a DualVec) Scale(s Dual) DualVec  { return DualVec{a.X.Mul(s), a.Y.Mul(s), a.Z.Mul(s)} }

func (a DualVec) Div(s Dual) DualVec { return a.Scale(s.Inverse()) }

func (a DualVec) Cross(b DualVec) DualVec {
	return DualVec{
		a.Y.Mul(b.Z).Sub(a.Z.Mul(b.Y)),
		a.Z.Mul(b.X).Sub(a.X.Mul(b.Z)),
		a.X.Mul(b.Y).Sub(a.Y.Mul(b.X)),
	}
}

func (a DualVec) Dot(b DualVec) Dual {
	return a.X.Mul(b.X).Add(a.Y.Mul(b.Y)).Add(a.Z.Mul(b.Z))
}

func (a DualVec) NormSq() Dual { return a.Dot(a) }

// Real returns the vector of real parts.
func (a DualVec) Real() Vec { return Vec{a.X.Re, a.Y.Re, a.Z.Re} }

// Dual returns the vector of dual parts.
func (a DualVec) Dual() Vec { return Vec{a.X.Du, a.Y.Du, a.Z.Du} }

// Quat lifts a to the pure dual quaternion (a, 0).
func (a DualVec) Quat() DualQuat { return DualQuat{V: a} }

// Mul returns the dual quaternion product of a and b as pure dual
// quaternions.
func (a DualVec) Mul(b DualVec) DualQuat { return dualHamilton(a, Dual{}, b, Dual{}) }

func (a DualVec) String() string {
	return fmt.Sprintf("(%s)i + (%s)j + (%s)k", a.X, a.Y, a.Z)
}
