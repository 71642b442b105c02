package geom

import (
	"fmt"
	"math"
)

// Vec is a 3D vector; as a quaternion it is the pure part with zero scalar.
type Vec struct {
	X, Y, Z float64
}

var (
	I = Vec{1, 0, 0}
	J = Vec{0, 1, 0}
	K = Vec{0, 0, 1}
)

func (a Vec) Add(b Vec) Vec       { return Vec{a.X + b.X, a.Y + b.Y, a.Z + b.Z} }
func (a Vec) Sub(b Vec) Vec       { return Vec{a.X - b.X, a.Y - b.Y, a.Z - b.Z} }
func (a Vec) Neg() Vec            { return Vec{-a.X, -a.Y, -a.Z} }
func (a Vec) Scale(s float64) Vec { return Vec{a.X * s, a.Y * s, a.Z * s} }
func (a Vec) Dot(b Vec) float64   { return a.X*b.X + a.Y*b.Y + a.Z*b.Z }
func (a Vec) NormSq() float64     { return a.Dot(a) }
func (a Vec) Norm() float64       { return math.Sqrt(a.NormSq()) }

func (a Vec) Div(s float64) Vec {
	if s == 0 {
		fail("Vec.Div", ErrDivisionByZero)
	}
	return Vec{a.X / s, a.Y / s, a.Z / s}
}

func (a Vec) Cross(b Vec) Vec {
	return Vec{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

// Unit returns a scaled to length one.
func (a Vec) Unit() Vec {
	n := a.Norm()
	if n == 0 {
		fail("Vec.Unit", ErrDegenerate)
	}
	return Vec{a.X / n, a.Y / n, a.Z / n}
}

// Quat lifts a to the pure quaternion (a, 0).
func (a Vec) Quat() Quat { return Quat{a, 0} }

// Mul returns the quaternion product of a and b as pure quaternions; the
// result is generally not a vector.
func (a Vec) Mul(b Vec) Quat { return hamilton(a, 0, b, 0) }

// Dual lifts a to a dual vector with zero dual parts.
func (a Vec) Dual() DualVec { return DualVec{Dual{Re: a.X}, Dual{Re: a.Y}, Dual{Re: a.Z}} }

func (a Vec) String() string { return fmt.Sprintf("%vi + %vj + %vk", a.X, a.Y, a.Z) }
