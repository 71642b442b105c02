package geom

import "golang.org/x/image/math/f64"

// Mat3 returns the row-major rotation matrix of unit quaternion a.
func (a Quat) Mat3() f64.Mat3 {
	x, y, z, w := a.V.X, a.V.Y, a.V.Z, a.S
	return f64.Mat3{
		1 - 2*(y*y+z*z), 2 * (x*y - z*w), 2 * (x*z + y*w),
		2 * (x*y + z*w), 1 - 2*(x*x+z*z), 2 * (y*z - x*w),
		2 * (x*z - y*w), 2 * (y*z + x*w), 1 - 2*(x*x+y*y),
	}
}

// Mat4 returns the row-major homogeneous matrix of the rigid motion of unit
// dual quaternion a; points are column vectors.
func (a DualQuat) Mat4() f64.Mat4 {
	r, t := a.Real().Mat3(), a.Translation()
	return f64.Mat4{
		r[0], r[1], r[2], t.X,
		r[3], r[4], r[5], t.Y,
		r[6], r[7], r[8], t.Z,
		0, 0, 0, 1,
	}
}

// MulMat4 returns m applied to point p.
func MulMat4(m f64.Mat4, p Vec) Vec {
	return Vec{
		m[0]*p.X + m[1]*p.Y + m[2]*p.Z + m[3],
		m[4]*p.X + m[5]*p.Y + m[6]*p.Z + m[7],
		m[8]*p.X + m[9]*p.Y + m[10]*p.Z + m[11],
	}
}
