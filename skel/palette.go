package skel

import (
	"golang.org/x/image/math/f32"

	"dasa.cc/skin/geom"
)

// BoneSize is the number of floats per bone in a Palette.
const BoneSize = 8

// Palette is the flattened skinning transforms handed to a vertex shader;
// per bone, the real quaternion x, y, z, w followed by the dual quaternion
// x, y, z, w, in joint order.
type Palette []float64

func (p Palette) Len() int { return len(p) / BoneSize }

// Bone decodes the transform of joint i.
func (p Palette) Bone(i int) geom.DualQuat {
	b := p[i*BoneSize : (i+1)*BoneSize]
	return geom.DualQuat{
		V: geom.DualVec{
			X: geom.Dual{Re: b[0], Du: b[4]},
			Y: geom.Dual{Re: b[1], Du: b[5]},
			Z: geom.Dual{Re: b[2], Du: b[6]},
		},
		S: geom.Dual{Re: b[3], Du: b[7]},
	}
}

// Float32s returns p narrowed for glUniform4fv.
func (p Palette) Float32s() []float32 {
	r := make([]float32, len(p))
	for i, x := range p {
		r[i] = float32(x)
	}
	return r
}

// Vec4s returns p as two vec4 per bone, real then dual.
func (p Palette) Vec4s() []f32.Vec4 {
	r := make([]f32.Vec4, len(p)/4)
	for i := range r {
		b := p[i*4 : i*4+4]
		r[i] = f32.Vec4{float32(b[0]), float32(b[1]), float32(b[2]), float32(b[3])}
	}
	return r
}
