package main

import (
	"fmt"
	"io"

	"dasa.cc/skin/geom"
	"dasa.cc/skin/skel"
)

type joint struct {
	name   string
	parent int
	offset geom.Vec // from parent, in bind pose

	// stride rotation about the joint's x axis.
	swing float64
}

var boxman = []joint{
	{"pelvis", skel.NoParent, geom.Vec{}, 0},
	{"spine", 0, geom.Vec{Y: 0.5}, 0.05},
	{"head", 1, geom.Vec{Y: 0.6}, -0.1},
	{"l.arm", 1, geom.Vec{X: 0.4, Y: 0.5}, 0.6},
	{"l.forearm", 3, geom.Vec{Y: -0.5}, 0.4},
	{"r.arm", 1, geom.Vec{X: -0.4, Y: 0.5}, -0.6},
	{"r.forearm", 5, geom.Vec{Y: -0.5}, 0.2},
	{"l.thigh", 0, geom.Vec{X: 0.2, Y: -0.1}, -0.5},
	{"l.shin", 7, geom.Vec{Y: -0.6}, 0.3},
	{"r.thigh", 0, geom.Vec{X: -0.2, Y: -0.1}, 0.5},
	{"r.shin", 9, geom.Vec{Y: -0.6}, 0.6},
}

// rig is a box-man skeleton with a rest and a stride stance.
type rig struct {
	joints []joint
	s      *skel.Skeleton
	rest   skel.Pose
	stride skel.Pose
}

func newrig(joints []joint) (*rig, error) {
	parents := make([]int, len(joints))
	rest := make(skel.Pose, len(joints))
	stride := make(skel.Pose, len(joints))
	for i, j := range joints {
		parents[i] = j.parent
		rest[i] = geom.FromTranslation(j.offset)
		stride[i] = rest[i].Mul(geom.FromAxisAngle(geom.I, j.swing))
	}
	s, err := skel.NewSkeleton(parents, rest)
	if err != nil {
		return nil, fmt.Errorf("boxman skeleton: %w", err)
	}
	return &rig{joints: joints, s: s, rest: rest, stride: stride}, nil
}

func (r *rig) animate(root geom.DualQuat, t float64) (skel.Palette, error) {
	return skel.Animate(r.s, root, r.rest, r.stride, t)
}

func (r *rig) printJoints(w io.Writer) {
	for i, j := range r.joints {
		parent := "-"
		if j.parent != skel.NoParent {
			parent = r.joints[j.parent].name
		}
		fmt.Fprintf(w, "%2v %-10s parent=%-10s offset=(%v, %v, %v)\n", i, j.name, parent, j.offset.X, j.offset.Y, j.offset.Z)
	}
}

// Palette print formats.
const (
	formatDQ   = "dq"   // real and dual quaternion per bone
	formatVec4 = "vec4" // two float32 vec4 per bone, as uploaded
	formatMat  = "mat"  // homogeneous matrix and world origin per bone
)

var formats = []string{formatDQ, formatVec4, formatMat}

func (r *rig) printPalette(w io.Writer, pal skel.Palette, format string) error {
	switch format {
	case formatDQ:
		for i := 0; i < pal.Len(); i++ {
			b := pal[i*skel.BoneSize : (i+1)*skel.BoneSize]
			fmt.Fprintf(w, "%-10s % .4f % .4f % .4f % .4f | % .4f % .4f % .4f % .4f\n",
				r.joints[i].name, b[0], b[1], b[2], b[3], b[4], b[5], b[6], b[7])
		}
	case formatVec4:
		vs := pal.Vec4s()
		for i := 0; i < pal.Len(); i++ {
			fmt.Fprintf(w, "%-10s %v %v\n", r.joints[i].name, vs[2*i], vs[2*i+1])
		}
	case formatMat:
		g := r.s.GlobalBindPose()
		for i := 0; i < pal.Len(); i++ {
			m := pal.Bone(i).Mat4()
			o := geom.MulMat4(m, g[i].Translation())
			fmt.Fprintf(w, "%-10s origin=(% .4f, % .4f, % .4f)\n", r.joints[i].name, o.X, o.Y, o.Z)
			for row := 0; row < 3; row++ {
				fmt.Fprintf(w, "           % .4f % .4f % .4f % .4f\n", m[4*row], m[4*row+1], m[4*row+2], m[4*row+3])
			}
		}
	default:
		return fmt.Errorf("unknown format %q, want one of %v", format, formats)
	}
	return nil
}
