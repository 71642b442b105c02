// Package skel computes skinning palettes from a joint hierarchy and
// per-joint dual quaternion transforms.
package skel

import (
	"fmt"
	"math"
	"runtime"
	"strings"

	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"

	"dasa.cc/skin/geom"
)

// Pose holds one transform per joint, indexed by joint id, in either local
// (parent relative) or global space. A Pose may be filled in by index while
// authoring; operations below never modify their receiver or arguments.
type Pose []geom.DualQuat

// NewPose returns n identity transforms.
func NewPose(n int) Pose {
	p := make(Pose, n)
	for i := range p {
		p[i] = geom.DualQuatIdent()
	}
	return p
}

func (p Pose) Clone() Pose { return slices.Clone(p) }

// Blend returns the per-joint linear blend of p and q by t. A NaN or
// infinite t is rejected with geom.ErrDomain.
func (p Pose) Blend(q Pose, t float64) (Pose, error) {
	if len(p) != len(q) {
		return nil, mismatch("blend", len(p), len(q))
	}
	if math.IsNaN(t) || math.IsInf(t, 0) {
		return nil, fmt.Errorf("blend by %v: %w", t, geom.ErrDomain)
	}
	r := make(Pose, len(p))
	for i := range p {
		r[i] = p[i].Lerp(q[i], t)
	}
	return r, nil
}

// Globalize composes each joint's local transform with its ancestors',
// parent on the left: global[i] = local[root] ⋯ local[parent(i)] local[i].
func (p Pose) Globalize(s *Skeleton) (Pose, error) {
	if len(p) != s.Len() {
		return nil, mismatch("globalize", len(p), s.Len())
	}
	r := make(Pose, len(p))
	for _, i := range s.order {
		if j := s.parents[i]; j == NoParent {
			r[i] = p[i]
		} else {
			r[i] = r[j].Mul(p[i])
		}
	}
	return r, nil
}

// GlobalizeConcurrent is Globalize with each joint's ancestor chain walked
// independently, spread over the given number of workers; workers <= 0
// uses GOMAXPROCS.
func (p Pose) GlobalizeConcurrent(s *Skeleton, workers int) (Pose, error) {
	if len(p) != s.Len() {
		return nil, mismatch("globalize", len(p), s.Len())
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	r := make(Pose, len(p))
	size := (len(p) + workers - 1) / workers

	var g errgroup.Group
	for lo := 0; lo < len(p); lo += size {
		lo, hi := lo, lo+size
		if hi > len(p) {
			hi = len(p)
		}
		// products of finite transforms never panic, so workers cannot fail.
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				r[i] = p[i]
				for j := s.parents[i]; j != NoParent; j = s.parents[j] {
					r[i] = p[j].Mul(r[i])
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return r, nil
}

// Inverse returns the per-joint reciprocal.
func (p Pose) Inverse() Pose {
	r := make(Pose, len(p))
	for i, b := range p {
		r[i] = b.Inverse()
	}
	return r
}

// Mul returns the per-joint product p[i] q[i].
func (p Pose) Mul(q Pose) (Pose, error) {
	if len(p) != len(q) {
		return nil, mismatch("mul", len(p), len(q))
	}
	r := make(Pose, len(p))
	for i := range p {
		r[i] = p[i].Mul(q[i])
	}
	return r, nil
}

// Premul returns root p[i] for every joint, carrying the whole pose by root.
func (p Pose) Premul(root geom.DualQuat) Pose {
	r := make(Pose, len(p))
	for i, b := range p {
		r[i] = root.Mul(b)
	}
	return r
}

// Palette flattens p for upload.
func (p Pose) Palette() Palette {
	r := make(Palette, 0, len(p)*BoneSize)
	for _, b := range p {
		r = append(r,
			b.V.X.Re, b.V.Y.Re, b.V.Z.Re, b.S.Re,
			b.V.X.Du, b.V.Y.Du, b.V.Z.Du, b.S.Du,
		)
	}
	return r
}

func (p Pose) String() string {
	var sb strings.Builder
	for i, b := range p {
		fmt.Fprintf(&sb, "%v: %s\n", i, b)
	}
	return sb.String()
}
