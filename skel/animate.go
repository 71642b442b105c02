package skel

import "dasa.cc/skin/geom"

// Animate blends stances first and second by t, globalizes the result,
// removes the bind pose and carries everything by root:
//
//	root · globalize(blend(first, second, t)) · globalBind⁻¹
//
// Animate keeps no state; the caller owns root, the stances and t.
func Animate(s *Skeleton, root geom.DualQuat, first, second Pose, t float64) (pal Palette, err error) {
	defer recoverGeom(&err)
	blended, err := first.Blend(second, t)
	if err != nil {
		return nil, err
	}
	global, err := blended.Globalize(s)
	if err != nil {
		return nil, err
	}
	skinned, err := global.Mul(s.inverseBind)
	if err != nil {
		return nil, err
	}
	return skinned.Premul(root).Palette(), nil
}
