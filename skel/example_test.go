package skel_test

import (
	"fmt"
	"log"
	"math"

	"dasa.cc/skin/geom"
	"dasa.cc/skin/skel"
)

func Example() {
	// an upper and lower arm hanging from a shoulder.
	parents := []int{skel.NoParent, 0, 1}
	bind := skel.Pose{
		geom.DualQuatIdent(),
		geom.FromTranslation(geom.Vec{Y: -1}),
		geom.FromTranslation(geom.Vec{Y: -1}),
	}
	s, err := skel.NewSkeleton(parents, bind)
	if err != nil {
		log.Fatal(err)
	}

	// raise the arm forward a quarter turn at the shoulder.
	raised := s.BindPose()
	raised[0] = geom.FromAxisAngle(geom.I, math.Pi/2)

	root := geom.FromTranslation(geom.Vec{Z: -5})
	for _, t := range []float64{0, 1} {
		pal, err := skel.Animate(s, root, s.BindPose(), raised, t)
		if err != nil {
			log.Fatal(err)
		}
		// the hand, authored in bind space at (0, -2, 0).
		p := pal.Bone(2).Transform(geom.Vec{Y: -2})
		fmt.Printf("t=%v hand z=%.2f reach=%.2f\n", t, p.Z, p.Sub(root.Translation()).Norm())
	}
	// Output:
	// t=0 hand z=-5.00 reach=2.00
	// t=1 hand z=-7.00 reach=2.00
}
