package skel

import (
	"errors"
	"fmt"

	"dasa.cc/skin/geom"
)

// ErrStructure reports poses of mismatched length or a malformed joint
// hierarchy.
var ErrStructure = errors.New("structural error")

func mismatch(op string, a, b int) error {
	return fmt.Errorf("%w: %s of %v and %v bones", ErrStructure, op, a, b)
}

// recoverGeom turns a geom panic into err; other panics propagate.
func recoverGeom(err *error) {
	if r := recover(); r != nil {
		e, ok := r.(*geom.Error)
		if !ok {
			panic(r)
		}
		*err = e
	}
}
