package skel

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// NoParent marks a root joint.
const NoParent = -1

// Skeleton is an immutable joint hierarchy with its bind pose.
type Skeleton struct {
	parents []int
	order   []int // parents before children

	bind        Pose
	globalBind  Pose
	inverseBind Pose
}

// NewSkeleton returns a skeleton where parents[i] is the parent of joint i
// or NoParent, and bind holds the local bind transform of each joint. The
// hierarchy must have a root and no cycles.
func NewSkeleton(parents []int, bind Pose) (*Skeleton, error) {
	if len(parents) == 0 {
		return nil, fmt.Errorf("%w: no joints", ErrStructure)
	}
	if len(parents) != len(bind) {
		return nil, mismatch("skeleton", len(parents), len(bind))
	}
	order, err := sortJoints(parents)
	if err != nil {
		return nil, err
	}
	s := &Skeleton{
		parents: slices.Clone(parents),
		order:   order,
		bind:    bind.Clone(),
	}
	if err := s.cacheBind(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Skeleton) cacheBind() (err error) {
	defer recoverGeom(&err)
	if s.globalBind, err = s.bind.Globalize(s); err != nil {
		return err
	}
	s.inverseBind = s.globalBind.Inverse()
	return nil
}

// sortJoints returns joint ids ordered parents first, or an error if a
// parent is out of range or a joint is its own ancestor.
func sortJoints(parents []int) ([]int, error) {
	const (
		unseen = iota
		walking
		done
	)
	n := len(parents)
	roots := 0
	for i, j := range parents {
		if j == NoParent {
			roots++
		} else if j < 0 || j >= n {
			return nil, fmt.Errorf("%w: joint %v has parent %v outside [0, %v)", ErrStructure, i, j, n)
		}
	}
	if roots == 0 {
		return nil, fmt.Errorf("%w: no root joint", ErrStructure)
	}

	mark := make([]uint8, n)
	order := make([]int, 0, n)
	var chain []int
	for i := range parents {
		chain = chain[:0]
		j := i
		for j != NoParent && mark[j] == unseen {
			mark[j] = walking
			chain = append(chain, j)
			j = parents[j]
		}
		if j != NoParent && mark[j] == walking {
			return nil, fmt.Errorf("%w: joint %v is its own ancestor", ErrStructure, j)
		}
		for k := len(chain) - 1; k >= 0; k-- {
			mark[chain[k]] = done
			order = append(order, chain[k])
		}
	}
	return order, nil
}

func (s *Skeleton) Len() int { return len(s.parents) }

// Parent returns the parent of joint i or NoParent.
func (s *Skeleton) Parent(i int) int { return s.parents[i] }

func (s *Skeleton) Roots() []int {
	var r []int
	for i, j := range s.parents {
		if j == NoParent {
			r = append(r, i)
		}
	}
	return r
}

// BindPose returns a copy of the local bind pose.
func (s *Skeleton) BindPose() Pose { return s.bind.Clone() }

// GlobalBindPose returns a copy of the globalized bind pose.
func (s *Skeleton) GlobalBindPose() Pose { return s.globalBind.Clone() }
