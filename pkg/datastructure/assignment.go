package datastructure

import "github.com/lintang-b-s/grasp-maxcut/pkg"

// Assignment holds one side label per vertex: false is side A, true is side B.
type Assignment []bool

// NewAssignment returns the all side A assignment for n vertices.
func NewAssignment(n int) Assignment {
	return make(Assignment, n)
}

func (a Assignment) Side(u Index) bool {
	return a[u]
}

func (a Assignment) IsSideA(u Index) bool {
	return a[u] == pkg.SIDE_A
}

func (a Assignment) Set(u Index, side bool) {
	a[u] = side
}

func (a Assignment) Flip(u Index) {
	a[u] = !a[u]
}

func (a Assignment) Clone() Assignment {
	if a == nil {
		return nil
	}
	c := make(Assignment, len(a))
	copy(c, a)
	return c
}

// Complement returns a copy with every vertex moved to the other side. The cut is unchanged.
func (a Assignment) Complement() Assignment {
	c := make(Assignment, len(a))
	for i, side := range a {
		c[i] = !side
	}
	return c
}

func (a Assignment) Equal(b Assignment) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// CountSideB returns the number of vertices on side B.
func (a Assignment) CountSideB() int {
	count := 0
	for _, side := range a {
		if side == pkg.SIDE_B {
			count++
		}
	}
	return count
}

// String renders the assignment as a string of 'A' and 'B'.
func (a Assignment) String() string {
	buf := make([]byte, len(a))
	for i, side := range a {
		if side == pkg.SIDE_B {
			buf[i] = 'B'
		} else {
			buf[i] = 'A'
		}
	}
	return string(buf)
}
