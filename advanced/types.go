package advanced

import "github.com/golang/geo/r2"

// Points are plain values. A vertex's identity is its index in the input slice,
// never its address, so callers are free to pass copies around.
type Point = r2.Point

type Polygon struct {
	Points []Point
}

// A diagonal joins two non-adjacent vertices by their original indices. The
// smaller index is always A.
type Diagonal struct {
	A, B int
}

// Triangle corners are original vertex indices, wound the same way as the input
// polygon.
type Triangle struct {
	A, B, C int
}

type Triangulation struct {
	Diagonals []Diagonal
	Triangles []Triangle
}

// Which of the two monotone chains a vertex lies on. The top and bottom
// vertices lie on both.
type Chain uint8

const (
	ChainA Chain = iota
	ChainB
	ChainBoth
)

func (c Chain) Other() Chain {
	switch c {
	case ChainA:
		return ChainB
	case ChainB:
		return ChainA
	}
	return c
}

func (c Chain) String() string {
	switch c {
	case ChainA:
		return "A"
	case ChainB:
		return "B"
	}
	return "AB"
}

// Stack of sorted ranks used by the sweep.
type RankStack []int
