package advanced

import "github.com/pkg/errors"

// Neighbours in the original boundary ordering. These are fixed for the whole
// triangulation, unlike the live Boundary.
func Left(i, n int) int {
	return CircularIndex(i-1, n)
}

func Right(i, n int) int {
	return CircularIndex(i+1, n)
}

func originallyAdjacent(i, j, n int) bool {
	return Left(i, n) == j || Right(i, n) == j
}

// ClassifyChains labels each rank with its chain. Rank 1 anchors chain A; each
// later rank stays on the chain of the rank before it if the two are boundary
// neighbours, and switches chains otherwise. The top and bottom ranks are on
// both chains.
//
// This is only meaningful for a y-monotone polygon. See ValidateMonotone.
func ClassifyChains(ordering Ordering) []Chain {
	n := len(ordering.Order)
	chains := make([]Chain, n)
	chains[0] = ChainBoth
	chains[n-1] = ChainBoth
	for r := 1; r <= n-2; r++ {
		if r == 1 {
			chains[r] = ChainA
			continue
		}
		prev, cur := ordering.Order[r-1], ordering.Order[r]
		if originallyAdjacent(prev, cur, n) {
			chains[r] = chains[r-1]
		} else {
			chains[r] = chains[r-1].Other()
		}
	}
	return chains
}

// ValidateMonotone checks that the polygon splits into exactly two chains that
// each descend strictly from the top vertex to the bottom vertex, and that the
// chain labels agree with that split.
//
// Horizontal edges are only accepted on the top and bottom levels. Anywhere else,
// a horizontal line through the edge would meet the boundary in more than two
// points.
func ValidateMonotone(points []Point, ordering Ordering, chains []Chain) error {
	n := len(points)
	top, bottom := ordering.Top(), ordering.Bottom()
	topY, bottomY := points[top].Y, points[bottom].Y

	for i := 0; i < n; i++ {
		j := Right(i, n)
		if points[i].Y == points[j].Y && points[i].Y != topY && points[i].Y != bottomY {
			return errors.Wrapf(ErrNonMonotone, "horizontal edge %d-%d at y=%v", i, j, points[i].Y)
		}
		if i == top || i == bottom {
			continue
		}
		// Exactly one neighbour must come before this vertex in the sweep. Two means
		// the boundary turns back down here, none means it turns back up.
		r := ordering.Rank[i]
		above := 0
		if ordering.Rank[Left(i, n)] < r {
			above++
		}
		if ordering.Rank[Right(i, n)] < r {
			above++
		}
		if above != 1 {
			return errors.Wrapf(ErrNonMonotone, "vertex %d is a cusp", i)
		}
	}

	// Walk each chain from the top and check that its labels stay constant. After
	// the cusp check, this only fails if the classifier is wrong.
	var labels [2]Chain
	for k, step := range []func(int, int) int{Left, Right} {
		labels[k] = ChainBoth
		for v := step(top, n); v != bottom; v = step(v, n) {
			c := chains[ordering.Rank[v]]
			if labels[k] == ChainBoth {
				labels[k] = c
			} else if c != labels[k] {
				return errors.Wrapf(ErrNonMonotone, "vertex %d needs a third chain", v)
			}
		}
	}
	if labels[0] != ChainBoth && labels[0] == labels[1] {
		return errors.Wrapf(ErrNonMonotone, "both chains labelled %v", labels[0])
	}
	return nil
}
