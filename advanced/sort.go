package advanced

import "sort"

// The sweep order over vertices. Order maps rank to original index, and Rank maps
// original index back to rank. Rank 0 is the top vertex.
type Ordering struct {
	Order []int
	Rank  []int
}

// Before is the sweep comparator: higher y first, and for equal y, smaller x
// first. This is equivalent to sweeping a very slightly rotated plane, so no two
// distinct points are ever level.
func Before(a, b Point) bool {
	if a.Y != b.Y {
		return a.Y > b.Y
	}
	return a.X < b.X
}

// SortVertices orders the polygon's vertices for the sweep. Points must be
// distinct, otherwise the order between duplicates is arbitrary.
func SortVertices(points []Point) Ordering {
	order := make([]int, len(points))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return Before(points[order[i]], points[order[j]])
	})

	rank := make([]int, len(points))
	for r, i := range order {
		rank[i] = r
	}
	return Ordering{Order: order, Rank: rank}
}

func (o Ordering) Top() int {
	return o.Order[0]
}

func (o Ordering) Bottom() int {
	return o.Order[len(o.Order)-1]
}
