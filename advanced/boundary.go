package advanced

// The part of the polygon that hasn't been cut into triangles yet, as a doubly
// linked list over original indices in clockwise order. It starts out as the
// original boundary and shrinks by one vertex for every triangle cut off.
//
// Counterclockwise input is handled here, by swapping which original neighbour
// counts as the clockwise predecessor. Nothing else needs to know the winding.
type Boundary struct {
	prev, next []int
}

func NewBoundary(n int, orientation int) *Boundary {
	b := &Boundary{
		prev: make([]int, n),
		next: make([]int, n),
	}
	for i := 0; i < n; i++ {
		if orientation > 0 {
			b.prev[i], b.next[i] = Right(i, n), Left(i, n)
		} else {
			b.prev[i], b.next[i] = Left(i, n), Right(i, n)
		}
	}
	return b
}

// Clockwise predecessor
func (b *Boundary) Prev(i int) int {
	return b.prev[i]
}

// Clockwise successor
func (b *Boundary) Next(i int) int {
	return b.next[i]
}

func (b *Boundary) Adjacent(i, j int) bool {
	return b.prev[i] == j || b.next[i] == j
}

// Cut a vertex out of the boundary, joining its neighbours.
func (b *Boundary) Remove(i int) {
	p, n := b.prev[i], b.next[i]
	b.next[p] = n
	b.prev[n] = p
	b.prev[i], b.next[i] = -1, -1
}

// DiagonalValid reports whether the chord from the stack vertex v to u leaves v
// through the inside of the polygon. The wedge at v is bounded by its two
// neighbours on the live boundary.
//
// If v is convex (a clockwise turn), u has to be strictly inside the wedge. A
// chord along either side would run over a boundary vertex and produce a
// triangle with no area. If v is reflex, u is fine anywhere except the closed
// exterior wedge.
func DiagonalValid(points []Point, b *Boundary, v, u int) bool {
	pv := points[v]
	pl, pr, pu := points[b.Prev(v)], points[b.Next(v)], points[u]
	if Orientation(pl, pv, pr) < 0 {
		return Orientation(pl, pv, pu) < 0 && Orientation(pr, pv, pu) > 0
	}
	return !(Orientation(pl, pv, pu) >= 0 && Orientation(pr, pv, pu) <= 0)
}
