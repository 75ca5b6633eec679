package advanced

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/jai2706/Polygon-Triangulator/dbg"
)

// Facilities for converting a Y-monotone polygon into triangles. A Y monotone
// polygon is a simple polygon such that any horizontal line intersects at most
// two edges.
//
// Vertices are swept from top to bottom in the order given by Before, which
// breaks ties in y by x. Horizontal edges are therefore fine on the top and
// bottom levels, where they behave like very slightly slanted edges.
//
// The sweep keeps a stack of ranks whose vertices still need diagonals. Apart
// from its bottom element, the stack is always a reflex run of one chain, so
// every new vertex can only see a contiguous stretch of it from the top.

// TriangulateMonotone returns the n-3 diagonals and n-2 triangles of a
// y-monotone polygon given in boundary order, either winding. Bad input is
// reported as an error. A broken sweep invariant panics with a TriangulateError;
// see HandleTriangulatePanicRecover.
func TriangulateMonotone(polygon *Polygon, opts ...Option) (*Triangulation, error) {
	points := polygon.Points
	if err := ValidatePoints(points); err != nil {
		return nil, err
	}

	ordering := SortVertices(points)
	chains := ClassifyChains(ordering)
	if err := ValidateMonotone(points, ordering, chains); err != nil {
		return nil, err
	}

	return runSweep(points, ordering, chains, NewOptions(opts...)), nil
}

// Trusts the ordering and chain labels. Labels that don't match the points
// panic with ErrOracleContradiction partway through.
func runSweep(points []Point, ordering Ordering, chains []Chain, options Options) *Triangulation {
	s := newSweep(points, ordering, chains, options)
	s.run()
	return &Triangulation{Diagonals: s.diagonals, Triangles: s.triangles}
}

type sweep struct {
	points      []Point
	ordering    Ordering
	chains      []Chain
	orientation int
	boundary    *Boundary
	stack       RankStack
	diagonals   []Diagonal
	triangles   []Triangle

	log  *zap.Logger
	name string
}

func newSweep(points []Point, ordering Ordering, chains []Chain, options Options) *sweep {
	n := len(points)
	orientation := PolygonOrientation(points)
	s := &sweep{
		points:      points,
		ordering:    ordering,
		chains:      chains,
		orientation: orientation,
		boundary:    NewBoundary(n, orientation),
		stack:       make(RankStack, 0, n),
		diagonals:   make([]Diagonal, 0, n-3),
		triangles:   make([]Triangle, 0, n-2),
		log:         options.Logger,
	}
	if s.log.Core().Enabled(zapcore.DebugLevel) {
		s.name = dbg.NewName()
	}
	return s
}

// Original index of the vertex at a rank
func (s *sweep) vertex(rank int) int {
	return s.ordering.Order[rank]
}

func (s *sweep) run() {
	n := len(s.points)
	s.stack.Push(0)
	s.stack.Push(1)

	// Everything except the bottom vertex, which closes the fan at the end
	for i := 2; i <= n-2; i++ {
		if s.chains[i] != s.chains[s.stack.Peek()] {
			s.trace(i, "opposite chain")
			s.oppositeChain(i)
		} else {
			s.trace(i, "same chain")
			s.sameChain(i)
		}
	}
	s.trace(n-1, "bottom")
	s.finish(n - 1)

	if len(s.diagonals) != n-3 || len(s.triangles) != n-2 {
		fatalf(ErrOracleContradiction, "made %d diagonals and %d triangles for %d vertices", len(s.diagonals), len(s.triangles), n)
	}
	s.log.Debug("sweep done",
		zap.String("run", s.name),
		zap.Int("vertices", n),
		zap.Int("diagonals", len(s.diagonals)),
	)
}

// The new vertex is on the other chain from the top of the stack. Monotonicity
// guarantees that it sees every stacked vertex, so the stack is emptied into a
// fan. The bottom of the stack is already the vertex's boundary neighbour, so
// it gets no diagonal.
func (s *sweep) oppositeChain(i int) {
	/*
		s0--s1
		|    \
		|     s2  <- top
		|   /
		|  / <- diagonals
		| /
		i
	*/
	u := s.vertex(i)
	top := s.stack.Peek()
	if bottom := s.vertex(s.stack[0]); !s.boundary.Adjacent(bottom, u) {
		fatalf(ErrOracleContradiction, "stack bottom %d is not next to vertex %d", bottom, u)
	}

	for s.stack.Len() > 1 {
		j := s.stack.Pop()
		below := s.stack.Peek()
		s.addDiagonal(i, j)
		s.addTriangle(i, j, below)
		s.boundary.Remove(s.vertex(below))
	}
	s.stack.Pop()

	if top != i-1 {
		fatalf(ErrOracleContradiction, "top of stack has rank %d, expected %d", top, i-1)
	}
	s.stack.Push(i - 1)
	s.stack.Push(i)
}

// The new vertex is on the same chain as the top of the stack, and is that
// vertex's boundary neighbour. Pop vertices for as long as the new vertex can
// see them past the previously popped one, cutting off a triangle each time.
// The last vertex that was seen stays on the stack, along with the first one
// that wasn't.
func (s *sweep) sameChain(i int) {
	/*
		j
		|\
		| l
		|  \
		|   i
	*/
	u := s.vertex(i)
	l := s.stack.Pop()
	if !s.boundary.Adjacent(s.vertex(l), u) {
		fatalf(ErrOracleContradiction, "top of stack %d is not next to vertex %d", s.vertex(l), u)
	}
	j := s.stack.Pop()

	for DiagonalValid(s.points, s.boundary, s.vertex(j), u) {
		s.addDiagonal(i, j)
		s.addTriangle(j, l, i)
		s.boundary.Remove(s.vertex(l))
		l = j
		if s.stack.Empty() {
			break
		}
		j = s.stack.Pop()
	}

	if j != l {
		s.stack.Push(j)
	}
	s.stack.Push(l)
	s.stack.Push(i)
}

// The bottom vertex sees everything left on the stack. The top and bottom of
// the stack are both its boundary neighbours, so only the vertices in between
// get diagonals, but every consecutive pair makes a triangle.
func (s *sweep) finish(i int) {
	u := s.vertex(i)
	if !s.boundary.Adjacent(s.vertex(s.stack[0]), u) || !s.boundary.Adjacent(s.vertex(s.stack.Peek()), u) {
		fatalf(ErrOracleContradiction, "stack %v does not end on both neighbours of vertex %d", s.stack, u)
	}

	l := s.stack.Pop()
	for !s.stack.Empty() {
		j := s.stack.Pop()
		if !s.stack.Empty() {
			s.addDiagonal(i, j)
		}
		s.addTriangle(i, j, l)
		l = j
	}
}

// This is pulled out so that it's easy to add instrumentation.
func (s *sweep) addDiagonal(i, j int) {
	a, b := s.vertex(i), s.vertex(j)
	if originallyAdjacent(a, b, len(s.points)) {
		fatalf(ErrOracleContradiction, "diagonal %d-%d is a boundary edge", a, b)
	}
	if a > b {
		a, b = b, a
	}
	s.diagonals = append(s.diagonals, Diagonal{A: a, B: b})
}

// Takes ranks, and records the triangle with the polygon's winding.
func (s *sweep) addTriangle(i, j, k int) {
	a, b, c := s.vertex(i), s.vertex(j), s.vertex(k)
	o := Orientation(s.points[a], s.points[b], s.points[c])
	if o == 0 {
		fatalf(ErrOracleContradiction, "triangle %d, %d, %d has no area", a, b, c)
	}
	if o != s.orientation {
		b, c = c, b
	}
	s.triangles = append(s.triangles, Triangle{A: a, B: b, C: c})
}

func (s *sweep) trace(rank int, step string) {
	if ce := s.log.Check(zapcore.DebugLevel, "sweep step"); ce != nil {
		ce.Write(
			zap.String("run", s.name),
			zap.Int("rank", rank),
			zap.Int("vertex", s.vertex(rank)),
			zap.Stringer("chain", s.chains[rank]),
			zap.String("case", step),
			zap.Stringer("stack", s.stack),
		)
	}
}
