package advanced

// This contains no actual tests. It is just a helper for testing triangulation
// validity.

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper to check that a triangulation is valid. The rules are:
// 1. There are n-3 diagonals and n-2 triangles.
// 2. Every diagonal joins two distinct, non-adjacent vertices, and none repeat.
// 3. No two diagonals cross.
// 4. Every triangle has the polygon's winding, and none has zero area.
// 5. No polygon vertex lies strictly inside a triangle.
// 6. Every polygon edge is an edge of some triangle.
// 7. The sum of the areas of all triangles is equal to the area of the polygon.
//
// If any rule fails, the triangulation is drawn to the terminal.
func AssertValidTriangulation(t *testing.T, poly *Polygon, result *Triangulation) {
	t.Helper()
	defer func() {
		if t.Failed() {
			poly.dbgDraw(result, drawScale(poly))
		}
	}()

	points := poly.Points
	n := len(points)
	require.NotNil(t, result)
	require.Len(t, result.Diagonals, n-3, "diagonal count")
	require.Len(t, result.Triangles, n-2, "triangle count")

	seen := make(map[Diagonal]struct{})
	for _, d := range result.Diagonals {
		require.True(t, 0 <= d.A && d.A < d.B && d.B < n, "diagonal %v out of range or not normalized", d)
		require.False(t, originallyAdjacent(d.A, d.B, n), "diagonal %v is a polygon edge", d)
		_, dup := seen[d]
		require.False(t, dup, "diagonal %v appears twice", d)
		seen[d] = struct{}{}
	}

	for i, d := range result.Diagonals {
		for _, e := range result.Diagonals[i+1:] {
			assert.False(t, segmentsCross(points[d.A], points[d.B], points[e.A], points[e.B]),
				"diagonals %v and %v cross", d, e)
		}
	}

	orientation := PolygonOrientation(points)
	edges := make(map[Diagonal]struct{})
	var triangleArea float64
	for _, tri := range result.Triangles {
		a, b, c := poly.TrianglePoints(tri)
		require.Equal(t, orientation, Orientation(a, b, c), "triangle %v has the wrong winding", tri)
		triangleArea += math.Abs(SignedArea(a, b, c))

		for v, p := range points {
			if v == tri.A || v == tri.B || v == tri.C {
				continue
			}
			strictlyInside := Orientation(a, b, p) == orientation &&
				Orientation(b, c, p) == orientation &&
				Orientation(c, a, p) == orientation
			assert.False(t, strictlyInside, "vertex %d is inside triangle %v", v, tri)
		}

		edges[normalizedEdge(tri.A, tri.B)] = struct{}{}
		edges[normalizedEdge(tri.B, tri.C)] = struct{}{}
		edges[normalizedEdge(tri.C, tri.A)] = struct{}{}
	}

	for i := range points {
		_, ok := edges[normalizedEdge(i, Right(i, n))]
		assert.True(t, ok, "edge %d-%d is not part of any triangle", i, Right(i, n))
	}

	area := poly.Area()
	tolerance := 1e-9 * math.Max(area, 1)
	assert.InDelta(t, area, triangleArea, tolerance, "sum of the triangle areas must equal the polygon area")
	assert.InDelta(t, area, math.Abs(planar.Area(toRing(points))), tolerance, "polygon area disagrees with orb")
}

func normalizedEdge(a, b int) Diagonal {
	if a > b {
		a, b = b, a
	}
	return Diagonal{A: a, B: b}
}

// Proper crossing only. Segments that share an endpoint never cross.
func segmentsCross(a, b, c, d Point) bool {
	if a == c || a == d || b == c || b == d {
		return false
	}
	return Orientation(a, b, c)*Orientation(a, b, d) < 0 &&
		Orientation(c, d, a)*Orientation(c, d, b) < 0
}

func toRing(points []Point) orb.Ring {
	ring := make(orb.Ring, 0, len(points)+1)
	for _, p := range points {
		ring = append(ring, orb.Point{p.X, p.Y})
	}
	return append(ring, ring[0])
}

// Scales the drawing so the larger side is about 500px.
func drawScale(poly *Polygon) float64 {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range poly.Points {
		minX, minY = math.Min(minX, p.X), math.Min(minY, p.Y)
		maxX, maxY = math.Max(maxX, p.X), math.Max(maxY, p.Y)
	}
	size := math.Max(maxX-minX, maxY-minY)
	if size == 0 {
		return 1
	}
	return 500 / size
}
