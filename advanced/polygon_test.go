package advanced

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPolygon(t *testing.T) {
	square := Polygon{[]Point{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}, {X: 0, Y: 2}}}

	t.Run("area", func(t *testing.T) {
		assert.Equal(t, 4.0, square.Area())
		assert.Equal(t, 4.0, square.Reverse().Area())
		assert.False(t, square.IsCW())
		assert.True(t, square.Reverse().IsCW())
	})

	t.Run("even-odd", func(t *testing.T) {
		assert.True(t, square.ContainsPointByEvenOdd(Point{X: 1, Y: 1}))
		assert.False(t, square.ContainsPointByEvenOdd(Point{X: 3, Y: 1}))
		assert.False(t, square.ContainsPointByEvenOdd(Point{X: -1, Y: 1}))
		assert.False(t, square.ContainsPointByEvenOdd(Point{X: 1, Y: 3}))
		assert.Equal(t, 1, square.CrossingCount(Point{X: 1, Y: 1.5}))
		// Level with the top edge, which is half-open and so never crossed
		assert.Equal(t, 0, square.CrossingCount(Point{X: -1, Y: 2}))
		assert.Equal(t, 2, square.CrossingCount(Point{X: -1, Y: 0}))
	})

	t.Run("triangles cover the polygon", func(t *testing.T) {
		// Sampling a triangulated fixture: a point is in the polygon exactly when
		// it is in one of the triangles.
		poly := LoadFixture("monotone_zigzag")
		result, err := TriangulateMonotone(poly)
		require.NoError(t, err)
		for y := -5.0; y <= 85; y += 2.5 {
			for x := -25.0; x <= 55; x += 2.5 {
				p := Point{X: x, Y: y}
				inTriangle := false
				for _, tri := range result.Triangles {
					a, b, c := poly.TrianglePoints(tri)
					if PointInTriangle(a, b, c, p) {
						inTriangle = true
						break
					}
				}
				if poly.ContainsPointByEvenOdd(p) {
					assert.True(t, inTriangle, "point %v should be in a triangle", p)
				}
			}
		}
	})
}
