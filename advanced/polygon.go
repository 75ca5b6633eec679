package advanced

// Even-odd point-in-polygon. This is provided primarily for testing
// triangulations by sampling; the sweep itself never needs it.
func (poly Polygon) ContainsPointByEvenOdd(p Point) bool {
	return poly.CrossingCount(p)%2 == 1
}

// Number of edges crossed by a ray from p going right, using the half-open rule
// so that vertices on the ray are counted once.
func (poly Polygon) CrossingCount(p Point) int {
	crossingCount := 0
	for i, vertex := range poly.Points {
		next := poly.Points[CircularIndex(i+1, len(poly.Points))]
		if (vertex.Y > p.Y) == (next.Y > p.Y) {
			continue
		}
		// x of the edge at the ray's height
		x := vertex.X + (p.Y-vertex.Y)*(next.X-vertex.X)/(next.Y-vertex.Y)
		if x > p.X {
			crossingCount++
		}
	}
	return crossingCount
}

func (poly Polygon) Reverse() Polygon {
	newPoly := Polygon{Points: make([]Point, 0, len(poly.Points))}
	for i := len(poly.Points) - 1; i >= 0; i-- {
		newPoly.Points = append(newPoly.Points, poly.Points[i])
	}
	return newPoly
}

// Unsigned area
func (poly Polygon) Area() float64 {
	area := polygonSignedArea(poly.Points)
	if area < 0 {
		return -area
	}
	return area
}

func (poly Polygon) IsCW() bool {
	return PolygonOrientation(poly.Points) < 0
}

// Corner points of a triangle from the triangulation of this polygon
func (poly Polygon) TrianglePoints(t Triangle) (a, b, c Point) {
	return poly.Points[t.A], poly.Points[t.B], poly.Points[t.C]
}
