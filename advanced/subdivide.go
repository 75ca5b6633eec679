package advanced

import "github.com/pkg/errors"

// A Subdivider splits an arbitrary simple polygon into y-monotone pieces. Each
// piece lists original vertex indices in boundary order. No implementation ships
// with this package.
type Subdivider interface {
	Subdivide(points []Point) ([][]int, error)
}

// TriangulateSubdivided triangulates every piece from the subdivider with the
// monotone sweep, and maps the results back onto the original indices. Piece
// edges that aren't edges of the original polygon become diagonals.
//
// Like TriangulateMonotone, a broken sweep invariant panics with a
// TriangulateError.
func TriangulateSubdivided(polygon *Polygon, subdivider Subdivider, opts ...Option) (*Triangulation, error) {
	points := polygon.Points
	if err := ValidatePoints(points); err != nil {
		return nil, err
	}
	n := len(points)
	orientation := PolygonOrientation(points)

	pieces, err := subdivider.Subdivide(points)
	if err != nil {
		return nil, errors.Wrap(err, "subdividing polygon")
	}

	result := &Triangulation{}
	seen := make(map[Diagonal]struct{})
	addDiagonal := func(a, b int) {
		if a == b || originallyAdjacent(a, b, n) {
			return
		}
		if a > b {
			a, b = b, a
		}
		d := Diagonal{A: a, B: b}
		if _, ok := seen[d]; ok {
			return
		}
		seen[d] = struct{}{}
		result.Diagonals = append(result.Diagonals, d)
	}

	for k, piece := range pieces {
		piecePoints := make([]Point, len(piece))
		for i, v := range piece {
			if v < 0 || v >= n {
				return nil, errors.Errorf("piece %d refers to vertex %d of %d", k, v, n)
			}
			piecePoints[i] = points[v]
		}

		sub, err := TriangulateMonotone(&Polygon{Points: piecePoints}, opts...)
		if err != nil {
			return nil, errors.Wrapf(err, "piece %d", k)
		}

		for i := range piece {
			addDiagonal(piece[i], piece[CircularIndex(i+1, len(piece))])
		}
		for _, d := range sub.Diagonals {
			addDiagonal(piece[d.A], piece[d.B])
		}
		for _, t := range sub.Triangles {
			a, b, c := piece[t.A], piece[t.B], piece[t.C]
			if Orientation(points[a], points[b], points[c]) != orientation {
				b, c = c, b
			}
			result.Triangles = append(result.Triangles, Triangle{A: a, B: b, C: c})
		}
	}

	if len(result.Triangles) != n-2 || len(result.Diagonals) != n-3 {
		return nil, errors.Errorf("pieces make %d triangles and %d diagonals, want %d and %d",
			len(result.Triangles), len(result.Diagonals), n-2, n-3)
	}
	return result, nil
}
