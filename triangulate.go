// Triangulation of y-monotone polygons for Go.
//
// Given a polygon's vertices in boundary order, this package finds the n-3
// non-crossing diagonals (and the n-2 triangles they make) in O(n log n) time,
// using a single stack-based sweep from the top vertex to the bottom one.
//
// Input that isn't y-monotone is rejected rather than triangulated wrongly. A
// general simple polygon has to be split into monotone pieces first; see
// TriangulateSubdivided.
package triangulate

import "github.com/jai2706/Polygon-Triangulator/advanced"

type Point = advanced.Point
type Diagonal = advanced.Diagonal
type Triangle = advanced.Triangle
type Triangulation = advanced.Triangulation
type Subdivider = advanced.Subdivider
type Option = advanced.Option

var (
	ErrInvalidInputSize    = advanced.ErrInvalidInputSize
	ErrInvalidCoordinate   = advanced.ErrInvalidCoordinate
	ErrDegenerateVertices  = advanced.ErrDegenerateVertices
	ErrZeroArea            = advanced.ErrZeroArea
	ErrNonMonotone         = advanced.ErrNonMonotone
	ErrOracleContradiction = advanced.ErrOracleContradiction
)

var WithLogger = advanced.WithLogger

// Triangulate a y-monotone polygon.
//
// The points must form a simple y-monotone polygon with no repeated points.
// Either winding is accepted. Horizontal edges are allowed only on the top and
// bottom levels of the polygon.
//
// Nothing is returned on failure. Use errors.Is with the Err values above to
// tell bad input from an internal failure.
func TriangulateMonotone(points []Point, opts ...Option) (result *Triangulation, err error) {
	defer func() {
		recoveredErr := advanced.HandleTriangulatePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return advanced.TriangulateMonotone(&advanced.Polygon{Points: points}, opts...)
}

// Just the diagonals of TriangulateMonotone.
func Diagonals(points []Point, opts ...Option) ([]Diagonal, error) {
	result, err := TriangulateMonotone(points, opts...)
	if err != nil {
		return nil, err
	}
	return result.Diagonals, nil
}

// Triangulate any polygon that the subdivider can split into y-monotone pieces.
func TriangulateSubdivided(points []Point, subdivider Subdivider, opts ...Option) (result *Triangulation, err error) {
	defer func() {
		recoveredErr := advanced.HandleTriangulatePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return advanced.TriangulateSubdivided(&advanced.Polygon{Points: points}, subdivider, opts...)
}
