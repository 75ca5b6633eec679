package advanced

import "github.com/pkg/errors"

// Checks that don't depend on the sweep order. Coincident vertices have to be
// caught here, because the sort has no strict order between them.
func ValidatePoints(points []Point) error {
	if len(points) < 3 {
		return errors.Wrapf(ErrInvalidInputSize, "got %d", len(points))
	}

	seen := make(map[Point]int, len(points))
	for i, p := range points {
		if !isFinite(p) {
			return errors.Wrapf(ErrInvalidCoordinate, "vertex %d is %v", i, p)
		}
		if j, ok := seen[p]; ok {
			return errors.Wrapf(ErrDegenerateVertices, "vertices %d and %d are both at %v", j, i, p)
		}
		seen[p] = i
	}

	if PolygonOrientation(points) == 0 {
		return errors.WithStack(ErrZeroArea)
	}
	return nil
}
