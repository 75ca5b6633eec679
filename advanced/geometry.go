package advanced

import (
	"math"
	"math/big"
)

// Error bound of Shewchuk's orient2d float filter, relative to the magnitude of
// the determinant's two terms. Above it, the float determinant has the right sign.
const orientationErrorBound = (3.0 + 16.0*epsilon) * epsilon

const epsilon = 1.0 / (1 << 53)

// Signed area of the triangle p1, p2, p3. Negative means the points turn
// clockwise, zero means they are collinear.
func SignedArea(p1, p2, p3 Point) float64 {
	return (p1.X*(p2.Y-p3.Y) + p2.X*(p3.Y-p1.Y) + p3.X*(p1.Y-p2.Y)) / 2
}

// Sign of SignedArea(a, b, c), computed exactly. The float determinant is used
// whenever it is far enough from zero to be trusted, otherwise the determinant is
// recomputed with rationals, which represent every float64 exactly.
func Orientation(a, b, c Point) int {
	acx, bcx := a.X-c.X, b.X-c.X
	acy, bcy := a.Y-c.Y, b.Y-c.Y
	left := acx * bcy
	right := acy * bcx
	det := left - right
	bound := orientationErrorBound * (math.Abs(left) + math.Abs(right))
	if det > bound {
		return 1
	}
	if -det > bound {
		return -1
	}
	return exactOrientation(a, b, c)
}

func exactOrientation(a, b, c Point) int {
	rat := func(f float64) *big.Rat {
		return new(big.Rat).SetFloat64(f)
	}
	acx := new(big.Rat).Sub(rat(a.X), rat(c.X))
	bcx := new(big.Rat).Sub(rat(b.X), rat(c.X))
	acy := new(big.Rat).Sub(rat(a.Y), rat(c.Y))
	bcy := new(big.Rat).Sub(rat(b.Y), rat(c.Y))
	left := new(big.Rat).Mul(acx, bcy)
	right := new(big.Rat).Mul(acy, bcx)
	return left.Cmp(right)
}

func IsCW(a, b, c Point) bool {
	return Orientation(a, b, c) < 0
}

func IsCCW(a, b, c Point) bool {
	return Orientation(a, b, c) > 0
}

// Closed point-in-triangle test. Points on an edge or corner count as inside.
// Works for either winding.
func PointInTriangle(a, b, c, p Point) bool {
	o1 := Orientation(a, b, p)
	o2 := Orientation(b, c, p)
	o3 := Orientation(c, a, p)
	hasNeg := o1 < 0 || o2 < 0 || o3 < 0
	hasPos := o1 > 0 || o2 > 0 || o3 > 0
	return !(hasNeg && hasPos)
}

// Sign of the polygon's signed area: -1 for clockwise, 1 for counterclockwise,
// 0 for a polygon with no area. Like Orientation, the float shoelace sum is only
// trusted when it is clear of its rounding error, and is otherwise redone with
// rationals.
func PolygonOrientation(points []Point) int {
	var sum, magnitude float64
	for i, p := range points {
		q := points[CircularIndex(i+1, len(points))]
		left, right := p.X*q.Y, q.X*p.Y
		sum += left - right
		magnitude += math.Abs(left) + math.Abs(right)
	}
	bound := float64(2*len(points)+2) * epsilon * magnitude
	if sum > bound {
		return 1
	}
	if -sum > bound {
		return -1
	}

	exact := new(big.Rat)
	for i, p := range points {
		q := points[CircularIndex(i+1, len(points))]
		exact.Add(exact, new(big.Rat).Mul(new(big.Rat).SetFloat64(p.X), new(big.Rat).SetFloat64(q.Y)))
		exact.Sub(exact, new(big.Rat).Mul(new(big.Rat).SetFloat64(q.X), new(big.Rat).SetFloat64(p.Y)))
	}
	return exact.Sign()
}

func polygonSignedArea(points []Point) float64 {
	var sum float64
	for i, p := range points {
		q := points[CircularIndex(i+1, len(points))]
		sum += p.X*q.Y - q.X*p.Y
	}
	return sum / 2
}

func isFinite(p Point) bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}
