package advanced

import (
	"embed"
	"log"
	"math/rand"

	"github.com/jai2706/Polygon-Triangulator/internal/svgpoly"
)

// Fixtures are available by name in the fixtures/ directory, sans extension.
// Each holds exactly one polygon, in whatever winding it was drawn with. If
// anything goes wrong, the test binary exits.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) *Polygon {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}
	defer fixture.Close()

	polygons, err := svgpoly.Parse(fixture)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}
	if len(polygons) > 1 {
		log.Fatalf("More than one polygon found in fixture %q", name)
	}
	return &Polygon{Points: polygons[0]}
}

var fixtureNames = []string{
	"monotone_comb",
	"monotone_diamond",
	"monotone_flat_ends",
	"monotone_zigzag",
}

// The transforms below keep a polygon y-monotone. Reflections are combined with
// a reversal so that the winding is preserved.

func reflectX(poly *Polygon) *Polygon {
	result := poly.Reverse()
	for i := range result.Points {
		result.Points[i].X = -result.Points[i].X
	}
	return &result
}

func reflectY(poly *Polygon) *Polygon {
	result := poly.Reverse()
	for i := range result.Points {
		result.Points[i].Y = -result.Points[i].Y
	}
	return &result
}

func reflectXY(poly *Polygon) *Polygon {
	result := &Polygon{Points: make([]Point, len(poly.Points))}
	for i, p := range poly.Points {
		result.Points[i] = Point{X: -p.X, Y: -p.Y}
	}
	return result
}

// Same polygon, listed from a different starting vertex.
func rotateStart(poly *Polygon, k int) *Polygon {
	n := len(poly.Points)
	result := &Polygon{Points: make([]Point, n)}
	for i := range result.Points {
		result.Points[i] = poly.Points[CircularIndex(i+k, n)]
	}
	return result
}

// A random y-monotone polygon with n vertices. The two chains stay on either
// side of x=0 so the polygon is always simple, but within each chain the x
// coordinates jump around to make plenty of reflex vertices. No two vertices
// share a y coordinate.
func randomMonotone(rng *rand.Rand, n int) *Polygon {
	// Disjoint intervals make the y coordinates distinct.
	ys := make([]float64, n)
	for i := range ys {
		ys[i] = float64(n-i) + rng.Float64()*0.5
	}

	var left, right []Point
	for _, y := range ys[1 : n-1] {
		if rng.Intn(2) == 0 {
			left = append(left, Point{X: -1 - rng.Float64()*10, Y: y})
		} else {
			right = append(right, Point{X: 1 + rng.Float64()*10, Y: y})
		}
	}

	// Clockwise: down the right chain, then back up the left one.
	points := make([]Point, 0, n)
	points = append(points, Point{X: rng.Float64() - 0.5, Y: ys[0]})
	points = append(points, right...)
	points = append(points, Point{X: rng.Float64() - 0.5, Y: ys[n-1]})
	for i := len(left) - 1; i >= 0; i-- {
		points = append(points, left[i])
	}

	poly := &Polygon{Points: points}
	if rng.Intn(2) == 0 {
		reversed := poly.Reverse()
		poly = &reversed
	}
	return rotateStart(poly, rng.Intn(n))
}
