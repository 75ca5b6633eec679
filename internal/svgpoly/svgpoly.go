// Package svgpoly reads polygons out of SVG documents. This is not a full (or
// even correct) svg reader. It finds every <polygon> element and returns its
// points attribute, ignoring transforms, styles and every other element.
package svgpoly

import (
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/JoshVarga/svgparser"
	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
)

// Parse returns the points of each polygon in document order. A document
// without any polygons is an error.
func Parse(r io.Reader) ([][]r2.Point, error) {
	rootEl, err := svgparser.Parse(r, true)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}

	elements := rootEl.FindAll("polygon")
	if len(elements) == 0 {
		return nil, errors.New("no polygons found")
	}

	polygons := make([][]r2.Point, 0, len(elements))
	for i, el := range elements {
		points, err := ParsePoints(el.Attributes["points"])
		if err != nil {
			return nil, errors.Wrapf(err, "polygon %d", i)
		}
		polygons = append(polygons, points)
	}
	return polygons, nil
}

// ParsePoints reads an svg points list. Coordinates may be separated by commas,
// whitespace, or both, as in "0,0 10,0 10 10".
func ParsePoints(s string) ([]r2.Point, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(fields)%2 != 0 {
		return nil, errors.Errorf("odd number of coordinates (%d)", len(fields))
	}

	points := make([]r2.Point, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		x, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid x value %q", fields[i])
		}
		y, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid y value %q", fields[i+1])
		}
		points = append(points, r2.Point{X: x, Y: y})
	}
	return points, nil
}
