package main

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	triangulate "github.com/jai2706/Polygon-Triangulator"
)

// Reads newline separated "x y" points, with a blank line between polygons.
func readPolygons(in io.Reader) ([][]triangulate.Point, error) {
	var polygons [][]triangulate.Point
	var points []triangulate.Point
	// Scan lines
	scanner := bufio.NewScanner(in)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())

		// If it's empty, and we collected any points, this is the end of the polygon
		if line == "" {
			if len(points) > 0 {
				polygons = append(polygons, points)
				points = nil
			}
			continue
		}

		point, err := parsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "scanning input")
	}

	// Handle trailing polygon if any
	if len(points) > 0 {
		polygons = append(polygons, points)
	}
	if len(polygons) == 0 {
		return nil, errors.New("no polygons in input")
	}
	return polygons, nil
}

func parsePoint(line string) (triangulate.Point, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return triangulate.Point{}, errors.Errorf("expected \"x y\", got %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return triangulate.Point{}, errors.Wrapf(err, "invalid x value %q", parts[0])
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return triangulate.Point{}, errors.Wrapf(err, "invalid y value %q", parts[1])
	}
	return triangulate.Point{X: x, Y: y}, nil
}
