package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/logrusorgru/aurora"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"

	triangulate "github.com/jai2706/Polygon-Triangulator"
)

func writeOutput(w io.Writer, cfg config, outcomes []outcome) error {
	switch cfg.format {
	case "json":
		return writeJSON(w, outcomes)
	case "geojson":
		return writeGeoJSON(w, outcomes)
	default:
		return writeText(w, aurora.NewAurora(cfg.color), outcomes)
	}
}

// One block per polygon: a summary line, then a diagonal per line.
func writeText(w io.Writer, au aurora.Aurora, outcomes []outcome) error {
	for _, o := range outcomes {
		header := au.Bold(fmt.Sprintf("polygon %d", o.Index))
		if o.Err != nil {
			if _, err := fmt.Fprintf(w, "%s: %s\n", header, au.Red(o.Err.Error())); err != nil {
				return err
			}
			continue
		}

		_, err := fmt.Fprintf(w, "%s: %d vertices, %d diagonals, %d triangles\n",
			header, len(o.Points), au.Green(len(o.Result.Diagonals)), len(o.Result.Triangles))
		if err != nil {
			return err
		}
		for _, d := range o.Result.Diagonals {
			if _, err := fmt.Fprintf(w, "  %s\n", au.Cyan(fmt.Sprintf("%d-%d", d.A, d.B))); err != nil {
				return err
			}
		}
	}
	return nil
}

type jsonOutcome struct {
	Polygon   int                    `json:"polygon"`
	Diagonals []triangulate.Diagonal `json:"diagonals,omitempty"`
	Triangles []triangulate.Triangle `json:"triangles,omitempty"`
	Error     string                 `json:"error,omitempty"`
}

func writeJSON(w io.Writer, outcomes []outcome) error {
	out := make([]jsonOutcome, 0, len(outcomes))
	for _, o := range outcomes {
		j := jsonOutcome{Polygon: o.Index}
		if o.Err != nil {
			j.Error = o.Err.Error()
		} else {
			j.Diagonals = o.Result.Diagonals
			j.Triangles = o.Result.Triangles
		}
		out = append(out, j)
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return errors.Wrap(encoder.Encode(out), "encoding json")
}

// Triangles become Polygon features and diagonals LineString features, both
// tagged with the index of the input polygon. Failed polygons are left out.
func writeGeoJSON(w io.Writer, outcomes []outcome) error {
	fc := geojson.NewFeatureCollection()
	for _, o := range outcomes {
		if o.Err != nil {
			continue
		}
		pt := func(i int) orb.Point {
			return orb.Point{o.Points[i].X, o.Points[i].Y}
		}

		for k, t := range o.Result.Triangles {
			ring := orb.Ring{pt(t.A), pt(t.B), pt(t.C), pt(t.A)}
			f := geojson.NewFeature(orb.Polygon{ring})
			f.Properties["polygon"] = o.Index
			f.Properties["triangle"] = k
			f.Properties["vertices"] = []int{t.A, t.B, t.C}
			fc.Append(f)
		}
		for _, d := range o.Result.Diagonals {
			f := geojson.NewFeature(orb.LineString{pt(d.A), pt(d.B)})
			f.Properties["polygon"] = o.Index
			f.Properties["diagonal"] = []int{d.A, d.B}
			fc.Append(f)
		}
	}

	data, err := fc.MarshalJSON()
	if err != nil {
		return errors.Wrap(err, "encoding geojson")
	}
	_, err = fmt.Fprintf(w, "%s\n", data)
	return err
}
