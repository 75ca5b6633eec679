package advanced

import (
	"math"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
)

// This is for debugging purposes only. Tests call it when a triangulation fails
// validation, so the broken result shows up in the terminal (iTerm only).

const dbgDrawPadding = 20

func (poly Polygon) dbgDraw(result *Triangulation, scale float64) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range poly.Points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	width := int(scale*(maxX-minX)) + dbgDrawPadding*2
	height := int(scale*(maxY-minY)) + dbgDrawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(dbgDrawPadding, dbgDrawPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	c.MoveTo(poly.Points[0].X, poly.Points[0].Y)
	for _, p := range poly.Points[1:] {
		c.LineTo(p.X, p.Y)
	}
	c.ClosePath()
	c.SetRGB(0, 0.5, 0)
	c.FillPreserve()
	c.SetRGB(0, 1, 1)
	c.SetLineWidth(2 / scale)
	c.Stroke()

	if result != nil {
		c.SetRGB(1, 0.3, 0.3)
		for _, d := range result.Diagonals {
			a, b := poly.Points[d.A], poly.Points[d.B]
			c.DrawLine(a.X, a.Y, b.X, b.Y)
		}
		c.Stroke()
	}

	path := filepath.Join(os.TempDir(), "triangulation.png")
	if err := c.SavePNG(path); err != nil {
		return
	}
	imgcat.CatFile(path, os.Stdout)
}
