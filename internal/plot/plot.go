package plot

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/ThatOtherAndrew/qdollar/pkg/qdollar"
)

var (
	rawColor       = color.RGBA{B: 255, A: 255}
	resampledColor = color.RGBA{R: 220, G: 60, A: 255}
)

// Resampled writes a scatter plot of a raw gesture against its resampled
// points. The format follows the file extension (svg, png, pdf, ...).
func Resampled(path, title string, raw []qdollar.Point, n int) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "X"
	p.Y.Label.Text = "Y"

	if err := addSeries(p, "Original Points", raw, draw.CrossGlyph{}, rawColor); err != nil {
		return err
	}
	if err := addSeries(p, "Resampled Points", qdollar.Resample(raw, n), draw.CircleGlyph{}, resampledColor); err != nil {
		return err
	}
	if err := addStrokes(p, raw); err != nil {
		return err
	}

	return save(p, path)
}

// Normalized plots the points of a cloud in normalized space, one colour
// per stroke.
func Normalized(path string, c *qdollar.Cloud) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s (normalized)", c.Name())
	p.X.Label.Text = "X"
	p.Y.Label.Text = "Y"
	p.X.Min, p.X.Max = -1, 1
	p.Y.Min, p.Y.Max = -1, 1

	byStroke := map[int][]qdollar.Point{}
	var order []int
	for _, pt := range c.Points() {
		if _, ok := byStroke[pt.StrokeID]; !ok {
			order = append(order, pt.StrokeID)
		}
		byStroke[pt.StrokeID] = append(byStroke[pt.StrokeID], pt)
	}

	for i, id := range order {
		label := fmt.Sprintf("stroke %d", id)
		if err := addSeries(p, label, byStroke[id], draw.CircleGlyph{}, plotutil.Color(i)); err != nil {
			return err
		}
	}

	return save(p, path)
}

func addSeries(p *plot.Plot, label string, points []qdollar.Point, glyph draw.GlyphDrawer, c color.Color) error {
	scatter, err := plotter.NewScatter(xys(points))
	if err != nil {
		return err
	}
	scatter.GlyphStyle.Shape = glyph
	scatter.GlyphStyle.Color = c
	scatter.GlyphStyle.Radius = vg.Points(3)
	p.Add(scatter)
	p.Legend.Add(label, scatter)
	return nil
}

// addStrokes draws the pen path of each stroke as a thin line.
func addStrokes(p *plot.Plot, points []qdollar.Point) error {
	start := 0
	for i := 1; i <= len(points); i++ {
		if i < len(points) && points[i].StrokeID == points[start].StrokeID {
			continue
		}
		if i-start > 1 {
			line, err := plotter.NewLine(xys(points[start:i]))
			if err != nil {
				return err
			}
			line.Color = color.Gray{Y: 160}
			line.Width = vg.Points(0.5)
			p.Add(line)
		}
		start = i
	}
	return nil
}

func xys(points []qdollar.Point) plotter.XYs {
	pts := make(plotter.XYs, len(points))
	for i, p := range points {
		pts[i] = plotter.XY{X: p.X, Y: p.Y}
	}
	return pts
}

func save(p *plot.Plot, path string) error {
	p.Legend.Top = true
	p.Legend.Left = false
	p.Legend.XOffs = -10
	p.Legend.YOffs = -10

	if err := p.Save(6*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("save plot: %w", err)
	}
	return nil
}
