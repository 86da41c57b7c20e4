package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/alexiusacademia/gorolling/internal/caliber"
	"github.com/alexiusacademia/gorolling/internal/rolling"
)

var (
	grooveFill = color.RGBA{R: 200, G: 200, B: 200, A: 120}
	barFill    = color.RGBA{R: 230, G: 120, B: 40, A: 200}
	barEdge    = color.RGBA{R: 139, G: 69, B: 19, A: 255}
	axisColor  = color.RGBA{R: 255, G: 0, B: 0, A: 255}
)

// ExportPassProfile exports the groove and bar cross-section of a stand to an image file
func ExportPassProfile(data StandDiagramData, filename string) error {
	p := plot.New()
	p.Title.Text = data.Title
	p.X.Label.Text = "Width (mm)"
	p.Y.Label.Text = "Height (mm)"

	groove := caliber.Outline(data.Channel, data.ChannelWidth, data.Gap, data.Radius)
	if len(groove) >= 3 {
		poly, err := plotter.NewPolygon(toXYs(groove))
		if err != nil {
			return err
		}
		poly.Color = grooveFill
		poly.LineStyle.Width = vg.Points(2)
		poly.LineStyle.Color = color.Black
		p.Add(poly)
	}

	bar := caliber.Outline(data.Channel, data.BarWidth, data.BarHeight, 0)
	if len(bar) >= 3 {
		poly, err := plotter.NewPolygon(toXYs(bar))
		if err != nil {
			return err
		}
		poly.Color = barFill
		poly.LineStyle.Color = barEdge
		p.Add(poly)
	}

	// Pass centre line
	lo, hi := caliber.Bounds(append(append([]caliber.Point(nil), groove...), bar...))
	centre, err := plotter.NewLine(plotter.XYs{{X: lo.X - 10, Y: 0}, {X: hi.X + 10, Y: 0}})
	if err != nil {
		return err
	}
	centre.LineStyle.Width = vg.Points(1)
	centre.LineStyle.Color = axisColor
	centre.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	p.Add(centre)

	labels, err := plotter.NewLabels(plotter.XYLabels{
		XYs: []plotter.XY{
			{X: hi.X + 5, Y: data.BarHeight / 2},
			{X: 0, Y: lo.Y - 8},
		},
		Labels: []string{
			fmt.Sprintf("h=%.1fmm", data.BarHeight),
			fmt.Sprintf("A=%.0fmm²  fill=%.2f", data.ExitArea, data.FillRatio),
		},
	})
	if err != nil {
		return err
	}
	p.Add(labels)

	return save(p, 8*vg.Inch, 6*vg.Inch, filename)
}

// ExportSchedule plots the exit area and exit speed of every stand against its order in the mill
func ExportSchedule(stands []rolling.Stand, filename string) error {
	if len(stands) == 0 {
		return fmt.Errorf("no stands to plot")
	}

	p := plot.New()
	p.Title.Text = "Pass Schedule"
	p.X.Label.Text = "Stand"
	p.Y.Label.Text = "Exit area (mm²) / exit speed × 1000 (m/s)"

	area := make(plotter.XYs, len(stands))
	speed := make(plotter.XYs, len(stands))
	names := make([]string, len(stands))
	for i, s := range stands {
		area[i] = plotter.XY{X: float64(i + 1), Y: s.Derived.ExitArea}
		speed[i] = plotter.XY{X: float64(i + 1), Y: s.Derived.ExitSpeed * 1000}
		names[i] = s.ID
	}

	areaLine, areaPoints, err := plotter.NewLinePoints(area)
	if err != nil {
		return err
	}
	areaLine.LineStyle.Width = vg.Points(2)
	areaLine.LineStyle.Color = barEdge
	areaPoints.GlyphStyle.Color = barEdge
	areaPoints.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(areaLine, areaPoints)

	speedLine, speedPoints, err := plotter.NewLinePoints(speed)
	if err != nil {
		return err
	}
	speedLine.LineStyle.Width = vg.Points(1.5)
	speedLine.LineStyle.Color = color.RGBA{R: 0, G: 100, B: 0, A: 255}
	speedLine.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	speedPoints.GlyphStyle.Color = color.RGBA{R: 0, G: 100, B: 0, A: 255}
	speedPoints.GlyphStyle.Shape = draw.TriangleGlyph{}
	p.Add(speedLine, speedPoints)

	p.Legend.Add("exit area", areaLine, areaPoints)
	p.Legend.Add("exit speed", speedLine, speedPoints)
	p.Legend.Top = true

	ticks := make([]plot.Tick, len(stands))
	for i, n := range names {
		ticks[i] = plot.Tick{Value: float64(i + 1), Label: n}
	}
	p.X.Tick.Marker = plot.ConstantTicks(ticks)
	p.X.Tick.Label.Rotation = 0.8
	p.X.Tick.Label.XAlign = draw.XRight

	return save(p, 10*vg.Inch, 6*vg.Inch, filename)
}

// save writes the plot in the format named by the extension, png when there is none
func save(p *plot.Plot, width, height vg.Length, filename string) error {
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf", ".jpg", ".jpeg":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}

func toXYs(pts []caliber.Point) plotter.XYs {
	xys := make(plotter.XYs, len(pts))
	for i, pt := range pts {
		xys[i] = plotter.XY{X: pt.X, Y: pt.Y}
	}
	return xys
}
