package render

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/clusterlab/shiftlab/internal/model"
)

// scatterCols is the number of panels per row in the combined figure.
const scatterCols = 2

// Figure colors. Class colors match the convention of blue for class 0
// and red for class 1; the boundary is the dashed green line.
var (
	classAColor   = color.NRGBA{R: 0x1f, G: 0x4e, B: 0xd8, A: 0xff}
	classBColor   = color.NRGBA{R: 0xd8, G: 0x26, B: 0x26, A: 0xff}
	boundaryColor = color.NRGBA{R: 0x15, G: 0x80, B: 0x3d, A: 0xff}
)

// ScatterRenderer writes the combined scatter/boundary figure: one
// panel per shift distance with class scatters, the dashed decision
// boundary, contour shading, and the fitted-line annotation.
type ScatterRenderer struct {
	dir string
}

// NewScatterRenderer creates a ScatterRenderer writing DatasetImage
// into dir.
func NewScatterRenderer(dir string) *ScatterRenderer {
	return &ScatterRenderer{dir: dir}
}

// Render writes the figure.
func (r *ScatterRenderer) Render(result *model.Result) error {
	if len(result.Records) == 0 {
		return ErrNoRecords
	}
	if err := ensureDir(r.dir); err != nil {
		return err
	}

	rows := (len(result.Records) + scatterCols - 1) / scatterCols
	plots := make([][]*plot.Plot, rows)
	for i := range plots {
		plots[i] = make([]*plot.Plot, scatterCols)
	}

	for i, rec := range result.Records {
		p, err := r.panel(rec, i == 0)
		if err != nil {
			return fmt.Errorf("panel for distance %g: %w", rec.Distance, err)
		}
		plots[i/scatterCols][i%scatterCols] = p
	}

	img := vgimg.New(vg.Points(1100), vg.Points(float64(rows)*420))
	canvases := plot.Align(plots, draw.Tiles{
		Rows: rows,
		Cols: scatterCols,
		PadX: vg.Points(12),
		PadY: vg.Points(12),
	}, draw.New(img))

	for i := range plots {
		for j := range plots[i] {
			if plots[i][j] != nil {
				plots[i][j].Draw(canvases[i][j])
			}
		}
	}

	return writePNG(img, filepath.Join(r.dir, DatasetImage))
}

// panel builds the plot for a single experiment record.
func (r *ScatterRenderer) panel(rec *model.Record, legend bool) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Shift Distance = %.2f", rec.Distance)
	p.X.Label.Text = "x1"
	p.Y.Label.Text = "x2"

	// Pin the axes to the sampled field so the boundary line cannot
	// stretch the view.
	p.X.Min, p.X.Max = rec.Field.Xs[0], rec.Field.Xs[len(rec.Field.Xs)-1]
	p.Y.Min, p.Y.Max = rec.Field.Ys[0], rec.Field.Ys[len(rec.Field.Ys)-1]

	// Contour shading first so the data draws on top of it.
	for i, band := range rec.Bands {
		alpha := uint8(0x28 + 0x28*i)
		if err := addContourPoints(p, band.Class1, color.NRGBA{R: 0xd8, G: 0x26, B: 0x26, A: alpha}); err != nil {
			return nil, err
		}
		if err := addContourPoints(p, band.Class0, color.NRGBA{R: 0x1f, G: 0x4e, B: 0xd8, A: alpha}); err != nil {
			return nil, err
		}
	}

	classA, err := scatterFor(rec.Dataset, model.ClassA, classAColor)
	if err != nil {
		return nil, err
	}
	classB, err := scatterFor(rec.Dataset, model.ClassB, classBColor)
	if err != nil {
		return nil, err
	}
	p.Add(classA, classB)

	line, err := boundaryLine(rec, p.X.Min, p.X.Max)
	if err != nil {
		return nil, err
	}
	p.Add(line)

	if err := addAnnotations(p, rec); err != nil {
		return nil, err
	}

	if legend {
		p.Legend.Add("Class 0", classA)
		p.Legend.Add("Class 1", classB)
		p.Legend.Top = false
		p.Legend.Left = false
	}

	return p, nil
}

// scatterFor builds the scatter plotter for one class of the dataset.
func scatterFor(ds *model.Dataset, label int, c color.Color) (*plotter.Scatter, error) {
	var xys plotter.XYs
	for i, pt := range ds.Points {
		if ds.Labels[i] == label {
			xys = append(xys, plotter.XY{X: pt.X1, Y: pt.X2})
		}
	}

	s, err := plotter.NewScatter(xys)
	if err != nil {
		return nil, err
	}
	s.GlyphStyle.Color = c
	s.GlyphStyle.Radius = vg.Points(2)
	s.GlyphStyle.Shape = draw.CircleGlyph{}
	return s, nil
}

// boundaryLine builds the dashed decision-boundary line spanning the
// panel horizontally.
func boundaryLine(rec *model.Record, xmin, xmax float64) (*plotter.Line, error) {
	line, err := plotter.NewLine(plotter.XYs{
		{X: xmin, Y: rec.Slope*xmin + rec.Intercept},
		{X: xmax, Y: rec.Slope*xmax + rec.Intercept},
	})
	if err != nil {
		return nil, err
	}
	line.LineStyle.Color = boundaryColor
	line.LineStyle.Width = vg.Points(1.5)
	line.LineStyle.Dashes = []vg.Length{vg.Points(6), vg.Points(3)}
	return line, nil
}

// addContourPoints draws an extracted contour point set as small
// glyphs. The points are unordered, so glyphs rather than a polyline.
func addContourPoints(p *plot.Plot, pts []model.Point, c color.Color) error {
	if len(pts) == 0 {
		return nil
	}
	xys := make(plotter.XYs, len(pts))
	for i, pt := range pts {
		xys[i] = plotter.XY{X: pt.X1, Y: pt.X2}
	}

	s, err := plotter.NewScatter(xys)
	if err != nil {
		return err
	}
	s.GlyphStyle.Color = c
	s.GlyphStyle.Radius = vg.Points(1)
	s.GlyphStyle.Shape = draw.BoxGlyph{}
	p.Add(s)
	return nil
}

// addAnnotations writes the fitted equation and margin width into the
// top-left corner of the panel.
func addAnnotations(p *plot.Plot, rec *model.Record) error {
	height := p.Y.Max - p.Y.Min
	labels, err := plotter.NewLabels(plotter.XYLabels{
		XYs: plotter.XYs{
			{X: p.X.Min + 0.1, Y: p.Y.Max - 0.06*height},
			{X: p.X.Min + 0.1, Y: p.Y.Max - 0.12*height},
			{X: p.X.Min + 0.1, Y: p.Y.Max - 0.18*height},
		},
		Labels: []string{
			fmt.Sprintf("%.2f + %.2f*x1 + %.2f*x2 = 0", rec.Fit.Beta0, rec.Fit.Beta1, rec.Fit.Beta2),
			fmt.Sprintf("x2 = %.2f*x1 + %.2f", rec.Slope, rec.Intercept),
			fmt.Sprintf("Margin Width: %.2f", rec.MarginWidth),
		},
	})
	if err != nil {
		return err
	}
	p.Add(labels)
	return nil
}

// writePNG encodes the canvas to path, overwriting any previous file.
func writePNG(img *vgimg.Canvas, path string) error {
	f, err := os.Create(path) //nolint:gosec // Artifact path derives from user-chosen output dir
	if err != nil {
		return err
	}

	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
