package render

import (
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/clusterlab/shiftlab/internal/model"
)

// trendGrid is the panel grid of the trend figure: seven used panels in
// a 3x3 layout.
const (
	trendRows = 3
	trendCols = 3
)

// trendPanel describes one distance-vs-value curve of the trend figure.
type trendPanel struct {
	title string
	yaxis string
	value func(*model.Record) float64

	// yMin/yMax pin the panel's vertical range when set. The slope
	// panel is pinned because a near-zero beta2 early in a sweep can
	// produce one huge slope that flattens every other point.
	limitY     bool
	yMin, yMax float64
}

// trendPanels lists the panels in figure order.
var trendPanels = []trendPanel{
	{title: "Shift Distance vs Beta0", yaxis: "Beta0", value: func(r *model.Record) float64 { return r.Fit.Beta0 }},
	{title: "Shift Distance vs Beta1 (Coefficient for x1)", yaxis: "Beta1", value: func(r *model.Record) float64 { return r.Fit.Beta1 }},
	{title: "Shift Distance vs Beta2 (Coefficient for x2)", yaxis: "Beta2", value: func(r *model.Record) float64 { return r.Fit.Beta2 }},
	{title: "Shift Distance vs Slope", yaxis: "Slope", value: func(r *model.Record) float64 { return r.Slope }, limitY: true, yMin: -4, yMax: 2},
	{title: "Shift Distance vs Intercept", yaxis: "Intercept", value: func(r *model.Record) float64 { return r.Intercept }},
	{title: "Shift Distance vs Logistic Loss", yaxis: "Logistic Loss", value: func(r *model.Record) float64 { return r.LogLoss }},
	{title: "Shift Distance vs Margin Width", yaxis: "Margin Width", value: func(r *model.Record) float64 { return r.MarginWidth }},
}

// TrendRenderer writes the multi-panel trend figure: shift distance
// against every fitted parameter and derived metric.
type TrendRenderer struct {
	dir string
}

// NewTrendRenderer creates a TrendRenderer writing TrendImage into dir.
func NewTrendRenderer(dir string) *TrendRenderer {
	return &TrendRenderer{dir: dir}
}

// Render writes the figure.
func (r *TrendRenderer) Render(result *model.Result) error {
	if len(result.Records) == 0 {
		return ErrNoRecords
	}
	if err := ensureDir(r.dir); err != nil {
		return err
	}

	plots := make([][]*plot.Plot, trendRows)
	for i := range plots {
		plots[i] = make([]*plot.Plot, trendCols)
	}

	for i, panel := range trendPanels {
		p, err := panel.build(result)
		if err != nil {
			return err
		}
		plots[i/trendCols][i%trendCols] = p
	}

	img := vgimg.New(vg.Points(1080), vg.Points(900))
	canvases := plot.Align(plots, draw.Tiles{
		Rows: trendRows,
		Cols: trendCols,
		PadX: vg.Points(10),
		PadY: vg.Points(10),
	}, draw.New(img))

	for i := range plots {
		for j := range plots[i] {
			if plots[i][j] != nil {
				plots[i][j].Draw(canvases[i][j])
			}
		}
	}

	return writePNG(img, filepath.Join(r.dir, TrendImage))
}

// build creates the line plot for one panel.
func (tp trendPanel) build(result *model.Result) (*plot.Plot, error) {
	xys := make(plotter.XYs, len(result.Records))
	for i, rec := range result.Records {
		xys[i] = plotter.XY{X: rec.Distance, Y: tp.value(rec)}
	}

	line, err := plotter.NewLine(xys)
	if err != nil {
		return nil, err
	}
	line.LineStyle.Width = vg.Points(1.5)
	line.LineStyle.Color = classAColor

	p := plot.New()
	p.Title.Text = tp.title
	p.X.Label.Text = "Shift Distance"
	p.Y.Label.Text = tp.yaxis
	if tp.limitY {
		p.Y.Min, p.Y.Max = tp.yMin, tp.yMax
	}
	p.Add(line)
	return p, nil
}
