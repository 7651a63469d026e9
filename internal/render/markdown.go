package render

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/nao1215/markdown"

	"github.com/clusterlab/shiftlab/internal/model"
)

// MarkdownRenderer writes a Markdown summary of the sweep: the sweep
// parameters and one metrics row per shift distance. The summary links
// the two image artifacts so the file reads as a self-contained report.
type MarkdownRenderer struct {
	dir string
}

// NewMarkdownRenderer creates a MarkdownRenderer writing SummaryFile
// into dir.
func NewMarkdownRenderer(dir string) *MarkdownRenderer {
	return &MarkdownRenderer{dir: dir}
}

// Render writes the summary.
func (r *MarkdownRenderer) Render(result *model.Result) error {
	if len(result.Records) == 0 {
		return ErrNoRecords
	}
	if err := ensureDir(r.dir); err != nil {
		return err
	}

	f, err := os.Create(filepath.Join(r.dir, SummaryFile)) //nolint:gosec // Artifact path derives from user-chosen output dir
	if err != nil {
		return err
	}

	if err := r.write(f, result); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// write builds the Markdown document.
func (r *MarkdownRenderer) write(f *os.File, result *model.Result) error {
	md := markdown.NewMarkdown(f)

	md.H1("Shift Distance Sweep")
	md.PlainText("")
	md.PlainText("How the separation between two synthetic clusters shapes a " +
		"logistic classifier's boundary, confidence margin, and loss.")
	md.PlainText("")

	md.H2("Parameters")
	md.Table(markdown.TableSet{
		Header: []string{"Parameter", "Value"},
		Rows: [][]string{
			{"Distances", fmt.Sprintf("%s to %s (%d steps)",
				fnum(result.Records[0].Distance),
				fnum(result.Records[len(result.Records)-1].Distance),
				len(result.Records))},
			{"Samples per cluster", strconv.Itoa(result.Samples)},
			{"Cluster std", fnum(result.ClusterStd)},
			{"Seed", strconv.FormatUint(result.Seed, 10)},
		},
	})
	md.PlainText("")

	md.H2("Per-Distance Metrics")
	rows := make([][]string, 0, len(result.Records))
	for _, rec := range result.Records {
		rows = append(rows, []string{
			fnum(rec.Distance),
			fnum(rec.Fit.Beta0),
			fnum(rec.Fit.Beta1),
			fnum(rec.Fit.Beta2),
			fnum(rec.Slope),
			fnum(rec.Intercept),
			fnum(rec.LogLoss),
			fnum(rec.MarginWidth),
		})
	}
	md.Table(markdown.TableSet{
		Header: []string{"Distance", "Beta0", "Beta1", "Beta2", "Slope", "Intercept", "Log Loss", "Margin Width"},
		Rows:   rows,
	})
	md.PlainText("")

	md.H2("Figures")
	md.BulletList(
		fmt.Sprintf("[Per-distance scatter and boundaries](%s)", DatasetImage),
		fmt.Sprintf("[Parameter trends](%s)", TrendImage),
	)

	return md.Build()
}

// fnum formats a metric value with four decimal places.
func fnum(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}
