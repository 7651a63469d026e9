package render

import (
	"errors"
	"os"

	"github.com/clusterlab/shiftlab/internal/model"
)

// Artifact file names, fixed so repeated runs overwrite their
// predecessors.
const (
	// DatasetImage is the combined per-distance scatter figure.
	DatasetImage = "dataset.png"

	// TrendImage is the multi-panel distance-vs-parameter figure.
	TrendImage = "parameters_vs_shift_distance.png"

	// SummaryFile is the optional Markdown sweep summary.
	SummaryFile = "summary.md"
)

// ErrNoRecords is returned when a renderer receives an empty result.
// The runner never produces one, so an empty result always indicates a
// caller bug.
var ErrNoRecords = errors.New("cannot render: result contains no records")

// Renderer writes one artifact from a completed experiment result.
//
// Design decision: an interface so the runner's output can fan out to
// any combination of artifacts (images, Markdown, future formats)
// without the experiment core knowing about any of them.
type Renderer interface {
	// Render writes the artifact. The result is complete and
	// ordered by increasing distance.
	Render(result *model.Result) error
}

// MultiRenderer fans a result out to several Renderers, stopping on the
// first failure.
type MultiRenderer struct {
	renderers []Renderer
}

// NewMultiRenderer creates a Renderer that renders through all provided
// Renderers in order.
func NewMultiRenderer(renderers ...Renderer) *MultiRenderer {
	return &MultiRenderer{renderers: renderers}
}

// Render invokes every configured renderer in order.
func (m *MultiRenderer) Render(result *model.Result) error {
	for _, r := range m.renderers {
		if err := r.Render(result); err != nil {
			return err
		}
	}
	return nil
}

// ensureDir creates the output directory if it does not exist.
func ensureDir(dir string) error {
	return os.MkdirAll(dir, 0o750)
}
