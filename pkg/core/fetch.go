package core

import (
	"fmt"
	"io"

	"github.com/symmetrysyndicate/symfetch/pkg/errors"
	"github.com/symmetrysyndicate/symfetch/pkg/layout"
	"github.com/symmetrysyndicate/symfetch/pkg/logging"
	"github.com/symmetrysyndicate/symfetch/pkg/render"
	"github.com/symmetrysyndicate/symfetch/pkg/sysinfo"
	"github.com/symmetrysyndicate/symfetch/pkg/types"
)

// FetchOptions holds the collaborators of one fetch
type FetchOptions struct {
	Source   types.RenderConfig
	Selector *render.Selector
	Info     sysinfo.Provider
	Output   io.Writer
}

// Compose builds the output rows. Rendering problems never fail it: a
// missing graphic leaves only the information column.
func Compose(source types.RenderConfig, selector *render.Selector, info sysinfo.Provider) []string {
	left := selector.Select(source).Block()
	right := layout.Raw(info.Lines())
	return layout.Compose(left, right)
}

// Fetch composes the rows and writes them to the output, one per line.
// Only output errors are returned.
func Fetch(opts FetchOptions) error {
	logger := logging.GetLogger("core.fetch")
	done := logging.LogOperationStart(logger, "fetch")
	defer done()

	rows := Compose(opts.Source, opts.Selector, opts.Info)
	logger.Debug().Int("rows", len(rows)).Str("source", opts.Source.String()).Msg("Composed output")

	for _, row := range rows {
		if _, err := fmt.Fprintln(opts.Output, row); err != nil {
			return errors.Wrap(err, errors.ErrOutputWrite, "failed to write output")
		}
	}
	return nil
}
