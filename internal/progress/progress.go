// Package progress renders extraction progress on a terminal.
package progress

import (
	"fmt"
	"io"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/dbsmedya/titlex/internal/titles"
)

// BarReporter implements titles.Reporter with a progress bar.
type BarReporter struct {
	out   io.Writer
	quiet bool
	bar   *progressbar.ProgressBar
}

// NewBarReporter creates a reporter writing to out. A quiet reporter
// renders nothing.
func NewBarReporter(out io.Writer, quiet bool) *BarReporter {
	return &BarReporter{
		out:   out,
		quiet: quiet,
	}
}

func (r *BarReporter) OnDiscoveryComplete(files int) {
	r.bar = nil
	if r.quiet || files == 0 {
		return
	}

	r.bar = progressbar.NewOptions(files,
		progressbar.OptionSetWriter(r.out),
		progressbar.OptionSetDescription("Extracting titles"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("files"),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(r.out)
		}),
	)
}

func (r *BarReporter) OnFileExtracted(path string) {
	if r.bar != nil {
		_ = r.bar.Add(1)
	}
}

func (r *BarReporter) OnComplete(result *titles.Result) {
	if r.bar != nil {
		_ = r.bar.Finish()
		r.bar = nil
	}
}

// OnFailed abandons a partly drawn bar and ends its line, so whatever is
// printed next starts on a fresh line.
func (r *BarReporter) OnFailed(err error) {
	if r.bar == nil {
		return
	}
	r.bar = nil
	fmt.Fprintln(r.out)
}
