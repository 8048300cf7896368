package app

import (
	"context"
	"io"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/muurk/jokebox/internal/logging"
	"github.com/muurk/jokebox/internal/ui"
)

// Panel text shown by Run
const (
	AnnounceText = "Fetching a random joke..."
	JokeTitle    = "Your Joke"
	ErrorPrefix  = "Error: "
)

// Fetcher retrieves one formatted joke.
// *joke.Client satisfies it.
type Fetcher interface {
	Fetch(ctx context.Context) (string, error)
}

// Result is the outcome of one fetch-and-display cycle.
// Exactly one of Joke and Err is meaningful: Err == nil means success.
type Result struct {
	Joke string
	Err  error
}

// OK reports whether the joke was fetched
func (r Result) OK() bool {
	return r.Err == nil
}

// Runner drives the announce → fetch → report cycle
type Runner struct {
	fetcher Fetcher
	output  io.Writer
}

// NewRunner creates a runner writing panels to output (os.Stdout when nil)
func NewRunner(fetcher Fetcher, output io.Writer) *Runner {
	if output == nil {
		output = os.Stdout
	}
	return &Runner{
		fetcher: fetcher,
		output:  output,
	}
}

// Run announces the fetch, performs it, and reports the joke or the error.
// It always writes exactly two panels and never panics on fetch failure.
func (r *Runner) Run(ctx context.Context) Result {
	ui.Present(r.output, AnnounceText, "", ui.StyleInfo)

	start := time.Now()
	text, err := r.fetcher.Fetch(ctx)
	result := Result{Joke: text, Err: err}

	if !result.OK() {
		logging.Debug("Reporting fetch failure",
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(result.Err),
		)
		ui.Present(r.output, ErrorPrefix+result.Err.Error(), "", ui.StyleError)
		return Result{Err: result.Err}
	}

	logging.Info("Joke fetched", zap.Duration("elapsed", time.Since(start)))
	ui.Present(r.output, result.Joke, JokeTitle, ui.StyleSuccess)
	return result
}

// Run is a convenience wrapper for NewRunner(f, w).Run(ctx)
func Run(ctx context.Context, w io.Writer, f Fetcher) Result {
	return NewRunner(f, w).Run(ctx)
}
