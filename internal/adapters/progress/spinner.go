package progress

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/poap-raffle/raffle-cli/internal/usecase"
)

// SpinnerSink shows a spinner while waiting on the chain and prints stage
// transitions to stderr
type SpinnerSink struct {
	spinner *spinner.Spinner
	out     io.Writer
	stage   string
	started time.Time
}

// NewSpinnerSink creates a spinner sink writing to stderr
func NewSpinnerSink() *SpinnerSink {
	return newSpinnerSink(os.Stderr)
}

func newSpinnerSink(out io.Writer) *SpinnerSink {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(out))
	s.HideCursor = false

	return &SpinnerSink{spinner: s, out: out}
}

// OnProgress handles progress events
func (r *SpinnerSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	if event.Stage != r.stage {
		r.completeStage()
		r.stage = event.Stage
		r.started = time.Now()
	}

	if event.Stage == usecase.StageCompleted {
		r.stop()
		r.stage = ""
		return
	}

	if event.Spinner {
		r.spinner.Suffix = " " + stageLabel(event)
		if !r.spinner.Active() {
			r.spinner.Start()
		}
	} else {
		r.stop()
		fmt.Fprintln(r.out, color.New(color.Faint).Sprint(stageLabel(event)))
	}
}

// Info prints an info message
func (r *SpinnerSink) Info(message string) {
	r.withPaused(func() {
		color.New(color.FgCyan).Fprintln(r.out, message)
	})
}

// Error prints an error message
func (r *SpinnerSink) Error(message string) {
	r.withPaused(func() {
		color.New(color.FgRed).Fprintln(r.out, message)
	})
}

func (r *SpinnerSink) withPaused(fn func()) {
	wasActive := r.spinner.Active()
	if wasActive {
		r.spinner.Stop()
	}
	fn()
	if wasActive {
		r.spinner.Start()
	}
}

func (r *SpinnerSink) stop() {
	if r.spinner.Active() {
		r.spinner.Stop()
	}
}

// completeStage prints a check line for spinner stages that ran
func (r *SpinnerSink) completeStage() {
	if r.stage == "" || !r.spinner.Active() {
		return
	}
	r.spinner.Stop()
	elapsed := time.Since(r.started).Round(100 * time.Millisecond)
	fmt.Fprintf(r.out, "%s %s %s\n",
		color.New(color.FgGreen).Sprint("✓"),
		r.stage,
		color.New(color.Faint).Sprintf("(%s)", elapsed))
}

func stageLabel(event usecase.ProgressEvent) string {
	label := event.Stage
	if event.Total > 0 {
		label = fmt.Sprintf("%s [%d/%d]", label, event.Current, event.Total)
	}
	if event.Message != "" {
		label += ": " + event.Message
	}
	return label
}

var _ usecase.ProgressSink = (*SpinnerSink)(nil)
