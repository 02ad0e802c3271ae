// Package progress reports the stage-by-stage timing console output
// the CLI prints while it works.
package progress

import (
	"fmt"
	"math"
	"os"
	"time"

	"golang.org/x/term"
)

const (
	successColor = "\x1b[32m"
	defaultColor = "\x1b[0m"
)

// Reporter prints one timed "stage... Ns" line per call to Stage. It
// is silent when Quiet is set or stdout is not a terminal.
type Reporter struct {
	Quiet bool
}

// New builds a Reporter. quiet suppresses all output regardless of
// whether stdout is a terminal.
func New(quiet bool) *Reporter {
	return &Reporter{Quiet: quiet}
}

func (r *Reporter) silent() bool {
	return r.Quiet || !term.IsTerminal(int(os.Stdout.Fd()))
}

// Stage prints "message... " immediately and returns a function that,
// when called, appends the elapsed time and a newline. Callers defer
// or explicitly invoke the returned function when the stage completes.
func (r *Reporter) Stage(message string) func() {
	if r.silent() {
		return func() {}
	}
	fmt.Fprintf(os.Stdout, "%s... ", message)
	start := time.Now()
	return func() {
		fmt.Fprintf(os.Stdout, "%s\n", FormatTime(time.Since(start)))
	}
}

// Printf writes a statistics line (pixel counts, triangle counts,
// error, and so on) unless the reporter is silent.
func (r *Reporter) Printf(format string, args ...any) {
	if r.silent() {
		return
	}
	fmt.Fprintf(os.Stdout, format, args...)
}

// Spin animates message with a Spinner for the duration of a stage
// that has no natural completion percentage (the triangulation loop
// has no progress callback to drive a percentage bar), and returns a
// function that stops the spinner and reports the elapsed time.
func (r *Reporter) Spin(message string) func() {
	if r.silent() {
		return func() {}
	}
	s := NewSpinner()
	s.Start(message)
	start := time.Now()
	return func() {
		s.Stop()
		fmt.Fprintf(os.Stdout, "\r%s... %s\n", message, FormatTime(time.Since(start)))
	}
}

// Spinner is an indeterminate console progress indicator for stages
// that have no natural completion percentage.
type Spinner struct {
	stopChan chan struct{}
}

// NewSpinner builds a Spinner.
func NewSpinner() *Spinner {
	return &Spinner{}
}

// Start begins animating message with a rotating glyph on stderr.
func (s *Spinner) Start(message string) {
	s.stopChan = make(chan struct{}, 1)

	go func() {
		for {
			for _, g := range `-\|/` {
				select {
				case <-s.stopChan:
					return
				default:
					fmt.Fprintf(os.Stderr, "\r%s%s %c%s", message, successColor, g, defaultColor)
					time.Sleep(100 * time.Millisecond)
				}
			}
		}
	}()
}

// Stop halts the spinner's animation.
func (s *Spinner) Stop() {
	s.stopChan <- struct{}{}
}

// FormatTime formats a duration as a human readable elapsed-time
// string, choosing the coarsest unit that fits.
func FormatTime(d time.Duration) string {
	if d.Seconds() < 60.0 {
		return fmt.Sprintf("%ds", int64(d.Seconds()))
	}
	if d.Minutes() < 60.0 {
		remainingSeconds := math.Mod(d.Seconds(), 60)
		return fmt.Sprintf("%dm:%ds", int64(d.Minutes()), int64(remainingSeconds))
	}
	if d.Hours() < 24.0 {
		remainingMinutes := math.Mod(d.Minutes(), 60)
		remainingSeconds := math.Mod(d.Seconds(), 60)
		return fmt.Sprintf("%dh:%dm:%ds",
			int64(d.Hours()), int64(remainingMinutes), int64(remainingSeconds))
	}
	remainingHours := math.Mod(d.Hours(), 24)
	remainingMinutes := math.Mod(d.Minutes(), 60)
	remainingSeconds := math.Mod(d.Seconds(), 60)
	return fmt.Sprintf("%dd:%dh:%dm:%ds",
		int64(d.Hours()/24), int64(remainingHours),
		int64(remainingMinutes), int64(remainingSeconds))
}
