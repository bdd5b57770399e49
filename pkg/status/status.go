// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package status

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
)

// 📈 Reporter narrates one inlining run: a spinner carries the progress
// indicator, diagnostics print as severity-graded lines, and everything is
// mirrored into zerolog. The spinner is suspended around every printed
// line and resumed afterwards, so diagnostics never tear the animation.
type Reporter struct {
	writer io.Writer

	mu       sync.Mutex
	spinner  *pterm.SpinnerPrinter
	running  bool
	total    int
	done     int
	errors   int
	warnings int
}

// 🔧 Options configures a Reporter
type Options struct {
	Writer io.Writer // Defaults to stdout
}

// 🏭 New creates a reporter
func New(opts Options) *Reporter {
	w := opts.Writer
	if w == nil {
		w = os.Stdout
	}
	return &Reporter{writer: w}
}

// 🏁 StartOperation begins the progress indicator for a batch of files
func (r *Reporter) StartOperation(ctx context.Context, total int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.total = total
	r.done = 0
	r.errors = 0
	r.warnings = 0
	r.running = true
	r.resumeLocked()

	zerolog.Ctx(ctx).Debug().Int("total", total).Msg("starting inline run")
}

// 📄 FileDone reports one finished artifact: an aligned result line plus a
// progress bump.
func (r *Reporter) FileDone(ctx context.Context, file string, errs, warns int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.done++

	r.pauseLocked()
	fmt.Fprintln(r.writer, FormatFileResult(file, errs, warns))
	r.resumeLocked()

	zerolog.Ctx(ctx).Debug().
		Str("file", file).
		Int("errors", errs).
		Int("warnings", warns).
		Int("done", r.done).
		Int("total", r.total).
		Msg("artifact finished")
}

// ❌ Error prints an error-severity diagnostic
func (r *Reporter) Error(ctx context.Context, file, msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.errors++

	r.pauseLocked()
	pterm.Error.WithWriter(r.writer).WithPrefix(pterm.Prefix{Text: "❌"}).Printfln("%s: %s", file, msg)
	r.resumeLocked()

	zerolog.Ctx(ctx).Error().Str("file", file).Msg(msg)
}

// ⚠️ Warning prints a warning-severity diagnostic
func (r *Reporter) Warning(ctx context.Context, file, msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.warnings++

	r.pauseLocked()
	pterm.Warning.WithWriter(r.writer).WithPrefix(pterm.Prefix{Text: "⚠️"}).Printfln("%s: %s", file, msg)
	r.resumeLocked()

	zerolog.Ctx(ctx).Warn().Str("file", file).Msg(msg)
}

// 💬 Info prints a neutral progress note
func (r *Reporter) Info(ctx context.Context, msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.pauseLocked()
	pterm.Info.WithWriter(r.writer).WithPrefix(pterm.Prefix{Text: "📦"}).Println(msg)
	r.resumeLocked()

	zerolog.Ctx(ctx).Info().Msg(msg)
}

// 🏆 FinishOperation ends the progress indicator with a verdict summary
func (r *Reporter) FinishOperation(ctx context.Context, success bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.running = false
	summary := FormatSummary(r.done, r.errors, r.warnings)

	if r.spinner != nil {
		if success {
			r.spinner.Success(summary)
		} else {
			r.spinner.Fail(summary)
		}
		r.spinner = nil
	} else {
		if success {
			pterm.Success.WithWriter(r.writer).Println(summary)
		} else {
			pterm.Error.WithWriter(r.writer).Println(summary)
		}
	}

	zerolog.Ctx(ctx).Info().
		Bool("success", success).
		Int("files", r.done).
		Int("errors", r.errors).
		Int("warnings", r.warnings).
		Msg("inline run finished")
}

// 🔢 Counts returns the diagnostics tallied so far
func (r *Reporter) Counts() (errs, warns int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.errors, r.warnings
}

// pauseLocked stops the spinner so a line can print cleanly. Callers hold mu.
func (r *Reporter) pauseLocked() {
	if r.spinner != nil {
		_ = r.spinner.Stop()
		r.spinner = nil
	}
}

// resumeLocked restarts the spinner with the current progress text.
// Callers hold mu.
func (r *Reporter) resumeLocked() {
	if !r.running {
		return
	}
	spinner, err := pterm.DefaultSpinner.WithWriter(r.writer).Start(FormatProgress(r.done, r.total))
	if err != nil {
		// The run continues without a spinner; result lines still print.
		return
	}
	r.spinner = spinner
}
