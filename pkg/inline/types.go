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

package inline

import (
	"context"
	"fmt"
)

// 📊 Severity classifies a diagnostic produced while inlining an artifact
type Severity int

const (
	SeverityWarning Severity = iota // Recorded and reported, run still succeeds
	SeverityError                   // Flips the run verdict, never aborts the batch
)

// String returns a string representation of Severity
func (s Severity) String() string {
	if s == SeverityError {
		return "error"
	}
	return "warning"
}

// 📣 Diagnostic is a single message attached to one artifact transformation
type Diagnostic struct {
	Severity Severity // How bad it is
	Message  string   // Human-readable description
}

// Errorf builds an error-severity diagnostic
func Errorf(format string, args ...interface{}) Diagnostic {
	return Diagnostic{Severity: SeverityError, Message: fmt.Sprintf(format, args...)}
}

// Warningf builds a warning-severity diagnostic
func Warningf(format string, args ...interface{}) Diagnostic {
	return Diagnostic{Severity: SeverityWarning, Message: fmt.Sprintf(format, args...)}
}

// 📦 Request describes one consumed artifact awaiting locale inlining.
// The artifact's bytes have already been captured (and the staging copy
// removed), so the request is self-contained.
type Request struct {
	File       string // Path relative to each locale output root
	Code       string // Full artifact text
	SourceMap  string // Companion source map text, empty when none exists
	SetLocale  bool   // Prepend the locale bootstrap line (main/vendor entries)
	OutputRoot string // Base directory receiving one subtree per locale
}

// 📬 Result reports the outcome of inlining one artifact across all locales
type Result struct {
	File        string       // Mirrors Request.File
	Diagnostics []Diagnostic // Everything worth telling the user, worst first not guaranteed
}

// HasErrors reports whether any diagnostic carries error severity
func (r Result) HasErrors() bool {
	for _, d := range r.Diagnostics {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}

// 🔌 Engine turns one request into locale-specific output files.
// Implementations report per-file failures as error diagnostics on the
// Result rather than returning a Go error, so one broken artifact never
// stops the rest of the batch.
type Engine interface {
	Inline(ctx context.Context, req Request) Result
}
