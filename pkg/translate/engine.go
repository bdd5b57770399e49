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

package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/walteh/localizerc/pkg/inline"
	"gitlab.com/tozd/go/errors"
)

// 📊 Policy controls what a missing translation costs
type Policy int

const (
	PolicyWarning Policy = iota // Report and keep going (default)
	PolicyError                 // Report and fail the run
	PolicyIgnore                // Substitute silently
)

// String returns a string representation of Policy
func (p Policy) String() string {
	switch p {
	case PolicyError:
		return "error"
	case PolicyIgnore:
		return "ignore"
	default:
		return "warning"
	}
}

// ParsePolicy converts a config string into a Policy. Empty means warning.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "warning":
		return PolicyWarning, nil
	case "error":
		return PolicyError, nil
	case "ignore":
		return PolicyIgnore, nil
	default:
		return PolicyWarning, errors.Errorf("unknown missing-translation policy %q", s)
	}
}

// 🌍 Target is one locale the engine writes output for
type Target struct {
	Code    string  // Locale code baked into the bootstrap line
	Dir     string  // Subdirectory under the request's output root; defaults to Code
	Catalog Catalog // Message texts for this locale
}

// 🔧 Options configures the translation engine
type Options struct {
	Targets            []Target
	LegacyMarkers      bool   // Also recognize the older marker form
	MissingTranslation Policy // What a missing catalog entry costs
}

// 🏭 Engine rewrites translation markers and fans each artifact out into
// one file per locale. It implements inline.Engine.
type Engine struct {
	targets []Target
	legacy  bool
	policy  Policy
}

// New creates a translation engine for the given locales
func New(opts Options) (*Engine, error) {
	if len(opts.Targets) == 0 {
		return nil, errors.New("at least one locale target is required")
	}

	targets := make([]Target, len(opts.Targets))
	copy(targets, opts.Targets)
	for i := range targets {
		if targets[i].Code == "" {
			return nil, errors.Errorf("target %d: locale code is required", i)
		}
		if targets[i].Dir == "" {
			targets[i].Dir = targets[i].Code
		}
	}

	return &Engine{
		targets: targets,
		legacy:  opts.LegacyMarkers,
		policy:  opts.MissingTranslation,
	}, nil
}

// Targets exposes the configured locales, defaults applied
func (e *Engine) Targets() []Target {
	out := make([]Target, len(e.targets))
	copy(out, e.targets)
	return out
}

// 🔌 Inline rewrites one artifact for every configured locale. All failures
// come back as diagnostics on the result; siblings in the batch are never
// affected.
func (e *Engine) Inline(ctx context.Context, req inline.Request) inline.Result {
	res := inline.Result{File: req.File}
	for _, target := range e.targets {
		res.Diagnostics = append(res.Diagnostics, e.inlineTarget(ctx, req, target)...)
	}
	return res
}

func (e *Engine) inlineTarget(ctx context.Context, req inline.Request, target Target) []inline.Diagnostic {
	var diags []inline.Diagnostic

	rw := Rewrite(req.Code, target.Catalog, e.legacy)
	for _, id := range rw.MissingIDs {
		switch e.policy {
		case PolicyError:
			diags = append(diags, inline.Errorf("missing translation %q for locale %q", id, target.Code))
		case PolicyWarning:
			diags = append(diags, inline.Warningf("missing translation %q for locale %q", id, target.Code))
		}
	}

	code := rw.Code
	if req.SetLocale {
		code = localeBootstrap(target.Code) + code
	}

	outRel := path.Join(target.Dir, req.File)
	outAbs := filepath.Join(req.OutputRoot, target.Dir, filepath.FromSlash(req.File))

	if err := os.MkdirAll(filepath.Dir(outAbs), 0755); err != nil {
		diags = append(diags, inline.Errorf("creating output directory for %s: %v", outRel, err))
		return diags
	}
	if err := os.WriteFile(outAbs, []byte(code), 0644); err != nil {
		diags = append(diags, inline.Errorf("writing %s: %v", outRel, err))
		return diags
	}

	zerolog.Ctx(ctx).Debug().
		Str("file", outRel).
		Int("markers", rw.Replaced).
		Str("locale", target.Code).
		Msg("inlined artifact")

	if req.SourceMap != "" {
		diags = append(diags, writeSourceMap(req, outAbs, outRel)...)
	}

	return diags
}

// localeBootstrap is prepended to entry bundles so the runtime knows its
// locale before any translated code executes.
func localeBootstrap(code string) string {
	return fmt.Sprintf("(globalThis.$l10n = globalThis.$l10n || {}).locale = %q;\n", code)
}

// writeSourceMap re-points the consumed map at the rewritten file and lays
// it down next to the output. Map trouble never costs more than a warning;
// only failing to write a parseable map is an error.
func writeSourceMap(req inline.Request, outAbs, outRel string) []inline.Diagnostic {
	var parsed map[string]interface{}
	if err := json.Unmarshal([]byte(req.SourceMap), &parsed); err != nil {
		return []inline.Diagnostic{inline.Warningf("unparseable source map for %s, dropping it: %v", req.File, err)}
	}
	parsed["file"] = path.Base(req.File)

	data, err := json.Marshal(parsed)
	if err != nil {
		return []inline.Diagnostic{inline.Warningf("re-encoding source map for %s, dropping it: %v", req.File, err)}
	}

	if err := os.WriteFile(outAbs+".map", data, 0644); err != nil {
		return []inline.Diagnostic{inline.Errorf("writing %s.map: %v", outRel, err)}
	}

	return nil
}
