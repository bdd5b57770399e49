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
	"strings"
)

// Marker grammar. The build emits the modern form; legacy mode additionally
// recognizes the form older toolchains produced.
const (
	markerOpen  = "@@l10n:"
	markerClose = "@@"

	legacyOpen  = "__l10n("
	legacyClose = ")__"
)

// 📝 RewriteResult reports what a marker pass did to one piece of code
type RewriteResult struct {
	Code       string   // Rewritten text
	Replaced   int      // Markers rewritten, catalog hits and id fallbacks alike
	MissingIDs []string // Unique ids with no catalog entry, in first-seen order
}

// 🔁 Rewrite replaces every translation marker in code with the catalog's
// message text. Markers whose id has no catalog entry collapse to the id
// itself, so no marker syntax ever reaches an output tree; the caller
// decides what a missing id costs. Legacy mode recognizes both marker
// forms, since staged bundles can mix outputs from older toolchains.
func Rewrite(code string, catalog Catalog, legacy bool) RewriteResult {
	res := RewriteResult{Code: code}
	missing := map[string]struct{}{}

	res.Code, res.Replaced = rewriteForm(res.Code, markerOpen, markerClose, catalog, missing, &res.MissingIDs)
	if legacy {
		var n int
		res.Code, n = rewriteForm(res.Code, legacyOpen, legacyClose, catalog, missing, &res.MissingIDs)
		res.Replaced += n
	}

	return res
}

// rewriteForm runs one marker grammar over the code. Unterminated markers
// and ill-formed ids are left untouched rather than guessed at.
func rewriteForm(code, opener, closer string, catalog Catalog, seen map[string]struct{}, missing *[]string) (string, int) {
	var b strings.Builder
	b.Grow(len(code))

	replaced := 0
	for {
		i := strings.Index(code, opener)
		if i < 0 {
			b.WriteString(code)
			break
		}

		b.WriteString(code[:i])
		rest := code[i+len(opener):]

		j := strings.Index(rest, closer)
		if j < 0 {
			b.WriteString(code[i:])
			break
		}

		id := rest[:j]
		if !isMessageID(id) {
			// Not a marker after all; emit the opener literally and keep
			// scanning after it.
			b.WriteString(opener)
			code = rest
			continue
		}

		text, ok := catalog.Translations[id]
		if !ok {
			text = id
			if _, dup := seen[id]; !dup {
				seen[id] = struct{}{}
				*missing = append(*missing, id)
			}
		}
		b.WriteString(text)
		replaced++

		code = rest[j+len(closer):]
	}

	return b.String(), replaced
}

// isMessageID accepts the id alphabet the extraction tooling emits
func isMessageID(id string) bool {
	if id == "" {
		return false
	}
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '.' || r == '_' || r == '-':
		default:
			return false
		}
	}
	return true
}
