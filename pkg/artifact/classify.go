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

package artifact

// ScriptExtension is the only extension the inliner rewrites. Everything
// else rides along untouched.
const ScriptExtension = ".js"

// Entries that establish the runtime locale when loaded first.
var localeEntryNames = map[string]struct{}{
	"main":   {},
	"vendor": {},
}

// 🔍 Classify filters the manifest down to the artifacts eligible for
// inlining. An artifact is skipped when it is an asset, when its extension
// is not the script extension, or when its logical name is excluded.
// Order is preserved; skipped artifacts simply fall out, they are handled
// later by the pass-through copy.
func Classify(artifacts []Artifact, excludeNames []string) []Artifact {
	excluded := make(map[string]struct{}, len(excludeNames))
	for _, name := range excludeNames {
		excluded[name] = struct{}{}
	}

	eligible := make([]Artifact, 0, len(artifacts))
	for _, art := range artifacts {
		if art.Kind == KindAsset {
			continue
		}
		if art.Extension != ScriptExtension {
			continue
		}
		if _, skip := excluded[art.Name]; skip && art.Name != "" {
			continue
		}
		eligible = append(eligible, art)
	}
	return eligible
}

// 🏷️ IsLocaleEntry reports whether the logical name belongs to an entry
// bundle that must set the runtime locale before any other code runs.
func IsLocaleEntry(name string) bool {
	_, ok := localeEntryNames[name]
	return ok
}
