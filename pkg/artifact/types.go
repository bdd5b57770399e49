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

import (
	"sort"
	"sync"
)

// 📊 Kind tags what a build emitted: executable script or opaque asset
type Kind string

const (
	KindScript Kind = "script" // Bundled JavaScript, candidate for inlining
	KindAsset  Kind = "asset"  // Images, styles, fonts; always passed through
)

// Valid reports whether the kind is one the manifest schema defines
func (k Kind) Valid() bool {
	return k == KindScript || k == KindAsset
}

// 📄 Artifact describes one file the build wrote into the staging tree
type Artifact struct {
	Name      string `json:"name,omitempty"` // Logical entry name; empty for anonymous chunks
	File      string `json:"file"`           // Path relative to the staging root
	Kind      Kind   `json:"kind"`           // script or asset
	Extension string `json:"extension"`      // Including the dot, e.g. ".js"; derived from File when absent
}

// 🗂️ Set tracks the staging-relative paths consumed so far. Consumption
// and reconciliation never overlap in time, but the reconciler walks the
// set from errgroup goroutines, so reads stay guarded.
type Set struct {
	mu    sync.RWMutex
	paths map[string]struct{}
}

// NewSet creates an empty consumed-path set
func NewSet() *Set {
	return &Set{paths: make(map[string]struct{})}
}

// Add records a consumed path
func (s *Set) Add(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.paths[path] = struct{}{}
}

// Has reports whether the path was consumed
func (s *Set) Has(path string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.paths[path]
	return ok
}

// Len returns the number of consumed paths
func (s *Set) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.paths)
}

// Paths returns the consumed paths, sorted for stable output
func (s *Set) Paths() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, 0, len(s.paths))
	for p := range s.paths {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}
