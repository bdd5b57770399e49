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
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 📋 Manifest is the build phase's record of everything it emitted
type Manifest struct {
	Artifacts []Artifact `json:"artifacts"`
}

// 📥 LoadManifest reads and validates the JSON manifest the build wrote
// alongside its staging output.
func LoadManifest(ctx context.Context, path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading manifest: %w", err)
	}

	var m Manifest
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&m); err != nil {
		return nil, errors.Errorf("parsing manifest: %w", err)
	}

	if err := m.Validate(); err != nil {
		return nil, errors.Errorf("validating manifest: %w", err)
	}

	zerolog.Ctx(ctx).Debug().
		Str("path", path).
		Int("artifacts", len(m.Artifacts)).
		Msg("loaded artifact manifest")

	return &m, nil
}

// Validate checks the manifest entries and fills derivable fields
func (m *Manifest) Validate() error {
	for i := range m.Artifacts {
		art := &m.Artifacts[i]
		if art.File == "" {
			return errors.Errorf("artifact %d: file is required", i)
		}
		if filepath.IsAbs(art.File) {
			return errors.Errorf("artifact %d: file %q must be relative to the staging root", i, art.File)
		}
		art.File = filepath.ToSlash(filepath.Clean(art.File))
		if art.File == ".." || strings.HasPrefix(art.File, "../") {
			return errors.Errorf("artifact %d: file %q escapes the staging root", i, art.File)
		}
		if art.Kind == "" {
			art.Kind = KindScript
		}
		if !art.Kind.Valid() {
			return errors.Errorf("artifact %d: unknown kind %q", i, art.Kind)
		}
		if art.Extension == "" {
			art.Extension = filepath.Ext(art.File)
		}
	}
	return nil
}
