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
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 📖 Catalog holds one locale's message texts, keyed by message id
type Catalog struct {
	Locale       string            `json:"locale"`
	Translations map[string]string `json:"translations"`
}

// 📥 LoadCatalog reads a JSON translation catalog from disk
func LoadCatalog(ctx context.Context, path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, errors.Errorf("reading catalog: %w", err)
	}

	var cat Catalog
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&cat); err != nil {
		return Catalog{}, errors.Errorf("parsing catalog %s: %w", path, err)
	}

	if cat.Locale == "" {
		return Catalog{}, errors.Errorf("catalog %s: locale is required", path)
	}
	if cat.Translations == nil {
		cat.Translations = map[string]string{}
	}

	zerolog.Ctx(ctx).Debug().
		Str("path", path).
		Str("locale", cat.Locale).
		Int("messages", len(cat.Translations)).
		Msg("loaded translation catalog")

	return cat, nil
}

// 🔎 Discovered names a catalog file found on disk and the locale code
// inferred from its name.
type Discovered struct {
	Code string // Locale code, e.g. "de" or "fr-CA"
	Path string // Catalog file path
}

// 🔍 DiscoverCatalogs globs for catalog files named messages.<locale>.json
// and infers each file's locale from its name. Results are sorted by code
// so runs are deterministic.
func DiscoverCatalogs(ctx context.Context, pattern string) ([]Discovered, error) {
	if pattern == "" {
		return nil, errors.New("catalog pattern is required")
	}

	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, errors.Errorf("globbing catalogs: %w", err)
	}

	found := make([]Discovered, 0, len(matches))
	for _, match := range matches {
		code, err := inferLocale(match)
		if err != nil {
			return nil, err
		}
		found = append(found, Discovered{Code: code, Path: match})
	}

	sort.Slice(found, func(i, j int) bool { return found[i].Code < found[j].Code })

	zerolog.Ctx(ctx).Debug().
		Str("pattern", pattern).
		Int("catalogs", len(found)).
		Msg("discovered translation catalogs")

	return found, nil
}

// inferLocale extracts the locale code from a messages.<locale>.json name
func inferLocale(path string) (string, error) {
	base := filepath.Base(path)
	if !strings.HasPrefix(base, "messages.") || !strings.HasSuffix(base, ".json") {
		return "", errors.Errorf("catalog %s: expected a messages.<locale>.json name", path)
	}
	code := strings.TrimSuffix(strings.TrimPrefix(base, "messages."), ".json")
	if code == "" {
		return "", errors.Errorf("catalog %s: empty locale code", path)
	}
	return code, nil
}
