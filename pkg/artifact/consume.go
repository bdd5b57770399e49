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
	"context"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/walteh/localizerc/pkg/inline"
	"gitlab.com/tozd/go/errors"
)

// 📥 Consumer takes eligible artifacts out of the staging tree: content is
// read into memory and the staging copy removed, so the pass-through step
// later cannot ship the untranslated original.
type Consumer struct {
	root string
	set  *Set
}

// 🏭 NewConsumer creates a consumer rooted at the staging directory
func NewConsumer(root string) (*Consumer, error) {
	if root == "" {
		return nil, errors.New("staging root is required")
	}
	return &Consumer{
		root: filepath.Clean(root),
		set:  NewSet(),
	}, nil
}

// Consumed exposes the set of staging-relative paths taken so far
func (c *Consumer) Consumed() *Set {
	return c.set
}

// 🍽️ Consume captures one artifact and its optional source map companion,
// returning a self-contained transform request. A failure to read the
// artifact itself is fatal to the batch; every failure after that point
// only costs a log line, because the content is already in hand.
func (c *Consumer) Consume(ctx context.Context, art Artifact) (inline.Request, error) {
	code, err := c.takeFile(ctx, art.File)
	if err != nil {
		return inline.Request{}, errors.Errorf("consuming %s: %w", art.File, err)
	}

	mapText := c.takeCompanion(ctx, art.File+".map")

	zerolog.Ctx(ctx).Debug().
		Str("file", art.File).
		Bool("source_map", mapText != "").
		Bool("set_locale", IsLocaleEntry(art.Name)).
		Msg("consumed artifact")

	return inline.Request{
		File:      art.File,
		Code:      string(code),
		SourceMap: mapText,
		SetLocale: IsLocaleEntry(art.Name),
	}, nil
}

// takeFile reads rel under the staging root and then removes it. The
// remove never runs before a successful read, and once the read has
// succeeded its failure is downgraded to a warning: the bytes are safe,
// only a stray staging file is left behind.
func (c *Consumer) takeFile(ctx context.Context, rel string) ([]byte, error) {
	abs := filepath.Join(c.root, filepath.FromSlash(rel))

	content, err := os.ReadFile(abs)
	if err != nil {
		return nil, errors.Errorf("reading artifact: %w", err)
	}

	if err := os.Remove(abs); err != nil {
		zerolog.Ctx(ctx).Warn().
			Str("path", rel).
			Err(err).
			Msg("could not remove consumed artifact from staging")
	}

	// Recorded even when the remove failed: the content was captured, so
	// the pass-through copy must not ship the stale original.
	c.set.Add(rel)

	return content, nil
}

// takeCompanion is takeFile for the optional .map neighbor. Absence is the
// normal case and stays silent; any other failure is logged and the map is
// simply dropped from the request.
func (c *Consumer) takeCompanion(ctx context.Context, rel string) string {
	abs := filepath.Join(c.root, filepath.FromSlash(rel))

	content, err := os.ReadFile(abs)
	if err != nil {
		if !os.IsNotExist(err) {
			zerolog.Ctx(ctx).Warn().
				Str("path", rel).
				Err(err).
				Msg("could not read source map companion")
		}
		return ""
	}

	if err := os.Remove(abs); err != nil {
		zerolog.Ctx(ctx).Warn().
			Str("path", rel).
			Err(err).
			Msg("could not remove consumed source map from staging")
	}

	c.set.Add(rel)

	return string(content)
}
