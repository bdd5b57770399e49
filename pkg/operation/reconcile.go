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

package operation

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/walteh/localizerc/pkg/artifact"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"
)

// 🔄 reconcile copies every staging file that was not consumed into every
// locale's output root, preserving relative paths. It runs once consumption
// has finished, so nothing it copies can still be deleted underneath it.
func (o *operator) reconcile(ctx context.Context, consumed *artifact.Set) error {
	logger := zerolog.Ctx(ctx)
	staging := o.config.StagingDir
	manifest := filepath.Clean(o.config.Manifest)

	var g errgroup.Group
	g.SetLimit(o.workers)

	copied := 0
	walkErr := filepath.WalkDir(staging, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if filepath.Clean(path) == manifest {
			// The manifest describes the build, it is not shippable output
			return nil
		}

		rel, err := filepath.Rel(staging, path)
		if err != nil {
			return errors.Errorf("relativizing %s: %w", path, err)
		}
		rel = filepath.ToSlash(rel)
		if consumed.Has(rel) {
			return nil
		}

		copied++
		for _, target := range o.targets {
			src := path
			dst := filepath.Join(o.config.OutputDir, target.Dir, filepath.FromSlash(rel))
			g.Go(func() error {
				return copyFile(src, dst)
			})
		}
		return nil
	})

	// Wait for in-flight copies even when the walk itself failed
	if err := g.Wait(); err != nil {
		return errors.Errorf("copying untouched files: %w", err)
	}
	if walkErr != nil {
		return errors.Errorf("walking staging root: %w", walkErr)
	}

	logger.Debug().
		Int("files", copied).
		Int("locales", len(o.targets)).
		Msg("reconciled untouched files")

	return nil
}

// 📄 copyFile copies one file, creating parent directories as needed
func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return errors.Errorf("reading %s: %w", src, err)
	}

	// Create parent directories
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return errors.Errorf("creating parent directories: %w", err)
	}

	if err := os.WriteFile(dst, data, 0644); err != nil {
		return errors.Errorf("writing %s: %w", dst, err)
	}

	return nil
}
