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

package config

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/walteh/localizerc/pkg/translate"
	"gitlab.com/tozd/go/errors"
)

// 🧭 ResolveTargets turns the configured locales into loaded translation
// targets. Explicitly configured locales win; otherwise targets come from
// catalog discovery via the catalogs pattern. Every target's catalog is
// loaded and checked against the locale it claims to serve.
func (cfg *Config) ResolveTargets(ctx context.Context) ([]translate.Target, error) {
	logger := zerolog.Ctx(ctx)

	if len(cfg.Locales) > 0 {
		targets := make([]translate.Target, 0, len(cfg.Locales))
		for _, loc := range cfg.Locales {
			if loc.Catalog == "" {
				return nil, errors.Errorf("locale %q: catalog path is required", loc.Code)
			}
			cat, err := translate.LoadCatalog(ctx, loc.Catalog)
			if err != nil {
				return nil, errors.Errorf("locale %q: %w", loc.Code, err)
			}
			if cat.Locale != loc.Code {
				return nil, errors.Errorf("locale %q: catalog %s declares locale %q", loc.Code, loc.Catalog, cat.Locale)
			}
			targets = append(targets, translate.Target{
				Code:    loc.Code,
				Dir:     loc.Dir,
				Catalog: cat,
			})
		}
		return targets, nil
	}

	found, err := translate.DiscoverCatalogs(ctx, cfg.Catalogs)
	if err != nil {
		return nil, errors.Errorf("resolving locales: %w", err)
	}
	if len(found) == 0 {
		return nil, errors.Errorf("no catalogs match %q", cfg.Catalogs)
	}

	targets := make([]translate.Target, 0, len(found))
	for _, d := range found {
		cat, err := translate.LoadCatalog(ctx, d.Path)
		if err != nil {
			return nil, errors.Errorf("locale %q: %w", d.Code, err)
		}
		if cat.Locale != d.Code {
			return nil, errors.Errorf("catalog %s is named for %q but declares locale %q", d.Path, d.Code, cat.Locale)
		}
		targets = append(targets, translate.Target{
			Code:    d.Code,
			Dir:     d.Code,
			Catalog: cat,
		})
	}

	logger.Debug().Int("targets", len(targets)).Msg("resolved locale targets from discovery")

	return targets, nil
}
