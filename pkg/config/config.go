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
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/rs/zerolog"
	"github.com/walteh/localizerc/pkg/translate"
	"gitlab.com/tozd/go/errors"
)

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes
	Parse(ctx context.Context, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 🌍 Locale names one translation target
type Locale struct {
	Code    string `json:"code" yaml:"code"`                           // Locale code, e.g. "de" or "fr-CA"
	Dir     string `json:"dir,omitempty" yaml:"dir,omitempty"`         // Output subdirectory; defaults to Code
	Catalog string `json:"catalog,omitempty" yaml:"catalog,omitempty"` // Catalog file path
}

// 📡 FetchArgs configures pulling catalogs from a GitHub repository
type FetchArgs struct {
	Repo string `json:"repo" yaml:"repo"`                     // owner/name
	Ref  string `json:"ref,omitempty" yaml:"ref,omitempty"`   // Branch or tag, defaults to main
	Path string `json:"path" yaml:"path"`                     // Directory within the repo holding catalogs
	Dest string `json:"dest,omitempty" yaml:"dest,omitempty"` // Local directory to write into, defaults to i18n
}

// 📚 Config represents the complete configuration
type Config struct {
	StagingDir         string     `json:"staging_dir" yaml:"staging_dir"`                                     // Intermediate build output to consume
	OutputDir          string     `json:"output_dir" yaml:"output_dir"`                                       // Base directory receiving one subtree per locale
	Manifest           string     `json:"manifest,omitempty" yaml:"manifest,omitempty"`                       // Artifact manifest; defaults to <staging>/manifest.json
	ExcludeEntries     []string   `json:"exclude_entries,omitempty" yaml:"exclude_entries,omitempty"`         // Logical entry names never inlined
	LegacyMarkers      bool       `json:"legacy_markers,omitempty" yaml:"legacy_markers,omitempty"`           // Also recognize the older marker form
	MissingTranslation string     `json:"missing_translation,omitempty" yaml:"missing_translation,omitempty"` // error, warning or ignore
	Concurrency        int        `json:"concurrency,omitempty" yaml:"concurrency,omitempty"`                 // Transform workers; defaults to CPU count capped at 8
	Catalogs           string     `json:"catalogs,omitempty" yaml:"catalogs,omitempty"`                       // Glob for catalog discovery, e.g. i18n/messages.*.json
	Locales            []Locale   `json:"locales,omitempty" yaml:"locales,omitempty"`                         // Explicit locale targets; wins over discovery
	Fetch              *FetchArgs `json:"fetch,omitempty" yaml:"fetch,omitempty"`                             // Optional remote catalog source
}

// 🎯 Load loads the configuration from a file. The format follows the
// extension; a bare .localizerc tries YAML first, then HCL.
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	var cfg *Config
	if strings.HasSuffix(path, ".localizerc") {
		cfg, err = loadEitherFormat(ctx, data)
		if err != nil {
			return nil, errors.Errorf("parsing %s: %w", path, err)
		}
	} else {
		p := GetParser(path)
		if p == nil {
			return nil, errors.Errorf("no parser found for file: %s", path)
		}
		cfg, err = p.Parse(ctx, data)
		if err != nil {
			return nil, errors.Errorf("parsing config: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// loadEitherFormat tries YAML and falls back to HCL, for extensionless
// .localizerc files.
func loadEitherFormat(ctx context.Context, data []byte) (*Config, error) {
	yamlParser := &YAMLParser{}
	cfg, yamlErr := yamlParser.Parse(ctx, data)
	if yamlErr == nil {
		return cfg, nil
	}

	hclParser := &HCLParser{}
	cfg, hclErr := hclParser.Parse(ctx, data)
	if hclErr == nil {
		return cfg, nil
	}

	return nil, errors.Errorf("not valid YAML (%s) nor HCL: %w", yamlErr, hclErr)
}

// 🔍 Validate checks required fields, cleans paths and fills defaults
func (cfg *Config) Validate() error {
	if cfg.StagingDir == "" {
		return errors.Errorf("staging_dir is required")
	}
	if cfg.OutputDir == "" {
		return errors.Errorf("output_dir is required")
	}
	if len(cfg.Locales) == 0 && cfg.Catalogs == "" {
		return errors.Errorf("either locales or a catalogs pattern is required")
	}

	cfg.StagingDir = filepath.Clean(cfg.StagingDir)
	cfg.OutputDir = filepath.Clean(cfg.OutputDir)

	if cfg.Manifest == "" {
		cfg.Manifest = filepath.Join(cfg.StagingDir, "manifest.json")
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = defaultConcurrency()
	}

	if _, err := translate.ParsePolicy(cfg.MissingTranslation); err != nil {
		return err
	}

	seen := map[string]struct{}{}
	for i := range cfg.Locales {
		loc := &cfg.Locales[i]
		if loc.Code == "" {
			return errors.Errorf("locale %d: code is required", i)
		}
		if _, dup := seen[loc.Code]; dup {
			return errors.Errorf("locale %q is configured twice", loc.Code)
		}
		seen[loc.Code] = struct{}{}
		if loc.Dir == "" {
			loc.Dir = loc.Code
		}
	}

	if cfg.Fetch != nil {
		if cfg.Fetch.Repo == "" {
			return errors.Errorf("fetch.repo is required")
		}
		if cfg.Fetch.Path == "" {
			return errors.Errorf("fetch.path is required")
		}
		if cfg.Fetch.Ref == "" {
			cfg.Fetch.Ref = "main"
		}
		if cfg.Fetch.Dest == "" {
			cfg.Fetch.Dest = "i18n"
		}
	}

	return nil
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	return fmt.Sprintf("%s -> %s (%d locales)", cfg.StagingDir, cfg.OutputDir, len(cfg.Locales))
}

// Transform pools stay small; past a handful of workers the run is
// disk-bound anyway.
func defaultConcurrency() int {
	n := runtime.NumCPU()
	if n > 8 {
		return 8
	}
	if n < 1 {
		return 1
	}
	return n
}
