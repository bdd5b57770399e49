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
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"gitlab.com/tozd/go/errors"
)

func init() {
	Register(&HCLParser{})
}

// 🔧 HCLParser implements the Parser interface for HCL files
type HCLParser struct{}

// 🔍 CanParse checks if this parser can handle the given file
func (p *HCLParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, ".hcl")
}

// 📝 Parse parses the config from HCL
func (p *HCLParser) Parse(ctx context.Context, data []byte) (*Config, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, "config.hcl")
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing HCL: %s", diags.Error())
	}

	// Create evaluation context
	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{},
	}

	// Define HCL schema
	type hclConfig struct {
		StagingDir         string   `hcl:"staging_dir"`
		OutputDir          string   `hcl:"output_dir"`
		Manifest           string   `hcl:"manifest,optional"`
		ExcludeEntries     []string `hcl:"exclude_entries,optional"`
		LegacyMarkers      bool     `hcl:"legacy_markers,optional"`
		MissingTranslation string   `hcl:"missing_translation,optional"`
		Concurrency        int      `hcl:"concurrency,optional"`
		Catalogs           string   `hcl:"catalogs,optional"`
		Locales            []struct {
			Code    string `hcl:"code,label"`
			Dir     string `hcl:"dir,optional"`
			Catalog string `hcl:"catalog,optional"`
		} `hcl:"locale,block"`
		Fetch *struct {
			Repo string `hcl:"repo"`
			Ref  string `hcl:"ref,optional"`
			Path string `hcl:"path"`
			Dest string `hcl:"dest,optional"`
		} `hcl:"fetch,block"`
	}

	// Decode HCL
	var hclCfg hclConfig
	diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &hclCfg)
	if diags.HasErrors() {
		return nil, errors.Errorf("decoding HCL: %s", diags.Error())
	}

	// Convert to model
	cfg := &Config{
		StagingDir:         hclCfg.StagingDir,
		OutputDir:          hclCfg.OutputDir,
		Manifest:           hclCfg.Manifest,
		ExcludeEntries:     hclCfg.ExcludeEntries,
		LegacyMarkers:      hclCfg.LegacyMarkers,
		MissingTranslation: hclCfg.MissingTranslation,
		Concurrency:        hclCfg.Concurrency,
		Catalogs:           hclCfg.Catalogs,
	}

	for _, loc := range hclCfg.Locales {
		cfg.Locales = append(cfg.Locales, Locale{
			Code:    loc.Code,
			Dir:     loc.Dir,
			Catalog: loc.Catalog,
		})
	}

	if hclCfg.Fetch != nil {
		cfg.Fetch = &FetchArgs{
			Repo: hclCfg.Fetch.Repo,
			Ref:  hclCfg.Fetch.Ref,
			Path: hclCfg.Fetch.Path,
			Dest: hclCfg.Fetch.Dest,
		}
	}

	return cfg, nil
}
