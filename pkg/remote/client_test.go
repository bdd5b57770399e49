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

package remote

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-github/v60/github"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/walteh/localizerc/pkg/config"
)

// 🔧 mockContents is a mock implementation of the contentsLister interface
type mockContents struct {
	mock.Mock
}

func (m *mockContents) GetContents(ctx context.Context, owner, repo, path string, opts *github.RepositoryContentGetOptions) (*github.RepositoryContent, []*github.RepositoryContent, *github.Response, error) {
	result := m.Called(ctx, owner, repo, path, opts)

	var file *github.RepositoryContent
	if v := result.Get(0); v != nil {
		file = v.(*github.RepositoryContent)
	}
	var dir []*github.RepositoryContent
	if v := result.Get(1); v != nil {
		dir = v.([]*github.RepositoryContent)
	}
	return file, dir, nil, result.Error(2)
}

func testContext(t *testing.T) context.Context {
	t.Helper()
	log := zerolog.New(zerolog.NewTestWriter(t)).With().Timestamp().Logger()
	return log.WithContext(context.Background())
}

func dirEntry(name, path, typ string) *github.RepositoryContent {
	return &github.RepositoryContent{
		Name: github.String(name),
		Path: github.String(path),
		Type: github.String(typ),
	}
}

func fileContent(content string) *github.RepositoryContent {
	return &github.RepositoryContent{
		Type:    github.String("file"),
		Content: github.String(content),
	}
}

// 🧪 TestFetchCatalogs tests catalog download and filtering
func TestFetchCatalogs(t *testing.T) {
	t.Run("downloads_every_json_catalog", func(t *testing.T) {
		ctx := testContext(t)
		dest := filepath.Join(t.TempDir(), "i18n")

		contents := &mockContents{}
		contents.On("GetContents", mock.Anything, "acme", "translations", "catalogs", mock.Anything).
			Return(nil, []*github.RepositoryContent{
				dirEntry("messages.de.json", "catalogs/messages.de.json", "file"),
				dirEntry("messages.fr.json", "catalogs/messages.fr.json", "file"),
				dirEntry("README.md", "catalogs/README.md", "file"),
				dirEntry("archive", "catalogs/archive", "dir"),
			}, nil)
		contents.On("GetContents", mock.Anything, "acme", "translations", "catalogs/messages.de.json", mock.Anything).
			Return(fileContent(`{"locale": "de", "translations": {}}`), nil, nil)
		contents.On("GetContents", mock.Anything, "acme", "translations", "catalogs/messages.fr.json", mock.Anything).
			Return(fileContent(`{"locale": "fr", "translations": {}}`), nil, nil)

		client := &Client{contents: contents}
		written, err := client.FetchCatalogs(ctx, config.FetchArgs{
			Repo: "acme/translations",
			Ref:  "main",
			Path: "catalogs",
			Dest: dest,
		})
		require.NoError(t, err, "FetchCatalogs should succeed")

		want := []string{
			filepath.Join(dest, "messages.de.json"),
			filepath.Join(dest, "messages.fr.json"),
		}
		assert.Equal(t, want, written, "only .json files should be fetched")

		data, err := os.ReadFile(filepath.Join(dest, "messages.de.json"))
		require.NoError(t, err, "fetched catalog should exist")
		assert.JSONEq(t, `{"locale": "de", "translations": {}}`, string(data), "catalog content should match")

		contents.AssertExpectations(t)
	})

	t.Run("ref_is_passed_through", func(t *testing.T) {
		ctx := testContext(t)
		dest := t.TempDir()

		contents := &mockContents{}
		contents.On("GetContents", mock.Anything, "acme", "translations", "catalogs",
			&github.RepositoryContentGetOptions{Ref: "v2.1.0"}).
			Return(nil, []*github.RepositoryContent{}, nil)

		client := &Client{contents: contents}
		_, err := client.FetchCatalogs(ctx, config.FetchArgs{
			Repo: "acme/translations",
			Ref:  "v2.1.0",
			Path: "catalogs",
			Dest: dest,
		})
		require.NoError(t, err, "FetchCatalogs should succeed")

		contents.AssertExpectations(t)
	})

	t.Run("path_pointing_at_a_file_is_rejected", func(t *testing.T) {
		ctx := testContext(t)

		contents := &mockContents{}
		contents.On("GetContents", mock.Anything, "acme", "translations", "messages.de.json", mock.Anything).
			Return(fileContent("{}"), nil, nil)

		client := &Client{contents: contents}
		_, err := client.FetchCatalogs(ctx, config.FetchArgs{
			Repo: "acme/translations",
			Path: "messages.de.json",
			Dest: t.TempDir(),
		})
		require.Error(t, err, "a file path should be rejected")
		assert.Contains(t, err.Error(), "expected a catalog directory", "error should explain the problem")
	})

	t.Run("listing_failure_is_wrapped", func(t *testing.T) {
		ctx := testContext(t)

		contents := &mockContents{}
		contents.On("GetContents", mock.Anything, "acme", "translations", "catalogs", mock.Anything).
			Return(nil, nil, assert.AnError)

		client := &Client{contents: contents}
		_, err := client.FetchCatalogs(ctx, config.FetchArgs{
			Repo: "acme/translations",
			Path: "catalogs",
			Dest: t.TempDir(),
		})
		require.Error(t, err, "listing failures should propagate")
		assert.Contains(t, err.Error(), "listing catalogs in acme/translations", "error should name repo and path")
	})

	t.Run("download_failure_is_wrapped", func(t *testing.T) {
		ctx := testContext(t)

		contents := &mockContents{}
		contents.On("GetContents", mock.Anything, "acme", "translations", "catalogs", mock.Anything).
			Return(nil, []*github.RepositoryContent{
				dirEntry("messages.de.json", "catalogs/messages.de.json", "file"),
			}, nil)
		contents.On("GetContents", mock.Anything, "acme", "translations", "catalogs/messages.de.json", mock.Anything).
			Return(nil, nil, assert.AnError)

		client := &Client{contents: contents}
		_, err := client.FetchCatalogs(ctx, config.FetchArgs{
			Repo: "acme/translations",
			Path: "catalogs",
			Dest: t.TempDir(),
		})
		require.Error(t, err, "download failures should propagate")
		assert.Contains(t, err.Error(), "downloading catalogs/messages.de.json", "error should name the file")
	})

	t.Run("invalid_repo_is_rejected", func(t *testing.T) {
		ctx := testContext(t)

		client := &Client{contents: &mockContents{}}
		_, err := client.FetchCatalogs(ctx, config.FetchArgs{
			Repo: "just-a-name",
			Path: "catalogs",
			Dest: t.TempDir(),
		})
		require.Error(t, err, "repo without owner should be rejected")
		assert.Contains(t, err.Error(), "invalid repository format", "error should explain the format")
	})
}

// 🧪 TestParseRepo tests repository reference parsing
func TestParseRepo(t *testing.T) {
	tests := []struct {
		name      string
		repo      string
		wantOwner string
		wantName  string
		wantErr   bool
	}{
		{
			name:      "owner_and_name",
			repo:      "acme/translations",
			wantOwner: "acme",
			wantName:  "translations",
		},
		{
			name:    "missing_owner",
			repo:    "/translations",
			wantErr: true,
		},
		{
			name:    "missing_name",
			repo:    "acme/",
			wantErr: true,
		},
		{
			name:    "bare_name",
			repo:    "translations",
			wantErr: true,
		},
		{
			name:    "too_many_segments",
			repo:    "github.com/acme/translations",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			owner, name, err := parseRepo(tt.repo)
			if tt.wantErr {
				require.Error(t, err, "parseRepo should fail")
				return
			}
			require.NoError(t, err, "parseRepo should succeed")
			assert.Equal(t, tt.wantOwner, owner, "owner should match")
			assert.Equal(t, tt.wantName, name, "name should match")
		})
	}
}
