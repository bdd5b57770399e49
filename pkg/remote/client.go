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
	"sort"
	"strings"

	"github.com/google/go-github/v60/github"
	"github.com/rs/zerolog"
	"github.com/walteh/localizerc/pkg/config"
	"gitlab.com/tozd/go/errors"
)

// contentsLister is the slice of the GitHub API the client needs
type contentsLister interface {
	GetContents(ctx context.Context, owner, repo, path string, opts *github.RepositoryContentGetOptions) (*github.RepositoryContent, []*github.RepositoryContent, *github.Response, error)
}

// 🎯 Client fetches translation catalogs from a GitHub repository
type Client struct {
	contents contentsLister
}

// 🏭 New creates a client, authenticated when GITHUB_TOKEN is set
func New(ctx context.Context) *Client {
	client := github.NewClient(nil)
	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		client = client.WithAuthToken(token)
	} else {
		zerolog.Ctx(ctx).Debug().Msg("GITHUB_TOKEN not set, fetching anonymously")
	}
	return &Client{contents: client.Repositories}
}

// 📥 FetchCatalogs downloads every .json catalog in the configured
// repository directory into args.Dest and returns the written paths.
func (c *Client) FetchCatalogs(ctx context.Context, args config.FetchArgs) ([]string, error) {
	logger := zerolog.Ctx(ctx)

	owner, name, err := parseRepo(args.Repo)
	if err != nil {
		return nil, errors.Errorf("parsing repo: %w", err)
	}

	opts := &github.RepositoryContentGetOptions{Ref: args.Ref}

	// List the catalog directory
	file, dir, _, err := c.contents.GetContents(ctx, owner, name, args.Path, opts)
	if err != nil {
		return nil, errors.Errorf("listing %s in %s: %w", args.Path, args.Repo, err)
	}
	if file != nil {
		return nil, errors.Errorf("%s is a file, expected a catalog directory", args.Path)
	}

	if err := os.MkdirAll(args.Dest, 0755); err != nil {
		return nil, errors.Errorf("creating catalog directory: %w", err)
	}

	var written []string
	for _, entry := range dir {
		if entry.GetType() != "file" || !strings.HasSuffix(entry.GetName(), ".json") {
			continue
		}

		data, err := c.downloadFile(ctx, owner, name, entry.GetPath(), opts)
		if err != nil {
			return nil, errors.Errorf("downloading %s: %w", entry.GetPath(), err)
		}

		dest := filepath.Join(args.Dest, entry.GetName())
		if err := os.WriteFile(dest, data, 0644); err != nil {
			return nil, errors.Errorf("writing %s: %w", dest, err)
		}
		written = append(written, dest)

		logger.Debug().Str("catalog", entry.GetName()).Str("dest", dest).Msg("fetched catalog")
	}

	sort.Strings(written)
	return written, nil
}

// 🔍 downloadFile retrieves and decodes one file's contents
func (c *Client) downloadFile(ctx context.Context, owner, name, path string, opts *github.RepositoryContentGetOptions) ([]byte, error) {
	content, _, _, err := c.contents.GetContents(ctx, owner, name, path, opts)
	if err != nil {
		return nil, errors.Errorf("getting file content: %w", err)
	}
	if content == nil {
		return nil, errors.Errorf("no content returned for %s", path)
	}

	data, err := content.GetContent()
	if err != nil {
		return nil, errors.Errorf("decoding content: %w", err)
	}

	return []byte(data), nil
}

// 🔍 parseRepo splits an "owner/name" repository reference
func parseRepo(repo string) (owner, name string, err error) {
	parts := strings.Split(repo, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", errors.Errorf("invalid repository format: %s, expected owner/name", repo)
	}
	return parts[0], parts[1], nil
}

// TODO(dr.methodical): 🔄 Add retry with backoff for GitHub rate limits
