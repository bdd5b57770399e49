/*
Package remote fetches translation catalogs from GitHub repositories.

	+-------------+     +--------------+     +-------------+
	|   Client    | --> |  GitHub API  | --> |  Dest dir   |
	| (contents)  |     | (contents)   |     | (catalogs)  |
	+-------------+     +--------------+     +-------------+

🎯 Purpose:
- Pulls messages.<locale>.json catalogs kept in a separate repository
- Authenticates via GITHUB_TOKEN when present, anonymous otherwise
- Writes catalogs where discovery (config `catalogs:`) will find them

🔄 Flow:
1. List the configured directory at the configured ref
2. Download every .json file in it
3. Write each catalog into the destination directory

🤝 Interfaces:
- contentsLister: the one GitHub API call the client depends on, kept
  narrow so tests can stand in for the network

🔍 Example:

	client := remote.New(ctx)
	written, err := client.FetchCatalogs(ctx, *cfg.Fetch)
	if err != nil {
		return err
	}
*/
package remote
