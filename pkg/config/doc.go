/*
Package config manages configuration parsing and validation for localizerc.

	            +-------------+
	            |   Config    |
	            | (Settings)  |
	            +------+------+
	                   |
	      +-----------+-----------+
	      |           |           |
	+-----+-----+ +---+----+ +----+----+
	|   YAML    | |  JSON  | |   HCL   |
	| Parser    | | Parser | | Parser  |
	+-----------+ +--------+ +---------+

🎯 Purpose:
- Manages configuration loading and parsing
- Validates configuration values and fills defaults
- Resolves configured locales into loaded translation targets
- Supports multiple config formats behind one model

🔄 Flow:
1. Reads configuration from file (.yaml, .yml, .json, .hcl, .localizerc)
2. Parses format-specific syntax via the registered parsers
3. Validates values, cleans paths, fills defaults
4. ResolveTargets loads the catalog behind every locale

⚡ Key Responsibilities:
- Configuration parsing and strict field checking
- Default value management (manifest path, concurrency, fetch ref)
- Locale bookkeeping: explicit lists win, discovery fills in
- Catalog/locale consistency checks

🤝 Interfaces:
- Parser: format-specific parsing, registered per extension

📝 Design Philosophy:
The config package is the source of truth for all configuration. Parsers
only translate bytes into the model; every rule about what values mean
lives in Validate and ResolveTargets, so all formats behave identically.

🔍 Example:

	cfg, err := config.Load(ctx, ".localizerc.yaml")
	if err != nil {
		return err
	}
	targets, err := cfg.ResolveTargets(ctx)
	if err != nil {
		return err
	}
*/
package config
