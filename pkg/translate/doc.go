/*
Package translate loads locale catalogs and implements the inline.Engine
that rewrites translation markers into locale text.

	+----------+     +----------+     +---------------+
	| Catalogs | --> |  Engine  | --> | <root>/<loc>/ |
	| (json)   |     | (rewrite)|     |   main.js     |
	+----------+     +----------+     +---------------+

🎯 Purpose:
- Load messages.<locale>.json catalogs, by path or by glob discovery
- Rewrite @@l10n:id@@ markers (and the legacy __l10n(id)__ form)
- Write one output file per locale, plus re-pointed source maps
- Grade missing translations by the configured policy

🔄 Flow:
1. Config resolves which catalogs serve which locales
2. Engine.Inline receives a consumed artifact
3. Each locale target gets a rewritten copy under its own directory
4. Missing ids become diagnostics, never broken output

📝 Design Philosophy:
Markers collapse to their message id when no translation exists, so an
output bundle is always runnable. The policy only decides how loudly the
gap is reported. Entry bundles additionally get a one-line bootstrap
prepended so the runtime knows its locale before anything else executes.
*/
package translate
