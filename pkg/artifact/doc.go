/*
Package artifact models the build's staging output: the manifest that
lists every emitted file, the classification rules that decide which files
get inlined, and the consumer that takes those files out of staging.

	+----------+     +----------+     +----------+
	| Manifest | --> | Classify | --> | Consumer |
	| (build's |     | (script? |     | (read +  |
	|  record) |     |  eligible?)    |  delete) |
	+----------+     +----------+     +----------+

🎯 Purpose:
- Load and validate the manifest the build phase wrote
- Decide eligibility (scripts in, assets and excluded entries out)
- Capture artifact bytes and remove the staging copies
- Track everything consumed so pass-through can skip it

🔄 Flow:
1. LoadManifest reads the build's record
2. Classify filters it to inlinable scripts
3. Consume reads each script (and its .map twin) and deletes both
4. The Set of consumed paths feeds the reconciler

⚡ Key Responsibilities:
- Read-before-delete discipline, always
- Fatal on unreadable artifacts, tolerant of everything after
- Missing .map companions are expected, not reported

📝 Design Philosophy:
Staging is a scratch tree. Once an artifact's bytes are captured they are
the single source of truth; the staging copy exists only to be removed so
the untranslated original can never leak into an output tree.
*/
package artifact
