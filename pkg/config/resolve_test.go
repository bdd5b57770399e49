package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCatalogFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644), "writing catalog fixture")
	return path
}

// 🧪 TestResolveTargets tests locale resolution from config
func TestResolveTargets(t *testing.T) {
	ctx := testContext(t)

	t.Run("explicit_locales", func(t *testing.T) {
		dir := t.TempDir()
		de := writeCatalogFile(t, dir, "messages.de.json", `{"locale": "de", "translations": {"greeting": "Hallo"}}`)

		cfg := &Config{
			StagingDir: "s",
			OutputDir:  "o",
			Locales:    []Locale{{Code: "de", Catalog: de}},
		}
		require.NoError(t, cfg.Validate(), "config should validate")

		targets, err := cfg.ResolveTargets(ctx)
		require.NoError(t, err, "resolution should succeed")
		require.Len(t, targets, 1, "one target should resolve")
		assert.Equal(t, "de", targets[0].Code, "code should carry over")
		assert.Equal(t, "de", targets[0].Dir, "dir should be defaulted by validation")
		assert.Equal(t, "Hallo", targets[0].Catalog.Translations["greeting"], "catalog should be loaded")
	})

	t.Run("explicit_locale_missing_catalog_path", func(t *testing.T) {
		cfg := &Config{
			StagingDir: "s",
			OutputDir:  "o",
			Locales:    []Locale{{Code: "de"}},
		}
		require.NoError(t, cfg.Validate(), "config should validate")

		_, err := cfg.ResolveTargets(ctx)
		require.Error(t, err, "an explicit locale without a catalog should fail")
		assert.Contains(t, err.Error(), "catalog path is required", "error should explain what is missing")
	})

	t.Run("catalog_locale_mismatch", func(t *testing.T) {
		dir := t.TempDir()
		lying := writeCatalogFile(t, dir, "messages.de.json", `{"locale": "fr"}`)

		cfg := &Config{
			StagingDir: "s",
			OutputDir:  "o",
			Locales:    []Locale{{Code: "de", Catalog: lying}},
		}
		require.NoError(t, cfg.Validate(), "config should validate")

		_, err := cfg.ResolveTargets(ctx)
		require.Error(t, err, "a catalog claiming another locale should fail")
		assert.Contains(t, err.Error(), `declares locale "fr"`, "error should show the mismatch")
	})

	t.Run("discovery", func(t *testing.T) {
		dir := t.TempDir()
		writeCatalogFile(t, dir, "messages.de.json", `{"locale": "de"}`)
		writeCatalogFile(t, dir, "messages.fr.json", `{"locale": "fr"}`)

		cfg := &Config{
			StagingDir: "s",
			OutputDir:  "o",
			Catalogs:   filepath.Join(dir, "messages.*.json"),
		}
		require.NoError(t, cfg.Validate(), "config should validate")

		targets, err := cfg.ResolveTargets(ctx)
		require.NoError(t, err, "discovery should succeed")
		require.Len(t, targets, 2, "both catalogs should become targets")
		assert.Equal(t, "de", targets[0].Code, "targets should be sorted by code")
		assert.Equal(t, "fr", targets[1].Code, "targets should be sorted by code")
	})

	t.Run("discovery_finds_nothing", func(t *testing.T) {
		cfg := &Config{
			StagingDir: "s",
			OutputDir:  "o",
			Catalogs:   filepath.Join(t.TempDir(), "messages.*.json"),
		}
		require.NoError(t, cfg.Validate(), "config should validate")

		_, err := cfg.ResolveTargets(ctx)
		require.Error(t, err, "zero resolved locales should fail the run, not silently do nothing")
		assert.Contains(t, err.Error(), "no catalogs match", "error should name the pattern problem")
	})

	t.Run("explicit_wins_over_discovery", func(t *testing.T) {
		dir := t.TempDir()
		de := writeCatalogFile(t, dir, "messages.de.json", `{"locale": "de"}`)
		writeCatalogFile(t, dir, "messages.fr.json", `{"locale": "fr"}`)

		cfg := &Config{
			StagingDir: "s",
			OutputDir:  "o",
			Catalogs:   filepath.Join(dir, "messages.*.json"),
			Locales:    []Locale{{Code: "de", Catalog: de}},
		}
		require.NoError(t, cfg.Validate(), "config should validate")

		targets, err := cfg.ResolveTargets(ctx)
		require.NoError(t, err, "resolution should succeed")
		require.Len(t, targets, 1, "explicit locales should win over the pattern")
		assert.Equal(t, "de", targets[0].Code, "the explicit locale should be the one resolved")
	})
}
