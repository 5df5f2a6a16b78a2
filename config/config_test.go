package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhamidi/remod/lint"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
[rules]
disabled = ["redundant-modifier"]

[rules.severity]
"redundant-modifier" = "error"

[fix]
dry_run = true
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, cfg.Path)
	assert.Equal(t, []string{"redundant-modifier"}, cfg.Rules.Disabled)
	assert.True(t, cfg.Fix.DryRun)

	opts := cfg.LintOptions()
	assert.True(t, opts.DisabledRules[lint.RuleRedundantModifier])
	assert.Equal(t, lint.SevError, opts.SeverityOverride[lint.RuleRedundantModifier])
}

func TestLoadOutput(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `
[output]
format = "json"
color = "never"
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, "never", cfg.Output.Color)

	// defaults survive a file that does not mention them
	path = writeConfig(t, dir, "[fix]\ndry_run = true\n")
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, "text", cfg.Output.Format)
	assert.Equal(t, "auto", cfg.Output.Color)
}

func TestLoadBadOutput(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "[output]\nformat = \"xml\"\n")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "output.format")
}

func TestLoadUnknownKey(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
[rules]
disbled = ["redundant-modifier"]
`)
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown keys")
	assert.Contains(t, err.Error(), "rules.disbled")
}

func TestLoadBadSeverity(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
[rules.severity]
"redundant-modifier" = "fatal"
`)
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fatal")
}

func TestFindUpward(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "[fix]\ndry_run = true\n")
	nested := filepath.Join(root, "src", "main", "java")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	cfg, err := FindUpward(nested)
	require.NoError(t, err)
	assert.True(t, cfg.Fix.DryRun)
	assert.Equal(t, filepath.Join(root, FileName), cfg.Path)
}

func TestFindUpwardDefaults(t *testing.T) {
	cfg, err := FindUpward(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Empty(t, cfg.Path)
}

func TestLintOptionsEmpty(t *testing.T) {
	opts := Default().LintOptions()
	assert.Nil(t, opts.DisabledRules)
	assert.Nil(t, opts.SeverityOverride)
}
