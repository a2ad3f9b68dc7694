package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simonhull/hatch/internal/logger"
	"github.com/simonhull/hatch/internal/scaffold"
)

// isolate points the search paths at empty directories.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(dir)
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	s, err := Load("")
	require.NoError(t, err)

	assert.Empty(t, s.File)
	assert.Equal(t, string(scaffold.DefaultProvider), s.Defaults.Provider)
	assert.True(t, s.Defaults.TypeScript)
	assert.Empty(t, s.Defaults.FeatureList())
	assert.Equal(t, ".", s.Defaults.Dir)
	assert.False(t, s.Strict)
	assert.Equal(t, logger.LevelWarn, s.Level())
	assert.Equal(t, scaffold.DefaultSDK(), s.SDK)
}

func TestLoad_FromWorkingDirectory(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "hatch.yml"), `
defaults:
  provider: anthropic
  typescript: false
  features: [memory, knowledge]
strict: true
sdk:
  package: "@acme/agents"
  run_method: invoke
`)

	s, err := Load("")
	require.NoError(t, err)

	assert.NotEmpty(t, s.File)
	assert.Equal(t, "anthropic", s.Defaults.Provider)
	assert.False(t, s.Defaults.TypeScript)
	assert.Equal(t, []scaffold.Feature{scaffold.FeatureMemory, scaffold.FeatureKnowledge}, s.Defaults.FeatureList())
	assert.True(t, s.Strict)

	assert.Equal(t, "@acme/agents", s.SDK.Package)
	assert.Equal(t, "invoke", s.SDK.RunMethod)
	assert.Equal(t, scaffold.DefaultSDK().AgentSymbol, s.SDK.AgentSymbol, "unset keys keep defaults")
	assert.Equal(t, scaffold.DefaultSDK().Version, s.SDK.Version)
}

func TestLoad_FromHome(t *testing.T) {
	isolate(t)
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeFile(t, filepath.Join(home, ".config", "hatch", "hatch.yml"), "defaults:\n  provider: ollama\n")

	s, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "ollama", s.Defaults.Provider)
}

func TestLoad_ExplicitPath(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, path, "log_level: debug\n")

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, s.File)
	assert.Equal(t, logger.LevelDebug, s.Level())
}

func TestLoad_ExplicitPathMissing(t *testing.T) {
	isolate(t)

	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Error(t, err)
}

func TestLoad_Environment(t *testing.T) {
	isolate(t)
	t.Setenv("HATCH_DEFAULTS_PROVIDER", "google")
	t.Setenv("HATCH_DEFAULTS_FEATURES", "graph,plugins")
	t.Setenv("HATCH_STRICT", "true")
	t.Setenv("HATCH_SDK_PACKAGE", "@env/sdk")

	s, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "google", s.Defaults.Provider)
	assert.Equal(t, []scaffold.Feature{scaffold.FeatureGraph, scaffold.FeaturePlugins}, s.Defaults.FeatureList())
	assert.True(t, s.Strict)
	assert.Equal(t, "@env/sdk", s.SDK.Package)
}

func TestLoad_InvalidSDK(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "hatch.yml"), "sdk:\n  version: not-a-range\n  agent_symbol: \"1bad\"\n")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sdk config")
}

func TestLoad_MalformedFile(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "hatch.yml"), "defaults: [unclosed\n")

	_, err := Load("")
	assert.Error(t, err)
}

func TestSettingsLevel_Fallback(t *testing.T) {
	s := &Settings{LogLevel: "chatty"}
	assert.Equal(t, logger.LevelWarn, s.Level())
}
