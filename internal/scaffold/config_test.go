package scaffold

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "demo", false},
		{"dashes and underscores", "my-agent_2", false},
		{"uppercase", "MyAgent", false},
		{"empty", "", true},
		{"space", "my agent", true},
		{"slash", "a/b", true},
		{"dot", "my.agent", true},
		{"parent", "..", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidName)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestProjectConfig_Strict(t *testing.T) {
	ok := ProjectConfig{Name: "demo", Provider: ProviderOllama, Features: []Feature{FeatureMCP}}
	assert.NoError(t, ok.Strict())

	badProvider := ProjectConfig{Name: "demo", Provider: "mistral"}
	assert.ErrorIs(t, badProvider.Strict(), ErrUnknownValue)

	badFeature := ProjectConfig{Name: "demo", Provider: ProviderOpenAI, Features: []Feature{"telepathy"}}
	err := badFeature.Strict()
	require.ErrorIs(t, err, ErrUnknownValue)
	assert.Contains(t, err.Error(), "telepathy")
}

func TestProjectConfig_Has(t *testing.T) {
	cfg := ProjectConfig{Features: []Feature{FeatureGraph, FeatureMemory}}

	assert.True(t, cfg.Has(FeatureGraph))
	assert.True(t, cfg.Has(FeatureMemory))
	assert.False(t, cfg.Has(FeatureKnowledge))
}

func TestProjectConfig_Language(t *testing.T) {
	ts := ProjectConfig{TypeScript: true}
	js := ProjectConfig{}

	assert.Equal(t, "ts", ts.Extension())
	assert.Equal(t, "TypeScript", ts.Language())
	assert.Equal(t, "js", js.Extension())
	assert.Equal(t, "JavaScript", js.Language())
}

func TestParseFeatures(t *testing.T) {
	tests := []struct {
		in   string
		want []Feature
	}{
		{"", nil},
		{"memory", []Feature{FeatureMemory}},
		{" Memory , graph ,", []Feature{FeatureMemory, FeatureGraph}},
		{"graph,memory,graph", []Feature{FeatureGraph, FeatureMemory}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseFeatures(tt.in), "ParseFeatures(%q)", tt.in)
	}
}

func TestFeatureAndProviderLabels(t *testing.T) {
	for _, f := range AllFeatures {
		assert.True(t, f.Known())
		assert.NotEqual(t, string(f), f.Description(), "feature %s needs a description", f)
	}
	assert.Equal(t, "unknown", Feature("unknown").Description())

	for _, p := range AllProviders {
		assert.True(t, p.Known())
		assert.NotEmpty(t, p.Label())
	}
	assert.False(t, Provider("mistral").Known())
}

func TestPreset(t *testing.T) {
	features, err := Preset("rag")
	require.NoError(t, err)
	assert.Equal(t, []Feature{FeatureMemory, FeatureKnowledge}, features)

	// Returned slices are copies
	features[0] = "changed"
	again, _ := Preset("rag")
	assert.Equal(t, FeatureMemory, again[0])

	basic, err := Preset("basic")
	require.NoError(t, err)
	assert.Empty(t, basic)

	_, err = Preset("enterprise")
	assert.ErrorIs(t, err, ErrUnknownValue)

	assert.Equal(t, []string{"basic", "full", "memory", "rag", "team", "workflow"}, PresetNames())
}
