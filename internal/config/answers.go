package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/simonhull/hatch/internal/scaffold"
)

// Answers is a pre-recorded questionnaire for non-interactive runs.
// TypeScript is a pointer so an absent key keeps the configured default.
type Answers struct {
	Name       string   `yaml:"name"`
	Template   string   `yaml:"template"`
	Features   []string `yaml:"features"`
	Provider   string   `yaml:"provider"`
	TypeScript *bool    `yaml:"typescript"`
}

// FeatureList expands Template and appends Features, dropping duplicates.
func (a Answers) FeatureList() ([]scaffold.Feature, error) {
	var out []scaffold.Feature
	if a.Template != "" {
		preset, err := scaffold.Preset(a.Template)
		if err != nil {
			return nil, err
		}
		out = preset
	}
	for _, f := range a.Features {
		out = append(out, scaffold.ParseFeatures(f)...)
	}
	return dedupe(out), nil
}

// LoadAnswers decodes an answers file. Unknown keys are rejected so typos
// do not silently fall back to defaults.
func LoadAnswers(path string) (*Answers, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening answers file: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)

	var a Answers
	if err := dec.Decode(&a); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("answers file %s is empty", path)
		}
		return nil, fmt.Errorf("parsing answers file %s: %w", path, err)
	}
	return &a, nil
}

func dedupe(features []scaffold.Feature) []scaffold.Feature {
	if len(features) == 0 {
		return nil
	}
	seen := make(map[scaffold.Feature]bool, len(features))
	out := features[:0:0]
	for _, f := range features {
		if seen[f] {
			continue
		}
		seen[f] = true
		out = append(out, f)
	}
	return out
}
