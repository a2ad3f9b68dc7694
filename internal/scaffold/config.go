package scaffold

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Feature is an optional capability a generated project declares.
type Feature string

const (
	FeatureMemory    Feature = "memory"
	FeatureKnowledge Feature = "knowledge"
	FeatureGraph     Feature = "graph"
	FeatureSubagents Feature = "subagents"
	FeaturePlugins   Feature = "plugins"
	FeatureMCP       Feature = "mcp"
)

// AllFeatures lists every known feature in canonical order.
var AllFeatures = []Feature{
	FeatureMemory,
	FeatureKnowledge,
	FeatureGraph,
	FeatureSubagents,
	FeaturePlugins,
	FeatureMCP,
}

var featureDescriptions = map[Feature]string{
	FeatureMemory:    "Conversation memory",
	FeatureKnowledge: "Knowledge base (RAG)",
	FeatureGraph:     "Graph workflows",
	FeatureSubagents: "Sub-agents",
	FeaturePlugins:   "Plugins",
	FeatureMCP:       "MCP integration",
}

// Known reports whether f is one of AllFeatures.
func (f Feature) Known() bool {
	_, ok := featureDescriptions[f]
	return ok
}

// Description returns a short human label, or the tag itself when unknown.
func (f Feature) Description() string {
	if d, ok := featureDescriptions[f]; ok {
		return d
	}
	return string(f)
}

// Provider is the LLM backend a generated project calls.
type Provider string

const (
	ProviderOpenAI    Provider = "openai"
	ProviderAnthropic Provider = "anthropic"
	ProviderGoogle    Provider = "google"
	ProviderOllama    Provider = "ollama"
	ProviderMultiple  Provider = "multiple"
)

// DefaultProvider backs every provider lookup for unrecognized tags.
const DefaultProvider = ProviderOpenAI

// AllProviders lists every known provider in display order.
var AllProviders = []Provider{
	ProviderOpenAI,
	ProviderAnthropic,
	ProviderGoogle,
	ProviderOllama,
	ProviderMultiple,
}

var providerLabels = map[Provider]string{
	ProviderOpenAI:    "OpenAI",
	ProviderAnthropic: "Anthropic",
	ProviderGoogle:    "Google Gemini",
	ProviderOllama:    "Ollama (local)",
	ProviderMultiple:  "Multiple providers",
}

// Known reports whether p is one of AllProviders.
func (p Provider) Known() bool {
	_, ok := providerLabels[p]
	return ok
}

// Label returns a display name for p.
func (p Provider) Label() string {
	if l, ok := providerLabels[p]; ok {
		return l
	}
	return string(p)
}

// ProjectConfig is the validated answer set a project is generated from.
type ProjectConfig struct {
	Name       string    `yaml:"name"`
	Features   []Feature `yaml:"features"`
	Provider   Provider  `yaml:"provider"`
	TypeScript bool      `yaml:"typescript"`
}

var namePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

var (
	// ErrInvalidName is returned when a project name is empty or contains
	// characters outside [A-Za-z0-9_-].
	ErrInvalidName = errors.New("invalid project name")

	// ErrUnknownValue is returned by Strict for unrecognized provider or
	// feature tags.
	ErrUnknownValue = errors.New("unknown configuration value")
)

// ValidateName checks a project name against the allowed character set.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidName)
	}
	if !namePattern.MatchString(name) {
		return fmt.Errorf("%w: %q (use letters, digits, '-' and '_')", ErrInvalidName, name)
	}
	return nil
}

// Validate checks the fields the answer collector is responsible for.
// Unknown provider and feature tags are allowed; see Strict.
func (c ProjectConfig) Validate() error {
	return ValidateName(c.Name)
}

// Strict rejects provider and feature tags outside the fixed enumerations.
func (c ProjectConfig) Strict() error {
	if !c.Provider.Known() {
		return fmt.Errorf("%w: provider %q", ErrUnknownValue, c.Provider)
	}
	for _, f := range c.Features {
		if !f.Known() {
			return fmt.Errorf("%w: feature %q", ErrUnknownValue, f)
		}
	}
	return nil
}

// Has reports whether feature f was selected.
func (c ProjectConfig) Has(f Feature) bool {
	for _, sel := range c.Features {
		if sel == f {
			return true
		}
	}
	return false
}

// Extension returns the entry-point file extension for the language variant.
func (c ProjectConfig) Extension() string {
	if c.TypeScript {
		return "ts"
	}
	return "js"
}

// Language returns a display name for the language variant.
func (c ProjectConfig) Language() string {
	if c.TypeScript {
		return "TypeScript"
	}
	return "JavaScript"
}

// ParseFeatures splits a comma separated list of feature tags, trimming
// whitespace, lowercasing and dropping empties and duplicates.
func ParseFeatures(s string) []Feature {
	var out []Feature
	seen := make(map[Feature]bool)
	for _, part := range strings.Split(s, ",") {
		f := Feature(strings.ToLower(strings.TrimSpace(part)))
		if f == "" || seen[f] {
			continue
		}
		seen[f] = true
		out = append(out, f)
	}
	return out
}
