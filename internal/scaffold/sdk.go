package scaffold

import (
	"errors"
	"fmt"
	"regexp"
	"sort"

	"github.com/Masterminds/semver/v3"
)

// SDKShape describes the agent SDK that generated code targets: where it is
// imported from, which symbols it exports and how an agent is constructed.
type SDKShape struct {
	Package string `mapstructure:"package" yaml:"package"`
	Version string `mapstructure:"version" yaml:"version"`

	AgentSymbol        string `mapstructure:"agent_symbol" yaml:"agent_symbol"`
	MemorySymbol       string `mapstructure:"memory_symbol" yaml:"memory_symbol"`
	KnowledgeSymbol    string `mapstructure:"knowledge_symbol" yaml:"knowledge_symbol"`
	GraphSymbol        string `mapstructure:"graph_symbol" yaml:"graph_symbol"`
	PluginLoaderSymbol string `mapstructure:"plugin_loader_symbol" yaml:"plugin_loader_symbol"`

	NameOption      string `mapstructure:"name_option" yaml:"name_option"`
	ModelOption     string `mapstructure:"model_option" yaml:"model_option"`
	PromptOption    string `mapstructure:"prompt_option" yaml:"prompt_option"`
	MemoryOption    string `mapstructure:"memory_option" yaml:"memory_option"`
	KnowledgeOption string `mapstructure:"knowledge_option" yaml:"knowledge_option"`
	RunMethod       string `mapstructure:"run_method" yaml:"run_method"`

	SystemPrompt string `mapstructure:"system_prompt" yaml:"system_prompt"`

	EnvLoader        string `mapstructure:"env_loader" yaml:"env_loader"`
	EnvLoaderVersion string `mapstructure:"env_loader_version" yaml:"env_loader_version"`
	EnvImport        string `mapstructure:"env_import" yaml:"env_import"`

	// DevDependencies are added to the manifest of TypeScript projects.
	DevDependencies map[string]string `mapstructure:"dev_dependencies" yaml:"dev_dependencies"`
}

// DefaultSDK returns the built-in SDK shape.
func DefaultSDK() SDKShape {
	return SDKShape{
		Package: "@agentkit/core",
		Version: "^0.4.0",

		AgentSymbol:        "Agent",
		MemorySymbol:       "Memory",
		KnowledgeSymbol:    "Knowledge",
		GraphSymbol:        "Graph",
		PluginLoaderSymbol: "loadPlugins",

		NameOption:      "name",
		ModelOption:     "model",
		PromptOption:    "instructions",
		MemoryOption:    "memory",
		KnowledgeOption: "knowledge",
		RunMethod:       "run",

		SystemPrompt: "You are a helpful assistant.",

		EnvLoader:        "dotenv",
		EnvLoaderVersion: "^16.4.5",
		EnvImport:        "dotenv/config",

		DevDependencies: map[string]string{
			"typescript":  "^5.6.3",
			"tsx":         "^4.19.2",
			"@types/node": "^22.9.0",
		},
	}
}

// FeatureSymbol returns the SDK export a feature imports, if it has one.
// Sub-agents and MCP are configured through the core agent symbol and
// contribute no import of their own.
func (s SDKShape) FeatureSymbol(f Feature) (string, bool) {
	switch f {
	case FeatureMemory:
		return s.MemorySymbol, true
	case FeatureKnowledge:
		return s.KnowledgeSymbol, true
	case FeatureGraph:
		return s.GraphSymbol, true
	case FeaturePlugins:
		return s.PluginLoaderSymbol, true
	default:
		return "", false
	}
}

var identifierPattern = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// Validate checks that every symbol and option is a usable identifier and
// every version is a valid semver range.
func (s SDKShape) Validate() error {
	var errs []error

	if s.Package == "" {
		errs = append(errs, errors.New("sdk package is required"))
	}
	if s.EnvLoader == "" || s.EnvImport == "" {
		errs = append(errs, errors.New("sdk env loader and env import are required"))
	}

	idents := []struct{ field, value string }{
		{"agent_symbol", s.AgentSymbol},
		{"memory_symbol", s.MemorySymbol},
		{"knowledge_symbol", s.KnowledgeSymbol},
		{"graph_symbol", s.GraphSymbol},
		{"plugin_loader_symbol", s.PluginLoaderSymbol},
		{"name_option", s.NameOption},
		{"model_option", s.ModelOption},
		{"prompt_option", s.PromptOption},
		{"memory_option", s.MemoryOption},
		{"knowledge_option", s.KnowledgeOption},
		{"run_method", s.RunMethod},
	}
	for _, id := range idents {
		if !identifierPattern.MatchString(id.value) {
			errs = append(errs, fmt.Errorf("sdk %s: %q is not a valid identifier", id.field, id.value))
		}
	}

	versions := map[string]string{
		s.Package:   s.Version,
		s.EnvLoader: s.EnvLoaderVersion,
	}
	for pkg, v := range s.DevDependencies {
		versions[pkg] = v
	}
	pkgs := make([]string, 0, len(versions))
	for pkg := range versions {
		pkgs = append(pkgs, pkg)
	}
	sort.Strings(pkgs)
	for _, pkg := range pkgs {
		if _, err := semver.NewConstraint(versions[pkg]); err != nil {
			errs = append(errs, fmt.Errorf("sdk version for %s: %w", pkg, err))
		}
	}

	return errors.Join(errs...)
}
