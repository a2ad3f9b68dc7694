// Package config loads hatch's own settings and answers files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/simonhull/hatch/internal/logger"
	"github.com/simonhull/hatch/internal/scaffold"
)

// EnvPrefix prefixes environment overrides, e.g. HATCH_DEFAULTS_PROVIDER.
const EnvPrefix = "HATCH"

// Settings is the merged result of built-in defaults, hatch.yml and the
// environment.
type Settings struct {
	Defaults Defaults          `mapstructure:"defaults"`
	Strict   bool              `mapstructure:"strict"`
	LogLevel string            `mapstructure:"log_level"`
	SDK      scaffold.SDKShape `mapstructure:"sdk"`

	// File is the config file that was read, empty when none was found.
	File string `mapstructure:"-"`
}

// Defaults pre-fill answers for new projects.
type Defaults struct {
	Provider   string   `mapstructure:"provider"`
	TypeScript bool     `mapstructure:"typescript"`
	Features   []string `mapstructure:"features"`
	Dir        string   `mapstructure:"dir"`
}

// FeatureList returns the default features. Entries may themselves be
// comma separated, which is how they arrive from the environment.
func (d Defaults) FeatureList() []scaffold.Feature {
	return scaffold.ParseFeatures(strings.Join(d.Features, ","))
}

// Level returns the configured log level, falling back to warn.
func (s *Settings) Level() logger.Level {
	level, err := logger.ParseLevel(s.LogLevel)
	if err != nil {
		return logger.LevelWarn
	}
	return level
}

// SearchPaths lists the directories searched for hatch.yml, in order.
func SearchPaths() []string {
	paths := []string{"."}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "hatch"))
	}
	return paths
}

// Load reads settings. An explicit path must exist; otherwise hatch.yml is
// looked up in SearchPaths and a missing file just leaves the defaults.
func Load(path string) (*Settings, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("hatch")
		v.SetConfigType("yaml")
		for _, p := range SearchPaths() {
			v.AddConfigPath(p)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	s.File = v.ConfigFileUsed()

	if err := s.SDK.Validate(); err != nil {
		return nil, fmt.Errorf("sdk config: %w", err)
	}

	return &s, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("defaults.provider", string(scaffold.DefaultProvider))
	v.SetDefault("defaults.typescript", true)
	v.SetDefault("defaults.features", []string{})
	v.SetDefault("defaults.dir", ".")
	v.SetDefault("strict", false)
	v.SetDefault("log_level", "warn")

	// Every SDK key needs a default so env overrides and partial files
	// resolve against the built-in shape.
	sdk := scaffold.DefaultSDK()
	for key, value := range map[string]any{
		"package":              sdk.Package,
		"version":              sdk.Version,
		"agent_symbol":         sdk.AgentSymbol,
		"memory_symbol":        sdk.MemorySymbol,
		"knowledge_symbol":     sdk.KnowledgeSymbol,
		"graph_symbol":         sdk.GraphSymbol,
		"plugin_loader_symbol": sdk.PluginLoaderSymbol,
		"name_option":          sdk.NameOption,
		"model_option":         sdk.ModelOption,
		"prompt_option":        sdk.PromptOption,
		"memory_option":        sdk.MemoryOption,
		"knowledge_option":     sdk.KnowledgeOption,
		"run_method":           sdk.RunMethod,
		"system_prompt":        sdk.SystemPrompt,
		"env_loader":           sdk.EnvLoader,
		"env_loader_version":   sdk.EnvLoaderVersion,
		"env_import":           sdk.EnvImport,
		"dev_dependencies":     sdk.DevDependencies,
	} {
		v.SetDefault("sdk."+key, value)
	}
}
