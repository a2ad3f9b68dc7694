package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/simonhull/hatch/internal/config"
	"github.com/simonhull/hatch/internal/logger"
	"github.com/simonhull/hatch/internal/output"
	"github.com/simonhull/hatch/internal/prompt"
	"github.com/simonhull/hatch/internal/scaffold"
)

// fallbackName names projects created with --yes and no name.
const fallbackName = "my-agent"

type newOptions struct {
	template   string
	model      string
	features   string
	answers    string
	dir        string
	memory     bool
	knowledge  bool
	javascript bool
	yes        bool
	dryRun     bool
	strict     bool
}

// answerFlags are the flags that make 'new' skip the questionnaire.
var answerFlags = []string{"template", "model", "features", "memory", "knowledge", "javascript"}

// NewCmd creates and returns the 'new' command for scaffolding projects
func NewCmd() *cobra.Command {
	var opts newOptions

	cmd := &cobra.Command{
		Use:   "new [project-name]",
		Short: "Create a new agent project",
		Long: `Creates a new agent project with:
• package.json (dev, build and start scripts)
• tsconfig.json for TypeScript projects
• .env.example for the chosen LLM provider
• src/index entry point wired to the selected features
• README.md

Without answer flags the questions are asked interactively.
Type :q or press Ctrl-D at any question to cancel.

Examples:
  hatch new
  hatch new my-agent --template rag --model anthropic
  hatch new bot --features memory,graph --javascript
  hatch new --answers answers.yml --yes`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNew(cmd, args, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.template, "template", "t", "", fmt.Sprintf("Feature preset (%s)", strings.Join(scaffold.PresetNames(), "|")))
	flags.StringVarP(&opts.model, "model", "m", "", "LLM provider (openai|anthropic|google|ollama|multiple)")
	flags.StringVar(&opts.features, "features", "", "Comma separated features to enable")
	flags.BoolVar(&opts.memory, "memory", false, "Enable conversation memory")
	flags.BoolVar(&opts.knowledge, "knowledge", false, "Enable the knowledge base")
	flags.BoolVar(&opts.javascript, "javascript", false, "Generate JavaScript instead of TypeScript")
	flags.BoolVarP(&opts.yes, "yes", "y", false, "Accept defaults for anything not given as a flag")
	flags.StringVar(&opts.answers, "answers", "", "YAML file with pre-recorded answers")
	flags.StringVarP(&opts.dir, "dir", "d", "", "Directory to create the project in (default: current directory)")
	flags.BoolVar(&opts.dryRun, "dry-run", false, "Show what would be created without writing")
	flags.BoolVar(&opts.strict, "strict", false, "Reject unknown providers and features instead of falling back")

	return cmd
}

func runNew(cmd *cobra.Command, args []string, opts newOptions) error {
	log := logger.Default()

	configPath, _ := cmd.Flags().GetString("config")
	settings, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if verbose, _ := cmd.Flags().GetBool("verbose"); !verbose {
		log.SetLevel(settings.Level())
	}
	if settings.File != "" {
		log.Debug("loaded config", logger.F("file", settings.File))
	}

	cfg, err := resolveFlags(args, opts, settings)
	if err != nil {
		return err
	}

	if interactive(cmd, opts) {
		p := prompt.New(cmd.InOrStdin(), cmd.OutOrStdout())
		cfg, err = prompt.Collect(p, prompt.Defaults{
			Name:       cfg.Name,
			Provider:   cfg.Provider,
			Features:   cfg.Features,
			TypeScript: cfg.TypeScript,
		})
		if errors.Is(err, prompt.ErrCancelled) {
			output.Warn("Cancelled. Nothing was created.")
			return nil
		}
		if err != nil {
			return err
		}
	} else if cfg.Name == "" {
		cfg.Name = fallbackName
	}

	if err := cfg.Validate(); err != nil {
		return err
	}
	if opts.strict || settings.Strict {
		if err := cfg.Strict(); err != nil {
			return err
		}
	}

	log.Debug("resolved project",
		logger.F("name", cfg.Name),
		logger.F("features", cfg.Features),
		logger.F("provider", cfg.Provider),
		logger.F("language", cfg.Language()))

	root := opts.dir
	if root == "" {
		root = settings.Defaults.Dir
	}

	m := scaffold.NewMaterializer(settings.SDK, log)

	if opts.dryRun {
		project, err := m.Materialize(cmd.Context(), cfg, root, scaffold.Options{
			DryRun: true,
			Writer: cmd.OutOrStdout(),
		})
		if err != nil {
			return err
		}
		output.Info(fmt.Sprintf("Dry run: %d files would be created in %s", len(project.Files), project.Dir))
		return nil
	}

	var project *scaffold.GeneratedProject
	err = output.Spin(fmt.Sprintf("Hatching %s", cfg.Name), func() error {
		var err error
		project, err = m.Materialize(cmd.Context(), cfg, root, scaffold.Options{Verify: true})
		return err
	})
	if err != nil {
		return err
	}

	output.Success(fmt.Sprintf("Created %s project: %s", cfg.Language(), cfg.Name))
	output.Info("Next steps:")
	output.Step(fmt.Sprintf("cd %s", displayDir(project.Dir)))
	output.Step("npm install")
	output.Step("cp .env.example .env  # add your API key")
	output.Step("npm run dev")

	return nil
}

// interactive reports whether the questionnaire should run.
func interactive(cmd *cobra.Command, opts newOptions) bool {
	if opts.yes || opts.answers != "" {
		return false
	}
	for _, name := range answerFlags {
		if cmd.Flags().Changed(name) {
			return false
		}
	}
	return true
}

// resolveFlags builds a ProjectConfig from settings defaults, an optional
// answers file and flags, later sources overriding earlier ones.
func resolveFlags(args []string, opts newOptions, settings *config.Settings) (scaffold.ProjectConfig, error) {
	cfg := scaffold.ProjectConfig{
		Features:   settings.Defaults.FeatureList(),
		Provider:   scaffold.Provider(settings.Defaults.Provider),
		TypeScript: settings.Defaults.TypeScript,
	}

	if opts.answers != "" {
		answers, err := config.LoadAnswers(opts.answers)
		if err != nil {
			return cfg, err
		}
		cfg.Name = answers.Name
		if answers.Provider != "" {
			cfg.Provider = scaffold.Provider(strings.ToLower(answers.Provider))
		}
		if answers.TypeScript != nil {
			cfg.TypeScript = *answers.TypeScript
		}
		if answers.Template != "" || len(answers.Features) > 0 {
			features, err := answers.FeatureList()
			if err != nil {
				return cfg, err
			}
			cfg.Features = features
		}
	}

	if len(args) > 0 {
		cfg.Name = args[0]
	}

	if opts.template != "" {
		preset, err := scaffold.Preset(strings.ToLower(opts.template))
		if err != nil {
			return cfg, err
		}
		cfg.Features = preset
	}
	if opts.features != "" {
		cfg.Features = appendUnique(cfg.Features, scaffold.ParseFeatures(opts.features)...)
	}
	if opts.memory {
		cfg.Features = appendUnique(cfg.Features, scaffold.FeatureMemory)
	}
	if opts.knowledge {
		cfg.Features = appendUnique(cfg.Features, scaffold.FeatureKnowledge)
	}

	if opts.model != "" {
		cfg.Provider = scaffold.Provider(strings.ToLower(opts.model))
	}
	if opts.javascript {
		cfg.TypeScript = false
	}

	return cfg, nil
}

func appendUnique(features []scaffold.Feature, more ...scaffold.Feature) []scaffold.Feature {
	for _, f := range more {
		if !slices.Contains(features, f) {
			features = append(features, f)
		}
	}
	return features
}

// displayDir shortens dir relative to the working directory when possible.
func displayDir(dir string) string {
	wd, err := os.Getwd()
	if err != nil {
		return dir
	}
	if rel, err := filepath.Rel(wd, dir); err == nil && !strings.HasPrefix(rel, "..") {
		return rel
	}
	return dir
}
