package scaffold

import (
	"embed"
	"fmt"
	"strings"

	"github.com/simonhull/hatch/internal/generator"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

// blockSeparator joins the blocks of the entry point.
const blockSeparator = "\n\n"

// Block is one named section of the generated entry point.
type Block struct {
	Name    string
	Content string
}

// entryData is the template input shared by every entry-point block.
type entryData struct {
	SDK       SDKShape
	Name      string
	Model     string
	Symbols   []string
	Memory    bool
	Knowledge bool
	Greeting  string
}

// setupSnippets are the commented usage examples, in output order.
var setupSnippets = []struct {
	feature  Feature
	template string
}{
	{FeatureKnowledge, "templates/setup_knowledge.tmpl"},
	{FeatureGraph, "templates/setup_graph.tmpl"},
	{FeaturePlugins, "templates/setup_plugins.tmpl"},
	{FeatureSubagents, "templates/setup_subagents.tmpl"},
}

// SourceGenerator renders the entry-point source file from independent,
// named blocks: imports, agent construction, optional setup and the
// interactive loop.
type SourceGenerator struct {
	renderer *generator.Renderer
	sdk      SDKShape
}

// NewSourceGenerator creates a generator for the given SDK shape.
func NewSourceGenerator(sdk SDKShape) *SourceGenerator {
	return &SourceGenerator{
		renderer: generator.NewRenderer(),
		sdk:      sdk,
	}
}

// ImportSymbols returns the SDK exports the entry point imports: the agent
// symbol followed by one symbol per selected feature that has one, in
// canonical feature order.
func (g *SourceGenerator) ImportSymbols(cfg ProjectConfig) []string {
	symbols := []string{g.sdk.AgentSymbol}
	for _, f := range AllFeatures {
		if !cfg.Has(f) {
			continue
		}
		if sym, ok := g.sdk.FeatureSymbol(f); ok {
			symbols = append(symbols, sym)
		}
	}
	return symbols
}

func (g *SourceGenerator) data(cfg ProjectConfig) entryData {
	return entryData{
		SDK:       g.sdk,
		Name:      cfg.Name,
		Model:     ModelFor(cfg.Provider),
		Symbols:   g.ImportSymbols(cfg),
		Memory:    cfg.Has(FeatureMemory),
		Knowledge: cfg.Has(FeatureKnowledge),
		Greeting:  fmt.Sprintf("%s is ready. Type \"exit\" to quit.", cfg.Name),
	}
}

func (g *SourceGenerator) render(path string, data entryData) (string, error) {
	out, err := g.renderer.RenderFS(templatesFS, path, data)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(out), "\n"), nil
}

// Imports renders the import statements.
func (g *SourceGenerator) Imports(cfg ProjectConfig) (string, error) {
	return g.render("templates/imports.tmpl", g.data(cfg))
}

// Construction renders the agent construction block.
func (g *SourceGenerator) Construction(cfg ProjectConfig) (string, error) {
	return g.render("templates/agent.tmpl", g.data(cfg))
}

// Setup renders the commented feature examples. It returns an empty string
// when no selected feature has an example.
func (g *SourceGenerator) Setup(cfg ProjectConfig) (string, error) {
	data := g.data(cfg)

	var snippets []string
	for _, s := range setupSnippets {
		if !cfg.Has(s.feature) {
			continue
		}
		body, err := g.render(s.template, data)
		if err != nil {
			return "", err
		}
		snippets = append(snippets, generator.Comment(body))
	}

	return strings.Join(snippets, blockSeparator), nil
}

// Loop renders the interactive read-run-print loop.
func (g *SourceGenerator) Loop(cfg ProjectConfig) (string, error) {
	return g.render("templates/loop.tmpl", g.data(cfg))
}

// Blocks renders every block in output order. Empty blocks are dropped.
func (g *SourceGenerator) Blocks(cfg ProjectConfig) ([]Block, error) {
	producers := []struct {
		name    string
		produce func(ProjectConfig) (string, error)
	}{
		{"imports", g.Imports},
		{"construction", g.Construction},
		{"setup", g.Setup},
		{"loop", g.Loop},
	}

	blocks := make([]Block, 0, len(producers))
	for _, p := range producers {
		content, err := p.produce(cfg)
		if err != nil {
			return nil, fmt.Errorf("rendering %s block: %w", p.name, err)
		}
		if content == "" {
			continue
		}
		blocks = append(blocks, Block{Name: p.name, Content: content})
	}
	return blocks, nil
}

// EntryPoint renders the complete src/index source.
// The output is valid as both TypeScript and JavaScript.
func (g *SourceGenerator) EntryPoint(cfg ProjectConfig) (string, error) {
	blocks, err := g.Blocks(cfg)
	if err != nil {
		return "", err
	}

	parts := make([]string, len(blocks))
	for i, b := range blocks {
		parts[i] = b.Content
	}
	return strings.Join(parts, blockSeparator) + "\n", nil
}
