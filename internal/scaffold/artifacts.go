package scaffold

import (
	"fmt"
	"path"
)

// Fixed artifact paths, relative to the project directory.
const (
	ManifestFile       = "package.json"
	CompilerConfigFile = "tsconfig.json"
	EnvTemplateFile    = ".env.example"
	IgnoreFile         = ".gitignore"
	ReadmeFile         = "README.md"
	SourceDir          = "src"
)

// EntryPointFile returns the entry-point path for the language variant.
func EntryPointFile(cfg ProjectConfig) string {
	return path.Join(SourceDir, "index."+cfg.Extension())
}

// Artifact is one rendered file of a project.
type Artifact struct {
	Path    string // slash separated, relative to the project directory
	Content []byte
}

type readmeData struct {
	Name       string
	SDK        SDKShape
	Language   string
	Provider   string
	Features   []Feature
	TypeScript bool
}

// Render produces every artifact for cfg, in write order.
func (g *SourceGenerator) Render(cfg ProjectConfig) ([]Artifact, error) {
	var artifacts []Artifact

	manifest, err := marshalJSON(BuildManifest(cfg, g.sdk))
	if err != nil {
		return nil, fmt.Errorf("rendering %s: %w", ManifestFile, err)
	}
	artifacts = append(artifacts, Artifact{Path: ManifestFile, Content: manifest})

	if cfg.TypeScript {
		tsconfig, err := marshalJSON(DefaultCompilerConfig())
		if err != nil {
			return nil, fmt.Errorf("rendering %s: %w", CompilerConfigFile, err)
		}
		artifacts = append(artifacts, Artifact{Path: CompilerConfigFile, Content: tsconfig})
	}

	artifacts = append(artifacts, Artifact{Path: EnvTemplateFile, Content: []byte(EnvTemplate(cfg.Provider))})

	ignore, err := g.renderer.RenderFS(templatesFS, "templates/gitignore.tmpl", nil)
	if err != nil {
		return nil, fmt.Errorf("rendering %s: %w", IgnoreFile, err)
	}
	artifacts = append(artifacts, Artifact{Path: IgnoreFile, Content: ignore})

	source, err := g.EntryPoint(cfg)
	if err != nil {
		return nil, fmt.Errorf("rendering %s: %w", EntryPointFile(cfg), err)
	}
	artifacts = append(artifacts, Artifact{Path: EntryPointFile(cfg), Content: []byte(source)})

	readme, err := g.Readme(cfg)
	if err != nil {
		return nil, fmt.Errorf("rendering %s: %w", ReadmeFile, err)
	}
	artifacts = append(artifacts, Artifact{Path: ReadmeFile, Content: readme})

	return artifacts, nil
}

// Readme renders README.md. The feature list appears only when features
// were selected, one bullet per tag in selection order.
func (g *SourceGenerator) Readme(cfg ProjectConfig) ([]byte, error) {
	provider := cfg.Provider
	if !provider.Known() {
		provider = DefaultProvider
	}
	return g.renderer.RenderFS(templatesFS, "templates/readme.tmpl", readmeData{
		Name:       cfg.Name,
		SDK:        g.sdk,
		Language:   cfg.Language(),
		Provider:   provider.Label(),
		Features:   cfg.Features,
		TypeScript: cfg.TypeScript,
	})
}
