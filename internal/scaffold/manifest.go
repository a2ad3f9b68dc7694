package scaffold

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/kballard/go-shellquote"
)

// InitialVersion is the version every generated project starts at.
const InitialVersion = "0.1.0"

// Manifest is the generated package.json.
type Manifest struct {
	Name            string            `json:"name"`
	Version         string            `json:"version"`
	Type            string            `json:"type"`
	Scripts         Scripts           `json:"scripts"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies,omitempty"`
}

// Scripts are the npm scripts of a generated project. Build is empty for
// JavaScript projects and omitted from the manifest.
type Scripts struct {
	Dev   string `json:"dev"`
	Build string `json:"build,omitempty"`
	Start string `json:"start"`
}

// ScriptsFor selects the npm scripts for a language variant.
func ScriptsFor(typescript bool) Scripts {
	if typescript {
		return Scripts{
			Dev:   shellquote.Join("tsx", "watch", "src/index.ts"),
			Build: shellquote.Join("tsc"),
			Start: shellquote.Join("node", "dist/index.js"),
		}
	}
	return Scripts{
		Dev:   shellquote.Join("node", "--watch", "src/index.js"),
		Start: shellquote.Join("node", "src/index.js"),
	}
}

// BuildManifest assembles the package manifest for cfg.
func BuildManifest(cfg ProjectConfig, sdk SDKShape) Manifest {
	m := Manifest{
		Name:    cfg.Name,
		Version: InitialVersion,
		Type:    "module",
		Scripts: ScriptsFor(cfg.TypeScript),
		Dependencies: map[string]string{
			sdk.Package:   sdk.Version,
			sdk.EnvLoader: sdk.EnvLoaderVersion,
		},
	}

	if cfg.TypeScript && len(sdk.DevDependencies) > 0 {
		m.DevDependencies = make(map[string]string, len(sdk.DevDependencies))
		for pkg, v := range sdk.DevDependencies {
			m.DevDependencies[pkg] = v
		}
	}

	return m
}

// CompilerConfig is the generated tsconfig.json. Its content never depends
// on the project configuration.
type CompilerConfig struct {
	CompilerOptions CompilerOptions `json:"compilerOptions"`
	Include         []string        `json:"include"`
	Exclude         []string        `json:"exclude"`
}

type CompilerOptions struct {
	Target           string `json:"target"`
	Module           string `json:"module"`
	ModuleResolution string `json:"moduleResolution"`
	Strict           bool   `json:"strict"`
	EsModuleInterop  bool   `json:"esModuleInterop"`
	SkipLibCheck     bool   `json:"skipLibCheck"`
	OutDir           string `json:"outDir"`
	RootDir          string `json:"rootDir"`
}

// DefaultCompilerConfig returns the fixed tsconfig.json shape.
func DefaultCompilerConfig() CompilerConfig {
	return CompilerConfig{
		CompilerOptions: CompilerOptions{
			Target:           "ES2022",
			Module:           "NodeNext",
			ModuleResolution: "NodeNext",
			Strict:           true,
			EsModuleInterop:  true,
			SkipLibCheck:     true,
			OutDir:           "dist",
			RootDir:          "src",
		},
		Include: []string{"src/**/*"},
		Exclude: []string{"node_modules", "dist"},
	}
}

// marshalJSON encodes v with two-space indentation and a trailing newline,
// leaving characters like '<' and '>' in version ranges unescaped.
func marshalJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("encoding json: %w", err)
	}
	return buf.Bytes(), nil
}
