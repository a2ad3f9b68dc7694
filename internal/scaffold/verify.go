package scaffold

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/joho/godotenv"
)

// Verify reads a generated project back from dir and checks that it is
// coherent with cfg: manifest scripts match the language variant, the
// compiler config exists only for TypeScript, the env template declares the
// provider's variables and the entry point imports exactly the symbols the
// features imply.
func Verify(dir string, cfg ProjectConfig, sdk SDKShape) error {
	var problems []string

	problems = append(problems, verifyManifest(dir, cfg)...)
	problems = append(problems, verifyCompilerConfig(dir, cfg)...)
	problems = append(problems, verifyEnv(dir, cfg)...)
	problems = append(problems, verifyImports(dir, cfg, sdk)...)

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrIncoherentProject, strings.Join(problems, "; "))
	}
	return nil
}

func verifyManifest(dir string, cfg ProjectConfig) []string {
	data, err := os.ReadFile(filepath.Join(dir, ManifestFile))
	if err != nil {
		return []string{fmt.Sprintf("reading %s: %v", ManifestFile, err)}
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return []string{fmt.Sprintf("parsing %s: %v", ManifestFile, err)}
	}

	var problems []string
	if m.Name != cfg.Name {
		problems = append(problems, fmt.Sprintf("manifest name %q, want %q", m.Name, cfg.Name))
	}
	if want := ScriptsFor(cfg.TypeScript); m.Scripts != want {
		problems = append(problems, fmt.Sprintf("manifest scripts %+v, want %+v", m.Scripts, want))
	}
	return problems
}

func verifyCompilerConfig(dir string, cfg ProjectConfig) []string {
	_, err := os.Stat(filepath.Join(dir, CompilerConfigFile))
	exists := err == nil
	if exists != cfg.TypeScript {
		return []string{fmt.Sprintf("%s present=%v, want %v", CompilerConfigFile, exists, cfg.TypeScript)}
	}
	return nil
}

func verifyEnv(dir string, cfg ProjectConfig) []string {
	got, err := godotenv.Read(filepath.Join(dir, EnvTemplateFile))
	if err != nil {
		return []string{fmt.Sprintf("reading %s: %v", EnvTemplateFile, err)}
	}
	want, err := godotenv.Unmarshal(EnvTemplate(cfg.Provider))
	if err != nil {
		return []string{fmt.Sprintf("parsing env table entry: %v", err)}
	}

	if gk, wk := envKeys(got), envKeys(want); strings.Join(gk, ",") != strings.Join(wk, ",") {
		return []string{fmt.Sprintf("%s declares %v, want %v", EnvTemplateFile, gk, wk)}
	}
	return nil
}

func verifyImports(dir string, cfg ProjectConfig, sdk SDKShape) []string {
	src, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(EntryPointFile(cfg))))
	if err != nil {
		return []string{fmt.Sprintf("reading %s: %v", EntryPointFile(cfg), err)}
	}

	got := ImportedSymbols(string(src), sdk.Package)
	want := NewSourceGenerator(sdk).ImportSymbols(cfg)
	if strings.Join(got, ",") != strings.Join(want, ",") {
		return []string{fmt.Sprintf("%s imports %v from %s, want %v", EntryPointFile(cfg), got, sdk.Package, want)}
	}
	return nil
}

func envKeys(env map[string]string) []string {
	keys := make([]string, 0, len(env))
	for k := range env {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

var namedImportPattern = regexp.MustCompile(`(?m)^import\s*\{([^}]*)\}\s*from\s*['"]([^'"]+)['"]`)

// ImportedSymbols returns the named imports of pkg in source, in the order
// they appear. Commented-out code is ignored.
func ImportedSymbols(source, pkg string) []string {
	var symbols []string
	for _, match := range namedImportPattern.FindAllStringSubmatch(source, -1) {
		if match[2] != pkg {
			continue
		}
		for _, name := range strings.Split(match[1], ",") {
			if name = strings.TrimSpace(name); name != "" {
				symbols = append(symbols, name)
			}
		}
	}
	return symbols
}
