package generator

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"sync"
	"text/template"
)

// Renderer handles template parsing and rendering with caching
type Renderer struct {
	funcMap template.FuncMap
	cache   map[string]*template.Template
	mu      sync.RWMutex // Protect cache for concurrent access
}

// NewRenderer creates a renderer with built-in helper functions
func NewRenderer() *Renderer {
	return &Renderer{
		funcMap: defaultFuncMap(),
		cache:   make(map[string]*template.Template),
	}
}

// RenderFS renders a template from an embedded filesystem
func (r *Renderer) RenderFS(fsys embed.FS, path string, data any) ([]byte, error) {
	if tmpl, ok := r.cached(path); ok {
		return r.executeTemplate(tmpl, data)
	}

	templateBytes, err := fsys.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read template from fs '%s': %w", path, err)
	}

	tmpl, err := template.New(path).Funcs(r.funcMap).Parse(string(templateBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to parse template '%s': %w", path, err)
	}

	r.store(path, tmpl)
	return r.executeTemplate(tmpl, data)
}

func (r *Renderer) cached(key string) (*template.Template, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tmpl, ok := r.cache[key]
	return tmpl, ok
}

func (r *Renderer) store(key string, tmpl *template.Template) {
	r.mu.Lock()
	r.cache[key] = tmpl
	r.mu.Unlock()
}

// executeTemplate executes a parsed template with the given data
func (r *Renderer) executeTemplate(tmpl *template.Template, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render template '%s': %w", tmpl.Name(), err)
	}
	return buf.Bytes(), nil
}

// defaultFuncMap returns the default template function map
func defaultFuncMap() template.FuncMap {
	return template.FuncMap{
		"quote": Quote, // it's → 'it\'s'
		"join":  strings.Join,
	}
}

// jsEscaper escapes everything that cannot appear raw inside a single
// quoted JS string, including the U+2028/U+2029 line terminators.
var jsEscaper = strings.NewReplacer(
	`\`, `\\`,
	`'`, `\'`,
	"\n", `\n`,
	"\r", `\r`,
	"\u2028", `\u2028`,
	"\u2029", `\u2029`,
)

// Quote wraps a string in single quotes, escaping backslashes, quotes and
// line terminators. The result is a valid string literal in both
// JavaScript and TypeScript.
func Quote(s string) string {
	return "'" + jsEscaper.Replace(s) + "'"
}

// Comment turns every line of s into a line comment.
// Empty lines become a bare "//" so the block stays contiguous.
func Comment(s string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i, line := range lines {
		if line == "" {
			lines[i] = "//"
			continue
		}
		lines[i] = "// " + line
	}
	return strings.Join(lines, "\n")
}
