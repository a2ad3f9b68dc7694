package scaffold

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScriptsFor(t *testing.T) {
	ts := ScriptsFor(true)
	assert.Equal(t, Scripts{Dev: "tsx watch src/index.ts", Build: "tsc", Start: "node dist/index.js"}, ts)

	js := ScriptsFor(false)
	assert.Empty(t, js.Build)
	assert.Equal(t, "node --watch src/index.js", js.Dev)
	assert.Equal(t, "node src/index.js", js.Start)
}

func TestBuildManifest_TypeScript(t *testing.T) {
	m := BuildManifest(ProjectConfig{Name: "demo", TypeScript: true}, DefaultSDK())

	data, err := marshalJSON(m)
	require.NoError(t, err)

	want := `{
  "name": "demo",
  "version": "0.1.0",
  "type": "module",
  "scripts": {
    "dev": "tsx watch src/index.ts",
    "build": "tsc",
    "start": "node dist/index.js"
  },
  "dependencies": {
    "@agentkit/core": "^0.4.0",
    "dotenv": "^16.4.5"
  },
  "devDependencies": {
    "@types/node": "^22.9.0",
    "tsx": "^4.19.2",
    "typescript": "^5.6.3"
  }
}
`
	assert.Equal(t, want, string(data))
}

func TestBuildManifest_JavaScript(t *testing.T) {
	m := BuildManifest(ProjectConfig{Name: "demo2"}, DefaultSDK())

	data, err := marshalJSON(m)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))

	scripts := raw["scripts"].(map[string]any)
	assert.NotContains(t, scripts, "build")
	assert.Equal(t, "node --watch src/index.js", scripts["dev"])
	assert.Equal(t, "node src/index.js", scripts["start"])
	assert.NotContains(t, raw, "devDependencies")
	assert.Len(t, raw["dependencies"], 2)
}

func TestBuildManifest_DoesNotAliasSDKMaps(t *testing.T) {
	sdk := DefaultSDK()
	m := BuildManifest(ProjectConfig{Name: "demo", TypeScript: true}, sdk)

	m.DevDependencies["extra"] = "^1.0.0"
	assert.NotContains(t, sdk.DevDependencies, "extra")
}

func TestMarshalJSON_KeepsRangeOperators(t *testing.T) {
	sdk := DefaultSDK()
	sdk.Version = ">=0.4.0 <0.5.0"

	data, err := marshalJSON(BuildManifest(ProjectConfig{Name: "demo"}, sdk))
	require.NoError(t, err)
	assert.Contains(t, string(data), `">=0.4.0 <0.5.0"`)
}

func TestDefaultCompilerConfig(t *testing.T) {
	data, err := marshalJSON(DefaultCompilerConfig())
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))

	opts := raw["compilerOptions"].(map[string]any)
	assert.Equal(t, true, opts["strict"])
	assert.Equal(t, "dist", opts["outDir"])
	assert.Equal(t, "src", opts["rootDir"])
	assert.Equal(t, []any{"src/**/*"}, raw["include"])
	assert.Equal(t, []any{"node_modules", "dist"}, raw["exclude"])
}
