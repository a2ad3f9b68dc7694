// Package scaffold turns a collected ProjectConfig into an agent project on
// disk.
//
// # Overview
//
// A Materializer renders every artifact of a project in memory, plans one
// generator operation per file, and then writes them strictly in order:
//
//	package.json
//	tsconfig.json     (TypeScript only)
//	.env.example
//	.gitignore
//	src/index.ts|js
//	README.md
//
// The destination directory must not exist. If it does, Materialize fails
// with ErrDirectoryExists before anything is written. A write failure stops
// the run with a *FilesystemError; files written before the failure are left
// in place.
//
// # SDK shape
//
// The symbols, option names and package versions the generated code uses
// come from an SDKShape value rather than being hard-coded, so one generator
// serves every SDK revision. DefaultSDK returns the built-in shape; tool
// configuration may override any field.
//
// # Unknown values
//
// The materializer never rejects a provider or feature tag. Unknown
// providers fall back to the OpenAI entries of each lookup table and unknown
// features contribute nothing but a README bullet. Callers that want loud
// failures use ProjectConfig.Strict before materializing.
package scaffold
