// Package hatch scaffolds LLM agent projects.
package hatch

// Version is the hatch release, overridden at build time with
// -ldflags "-X github.com/simonhull/hatch.Version=...".
var Version = "0.1.0"
