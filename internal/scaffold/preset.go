package scaffold

import (
	"fmt"
	"sort"
)

// Presets are named feature bundles selectable with --template.
var Presets = map[string][]Feature{
	"basic":    nil,
	"memory":   {FeatureMemory},
	"rag":      {FeatureMemory, FeatureKnowledge},
	"workflow": {FeatureGraph},
	"team":     {FeatureSubagents, FeatureMemory},
	"full":     AllFeatures,
}

// PresetNames returns the preset names sorted alphabetically.
func PresetNames() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Preset returns a copy of the named preset's features.
func Preset(name string) ([]Feature, error) {
	features, ok := Presets[name]
	if !ok {
		return nil, fmt.Errorf("%w: template %q (available: %v)", ErrUnknownValue, name, PresetNames())
	}
	return append([]Feature(nil), features...), nil
}
