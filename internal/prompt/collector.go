package prompt

import (
	"fmt"

	"github.com/simonhull/hatch/internal/scaffold"
)

// Defaults pre-fill the questionnaire. Zero values fall back to built-ins.
type Defaults struct {
	Name       string
	Provider   scaffold.Provider
	Features   []scaffold.Feature
	TypeScript bool
}

// Collect asks for every ProjectConfig field in order: name, features,
// provider, language. The name is asked again until it is valid.
func Collect(p *Prompter, d Defaults) (scaffold.ProjectConfig, error) {
	var cfg scaffold.ProjectConfig

	defaultName := d.Name
	if defaultName == "" {
		defaultName = "my-agent"
	}
	for {
		name, err := p.Prompt("Project name", defaultName)
		if err != nil {
			return cfg, err
		}
		if err := scaffold.ValidateName(name); err != nil {
			p.Problem(err.Error())
			continue
		}
		cfg.Name = name
		break
	}

	featureOpts := make([]Option, len(scaffold.AllFeatures))
	for i, f := range scaffold.AllFeatures {
		featureOpts[i] = Option{Value: string(f), Label: f.Description()}
	}
	defaultFeatures := make([]string, len(d.Features))
	for i, f := range d.Features {
		defaultFeatures[i] = string(f)
	}
	features, err := p.MultiSelect("Which features do you want?", featureOpts, defaultFeatures)
	if err != nil {
		return cfg, err
	}
	for _, f := range features {
		cfg.Features = append(cfg.Features, scaffold.Feature(f))
	}

	providerOpts := make([]Option, len(scaffold.AllProviders))
	defaultProvider := 0
	for i, prov := range scaffold.AllProviders {
		providerOpts[i] = Option{Value: string(prov), Label: fmt.Sprintf("%s (%s)", prov.Label(), scaffold.ModelFor(prov))}
		if prov == d.Provider {
			defaultProvider = i
		}
	}
	provider, err := p.Select("Which LLM provider?", providerOpts, defaultProvider)
	if err != nil {
		return cfg, err
	}
	cfg.Provider = scaffold.Provider(provider)

	cfg.TypeScript, err = p.Confirm("Use TypeScript?", d.TypeScript)
	if err != nil {
		return cfg, err
	}

	return cfg, nil
}
