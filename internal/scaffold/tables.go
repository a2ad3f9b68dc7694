package scaffold

import "strings"

var providerModels = map[Provider]string{
	ProviderOpenAI:    "gpt-4o",
	ProviderAnthropic: "claude-3-5-sonnet-latest",
	ProviderGoogle:    "gemini-1.5-pro",
	ProviderOllama:    "llama3.2",
	ProviderMultiple:  "gpt-4o",
}

const apiKeyPlaceholder = "your-api-key-here"

var providerEnvVars = map[Provider]string{
	ProviderOpenAI:    "OPENAI_API_KEY",
	ProviderAnthropic: "ANTHROPIC_API_KEY",
	ProviderGoogle:    "GOOGLE_API_KEY",
}

var providerEnv = map[Provider]string{
	ProviderOpenAI:    keyLine(ProviderOpenAI),
	ProviderAnthropic: keyLine(ProviderAnthropic),
	ProviderGoogle:    keyLine(ProviderGoogle),
	ProviderOllama:    "# Ollama runs locally and needs no API key\nOLLAMA_BASE_URL=http://localhost:11434\n",
	ProviderMultiple: strings.Join([]string{
		keyLine(ProviderOpenAI),
		keyLine(ProviderAnthropic),
		keyLine(ProviderGoogle),
	}, ""),
}

func keyLine(p Provider) string {
	return providerEnvVars[p] + "=" + apiKeyPlaceholder + "\n"
}

// ModelFor returns the default model name for a provider, falling back to
// the OpenAI model for unknown tags.
func ModelFor(p Provider) string {
	if m, ok := providerModels[p]; ok {
		return m
	}
	return providerModels[DefaultProvider]
}

// EnvTemplate returns the .env.example content for a provider, falling back
// to the OpenAI entry for unknown tags.
func EnvTemplate(p Provider) string {
	if env, ok := providerEnv[p]; ok {
		return env
	}
	return providerEnv[DefaultProvider]
}
