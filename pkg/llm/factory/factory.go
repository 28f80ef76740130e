package factory

import (
	"ai-lifeboard-be/pkg/llm"
	"ai-lifeboard-be/pkg/llm/ollama"
	"ai-lifeboard-be/pkg/llm/openai"
	"fmt"
)

func NewLLMProvider(providerType, modelName, baseURL, apiKey string) (llm.LLMProvider, error) {
	switch providerType {
	case "ollama":
		if baseURL == "" {
			baseURL = "http://localhost:11434" // Default
		}
		return ollama.NewOllamaProvider(baseURL, modelName), nil
	case "openai":
		if apiKey == "" {
			// Fail fast: a missing key would surface later as opaque 401s
			return nil, fmt.Errorf("openai provider requires LLM_API_KEY to be set")
		}
		return openai.NewOpenAIProvider(apiKey, baseURL, modelName), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
