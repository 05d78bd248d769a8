package deepseek

import "time"

const (
	// DefaultBaseURL is the default DeepSeek API endpoint
	DefaultBaseURL = "https://api.deepseek.com/v1"

	// TogetherBaseURL serves DeepSeek models through Together's OpenAI-compatible API
	TogetherBaseURL = "https://api.together.xyz/v1"

	// OpenAIBaseURL is the upstream OpenAI endpoint
	OpenAIBaseURL = "https://api.openai.com/v1"

	// DefaultModel is the default model to use
	DefaultModel = "deepseek-chat"

	// DefaultTimeout bounds a single HTTP round trip
	DefaultTimeout = 30 * time.Second
)
