package openai

import "time"

const (
	// DefaultAPIURL is the OpenAI API base URL.
	DefaultAPIURL = "https://api.openai.com/v1"

	// DefaultModel is used when no model is configured.
	DefaultModel = "gpt-4o"

	// DefaultTimeout bounds one completion call.
	DefaultTimeout = 60 * time.Second
)
