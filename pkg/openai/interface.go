package openai

import "context"

// IOpenAI is the client interface, extracted so usecases can mock the model.
type IOpenAI interface {
	// CreateChatCompletion sends a chat request and returns the first choice.
	CreateChatCompletion(ctx context.Context, req *Request) (*Response, error)

	// Model returns the configured model name.
	Model() string
}
