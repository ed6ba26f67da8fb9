package openai

// Message is one chat message.
type Message struct {
	Role    string
	Content string
}

// FunctionDef declares a callable function the model may invoke, with a JSON
// Schema parameter description.
type FunctionDef struct {
	Name        string
	Description string
	Parameters  map[string]any
}

// Request is a chat-completion request.
type Request struct {
	Messages []Message
	// Functions, when set, are offered to the model as callable tools.
	Functions []FunctionDef
	// ForceFunction pins the model to calling the named function.
	ForceFunction string
	Temperature   float64
	MaxTokens     int
}

// FunctionCall is the model's structured invocation of a declared function.
// Arguments is the raw JSON string produced by the model.
type FunctionCall struct {
	Name      string
	Arguments string
}

// Response is a normalized chat-completion response.
type Response struct {
	Content      string
	FunctionCall *FunctionCall
}
