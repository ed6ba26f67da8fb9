package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Wire types for the chat-completions endpoint.

type chatMessage struct {
	Role         string            `json:"role"`
	Content      string            `json:"content"`
	FunctionCall *chatFunctionCall `json:"function_call,omitempty"`
}

type chatFunctionCall struct {
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}

type chatFunction struct {
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Parameters  map[string]any `json:"parameters"`
}

type chatRequest struct {
	Model        string         `json:"model"`
	Messages     []chatMessage  `json:"messages"`
	Functions    []chatFunction `json:"functions,omitempty"`
	FunctionCall any            `json:"function_call,omitempty"`
	Temperature  float64        `json:"temperature,omitempty"`
	MaxTokens    int            `json:"max_tokens,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// CreateChatCompletion sends a chat request and returns the first choice.
func (c *Client) CreateChatCompletion(ctx context.Context, req *Request) (*Response, error) {
	wireResp, err := c.callAPI(ctx, c.transformRequest(req))
	if err != nil {
		return nil, err
	}
	return transformResponse(wireResp), nil
}

// callAPI posts a request to the chat-completions endpoint.
func (c *Client) callAPI(ctx context.Context, req chatRequest) (*chatResponse, error) {
	url := fmt.Sprintf("%s/chat/completions", c.apiURL)

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("openai: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("openai: failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("openai: failed to call API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("openai: API error %d: %s", resp.StatusCode, string(raw))
	}

	var result chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("openai: failed to decode response: %w", err)
	}
	return &result, nil
}

// transformRequest converts the normalized request to wire format.
func (c *Client) transformRequest(req *Request) chatRequest {
	wire := chatRequest{
		Model:       c.model,
		Messages:    make([]chatMessage, len(req.Messages)),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	for i, msg := range req.Messages {
		wire.Messages[i] = chatMessage{Role: msg.Role, Content: msg.Content}
	}
	for _, fn := range req.Functions {
		wire.Functions = append(wire.Functions, chatFunction{
			Name:        fn.Name,
			Description: fn.Description,
			Parameters:  fn.Parameters,
		})
	}
	if req.ForceFunction != "" {
		wire.FunctionCall = map[string]string{"name": req.ForceFunction}
	}
	return wire
}

// transformResponse converts the wire response to the normalized format.
func transformResponse(resp *chatResponse) *Response {
	if len(resp.Choices) == 0 {
		return &Response{}
	}

	msg := resp.Choices[0].Message
	out := &Response{Content: msg.Content}
	if msg.FunctionCall != nil {
		out.FunctionCall = &FunctionCall{
			Name:      msg.FunctionCall.Name,
			Arguments: msg.FunctionCall.Arguments,
		}
	}
	return out
}
