package openai

import (
	"net/http"
	"time"
)

// Config holds the client construction options.
type Config struct {
	APIKey     string
	Model      string
	APIURL     string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Client is the OpenAI chat-completions API client.
type Client struct {
	apiKey     string
	apiURL     string
	model      string
	httpClient *http.Client
}

// NewClient creates a new OpenAI API client with the given API key.
func NewClient(apiKey string) *Client {
	return New(Config{APIKey: apiKey})
}

// New creates a client from full config, applying defaults for anything
// unset.
func New(cfg Config) *Client {
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.APIURL == "" {
		cfg.APIURL = DefaultAPIURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}
	return &Client{
		apiKey:     cfg.APIKey,
		apiURL:     cfg.APIURL,
		model:      cfg.Model,
		httpClient: cfg.HTTPClient,
	}
}

// SetAPIURL overrides the API base URL. Used by tests to point the client at
// a local server.
func (c *Client) SetAPIURL(url string) {
	c.apiURL = url
}

// Model returns the configured model name.
func (c *Client) Model() string {
	return c.model
}
