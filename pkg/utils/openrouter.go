package utils

import (
	"context"
	"fmt"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

const (
	openRouterBaseURL = "https://openrouter.ai/api/v1"
	defaultGuideModel = "google/gemini-2.0-flash-001"

	appReferer = "https://qiongyou-travel-guide.vercel.app"
	appTitle   = "Budget Travel Guide Generator"
)

// GuideAIClientInterface is the LLM boundary for guide generation. It returns
// the raw completion text; parsing happens in the service layer.
type GuideAIClientInterface interface {
	GenerateGuide(ctx context.Context, prompt string) (string, error)
}

// OpenRouterClient talks to OpenRouter's OpenAI-compatible chat completion API.
type OpenRouterClient struct {
	client *openai.Client
	model  string
}

func NewOpenRouterClient(apiKey, model string) GuideAIClientInterface {
	if model == "" {
		model = defaultGuideModel
	}

	config := openai.DefaultConfig(apiKey)
	config.BaseURL = openRouterBaseURL
	config.HTTPClient = &http.Client{
		Timeout:   60 * time.Second,
		Transport: &attributionTransport{base: http.DefaultTransport},
	}

	return &OpenRouterClient{
		client: openai.NewClientWithConfig(config),
		model:  model,
	}
}

// GenerateGuide issues a single chat completion with one user message. No
// retry, no streaming; a failed call means the caller falls back locally.
func (c *OpenRouterClient) GenerateGuide(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: 0.7,
		MaxTokens:   4000,
	})
	if err != nil {
		return "", fmt.Errorf("openrouter chat completion: %w", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("openrouter returned no completion")
	}

	return resp.Choices[0].Message.Content, nil
}

// attributionTransport adds the OpenRouter app-attribution headers to every
// outbound request.
type attributionTransport struct {
	base http.RoundTripper
}

func (t *attributionTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.Header.Set("HTTP-Referer", appReferer)
	req.Header.Set("X-Title", appTitle)
	return t.base.RoundTrip(req)
}
