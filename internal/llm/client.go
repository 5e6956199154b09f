// Package llm provides a thin client abstraction over the generative-model provider.
package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// Client is an abstraction over generative-model providers. The autofill
// assistant depends on this interface so tests can inject fakes.
type Client interface {
	// Generate generates plain text content with the named model.
	Generate(ctx context.Context, model, prompt string) (string, error)
	// GenerateJSON generates content with the named model, requesting a
	// JSON response and stripping any markdown wrappers.
	GenerateJSON(ctx context.Context, model, prompt string) (string, error)
	// ListModelIDs returns the IDs of available models that support
	// content generation.
	ListModelIDs(ctx context.Context) ([]string, error)
	// Close releases any resources held by the client.
	Close() error
}

// GeminiClient implements Client for Google Gemini.
type GeminiClient struct {
	client *genai.Client
}

// NewGeminiClient creates a new Gemini client.
func NewGeminiClient(ctx context.Context, apiKey string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{client: client}, nil
}

// Generate generates plain text content with the named model.
func (c *GeminiClient) Generate(ctx context.Context, model, prompt string) (string, error) {
	m := c.client.GenerativeModel(model)

	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	return extractTextFromResponse(resp)
}

// GenerateJSON generates content with the named model, requesting a JSON
// response and stripping any markdown wrappers.
func (c *GeminiClient) GenerateJSON(ctx context.Context, model, prompt string) (string, error) {
	m := c.client.GenerativeModel(model)
	m.SetTemperature(0.7)
	m.SetMaxOutputTokens(2048)
	m.ResponseMIMEType = "application/json"

	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	text, err := extractTextFromResponse(resp)
	if err != nil {
		return "", err
	}

	return cleanJSONBlock(text), nil
}

// ListModelIDs returns the IDs of available models that support content
// generation, in provider order.
func (c *GeminiClient) ListModelIDs(ctx context.Context) ([]string, error) {
	var ids []string
	it := c.client.ListModels(ctx)
	for {
		info, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list models: %w", err)
		}
		if !supportsGeneration(info) {
			continue
		}
		ids = append(ids, strings.TrimPrefix(info.Name, "models/"))
	}
	return ids, nil
}

// Close releases resources held by the client.
func (c *GeminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

func supportsGeneration(info *genai.ModelInfo) bool {
	for _, method := range info.SupportedGenerationMethods {
		if method == "generateContent" {
			return true
		}
	}
	return false
}

// extractTextFromResponse extracts text from a Gemini API response.
func extractTextFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no content in response")
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}

	if len(parts) == 0 {
		return "", fmt.Errorf("no text parts in response")
	}

	return strings.Join(parts, ""), nil
}

// cleanJSONBlock removes markdown code block wrappers from JSON.
func cleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}
