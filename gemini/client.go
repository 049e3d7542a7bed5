// Package gemini wraps the Gemini generation capability behind a one-method
// interface so handlers and tests stay independent of the SDK.
package gemini

import (
	"context"

	"github.com/SaiNageswarS/gemini-notion-api/appconfig"
	"google.golang.org/genai"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const defaultModel = "gemini-2.0-flash"

// Generator produces text for a prompt.
type Generator interface {
	Generate(ctx context.Context, promptText string) (string, error)
}

// Client calls the Gemini API. The SDK client is created per call, matching
// the request-scoped lifecycle of everything else in this service.
type Client struct {
	apiKey string
	model  string
}

func ProvideClient(cfg *appconfig.AppConfig) *Client {
	return &Client{
		apiKey: cfg.GeminiAPIKey,
		model:  defaultModel,
	}
}

func (c *Client) Generate(ctx context.Context, promptText string) (string, error) {
	if c.apiKey == "" {
		return "", status.Error(codes.FailedPrecondition, "GEMINI_API_KEY not configured")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  c.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", status.Errorf(codes.Internal, "gemini client: %v", err)
	}

	resp, err := client.Models.GenerateContent(ctx, c.model, genai.Text(promptText), nil)
	if err != nil {
		return "", status.Errorf(codes.Internal, "generate content: %v", err)
	}
	return resp.Text(), nil
}
