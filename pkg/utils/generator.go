package utils

import (
	"context"
	"fmt"
	"strings"
)

// ImagePayload is an image attached to a model request.
type ImagePayload struct {
	MIMEType string
	Data     []byte
}

type GenerateRequest struct {
	Prompt      string
	Image       *ImagePayload
	Temperature float32
}

// Generator is a text model that can answer in one piece or as a stream.
type Generator interface {
	Generate(ctx context.Context, req GenerateRequest) (string, error)
	// Stream calls onChunk for every text fragment in arrival order. An error
	// from onChunk stops the stream and is returned.
	Stream(ctx context.Context, req GenerateRequest, onChunk func(string) error) error
	Close() error
}

// NewGenerator picks a provider. A missing key falls back to the mock so
// local runs work offline.
func NewGenerator(ctx context.Context, provider, apiKey, model string) (Generator, error) {
	switch strings.ToLower(strings.TrimSpace(provider)) {
	case "mock":
		return NewMockGenerator(""), nil
	case "openai":
		if apiKey == "" {
			return NewMockGenerator(""), nil
		}
		return NewOpenAIGenerator(apiKey, model), nil
	case "gemini", "":
		if apiKey == "" {
			return NewMockGenerator(""), nil
		}
		return NewGeminiGenerator(ctx, apiKey, model)
	default:
		return nil, fmt.Errorf("unsupported provider: %s", provider)
	}
}
