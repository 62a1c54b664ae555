package utils

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

const defaultGeminiModel = "gemini-1.5-flash"

type GeminiGenerator struct {
	client *genai.Client
	model  string
}

func NewGeminiGenerator(ctx context.Context, apiKey, model string) (*GeminiGenerator, error) {
	if model == "" {
		model = defaultGeminiModel
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiGenerator{client: client, model: model}, nil
}

func (g *GeminiGenerator) generativeModel(req GenerateRequest) *genai.GenerativeModel {
	m := g.client.GenerativeModel(g.model)
	if req.Temperature > 0 {
		m.SetTemperature(req.Temperature)
	}
	return m
}

func geminiParts(req GenerateRequest) []genai.Part {
	parts := make([]genai.Part, 0, 2)
	if req.Image != nil && len(req.Image.Data) > 0 {
		parts = append(parts, genai.Blob{MIMEType: req.Image.MIMEType, Data: req.Image.Data})
	}
	return append(parts, genai.Text(req.Prompt))
}

func geminiText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	var b strings.Builder
	for _, cand := range resp.Candidates {
		if cand == nil || cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if t, ok := part.(genai.Text); ok {
				b.WriteString(string(t))
			}
		}
		break
	}
	return b.String()
}

func (g *GeminiGenerator) Generate(ctx context.Context, req GenerateRequest) (string, error) {
	resp, err := g.generativeModel(req).GenerateContent(ctx, geminiParts(req)...)
	if err != nil {
		return "", fmt.Errorf("%w: gemini: %v", ErrUnexpectedBehaviorOfAI, err)
	}
	text := geminiText(resp)
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: no content generated by Gemini", ErrUnexpectedBehaviorOfAI)
	}
	return text, nil
}

func (g *GeminiGenerator) Stream(ctx context.Context, req GenerateRequest, onChunk func(string) error) error {
	iter := g.generativeModel(req).GenerateContentStream(ctx, geminiParts(req)...)
	for {
		resp, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("%w: gemini stream: %v", ErrUnexpectedBehaviorOfAI, err)
		}
		if chunk := geminiText(resp); chunk != "" {
			if err := onChunk(chunk); err != nil {
				return err
			}
		}
	}
}

func (g *GeminiGenerator) Close() error {
	return g.client.Close()
}
