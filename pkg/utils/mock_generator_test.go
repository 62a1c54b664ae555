package utils

import (
	"context"
	"strings"
	"testing"
)

func TestMockGeneratorStreamReassembles(t *testing.T) {
	t.Parallel()

	g := NewMockGenerator("")
	var b strings.Builder
	chunks := 0
	err := g.Stream(context.Background(), GenerateRequest{Prompt: "x"}, func(s string) error {
		chunks++
		b.WriteString(s)
		return nil
	})
	if err != nil {
		t.Fatalf("Stream() error = %v", err)
	}
	if chunks < 2 || b.String() != mockPlan {
		t.Fatalf("stream gave %d chunks, text match = %v", chunks, b.String() == mockPlan)
	}
}

func TestNewGeneratorFallsBackToMock(t *testing.T) {
	t.Parallel()

	for _, provider := range []string{"mock", "gemini", "openai", ""} {
		g, err := NewGenerator(context.Background(), provider, "", "")
		if err != nil {
			t.Fatalf("%q: %v", provider, err)
		}
		if _, ok := g.(*MockGenerator); !ok {
			t.Fatalf("%q: got %T", provider, g)
		}
	}
	if _, err := NewGenerator(context.Background(), "llama", "key", ""); err == nil {
		t.Fatal("expected error for unknown provider")
	}
}
