package utils

import (
	"context"
	"strings"
)

const mockPlan = `## Trip Overview
A relaxed long weekend in Lisbon in May, mixing viewpoints, tiles and seafood.

## Day-by-Day Itinerary Outline
**Day 1**: Arrive in Lisbon and check in near Baixa.
Walk up to the Miradouro da Senhora do Monte for sunset.
**Day 2**: Explore the Belem Tower and the Jeronimos Monastery.
Lunch at Time Out Market.
**Day 3**: Day trip to Sintra to visit the Pena Palace.

## Budget Allocation
- Flights: $450
- Accommodation: $360
- Food: $180
- Activities: $90

## Packing List
- Comfortable walking shoes
- Light jacket

## Local Tips
Buy a Viva Viagem card for trams and trains.`

// MockGenerator answers with a fixed reply. It is used when no provider key
// is configured.
type MockGenerator struct {
	Reply string
}

func NewMockGenerator(reply string) *MockGenerator {
	if reply == "" {
		reply = mockPlan
	}
	return &MockGenerator{Reply: reply}
}

func (m *MockGenerator) Generate(ctx context.Context, _ GenerateRequest) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return m.Reply, nil
}

// Stream sends the reply word by word.
func (m *MockGenerator) Stream(ctx context.Context, _ GenerateRequest, onChunk func(string) error) error {
	for _, chunk := range strings.SplitAfter(m.Reply, " ") {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := onChunk(chunk); err != nil {
			return err
		}
	}
	return nil
}

func (m *MockGenerator) Close() error { return nil }
