package image

import (
	"context"
	"fmt"

	"assetgen/internal/domain"
	"assetgen/internal/providers/genai"
)

// GeminiGenerator adapts any genai transport to the Generator contract.
type GeminiGenerator struct {
	client genai.ImageClient
}

func NewGeminiGenerator(client genai.ImageClient) *GeminiGenerator {
	return &GeminiGenerator{client: client}
}

// Model reports the backing model name.
func (g *GeminiGenerator) Model() string { return g.client.Model() }

func (g *GeminiGenerator) Generate(ctx context.Context, req GenerateRequest) (*Asset, error) {
	asset, err := g.client.GenerateImage(ctx, genai.ImageRequest{
		Prompt:    req.Prompt,
		Width:     req.Width,
		Height:    req.Height,
		RequestID: req.RequestID,
	})
	if err != nil {
		return nil, err
	}
	if asset == nil || len(asset.Data) == 0 {
		return nil, fmt.Errorf("image: %s: %w", g.client.Model(), domain.ErrNoImagePayload)
	}
	return &Asset{
		Format: asset.Format,
		Width:  asset.Width,
		Height: asset.Height,
		Data:   asset.Data,
	}, nil
}

var _ Generator = (*GeminiGenerator)(nil)
