package image

import (
	"context"
)

// GenerateRequest describes a normalized request passed to any image provider.
type GenerateRequest struct {
	Prompt    string
	Width     int
	Height    int
	RequestID string
}

// Asset represents a generated image in its raw form.
type Asset struct {
	Format string
	Width  int
	Height int
	Data   []byte
}

// Generator is the contract implemented by all image providers. A call makes
// exactly one attempt; retrying is the caller's concern.
type Generator interface {
	Generate(ctx context.Context, req GenerateRequest) (*Asset, error)
}
