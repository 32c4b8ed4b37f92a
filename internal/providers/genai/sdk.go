package genai

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	gsdk "google.golang.org/genai"

	"assetgen/internal/domain"
	"assetgen/internal/infra"
)

// SDKClient generates images through the official Go SDK.
type SDKClient struct {
	client *gsdk.Client
	model  string
	logger *infra.Logger
}

// NewSDKClient builds a Gemini API backed SDK client.
func NewSDKClient(ctx context.Context, opts Options) (*SDKClient, error) {
	apiKey := strings.TrimSpace(opts.APIKey)
	if apiKey == "" {
		return nil, fmt.Errorf("genai: %w: GEMINI_API_KEY", domain.ErrMissingCredential)
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 120 * time.Second}
	}

	cfg := &gsdk.ClientConfig{
		APIKey:     apiKey,
		Backend:    gsdk.BackendGeminiAPI,
		HTTPClient: httpClient,
	}
	if base, version := splitBaseURL(opts.BaseURL); base != "" {
		cfg.HTTPOptions = gsdk.HTTPOptions{BaseURL: base, APIVersion: version}
	}

	client, err := gsdk.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("genai: sdk client: %w", err)
	}

	model := opts.Model
	if model == "" {
		model = DefaultModel
	}
	return &SDKClient{client: client, model: model, logger: loggerOrDiscard(opts.Logger)}, nil
}

// Model returns the configured Gemini model identifier.
func (c *SDKClient) Model() string {
	return c.model
}

// GenerateImage returns the first inline image part of the response.
func (c *SDKClient) GenerateImage(ctx context.Context, req ImageRequest) (*ImageAsset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	prompt := strings.TrimSpace(req.Prompt)
	if prompt == "" {
		return nil, fmt.Errorf("genai: prompt is required")
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, gsdk.Text(prompt), &gsdk.GenerateContentConfig{
		ResponseModalities: []string{"IMAGE", "TEXT"},
	})
	if err != nil {
		return nil, fmt.Errorf("genai: sdk generate: %w", err)
	}
	if resp != nil {
		for _, cand := range resp.Candidates {
			if cand == nil || cand.Content == nil {
				continue
			}
			for _, part := range cand.Content.Parts {
				if part == nil || part.InlineData == nil || len(part.InlineData.Data) == 0 {
					continue
				}
				asset := &ImageAsset{
					Data:   part.InlineData.Data,
					Format: firstNonEmpty(part.InlineData.MIMEType, "image/png"),
				}
				asset.Width, asset.Height = decodeImageDimensions(asset.Data)
				c.logger.Debug().
					Str("request_id", req.RequestID).
					Str("model", c.model).
					Int("bytes", len(asset.Data)).
					Msg("genai: generated sdk image asset")
				return asset, nil
			}
		}
	}
	return nil, fmt.Errorf("genai: %w", domain.ErrNoImagePayload)
}

// splitBaseURL separates a configured REST base such as
// https://host/v1beta into the SDK's base URL and API version. The default
// endpoint yields empty values so the SDK keeps its own defaults.
func splitBaseURL(raw string) (string, string) {
	raw = strings.TrimRight(strings.TrimSpace(raw), "/")
	if raw == "" || raw == DefaultBaseURL {
		return "", ""
	}
	idx := strings.LastIndex(raw, "/")
	if idx > len("https://") {
		last := raw[idx+1:]
		if strings.HasPrefix(last, "v1") {
			return raw[:idx] + "/", last
		}
	}
	return raw + "/", ""
}
