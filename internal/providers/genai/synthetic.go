package genai

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"strconv"
	"strings"

	"assetgen/internal/infra"
)

const syntheticScale = 4

// SyntheticClient renders deterministic placeholder sprites offline. The
// output is oversized on a white backdrop so resizing and matting are
// exercised exactly as with remote output.
type SyntheticClient struct {
	logger *infra.Logger
}

// NewSyntheticClient returns a client that needs no credential.
func NewSyntheticClient(logger *infra.Logger) *SyntheticClient {
	return &SyntheticClient{logger: loggerOrDiscard(logger)}
}

func (c *SyntheticClient) Model() string { return "synthetic" }

// GenerateImage draws a seeded diamond for the prompt.
func (c *SyntheticClient) GenerateImage(ctx context.Context, req ImageRequest) (*ImageAsset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Prompt) == "" {
		return nil, fmt.Errorf("genai: prompt is required")
	}
	width, height := req.Width, req.Height
	if width <= 0 || height <= 0 {
		width, height = 64, 64
	}
	width *= syntheticScale
	height *= syntheticScale

	seed := deterministicSeed(req.Prompt)
	data, err := renderSyntheticImage(width, height, seed)
	if err != nil {
		return nil, err
	}

	c.logger.Debug().
		Str("request_id", req.RequestID).
		Str("seed", seed).
		Msg("genai: generated synthetic image asset")

	return &ImageAsset{Format: "image/png", Width: width, Height: height, Data: data}, nil
}

func renderSyntheticImage(width, height int, seed string) ([]byte, error) {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{color.RGBA{R: 255, G: 255, B: 255, A: 255}}, image.Point{}, draw.Src)

	fill := colorFromSeed(seed, 0)
	shade := colorFromSeed(seed, 1)
	cx, cy := width/2, height/2
	rx, ry := maxInt(1, width*3/8), maxInt(1, height*3/8)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			dx := absInt(x-cx) * ry
			dy := absInt(y-cy) * rx
			if dx+dy > rx*ry {
				continue
			}
			if y > cy {
				img.Set(x, y, shade)
			} else {
				img.Set(x, y, fill)
			}
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("genai: encode synthetic image: %w", err)
	}
	return buf.Bytes(), nil
}

// colorFromSeed picks a saturated colour that stays clear of the white
// matte thresholds.
func colorFromSeed(seed string, shift int) color.RGBA {
	if seed == "" {
		seed = "000000"
	}
	doubled := seed + seed
	start := (shift * 6) % len(seed)
	segment := doubled[start : start+6]
	r := mustParseHexByte(segment[0:2]) % 200
	g := mustParseHexByte(segment[2:4]) % 200
	b := mustParseHexByte(segment[4:6]) % 200
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func mustParseHexByte(s string) uint8 {
	v, err := strconv.ParseUint(s, 16, 8)
	if err != nil {
		return 0
	}
	return uint8(v)
}

func deterministicSeed(parts ...any) string {
	hasher := sha256.New()
	for _, part := range parts {
		hasher.Write([]byte(fmt.Sprintf("%v", part)))
		hasher.Write([]byte{'|'})
	}
	return hex.EncodeToString(hasher.Sum(nil))[:16]
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
