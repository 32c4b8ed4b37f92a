// Package postprocess normalizes raw model output into sprite-ready PNGs:
// exact target size and a transparent backdrop.
package postprocess

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"os"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"assetgen/internal/domain"
	"assetgen/internal/storage"
)

const (
	DefaultWhiteThreshold       = 240
	DefaultNearWhiteThreshold   = 220
	DefaultNearWhiteAlphaFactor = 0.3
)

// Processor resizes and mattes images. The zero value is not usable; build
// one with New.
type Processor struct {
	WhiteThreshold       uint8
	NearWhiteThreshold   uint8
	NearWhiteAlphaFactor float64
	Kernel               draw.Interpolator
}

// New returns a Processor with the default thresholds and a Catmull-Rom kernel.
func New() *Processor {
	return &Processor{
		WhiteThreshold:       DefaultWhiteThreshold,
		NearWhiteThreshold:   DefaultNearWhiteThreshold,
		NearWhiteAlphaFactor: DefaultNearWhiteAlphaFactor,
		Kernel:               draw.CatmullRom,
	}
}

// Process decodes data, resizes it to target when needed, applies the white
// matte and returns PNG bytes. Undecodable input yields
// domain.ErrPostProcessUnavailable.
func (p *Processor) Process(data []byte, target domain.Dimensions) ([]byte, error) {
	if target.Width <= 0 || target.Height <= 0 {
		return nil, fmt.Errorf("postprocess: invalid target %s", target)
	}
	src, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("postprocess: %w: %v", domain.ErrPostProcessUnavailable, err)
	}

	img := p.resize(toNRGBA(src), target)
	p.matte(img)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("postprocess: encode png from %s: %w", format, err)
	}
	return buf.Bytes(), nil
}

// ProcessFile rewrites the image at path in place.
func (p *Processor) ProcessFile(path string, target domain.Dimensions) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("postprocess: read %s: %w", path, err)
	}
	out, err := p.Process(data, target)
	if err != nil {
		return err
	}
	if err := storage.WriteFileAtomic(path, out); err != nil {
		return fmt.Errorf("postprocess: %w", err)
	}
	return nil
}

func toNRGBA(src image.Image) *image.NRGBA {
	if n, ok := src.(*image.NRGBA); ok && n.Rect.Min == (image.Point{}) {
		return n
	}
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return dst
}

func (p *Processor) resize(src *image.NRGBA, target domain.Dimensions) *image.NRGBA {
	b := src.Bounds()
	if b.Dx() == target.Width && b.Dy() == target.Height {
		return src
	}
	kernel := p.Kernel
	if kernel == nil {
		kernel = draw.CatmullRom
	}
	dst := image.NewNRGBA(image.Rect(0, 0, target.Width, target.Height))
	kernel.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}

// matte clears white pixels and fades near-white ones. Only RGB magnitude is
// considered; every other pixel keeps its alpha.
func (p *Processor) matte(img *image.NRGBA) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := img.NRGBAAt(x, y)
			switch {
			case above(c, p.WhiteThreshold):
				c.A = 0
			case above(c, p.NearWhiteThreshold):
				c.A = uint8(float64(c.A) * p.NearWhiteAlphaFactor)
			default:
				continue
			}
			img.SetNRGBA(x, y, c)
		}
	}
}

func above(c color.NRGBA, threshold uint8) bool {
	return c.R > threshold && c.G > threshold && c.B > threshold
}
