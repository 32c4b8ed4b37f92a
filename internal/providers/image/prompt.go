package image

import (
	"fmt"
	"strings"

	"assetgen/internal/domain"
)

// BuildAssetPrompt converts a spec into the instruction sent to the image
// model. The output depends only on the AssetSpec.
func BuildAssetPrompt(spec domain.AssetSpec) (string, error) {
	if err := spec.Validate(); err != nil {
		return "", err
	}

	lines := []string{
		"Generate a single game asset image.",
		fmt.Sprintf("Art style: %s.", strings.TrimSpace(spec.Style.ArtDirection)),
		fmt.Sprintf("Type: %s.", strings.TrimSpace(spec.Style.Extra)),
		fmt.Sprintf("Subject: %s.", strings.TrimSpace(spec.Title)),
		fmt.Sprintf("Description: %s", sentence(spec.Description)),
		fmt.Sprintf("Dimensions: %dx%d pixels.", spec.Dimensions.Width, spec.Dimensions.Height),
		"Must have transparent background (PNG with alpha channel).",
		"No text, no labels, no watermarks. Just the game asset sprite.",
	}
	return strings.Join(lines, " "), nil
}

// sentence terminates s with a single period.
func sentence(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasSuffix(s, ".") {
		return s
	}
	return s + "."
}
