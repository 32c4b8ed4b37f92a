package jsoncfg

import (
	"encoding/json"
	"fmt"
	"strings"

	"assetgen/internal/domain"
)

const (
	// DefaultSpecVersion is the schema version written into exported documents.
	DefaultSpecVersion = "1.0.0"
	// DefaultCampaign tags every exported document.
	DefaultCampaign = "botworld_assets"
	// DefaultBrandName is the brand recorded in document metadata.
	DefaultBrandName = "Botworld"
	// DefaultUsageContext marks documents as game assets.
	DefaultUsageContext = "game"
	// DefaultFormat is the canonical output format.
	DefaultFormat = "PNG with transparency"
)

type Meta struct {
	SpecVersion  string `json:"spec_version"`
	Title        string `json:"title"`
	Campaign     string `json:"campaign"`
	BrandName    string `json:"brand_name"`
	UsageContext string `json:"usage_context"`
}

type PhysicalProperties struct {
	WidthPx  int    `json:"width_px"`
	HeightPx int    `json:"height_px"`
	Format   string `json:"format"`
}

type Subject struct {
	Type               string             `json:"type"`
	Name               string             `json:"name"`
	Variant            string             `json:"variant"`
	PhysicalProperties PhysicalProperties `json:"physical_properties"`
}

type Surface struct {
	Material           string `json:"material"`
	ReflectionStrength int    `json:"reflection_strength"`
}

type Background struct {
	Color   string `json:"color"`
	Texture string `json:"texture"`
	Effect  string `json:"effect"`
}

type Atmosphere struct {
	Mood     string   `json:"mood"`
	Keywords []string `json:"keywords"`
}

type Environment struct {
	Surface    Surface    `json:"surface"`
	Background Background `json:"background"`
	Atmosphere Atmosphere `json:"atmosphere"`
}

type Camera struct {
	Angle         string `json:"angle"`
	Framing       string `json:"framing"`
	FocalLengthMM int    `json:"focal_length_mm"`
	DepthOfField  string `json:"depth_of_field"`
}

type Lighting struct {
	KeyLightDirection  string `json:"key_light_direction"`
	KeyLightIntensity  string `json:"key_light_intensity"`
	FillLightDirection string `json:"fill_light_direction"`
	FillLightIntensity string `json:"fill_light_intensity"`
	RimLight           bool   `json:"rim_light"`
	ColorTemperature   string `json:"color_temperature"`
}

type Style struct {
	ArtDirection string             `json:"art_direction"`
	Extra        string             `json:"extra"`
	Description  string             `json:"description"`
	Common       domain.StyleFields `json:"common"`
}

type Controls struct {
	LockSubjectGeometry      bool `json:"lock_subject_geometry"`
	LockDimensions           bool `json:"lock_dimensions"`
	AllowBackgroundVariation bool `json:"allow_background_variation"`
}

// ImageSpec is the structured definition of one asset image.
type ImageSpec struct {
	Meta        Meta        `json:"meta"`
	Subject     Subject     `json:"subject"`
	Environment Environment `json:"environment"`
	Camera      Camera      `json:"camera"`
	Lighting    Lighting    `json:"lighting"`
	Style       Style       `json:"style"`
	Controls    Controls    `json:"controls"`
	OutputPath  string      `json:"output_path"`
}

// SpecDocument is the exported JSON envelope. The top-level key matches the
// document format accepted by the image tooling used for manual generation.
type SpecDocument struct {
	Image ImageSpec `json:"marketing_image"`
}

// FromAssetSpec expands an AssetSpec into its full structured document.
func FromAssetSpec(s domain.AssetSpec) SpecDocument {
	return SpecDocument{Image: ImageSpec{
		Meta: Meta{
			SpecVersion:  DefaultSpecVersion,
			Title:        s.Title,
			Campaign:     DefaultCampaign,
			BrandName:    DefaultBrandName,
			UsageContext: DefaultUsageContext,
		},
		Subject: Subject{
			Type:    "game_asset",
			Name:    s.Title,
			Variant: string(s.Category),
			PhysicalProperties: PhysicalProperties{
				WidthPx:  s.Dimensions.Width,
				HeightPx: s.Dimensions.Height,
				Format:   DefaultFormat,
			},
		},
		Environment: Environment{
			Surface:    Surface{Material: "none"},
			Background: Background{Color: "transparent", Texture: "none", Effect: "none"},
			Atmosphere: Atmosphere{
				Mood:     "fantasy RPG, warm and inviting",
				Keywords: []string{"pixel art", "isometric", "16-bit", "fantasy"},
			},
		},
		Camera: Camera{
			Angle:         "isometric_top_down",
			Framing:       "tight",
			FocalLengthMM: 50,
			DepthOfField:  "infinite",
		},
		Lighting: Lighting{
			KeyLightDirection:  "top_left",
			KeyLightIntensity:  "medium",
			FillLightDirection: "right",
			FillLightIntensity: "low",
			ColorTemperature:   "warm",
		},
		Style: Style{
			ArtDirection: s.Style.ArtDirection,
			Extra:        s.Style.Extra,
			Description:  s.Description,
			Common:       s.Style,
		},
		Controls: Controls{
			LockSubjectGeometry: true,
			LockDimensions:      true,
		},
		OutputPath: s.OutputPath,
	}}
}

// Validate ensures the document carries the fields needed for manual generation.
func (d SpecDocument) Validate() error {
	if strings.TrimSpace(d.Image.Meta.Title) == "" {
		return fmt.Errorf("meta.title is required")
	}
	if d.Image.Subject.PhysicalProperties.WidthPx <= 0 || d.Image.Subject.PhysicalProperties.HeightPx <= 0 {
		return fmt.Errorf("subject.physical_properties must be positive")
	}
	if strings.TrimSpace(d.Image.Style.Description) == "" {
		return fmt.Errorf("style.description is required")
	}
	return nil
}

// Marshal renders the document as indented JSON with a trailing newline.
func (d SpecDocument) Marshal() ([]byte, error) {
	b, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("json marshal: %w", err)
	}
	return append(b, '\n'), nil
}
