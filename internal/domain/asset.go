package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Category enumerates the kinds of game art the catalog declares.
type Category string

const (
	CategoryTerrain   Category = "terrain"
	CategoryBuilding  Category = "building"
	CategoryResource  Category = "resource"
	CategoryItem      Category = "item"
	CategoryCharacter Category = "character"
	CategoryUIMinimap Category = "ui_minimap"
	CategoryUIEmotion Category = "ui_emotion"
	CategoryUIBubble  Category = "ui_bubble"
	CategoryUIAction  Category = "ui_action"
)

// Categories lists every supported category in declaration order.
func Categories() []Category {
	return []Category{
		CategoryTerrain,
		CategoryBuilding,
		CategoryResource,
		CategoryItem,
		CategoryCharacter,
		CategoryUIMinimap,
		CategoryUIEmotion,
		CategoryUIBubble,
		CategoryUIAction,
	}
}

// Dimensions is a target pixel size.
type Dimensions struct {
	Width  int `json:"width" validate:"gt=0"`
	Height int `json:"height" validate:"gt=0"`
}

// String renders the size as WxH.
func (d Dimensions) String() string {
	return fmt.Sprintf("%dx%d", d.Width, d.Height)
}

// StyleFields carries the art direction shared by every spec plus the
// per-category augmentation in Extra.
type StyleFields struct {
	ArtStyle     string `json:"art_style"`
	View         string `json:"view"`
	Genre        string `json:"genre"`
	Palette      string `json:"palette"`
	Shadows      string `json:"shadows"`
	Era          string `json:"era"`
	Background   string `json:"background"`
	AssetType    string `json:"type"`
	Lighting     string `json:"lighting"`
	Edges        string `json:"edges"`
	ArtDirection string `json:"art_direction" validate:"required"`
	Extra        string `json:"extra"`
}

// AssetSpec declares one asset to produce. OutputPath is the identity key.
type AssetSpec struct {
	Title       string      `json:"title" validate:"required"`
	Description string      `json:"description" validate:"required"`
	Category    Category    `json:"category" validate:"required,asset_category"`
	Dimensions  Dimensions  `json:"dimensions"`
	Style       StyleFields `json:"style"`
	OutputPath  string      `json:"output_path" validate:"required"`
}

var specValidator = newSpecValidator()

func newSpecValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("asset_category", func(fl validator.FieldLevel) bool {
		return IsKnownCategory(Category(fl.Field().String()))
	})
	return v
}

// IsKnownCategory reports whether c is part of the category enumeration.
func IsKnownCategory(c Category) bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

// Validate rejects malformed specs with an error wrapping ErrInvalidSpec.
func (s AssetSpec) Validate() error {
	if err := specValidator.Struct(s); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("%w: %s: %s", ErrInvalidSpec, s.OutputPath, strings.Join(fields, ", "))
		}
		return fmt.Errorf("%w: %s: %v", ErrInvalidSpec, s.OutputPath, err)
	}
	if strings.TrimSpace(s.Title) == "" || strings.TrimSpace(s.Description) == "" {
		return fmt.Errorf("%w: %s: title and description must not be blank", ErrInvalidSpec, s.OutputPath)
	}
	return nil
}
