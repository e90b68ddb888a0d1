package slider

import (
	"strings"

	"github.com/go-drift/slider/pkg/errors"
)

// Image describes one slide.
type Image struct {
	// Src is the image URL. Required.
	Src string `yaml:"src" json:"src"`
	// Alt is the alternative text.
	Alt string `yaml:"alt,omitempty" json:"alt,omitempty"`
}

// validate reports a descriptor that cannot be rendered.
func (img Image) validate(index int) error {
	if strings.TrimSpace(img.Src) == "" {
		return &errors.ValidationError{Field: "src", Index: index, Reason: "image source is required"}
	}
	return nil
}
