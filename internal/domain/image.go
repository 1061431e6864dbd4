package domain

import (
	"encoding/base64"
	"fmt"
)

// DefaultImageFilename is the fixed download name for generated images.
const DefaultImageFilename = "kugy-ai-generated-image.png"

// GeneratedImage is the single-slot result of an image generation: a
// base64-encoded PNG plus the prompt that produced it.
type GeneratedImage struct {
	PNGBase64        string
	Prompt           string
	CreditsRemaining string
}

func (g GeneratedImage) Decode() ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(g.PNGBase64)
	if err != nil {
		return nil, fmt.Errorf("decode image payload: %w", err)
	}
	return data, nil
}

// DataURI renders the image as an inline data URI.
func (g GeneratedImage) DataURI() string {
	return "data:image/png;base64," + g.PNGBase64
}
