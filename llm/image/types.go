// Package image provides the image-synthesis provider interface.
package image

import (
	"context"
	"time"
)

// GenerateRequest represents an image generation request.
type GenerateRequest struct {
	Prompt   string            `json:"prompt"`
	Model    string            `json:"model,omitempty"`
	Size     string            `json:"size,omitempty"`    // 1024x1024, 576x1024, ...
	Quality  string            `json:"quality,omitempty"` // standard, hd
	Style    string            `json:"style,omitempty"`
	Seed     int64             `json:"seed,omitempty"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// GenerateResponse represents the response from image generation.
type GenerateResponse struct {
	Provider  string    `json:"provider"`
	Model     string    `json:"model,omitempty"`
	ImageData []byte    `json:"image_data,omitempty"`
	Format    string    `json:"format,omitempty"` // png, jpeg
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// Provider defines the image-synthesis provider interface.
type Provider interface {
	// Generate creates an image from a text prompt.
	Generate(ctx context.Context, req *GenerateRequest) (*GenerateResponse, error)

	// Name returns the provider name.
	Name() string
}
