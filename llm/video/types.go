// Package video provides the composition provider interface that assembles
// still images and a voice-over track into a finished video.
package video

import (
	"context"
	"time"
)

// ComposeRequest represents a video composition request. ImageRefs and
// AudioRef are opaque handles produced by the artifact store; the composer
// resolves them itself.
type ComposeRequest struct {
	ImageRefs      []string          `json:"image_refs"`
	AudioRef       string            `json:"audio_ref"`
	TargetDuration float64           `json:"target_duration"` // seconds
	AspectRatio    string            `json:"aspect_ratio"`    // 16:9, 9:16, 1:1
	ImageDuration  float64           `json:"image_duration,omitempty"`
	Transition     string            `json:"transition,omitempty"` // smooth, fade, none
	FPS            int               `json:"fps,omitempty"`
	Metadata       map[string]string `json:"metadata,omitempty"`
}

// ComposeResponse represents the response from a composition request.
type ComposeResponse struct {
	Provider  string    `json:"provider"`
	VideoRef  string    `json:"video_ref"`
	Duration  float64   `json:"duration"` // seconds
	Format    string    `json:"format,omitempty"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// Composer defines the composition provider interface.
type Composer interface {
	// Compose renders image refs and an audio ref into a video.
	Compose(ctx context.Context, req *ComposeRequest) (*ComposeResponse, error)

	// Name returns the provider name.
	Name() string
}
