// Package speech provides the speech-synthesis provider interface.
package speech

import (
	"context"
	"time"
)

// SynthesizeRequest represents a text-to-speech request. Markup is plain
// text or SSML; providers that do not support SSML strip the tags.
type SynthesizeRequest struct {
	Markup       string            `json:"markup"`
	VoiceID      string            `json:"voice_id,omitempty"`
	SpeakingRate float64           `json:"speaking_rate,omitempty"` // 0.25-4.0
	Format       string            `json:"format,omitempty"`        // mp3, wav, pcm
	Language     string            `json:"language,omitempty"`
	Metadata     map[string]string `json:"metadata,omitempty"`
}

// SynthesizeResponse represents the response from a synthesis request.
type SynthesizeResponse struct {
	Provider  string        `json:"provider"`
	AudioData []byte        `json:"audio_data,omitempty"`
	Format    string        `json:"format"`
	Duration  time.Duration `json:"duration"`
	CharCount int           `json:"char_count,omitempty"`
	CreatedAt time.Time     `json:"created_at,omitempty"`
}

// Provider defines the speech-synthesis provider interface.
type Provider interface {
	// Synthesize converts markup to speech audio.
	Synthesize(ctx context.Context, req *SynthesizeRequest) (*SynthesizeResponse, error)

	// Name returns the provider name.
	Name() string
}
