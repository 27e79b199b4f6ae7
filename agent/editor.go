package agent

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/BaSui01/contentflow/config"
	"github.com/BaSui01/contentflow/internal/metrics"
	"github.com/BaSui01/contentflow/llm/video"
)

// EditorInput is the editor (composition) stage input.
type EditorInput struct {
	ImageRefs   []string
	AudioRef    string
	Platform    string
	Duration    float64 // target duration in seconds
	AspectRatio config.AspectRatio
}

// VideoResult is the editor stage output. VideoRef is an opaque artifact
// handle.
type VideoResult struct {
	VideoRef string
	Duration float64 // seconds
	Metadata map[string]any
}

// EditorAgent composes the generated stills and voice-over into the final
// video through a composition provider.
type EditorAgent struct {
	BaseAgent
	cfg      config.EditorConfig
	composer video.Composer
	prober   Prober
}

// NewEditorAgent creates the editor stage agent.
func NewEditorAgent(cfg config.EditorConfig, composer video.Composer, prober Prober, logger *zap.Logger, collector *metrics.Collector) *EditorAgent {
	return &EditorAgent{
		BaseAgent: NewBaseAgent("editor", logger, collector),
		cfg:       cfg,
		composer:  composer,
		prober:    prober,
	}
}

// Process composes the final video. Each image is shown for an equal share
// of the target duration.
func (a *EditorAgent) Process(ctx context.Context, in EditorInput) (VideoResult, error) {
	if len(in.ImageRefs) == 0 {
		return VideoResult{}, a.inputError("image_refs")
	}
	if in.AudioRef == "" {
		return VideoResult{}, a.inputError("audio_ref")
	}

	perImage := imageDisplayDuration(in.Duration, len(in.ImageRefs))

	resp, err := a.composer.Compose(ctx, &video.ComposeRequest{
		ImageRefs:      in.ImageRefs,
		AudioRef:       in.AudioRef,
		TargetDuration: in.Duration,
		AspectRatio:    string(in.AspectRatio),
		ImageDuration:  perImage,
		Transition:     a.cfg.Transition,
		FPS:            a.cfg.FPS,
	})
	a.recordProviderCall(a.composer.Name(), "video", err)
	if err != nil {
		return VideoResult{}, a.providerError(a.composer.Name(), err)
	}

	return VideoResult{
		VideoRef: resp.VideoRef,
		Duration: resp.Duration,
		Metadata: map[string]any{
			"platform":     in.Platform,
			"duration":     in.Duration,
			"aspect_ratio": string(in.AspectRatio),
			"transition":   a.cfg.Transition,
			"provider":     a.composer.Name(),
		},
	}, nil
}

// ValidateOutput checks that the video artifact resolves to a playable file
// with positive duration.
func (a *EditorAgent) ValidateOutput(out VideoResult) error {
	if out.VideoRef == "" {
		return fmt.Errorf("missing video ref")
	}
	if err := a.prober.ProbeFile(out.VideoRef); err != nil {
		return fmt.Errorf("video artifact: %w", err)
	}
	if out.Duration <= 0 {
		return fmt.Errorf("non-positive video duration %v", out.Duration)
	}
	return nil
}

// imageDisplayDuration splits the target duration evenly across the images.
// Pure and deterministic.
func imageDisplayDuration(total float64, count int) float64 {
	if count <= 0 {
		return 0
	}
	return total / float64(count)
}
