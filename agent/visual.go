package agent

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/BaSui01/contentflow/config"
	"github.com/BaSui01/contentflow/internal/metrics"
	"github.com/BaSui01/contentflow/llm/image"
)

// VisualInput is the visual stage input.
type VisualInput struct {
	Script      string
	Platform    string
	Style       string
	AspectRatio config.AspectRatio
}

// VisualResult is the visual stage output. ImageRefs preserve script
// sentence order.
type VisualResult struct {
	ImageRefs []string
	Metadata  map[string]any
}

// VisualAgent derives one image prompt per script sentence and generates
// the stills through an image provider. Sub-requests fan out concurrently
// but all join before Process returns.
type VisualAgent struct {
	BaseAgent
	cfg    config.VisualConfig
	images image.Provider
	store  Store
	prober Prober
}

// NewVisualAgent creates the visual stage agent.
func NewVisualAgent(cfg config.VisualConfig, images image.Provider, store Store, prober Prober, logger *zap.Logger, collector *metrics.Collector) *VisualAgent {
	return &VisualAgent{
		BaseAgent: NewBaseAgent("visual", logger, collector),
		cfg:       cfg,
		images:    images,
		store:     store,
		prober:    prober,
	}
}

// Process generates one image per script sentence.
func (a *VisualAgent) Process(ctx context.Context, in VisualInput) (VisualResult, error) {
	if strings.TrimSpace(in.Script) == "" {
		return VisualResult{}, a.inputError("script")
	}

	prompts := imagePrompts(in.Script, in.Style, a.cfg.Quality)
	if len(prompts) == 0 {
		return VisualResult{}, a.inputError("script")
	}

	size := in.AspectRatio.ImageSize()
	refs := make([]string, len(prompts))

	g, gctx := errgroup.WithContext(ctx)
	// A zero limit would make g.Go block forever; an unvalidated config
	// falls back to serial generation.
	if a.cfg.MaxConcurrency > 0 {
		g.SetLimit(a.cfg.MaxConcurrency)
	} else {
		g.SetLimit(1)
	}

	for i, prompt := range prompts {
		i, prompt := i, prompt
		g.Go(func() error {
			resp, err := a.images.Generate(gctx, &image.GenerateRequest{
				Prompt:  prompt,
				Model:   a.cfg.Model,
				Size:    size,
				Quality: a.cfg.Quality,
				Style:   a.cfg.Style,
			})
			a.recordProviderCall(a.images.Name(), "image", err)
			if err != nil {
				return a.providerError(a.images.Name(), err)
			}

			format := resp.Format
			if format == "" {
				format = "png"
			}
			name := fmt.Sprintf("%s_image_%d.%s", in.Platform, i, format)
			ref, err := a.store.Put(gctx, name, resp.ImageData)
			if err != nil {
				return a.providerError("artifact-store", err)
			}
			refs[i] = ref
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return VisualResult{}, err
	}

	return VisualResult{
		ImageRefs: refs,
		Metadata: map[string]any{
			"platform":     in.Platform,
			"style":        in.Style,
			"aspect_ratio": string(in.AspectRatio),
			"provider":     a.images.Name(),
			"image_count":  len(refs),
		},
	}, nil
}

// ValidateOutput checks that at least one image was produced and that every
// ref resolves to a decodable image.
func (a *VisualAgent) ValidateOutput(out VisualResult) error {
	if len(out.ImageRefs) == 0 {
		return fmt.Errorf("no images produced")
	}
	for _, ref := range out.ImageRefs {
		if err := a.prober.ProbeImage(ref); err != nil {
			return fmt.Errorf("image artifact: %w", err)
		}
	}
	return nil
}

// imagePrompts derives one generation prompt per script sentence. Pure and
// deterministic.
func imagePrompts(script, style, quality string) []string {
	sentences := splitSentences(script)

	prompts := make([]string, 0, len(sentences))
	for _, sentence := range sentences {
		prompts = append(prompts, fmt.Sprintf(
			"Create a %s image that illustrates: %s. Quality: %s. Make it visually appealing and accurate.",
			style, sentence, quality))
	}
	return prompts
}
