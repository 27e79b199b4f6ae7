// Package contentflow provides a top-level convenience entry point for
// building the content pipeline with minimal boilerplate.
//
// Usage:
//
//	import "github.com/BaSui01/contentflow"
//
//	orch, err := contentflow.New(
//	    contentflow.WithText(textProvider),
//	    contentflow.WithSpeech(ttsProvider),
//	    contentflow.WithImage(imageProvider),
//	    contentflow.WithComposer(composer),
//	)
//	result, err := orch.GenerateContent(ctx, "Ancient Egyptian Pyramids", "tiktok")
//
// All four providers are required; configuration, logging, artifact storage,
// and metrics fall back to sensible defaults when not set.
package contentflow

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/BaSui01/contentflow/artifacts"
	"github.com/BaSui01/contentflow/config"
	"github.com/BaSui01/contentflow/internal/metrics"
	"github.com/BaSui01/contentflow/llm"
	"github.com/BaSui01/contentflow/llm/image"
	"github.com/BaSui01/contentflow/llm/speech"
	"github.com/BaSui01/contentflow/llm/video"
	"github.com/BaSui01/contentflow/pipeline"
)

type options struct {
	cfg       *config.Config
	providers pipeline.Providers
	logger    *zap.Logger
	collector *metrics.Collector
}

// Option configures the orchestrator created by [New].
type Option func(*options)

// WithText sets the text-generation provider used by the research and
// script stages.
func WithText(p llm.Provider) Option {
	return func(o *options) { o.providers.Text = p }
}

// WithSpeech sets the speech-synthesis provider used by the voice stage.
func WithSpeech(p speech.Provider) Option {
	return func(o *options) { o.providers.Speech = p }
}

// WithImage sets the image-synthesis provider used by the visual stage.
func WithImage(p image.Provider) Option {
	return func(o *options) { o.providers.Image = p }
}

// WithComposer sets the video composer used by the editor stage.
func WithComposer(c video.Composer) Option {
	return func(o *options) { o.providers.Composer = c }
}

// WithConfig replaces the default configuration. The config must already be
// validated or loaded through config.Loader.
func WithConfig(cfg *config.Config) Option {
	return func(o *options) { o.cfg = cfg }
}

// WithLogger sets a custom zap logger. By default one is built from the
// configuration's log section.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithMetrics sets the metrics collector. Metrics are off by default.
func WithMetrics(c *metrics.Collector) Option {
	return func(o *options) { o.collector = c }
}

// New builds a ready-to-use pipeline orchestrator. At minimum all four
// providers must be supplied via [WithText], [WithSpeech], [WithImage], and
// [WithComposer].
func New(opts ...Option) (*pipeline.Orchestrator, error) {
	o := options{cfg: config.Defaults()}
	for _, opt := range opts {
		opt(&o)
	}

	switch {
	case o.providers.Text == nil:
		return nil, fmt.Errorf("contentflow: text provider is required")
	case o.providers.Speech == nil:
		return nil, fmt.Errorf("contentflow: speech provider is required")
	case o.providers.Image == nil:
		return nil, fmt.Errorf("contentflow: image provider is required")
	case o.providers.Composer == nil:
		return nil, fmt.Errorf("contentflow: video composer is required")
	}

	if o.logger == nil {
		logger, err := o.cfg.Log.BuildLogger()
		if err != nil {
			return nil, err
		}
		o.logger = logger
	}

	store, err := artifacts.NewFileStore(o.cfg.Artifacts.Dir)
	if err != nil {
		return nil, err
	}

	return pipeline.NewOrchestrator(o.cfg, o.providers, store, o.logger, o.collector), nil
}
