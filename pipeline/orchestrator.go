package pipeline

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/BaSui01/contentflow/agent"
	"github.com/BaSui01/contentflow/config"
	"github.com/BaSui01/contentflow/internal/ctxkeys"
	"github.com/BaSui01/contentflow/internal/metrics"
	"github.com/BaSui01/contentflow/llm"
	"github.com/BaSui01/contentflow/llm/image"
	"github.com/BaSui01/contentflow/llm/speech"
	"github.com/BaSui01/contentflow/llm/video"
	"github.com/BaSui01/contentflow/types"
)

// Providers bundles the external capabilities the pipeline consumes, one
// per stage concern.
type Providers struct {
	Text     llm.Provider
	Speech   speech.Provider
	Image    image.Provider
	Composer video.Composer
}

// ArtifactStore is the artifact persistence and probing surface the
// orchestrator hands to its stage agents. artifacts.FileStore implements it.
type ArtifactStore interface {
	agent.Store
	agent.Prober
}

// Request identifies one pipeline run. Immutable once created.
type Request struct {
	Topic    string
	Platform string
}

// Result is the outcome of a successful pipeline run.
type Result struct {
	// VideoRef is the opaque handle of the final composed video.
	VideoRef string

	// Metadata aggregates per-stage metadata under the stage name, plus the
	// run's topic and platform.
	Metadata map[string]any
}

// Orchestrator owns one agent per stage and drives them in order. It is
// stateless across runs; a single Orchestrator may serve concurrent
// GenerateContent calls.
type Orchestrator struct {
	cfg      *config.Config
	research *agent.ResearchAgent
	script   *agent.ScriptAgent
	voice    *agent.VoiceAgent
	visual   *agent.VisualAgent
	editor   *agent.EditorAgent
	logger   *zap.Logger
	metrics  *metrics.Collector
}

// NewOrchestrator wires the five stage agents from the configuration and
// provider set. collector may be nil.
func NewOrchestrator(cfg *config.Config, providers Providers, store ArtifactStore, logger *zap.Logger, collector *metrics.Collector) *Orchestrator {
	return &Orchestrator{
		cfg:      cfg,
		research: agent.NewResearchAgent(cfg.Agents.Research, providers.Text, logger, collector),
		script:   agent.NewScriptAgent(cfg.Agents.Script, providers.Text, logger, collector),
		voice:    agent.NewVoiceAgent(cfg.Agents.Voice, providers.Speech, store, store, logger, collector),
		visual:   agent.NewVisualAgent(cfg.Agents.Visual, providers.Image, store, store, logger, collector),
		editor:   agent.NewEditorAgent(cfg.Agents.Editor, providers.Composer, store, logger, collector),
		logger:   logger.With(zap.String("component", "pipeline")),
		metrics:  collector,
	}
}

// GenerateContent runs the full pipeline for one topic and platform. Stage
// failures abort the run; the returned error then carries the
// PIPELINE_ABORTED code and the run reaches no further stage.
func (o *Orchestrator) GenerateContent(ctx context.Context, topic, platform string) (*Result, error) {
	return o.run(ctx, Request{Topic: topic, Platform: platform})
}

func (o *Orchestrator) run(ctx context.Context, req Request) (*Result, error) {
	topic, platform := req.Topic, req.Platform

	runID := uuid.NewString()
	ctx = ctxkeys.WithRunID(ctx, runID)
	ctx = ctxkeys.WithPlatform(ctx, platform)

	logger := o.logger.With(
		zap.String("run_id", runID),
		zap.String("topic", topic),
		zap.String("platform", platform),
	)
	start := time.Now()

	profile, ok := o.cfg.Profile(platform)
	if !ok {
		err := types.NewError(types.ErrInput, "unknown platform: "+platform)
		logger.Error("run rejected", zap.Error(err))
		o.recordRun(platform, "rejected", time.Since(start))
		return nil, err
	}

	state := StateInit
	advance := func(to State) {
		// Transitions are driven by the fixed stage order, so this can
		// only trip on an orchestrator bug.
		if !CanTransition(state, to) {
			panic(ErrInvalidTransition{From: state, To: to})
		}
		state = to
		logger.Info("state transition", zap.String("state", string(to)))
	}
	abort := func(stage string, cause error) (*Result, error) {
		advance(StateFailed)
		err := types.NewError(types.ErrPipelineAborted, "pipeline aborted at stage "+stage).
			WithStage(stage).
			WithCause(cause)
		logger.Error("run failed", zap.Error(err))
		o.recordRun(platform, "failure", time.Since(start))
		return nil, err
	}

	logger.Info("run started")

	advance(StateResearching)
	research, err := agent.Run(ctx, o.research, agent.ResearchInput{
		Topic:    topic,
		Platform: platform,
		Style:    profile.Style,
	})
	if err != nil {
		return abort("research", err)
	}

	advance(StateScripting)
	script, err := agent.Run(ctx, o.script, agent.ScriptInput{
		Facts:    research.Facts,
		Platform: platform,
		Style:    profile.Style,
		Duration: profile.MaxDuration,
	})
	if err != nil {
		return abort("script", err)
	}

	advance(StateNarrating)
	voice, err := agent.Run(ctx, o.voice, agent.VoiceInput{
		Script:   script.Script,
		Platform: platform,
		Style:    profile.Style,
	})
	if err != nil {
		return abort("voice", err)
	}

	advance(StateIllustrating)
	visual, err := agent.Run(ctx, o.visual, agent.VisualInput{
		Script:      script.Script,
		Platform:    platform,
		Style:       profile.Style,
		AspectRatio: profile.AspectRatio,
	})
	if err != nil {
		return abort("visual", err)
	}

	advance(StateComposing)
	final, err := agent.Run(ctx, o.editor, agent.EditorInput{
		ImageRefs:   visual.ImageRefs,
		AudioRef:    voice.AudioRef,
		Platform:    platform,
		Duration:    profile.MaxDuration,
		AspectRatio: profile.AspectRatio,
	})
	if err != nil {
		return abort("editor", err)
	}

	advance(StateDone)
	logger.Info("run completed",
		zap.String("video_ref", final.VideoRef),
		zap.Duration("duration", time.Since(start)),
	)
	o.recordRun(platform, "success", time.Since(start))

	return &Result{
		VideoRef: final.VideoRef,
		Metadata: map[string]any{
			"run_id":   runID,
			"topic":    topic,
			"platform": platform,
			"research": research.Metadata,
			"script":   script.Metadata,
			"voice":    voice.Metadata,
			"visual":   visual.Metadata,
			"editor":   final.Metadata,
		},
	}, nil
}

func (o *Orchestrator) recordRun(platform, status string, d time.Duration) {
	if o.metrics != nil {
		o.metrics.RecordPipelineRun(platform, status, d)
	}
}
