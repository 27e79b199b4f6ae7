package agent

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/BaSui01/contentflow/config"
	"github.com/BaSui01/contentflow/internal/metrics"
	"github.com/BaSui01/contentflow/llm/speech"
)

// VoiceInput is the voice stage input.
type VoiceInput struct {
	Script   string
	Platform string
	Style    string
}

// VoiceResult is the voice stage output. AudioRef is an opaque artifact
// handle.
type VoiceResult struct {
	AudioRef string
	Duration float64 // seconds
	Metadata map[string]any
}

// VoiceAgent renders the script to SSML and synthesizes the voice-over
// through a speech provider, persisting the audio as an artifact.
type VoiceAgent struct {
	BaseAgent
	cfg    config.VoiceConfig
	tts    speech.Provider
	store  Store
	prober Prober
}

// NewVoiceAgent creates the voice stage agent.
func NewVoiceAgent(cfg config.VoiceConfig, tts speech.Provider, store Store, prober Prober, logger *zap.Logger, collector *metrics.Collector) *VoiceAgent {
	return &VoiceAgent{
		BaseAgent: NewBaseAgent("voice", logger, collector),
		cfg:       cfg,
		tts:       tts,
		store:     store,
		prober:    prober,
	}
}

// Process synthesizes the voice-over for the script.
func (a *VoiceAgent) Process(ctx context.Context, in VoiceInput) (VoiceResult, error) {
	if strings.TrimSpace(in.Script) == "" {
		return VoiceResult{}, a.inputError("script")
	}

	markup := renderSSML(in.Script)

	resp, err := a.tts.Synthesize(ctx, &speech.SynthesizeRequest{
		Markup:       markup,
		VoiceID:      a.cfg.VoiceID,
		SpeakingRate: a.cfg.SpeakingRate,
		Format:       a.cfg.Format,
	})
	a.recordProviderCall(a.tts.Name(), "speech", err)
	if err != nil {
		return VoiceResult{}, a.providerError(a.tts.Name(), err)
	}

	name := fmt.Sprintf("voiceover_%s.%s", in.Platform, a.cfg.Format)
	ref, err := a.store.Put(ctx, name, resp.AudioData)
	if err != nil {
		return VoiceResult{}, a.providerError("artifact-store", err)
	}

	return VoiceResult{
		AudioRef: ref,
		Duration: resp.Duration.Seconds(),
		Metadata: map[string]any{
			"platform":      in.Platform,
			"style":         in.Style,
			"voice_id":      a.cfg.VoiceID,
			"speaking_rate": a.cfg.SpeakingRate,
			"provider":      a.tts.Name(),
		},
	}, nil
}

// ValidateOutput checks that the audio artifact resolves and that the
// reported duration is positive.
func (a *VoiceAgent) ValidateOutput(out VoiceResult) error {
	if out.AudioRef == "" {
		return fmt.Errorf("missing audio ref")
	}
	if err := a.prober.ProbeFile(out.AudioRef); err != nil {
		return fmt.Errorf("audio artifact: %w", err)
	}
	if out.Duration <= 0 {
		return fmt.Errorf("non-positive audio duration %v", out.Duration)
	}
	return nil
}

// renderSSML wraps the script in SSML with a pause between sentences.
// Sentences longer than five words get moderate emphasis on their first and
// last word. Pure and deterministic.
func renderSSML(script string) string {
	sentences := splitSentences(script)

	rendered := make([]string, 0, len(sentences))
	for _, sentence := range sentences {
		words := strings.Fields(sentence)
		if len(words) > 5 {
			words[0] = "<emphasis level='moderate'>" + words[0] + "</emphasis>"
			words[len(words)-1] = "<emphasis level='moderate'>" + words[len(words)-1] + "</emphasis>"
		}
		rendered = append(rendered, strings.Join(words, " "))
	}

	return "<speak>" + strings.Join(rendered, "<break time='500ms'/>") + "</speak>"
}
