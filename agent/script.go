package agent

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/BaSui01/contentflow/config"
	"github.com/BaSui01/contentflow/internal/metrics"
	"github.com/BaSui01/contentflow/llm"
)

// ScriptInput is the script stage input.
type ScriptInput struct {
	Facts    []string
	Platform string
	Style    string
	Duration float64 // target duration in seconds
}

// ScriptResult is the script stage output.
type ScriptResult struct {
	Script       string
	Hook         string
	CallToAction string
	Metadata     map[string]any
}

// ScriptAgent turns researched facts into an engaging narration script with
// an opening hook and a closing call to action.
type ScriptAgent struct {
	BaseAgent
	cfg      config.ScriptConfig
	provider llm.Provider
}

// NewScriptAgent creates the script stage agent.
func NewScriptAgent(cfg config.ScriptConfig, provider llm.Provider, logger *zap.Logger, collector *metrics.Collector) *ScriptAgent {
	return &ScriptAgent{
		BaseAgent: NewBaseAgent("script", logger, collector),
		cfg:       cfg,
		provider:  provider,
	}
}

// Process generates the script from the facts.
func (a *ScriptAgent) Process(ctx context.Context, in ScriptInput) (ScriptResult, error) {
	if len(in.Facts) == 0 {
		return ScriptResult{}, a.inputError("facts")
	}

	prompt := scriptPrompt(in.Facts, in.Platform, in.Style, in.Duration)

	resp, err := a.provider.Generate(ctx, &llm.GenerateRequest{
		Prompt:      prompt,
		System:      "You are a creative scriptwriter specializing in short-form video content.",
		Model:       a.cfg.Model,
		MaxTokens:   a.cfg.MaxTokens,
		Temperature: a.cfg.Temperature,
	})
	a.recordProviderCall(a.provider.Name(), "text", err)
	if err != nil {
		return ScriptResult{}, a.providerError(a.provider.Name(), err)
	}

	hook, main, cta := parseScript(resp.Text)

	return ScriptResult{
		Script:       main,
		Hook:         hook,
		CallToAction: cta,
		Metadata: map[string]any{
			"platform": in.Platform,
			"style":    in.Style,
			"duration": in.Duration,
			"model":    a.cfg.Model,
			"provider": a.provider.Name(),
		},
	}, nil
}

// ValidateOutput checks that all three text parts are present and that the
// script's word count sits within the configured band.
func (a *ScriptAgent) ValidateOutput(out ScriptResult) error {
	if strings.TrimSpace(out.Script) == "" {
		return fmt.Errorf("empty script")
	}
	if strings.TrimSpace(out.Hook) == "" {
		return fmt.Errorf("empty hook")
	}
	if strings.TrimSpace(out.CallToAction) == "" {
		return fmt.Errorf("empty call to action")
	}

	words := wordCount(out.Script)
	if words < a.cfg.MinWords || words > a.cfg.MaxWords {
		return fmt.Errorf("script word count %d outside [%d,%d]", words, a.cfg.MinWords, a.cfg.MaxWords)
	}
	return nil
}

func wordCount(s string) int {
	return len(strings.Fields(s))
}

// scriptPrompt builds the script generation prompt. Pure and deterministic.
func scriptPrompt(facts []string, platform, style string, duration float64) string {
	var b strings.Builder
	for _, fact := range facts {
		fmt.Fprintf(&b, "- %s\n", fact)
	}

	return fmt.Sprintf(`Create an engaging script for a %s video about these facts:

%s
Requirements:
- Target platform: %s
- Content style: %s
- Duration: %.0f seconds
- Include a hook that grabs attention
- Make the content engaging and educational
- End with a call to action

Format the response as:
HOOK:
[Attention-grabbing opening]

MAIN CONTENT:
[Engaging script that presents the facts]

CALL TO ACTION:
[Engaging closing statement]`, platform, b.String(), platform, style, duration)
}

// parseScript splits a provider response into hook, main content, and call
// to action sections.
func parseScript(text string) (hook, main, cta string) {
	parts := map[string][]string{}
	section := ""

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		switch line {
		case "":
			continue
		case "HOOK:":
			section = "hook"
		case "MAIN CONTENT:":
			section = "main"
		case "CALL TO ACTION:":
			section = "cta"
		default:
			if section != "" {
				parts[section] = append(parts[section], line)
			}
		}
	}

	join := func(key string) string { return strings.Join(parts[key], "\n") }
	return join("hook"), join("main"), join("cta")
}
