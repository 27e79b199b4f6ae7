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

// ResearchInput is the research stage input.
type ResearchInput struct {
	Topic    string
	Platform string
	Style    string
}

// ResearchResult is the research stage output: ordered facts with the
// sources backing them.
type ResearchResult struct {
	Facts    []string
	Sources  []string
	Metadata map[string]any
}

// ResearchAgent gathers and verifies facts about a topic through a
// text-generation provider.
type ResearchAgent struct {
	BaseAgent
	cfg      config.ResearchConfig
	provider llm.Provider
}

// NewResearchAgent creates the research stage agent.
func NewResearchAgent(cfg config.ResearchConfig, provider llm.Provider, logger *zap.Logger, collector *metrics.Collector) *ResearchAgent {
	return &ResearchAgent{
		BaseAgent: NewBaseAgent("research", logger, collector),
		cfg:       cfg,
		provider:  provider,
	}
}

// Process researches the topic and structures the response into facts and
// sources.
func (a *ResearchAgent) Process(ctx context.Context, in ResearchInput) (ResearchResult, error) {
	if strings.TrimSpace(in.Topic) == "" {
		return ResearchResult{}, a.inputError("topic")
	}

	prompt := researchPrompt(in.Topic, in.Platform, in.Style)

	resp, err := a.provider.Generate(ctx, &llm.GenerateRequest{
		Prompt:      prompt,
		Model:       a.cfg.Model,
		MaxTokens:   a.cfg.MaxTokens,
		Temperature: a.cfg.Temperature,
	})
	a.recordProviderCall(a.provider.Name(), "text", err)
	if err != nil {
		return ResearchResult{}, a.providerError(a.provider.Name(), err)
	}

	facts, sources := parseResearch(resp.Text)

	return ResearchResult{
		Facts:   facts,
		Sources: sources,
		Metadata: map[string]any{
			"topic":    in.Topic,
			"platform": in.Platform,
			"style":    in.Style,
			"model":    a.cfg.Model,
			"provider": a.provider.Name(),
		},
	}, nil
}

// ValidateOutput checks the research result. More facts than sources is
// rejected; equal or fewer facts than sources is accepted — a 1:1
// fact-to-source mapping is not required.
func (a *ResearchAgent) ValidateOutput(out ResearchResult) error {
	if len(out.Facts) == 0 {
		return fmt.Errorf("no facts produced")
	}
	if len(out.Sources) == 0 {
		return fmt.Errorf("no sources produced")
	}
	if len(out.Facts) > len(out.Sources) {
		return fmt.Errorf("more facts (%d) than sources (%d)", len(out.Facts), len(out.Sources))
	}
	return nil
}

// researchPrompt builds the research prompt. Pure and deterministic.
func researchPrompt(topic, platform, style string) string {
	return fmt.Sprintf(`Research the following topic: %s

Requirements:
- Target platform: %s
- Content style: %s
- Find 3-5 interesting and verified facts
- Include specific dates and details
- Ensure facts are engaging for social media
- Provide reliable sources for each fact

Format the response as:
FACTS:
- [Fact 1]
- [Fact 2]
...

SOURCES:
- [Source 1]
- [Source 2]
...`, topic, platform, style)
}

// parseResearch splits a provider response into its FACTS and SOURCES
// sections. Unrecognized lines are ignored.
func parseResearch(text string) (facts, sources []string) {
	section := ""
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case line == "":
			continue
		case line == "FACTS:":
			section = "facts"
		case line == "SOURCES:":
			section = "sources"
		case strings.HasPrefix(line, "- "):
			item := strings.TrimSpace(line[2:])
			if item == "" {
				continue
			}
			switch section {
			case "facts":
				facts = append(facts, item)
			case "sources":
				sources = append(sources, item)
			}
		}
	}
	return facts, sources
}
