package config

import (
	"fmt"
	"sort"
)

// AspectRatio enumerates the supported frame shapes.
type AspectRatio string

const (
	AspectSquare      AspectRatio = "1:1"
	AspectLandscape   AspectRatio = "16:9"
	AspectPortrait    AspectRatio = "9:16"
	AspectClassic     AspectRatio = "4:3"
	AspectClassicTall AspectRatio = "3:4"
)

// imageSizes maps aspect ratios to the generation size requested from image
// providers.
var imageSizes = map[AspectRatio]string{
	AspectSquare:      "1024x1024",
	AspectLandscape:   "1024x576",
	AspectPortrait:    "576x1024",
	AspectClassic:     "1024x768",
	AspectClassicTall: "768x1024",
}

// Valid reports whether the aspect ratio is one of the supported values.
func (a AspectRatio) Valid() bool {
	_, ok := imageSizes[a]
	return ok
}

// ImageSize returns the image generation size for the aspect ratio,
// defaulting to square for unknown values.
func (a AspectRatio) ImageSize() string {
	if size, ok := imageSizes[a]; ok {
		return size
	}
	return imageSizes[AspectSquare]
}

// Config is the complete contentflow configuration.
type Config struct {
	// Agents holds per-stage agent parameters.
	Agents AgentsConfig `yaml:"agents"`

	// Platforms maps platform names to their profiles.
	Platforms map[string]PlatformProfile `yaml:"platforms"`

	// Artifacts configures local artifact storage.
	Artifacts ArtifactsConfig `yaml:"artifacts"`

	// Log configures logging output.
	Log LogConfig `yaml:"log"`
}

// AgentsConfig holds the stage-specific agent parameters.
type AgentsConfig struct {
	Research ResearchConfig `yaml:"research"`
	Script   ScriptConfig   `yaml:"script"`
	Voice    VoiceConfig    `yaml:"voice"`
	Visual   VisualConfig   `yaml:"visual"`
	Editor   EditorConfig   `yaml:"editor"`
}

// ResearchConfig parameterizes the research agent.
type ResearchConfig struct {
	Model       string  `yaml:"model"`
	MaxTokens   int     `yaml:"max_tokens"`
	Temperature float32 `yaml:"temperature"`
}

// ScriptConfig parameterizes the script agent. MinWords/MaxWords bound the
// accepted script length.
type ScriptConfig struct {
	Model       string  `yaml:"model"`
	MaxTokens   int     `yaml:"max_tokens"`
	Temperature float32 `yaml:"temperature"`
	MinWords    int     `yaml:"min_words"`
	MaxWords    int     `yaml:"max_words"`
}

// VoiceConfig parameterizes the voice agent.
type VoiceConfig struct {
	VoiceID      string  `yaml:"voice_id"`
	SpeakingRate float64 `yaml:"speaking_rate"`
	Format       string  `yaml:"format"`
}

// VisualConfig parameterizes the visual agent. MaxConcurrency bounds the
// image-generation fan-out within one stage execution.
type VisualConfig struct {
	Model          string `yaml:"model"`
	Quality        string `yaml:"quality"`
	Style          string `yaml:"style"`
	MaxConcurrency int    `yaml:"max_concurrency"`
}

// EditorConfig parameterizes the editor agent.
type EditorConfig struct {
	Transition string `yaml:"transition"`
	FPS        int    `yaml:"fps"`
}

// PlatformProfile holds static per-platform parameters. Read-only during a
// pipeline run.
type PlatformProfile struct {
	Style       string      `yaml:"style"`
	MaxDuration float64     `yaml:"max_duration"` // seconds
	AspectRatio AspectRatio `yaml:"aspect_ratio"`
}

// ArtifactsConfig configures local artifact storage.
type ArtifactsConfig struct {
	Dir string `yaml:"dir"`
}

// LogConfig configures logging output.
type LogConfig struct {
	Level    string `yaml:"level"`    // debug, info, warn, error
	Encoding string `yaml:"encoding"` // json, console
}

// Validate checks the configuration for values the pipeline cannot run with.
func (c *Config) Validate() error {
	if len(c.Platforms) == 0 {
		return fmt.Errorf("config: no platforms defined")
	}

	names := make([]string, 0, len(c.Platforms))
	for name := range c.Platforms {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		p := c.Platforms[name]
		if p.MaxDuration <= 0 {
			return fmt.Errorf("config: platform %q has non-positive max_duration", name)
		}
		if !p.AspectRatio.Valid() {
			return fmt.Errorf("config: platform %q has unsupported aspect_ratio %q", name, p.AspectRatio)
		}
	}

	if c.Agents.Script.MinWords <= 0 || c.Agents.Script.MaxWords < c.Agents.Script.MinWords {
		return fmt.Errorf("config: script word band [%d,%d] is invalid",
			c.Agents.Script.MinWords, c.Agents.Script.MaxWords)
	}
	if c.Agents.Visual.MaxConcurrency <= 0 {
		return fmt.Errorf("config: visual max_concurrency must be positive")
	}
	return nil
}

// Profile returns the platform profile for name.
func (c *Config) Profile(name string) (PlatformProfile, bool) {
	p, ok := c.Platforms[name]
	return p, ok
}
