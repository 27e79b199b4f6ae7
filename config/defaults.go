package config

// Defaults returns the built-in configuration. Values mirror what a fresh
// deployment needs to produce a 60-second portrait short.
func Defaults() *Config {
	return &Config{
		Agents: AgentsConfig{
			Research: ResearchConfig{
				Model:       "llama3",
				MaxTokens:   2000,
				Temperature: 0.7,
			},
			Script: ScriptConfig{
				Model:       "gpt-4o-mini",
				MaxTokens:   1000,
				Temperature: 0.8,
				MinWords:    50,
				MaxWords:    300,
			},
			Voice: VoiceConfig{
				VoiceID:      "en-US-Neural2-F",
				SpeakingRate: 1.0,
				Format:       "mp3",
			},
			Visual: VisualConfig{
				Model:          "dall-e-3",
				Quality:        "standard",
				Style:          "photorealistic",
				MaxConcurrency: 4,
			},
			Editor: EditorConfig{
				Transition: "smooth",
				FPS:        30,
			},
		},
		Platforms: map[string]PlatformProfile{
			"tiktok": {
				Style:       "fast-paced, trendy",
				MaxDuration: 60,
				AspectRatio: AspectPortrait,
			},
			"youtube_shorts": {
				Style:       "educational, engaging",
				MaxDuration: 60,
				AspectRatio: AspectPortrait,
			},
			"instagram": {
				Style:       "polished, visual-first",
				MaxDuration: 90,
				AspectRatio: AspectPortrait,
			},
			"facebook": {
				Style:       "conversational, broad-audience",
				MaxDuration: 120,
				AspectRatio: AspectSquare,
			},
		},
		Artifacts: ArtifactsConfig{
			Dir: "output",
		},
		Log: LogConfig{
			Level:    "info",
			Encoding: "json",
		},
	}
}
