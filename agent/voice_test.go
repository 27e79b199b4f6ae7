package agent

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BaSui01/contentflow/artifacts"
	"github.com/BaSui01/contentflow/config"
	"github.com/BaSui01/contentflow/testutil/mocks"
	"github.com/BaSui01/contentflow/types"
)

func newVoiceAgent(t *testing.T, tts *mocks.SpeechProvider) *VoiceAgent {
	t.Helper()
	store, err := artifacts.NewFileStore(t.TempDir())
	require.NoError(t, err)
	cfg := config.Defaults().Agents.Voice
	return NewVoiceAgent(cfg, tts, store, store, zap.NewNop(), nil)
}

func TestVoiceProcess(t *testing.T) {
	tts := mocks.NewSpeechProvider().WithAudio([]byte("audio-payload"), 15*time.Second)
	a := newVoiceAgent(t, tts)

	out, err := a.Process(context.Background(), VoiceInput{
		Script:   "This is the first sentence. And here comes another one right after it.",
		Platform: "tiktok",
	})
	require.NoError(t, err)

	assert.InDelta(t, 15.0, out.Duration, 1e-9)

	data, err := os.ReadFile(out.AudioRef)
	require.NoError(t, err)
	assert.Equal(t, []byte("audio-payload"), data)

	req := tts.Requests()[0]
	assert.True(t, strings.HasPrefix(req.Markup, "<speak>"))
	assert.Equal(t, "en-US-Neural2-F", req.VoiceID)
	assert.Equal(t, "mp3", req.Format)
}

func TestVoiceProcessEmptyScript(t *testing.T) {
	tts := mocks.NewSpeechProvider()
	a := newVoiceAgent(t, tts)

	_, err := a.Process(context.Background(), VoiceInput{Script: "  "})
	require.Error(t, err)
	assert.True(t, types.IsInputError(err))
	assert.Zero(t, tts.Calls())
}

func TestVoiceProcessProviderError(t *testing.T) {
	tts := mocks.NewSpeechProvider().WithError(errors.New("quota exceeded"))
	a := newVoiceAgent(t, tts)

	_, err := a.Process(context.Background(), VoiceInput{Script: "Some script.", Platform: "tiktok"})
	require.Error(t, err)
	assert.True(t, types.IsProviderFailure(err))
}

func TestVoiceValidateOutput(t *testing.T) {
	a := newVoiceAgent(t, mocks.NewSpeechProvider())

	out, err := a.Process(context.Background(), VoiceInput{Script: "Some script.", Platform: "tiktok"})
	require.NoError(t, err)
	assert.NoError(t, a.ValidateOutput(out))

	assert.ErrorContains(t, a.ValidateOutput(VoiceResult{Duration: 10}), "missing audio ref")
	assert.ErrorContains(t, a.ValidateOutput(VoiceResult{
		AudioRef: "/nonexistent/audio.mp3", Duration: 10,
	}), "audio artifact")

	out.Duration = 0
	assert.ErrorContains(t, a.ValidateOutput(out), "non-positive audio duration")
}

func TestRenderSSML(t *testing.T) {
	tests := []struct {
		name   string
		script string
		want   string
	}{
		{
			name:   "short sentences get no emphasis",
			script: "Hello there. Goodbye now!",
			want:   "<speak>Hello there<break time='500ms'/>Goodbye now</speak>",
		},
		{
			name:   "long sentence emphasizes first and last word",
			script: "This sentence definitely has more than five words total.",
			want: "<speak><emphasis level='moderate'>This</emphasis> sentence definitely has more than five words " +
				"<emphasis level='moderate'>total</emphasis></speak>",
		},
		{
			name:   "single sentence has no break",
			script: "Just one.",
			want:   "<speak>Just one</speak>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, renderSSML(tt.script))
		})
	}
}

func TestSplitSentences(t *testing.T) {
	tests := []struct {
		name   string
		script string
		want   []string
	}{
		{
			name:   "mixed terminators",
			script: "First one. Second one! Third one?",
			want:   []string{"First one", "Second one", "Third one"},
		},
		{
			name:   "trailing text without terminator",
			script: "Complete sentence. Dangling tail",
			want:   []string{"Complete sentence", "Dangling tail"},
		},
		{
			name:   "consecutive terminators collapse",
			script: "Wait... what?!",
			want:   []string{"Wait", "what"},
		},
		{
			name:   "empty input",
			script: "   ",
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitSentences(tt.script))
		})
	}
}
