package agent

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BaSui01/contentflow/artifacts"
	"github.com/BaSui01/contentflow/config"
	"github.com/BaSui01/contentflow/testutil/mocks"
	"github.com/BaSui01/contentflow/types"
)

func newEditorAgent(t *testing.T, composer *mocks.Composer) (*EditorAgent, *artifacts.FileStore) {
	t.Helper()
	store, err := artifacts.NewFileStore(t.TempDir())
	require.NoError(t, err)
	cfg := config.Defaults().Agents.Editor
	return NewEditorAgent(cfg, composer, store, zap.NewNop(), nil), store
}

func TestEditorProcess(t *testing.T) {
	composer := mocks.NewComposer()
	a, _ := newEditorAgent(t, composer)

	out, err := a.Process(context.Background(), EditorInput{
		ImageRefs:   []string{"img0.png", "img1.png", "img2.png", "img3.png"},
		AudioRef:    "voiceover.mp3",
		Platform:    "tiktok",
		Duration:    60,
		AspectRatio: config.AspectPortrait,
	})
	require.NoError(t, err)
	assert.Equal(t, "mock-video.mp4", out.VideoRef)
	assert.InDelta(t, 60.0, out.Duration, 1e-9)

	req := composer.Requests()[0]
	assert.InDelta(t, 15.0, req.ImageDuration, 1e-9, "duration splits evenly across images")
	assert.Equal(t, "smooth", req.Transition)
	assert.Equal(t, 30, req.FPS)
	assert.Equal(t, "9:16", req.AspectRatio)
}

func TestEditorProcessMissingInputs(t *testing.T) {
	composer := mocks.NewComposer()
	a, _ := newEditorAgent(t, composer)

	_, err := a.Process(context.Background(), EditorInput{AudioRef: "voiceover.mp3"})
	require.Error(t, err)
	assert.True(t, types.IsInputError(err))

	_, err = a.Process(context.Background(), EditorInput{ImageRefs: []string{"img.png"}})
	require.Error(t, err)
	assert.True(t, types.IsInputError(err))

	assert.Zero(t, composer.Calls())
}

func TestEditorProcessComposerError(t *testing.T) {
	composer := mocks.NewComposer().WithError(errors.New("encoder crashed"))
	a, _ := newEditorAgent(t, composer)

	_, err := a.Process(context.Background(), EditorInput{
		ImageRefs: []string{"img.png"},
		AudioRef:  "voiceover.mp3",
		Duration:  60,
	})
	require.Error(t, err)
	assert.True(t, types.IsProviderFailure(err))
}

func TestEditorValidateOutput(t *testing.T) {
	a, store := newEditorAgent(t, mocks.NewComposer())

	videoRef := filepath.Join(store.BasePath(), "final.mp4")
	require.NoError(t, os.WriteFile(videoRef, []byte("mp4-bytes"), 0o644))

	assert.NoError(t, a.ValidateOutput(VideoResult{VideoRef: videoRef, Duration: 60}))
	assert.ErrorContains(t, a.ValidateOutput(VideoResult{Duration: 60}), "missing video ref")
	assert.ErrorContains(t, a.ValidateOutput(VideoResult{
		VideoRef: "/nonexistent/final.mp4", Duration: 60,
	}), "video artifact")
	assert.ErrorContains(t, a.ValidateOutput(VideoResult{
		VideoRef: videoRef, Duration: 0,
	}), "non-positive video duration")
}

func TestImageDisplayDuration(t *testing.T) {
	tests := []struct {
		name  string
		total float64
		count int
		want  float64
	}{
		{"even split", 60, 4, 15},
		{"uneven split", 60, 7, 60.0 / 7},
		{"single image", 90, 1, 90},
		{"zero count", 60, 0, 0},
		{"negative count", 60, -1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, imageDisplayDuration(tt.total, tt.count), 1e-9)
		})
	}
}
