package agent

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BaSui01/contentflow/artifacts"
	"github.com/BaSui01/contentflow/config"
	"github.com/BaSui01/contentflow/testutil/mocks"
	"github.com/BaSui01/contentflow/types"
)

func newVisualAgent(t *testing.T, images *mocks.ImageProvider) *VisualAgent {
	t.Helper()
	store, err := artifacts.NewFileStore(t.TempDir())
	require.NoError(t, err)
	cfg := config.Defaults().Agents.Visual
	return NewVisualAgent(cfg, images, store, store, zap.NewNop(), nil)
}

func TestVisualProcess(t *testing.T) {
	images := mocks.NewImageProvider()
	a := newVisualAgent(t, images)

	out, err := a.Process(context.Background(), VisualInput{
		Script:      "First sentence. Second sentence. Third sentence.",
		Platform:    "tiktok",
		Style:       "fast-paced",
		AspectRatio: config.AspectPortrait,
	})
	require.NoError(t, err)

	require.Len(t, out.ImageRefs, 3)
	for i, ref := range out.ImageRefs {
		assert.Contains(t, ref, fmt.Sprintf("_image_%d.", i), "refs keep sentence order")
	}
	assert.Equal(t, 3, images.Calls())
	assert.Equal(t, 3, out.Metadata["image_count"])

	for _, req := range images.Requests() {
		assert.Equal(t, "576x1024", req.Size, "portrait aspect ratio drives the size")
	}
}

func TestVisualProcessZeroConcurrencyConfig(t *testing.T) {
	images := mocks.NewImageProvider()
	store, err := artifacts.NewFileStore(t.TempDir())
	require.NoError(t, err)

	// Zero-value config bypassing Validate must degrade to serial
	// generation, not block forever.
	a := NewVisualAgent(config.VisualConfig{}, images, store, store, zap.NewNop(), nil)

	out, err := a.Process(context.Background(), VisualInput{
		Script:      "First sentence. Second sentence.",
		Platform:    "tiktok",
		AspectRatio: config.AspectPortrait,
	})
	require.NoError(t, err)
	assert.Len(t, out.ImageRefs, 2)
	assert.Equal(t, 2, images.Calls())
}

func TestVisualProcessEmptyScript(t *testing.T) {
	images := mocks.NewImageProvider()
	a := newVisualAgent(t, images)

	_, err := a.Process(context.Background(), VisualInput{Script: " "})
	require.Error(t, err)
	assert.True(t, types.IsInputError(err))
	assert.Zero(t, images.Calls())
}

func TestVisualProcessProviderError(t *testing.T) {
	images := mocks.NewImageProvider().WithError(errors.New("content policy rejection"))
	a := newVisualAgent(t, images)

	_, err := a.Process(context.Background(), VisualInput{
		Script:      "First sentence. Second sentence.",
		Platform:    "tiktok",
		AspectRatio: config.AspectPortrait,
	})
	require.Error(t, err)
	assert.True(t, types.IsProviderFailure(err))
}

func TestVisualValidateOutput(t *testing.T) {
	images := mocks.NewImageProvider()
	a := newVisualAgent(t, images)

	out, err := a.Process(context.Background(), VisualInput{
		Script:      "First sentence. Second sentence.",
		Platform:    "tiktok",
		AspectRatio: config.AspectPortrait,
	})
	require.NoError(t, err)
	assert.NoError(t, a.ValidateOutput(out))

	assert.ErrorContains(t, a.ValidateOutput(VisualResult{}), "no images")
	assert.ErrorContains(t, a.ValidateOutput(VisualResult{
		ImageRefs: []string{"/nonexistent/image.png"},
	}), "image artifact")
}

func TestVisualValidateOutputRejectsUndecodableImage(t *testing.T) {
	images := mocks.NewImageProvider().WithImage([]byte("this is not an image"), "png")
	a := newVisualAgent(t, images)

	out, err := a.Process(context.Background(), VisualInput{
		Script:      "Single sentence.",
		Platform:    "tiktok",
		AspectRatio: config.AspectPortrait,
	})
	require.NoError(t, err)
	assert.Error(t, a.ValidateOutput(out))
}

func TestImagePrompts(t *testing.T) {
	prompts := imagePrompts("The tower opened in 1889. It is made of iron.", "photorealistic", "standard")
	require.Len(t, prompts, 2)
	assert.Contains(t, prompts[0], "The tower opened in 1889")
	assert.Contains(t, prompts[0], "photorealistic")
	assert.Contains(t, prompts[1], "It is made of iron")

	again := imagePrompts("The tower opened in 1889. It is made of iron.", "photorealistic", "standard")
	assert.Equal(t, prompts, again, "prompt derivation is deterministic")
}
