package artifacts

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_Put(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	ref, err := store.Put(context.Background(), "voiceover.mp3", []byte("audio-bytes"))
	require.NoError(t, err)

	data, err := os.ReadFile(ref)
	require.NoError(t, err)
	assert.Equal(t, []byte("audio-bytes"), data)

	// Refs keep the original extension so probes can sniff the format.
	assert.Equal(t, ".mp3", filepath.Ext(ref))
}

func TestFileStore_Put_UniqueRefs(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	ref1, err := store.Put(context.Background(), "frame.png", []byte("a"))
	require.NoError(t, err)
	ref2, err := store.Put(context.Background(), "frame.png", []byte("b"))
	require.NoError(t, err)

	assert.NotEqual(t, ref1, ref2)
}

func TestFileStore_Put_EmptyName(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Put(context.Background(), "  ", []byte("x"))
	assert.Error(t, err)
}

func TestFileStore_ProbeFile(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	ref, err := store.Put(context.Background(), "clip.mp4", []byte("not empty"))
	require.NoError(t, err)
	assert.NoError(t, store.ProbeFile(ref))

	assert.Error(t, store.ProbeFile(filepath.Join(store.BasePath(), "missing.mp4")))

	empty := filepath.Join(store.BasePath(), "empty.mp4")
	require.NoError(t, os.WriteFile(empty, nil, 0o644))
	assert.Error(t, store.ProbeFile(empty))
}

func TestFileStore_ProbeImage(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	ref, err := store.Put(context.Background(), "frame.png", encodePNG(t))
	require.NoError(t, err)
	assert.NoError(t, store.ProbeImage(ref))

	bad, err := store.Put(context.Background(), "garbage.png", []byte("not an image"))
	require.NoError(t, err)
	assert.Error(t, store.ProbeImage(bad))
}

func encodePNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}
