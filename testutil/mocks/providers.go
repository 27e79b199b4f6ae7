package mocks

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"sync"
	"time"

	"github.com/BaSui01/contentflow/llm"
	imggen "github.com/BaSui01/contentflow/llm/image"
	"github.com/BaSui01/contentflow/llm/speech"
	"github.com/BaSui01/contentflow/llm/video"
)

// --- text generation ---

// TextProvider is a mock llm.Provider. With multiple canned responses it
// returns them in call order, repeating the last one once exhausted.
type TextProvider struct {
	mu        sync.Mutex
	name      string
	responses []string
	next      int
	err       error
	requests  []*llm.GenerateRequest
}

// NewTextProvider creates a mock text provider with a canned response.
func NewTextProvider() *TextProvider {
	return &TextProvider{name: "mock-llm", responses: []string{"Mock response"}}
}

// WithName overrides the provider name.
func (p *TextProvider) WithName(name string) *TextProvider {
	p.name = name
	return p
}

// WithResponse sets a single canned response text.
func (p *TextProvider) WithResponse(text string) *TextProvider {
	return p.WithResponses(text)
}

// WithResponses sets the canned responses, served in call order.
func (p *TextProvider) WithResponses(texts ...string) *TextProvider {
	p.responses = texts
	p.next = 0
	return p
}

// WithError makes every call fail with err.
func (p *TextProvider) WithError(err error) *TextProvider {
	p.err = err
	return p
}

func (p *TextProvider) Generate(ctx context.Context, req *llm.GenerateRequest) (*llm.GenerateResponse, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.requests = append(p.requests, req)
	if p.err != nil {
		return nil, p.err
	}
	text := p.responses[len(p.responses)-1]
	if p.next < len(p.responses) {
		text = p.responses[p.next]
		p.next++
	}
	return &llm.GenerateResponse{
		Provider:  p.name,
		Model:     req.Model,
		Text:      text,
		CreatedAt: time.Now(),
	}, nil
}

func (p *TextProvider) Name() string { return p.name }

// Calls returns the number of recorded calls.
func (p *TextProvider) Calls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.requests)
}

// Requests returns the recorded requests.
func (p *TextProvider) Requests() []*llm.GenerateRequest {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]*llm.GenerateRequest(nil), p.requests...)
}

// --- speech synthesis ---

// SpeechProvider is a mock speech.Provider.
type SpeechProvider struct {
	mu       sync.Mutex
	name     string
	audio    []byte
	duration time.Duration
	err      error
	requests []*speech.SynthesizeRequest
}

// NewSpeechProvider creates a mock speech provider with canned audio.
func NewSpeechProvider() *SpeechProvider {
	return &SpeechProvider{
		name:     "mock-tts",
		audio:    []byte("mock-audio-bytes"),
		duration: 12 * time.Second,
	}
}

// WithAudio sets the canned audio bytes and duration.
func (p *SpeechProvider) WithAudio(data []byte, duration time.Duration) *SpeechProvider {
	p.audio = data
	p.duration = duration
	return p
}

// WithError makes every call fail with err.
func (p *SpeechProvider) WithError(err error) *SpeechProvider {
	p.err = err
	return p
}

func (p *SpeechProvider) Synthesize(ctx context.Context, req *speech.SynthesizeRequest) (*speech.SynthesizeResponse, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.requests = append(p.requests, req)
	if p.err != nil {
		return nil, p.err
	}
	return &speech.SynthesizeResponse{
		Provider:  p.name,
		AudioData: p.audio,
		Format:    req.Format,
		Duration:  p.duration,
		CharCount: len(req.Markup),
		CreatedAt: time.Now(),
	}, nil
}

func (p *SpeechProvider) Name() string { return p.name }

// Calls returns the number of recorded calls.
func (p *SpeechProvider) Calls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.requests)
}

// Requests returns the recorded requests.
func (p *SpeechProvider) Requests() []*speech.SynthesizeRequest {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]*speech.SynthesizeRequest(nil), p.requests...)
}

// --- image synthesis ---

// ImageProvider is a mock imggen.Provider. By default it returns a real,
// decodable PNG so visual validation passes.
type ImageProvider struct {
	mu       sync.Mutex
	name     string
	data     []byte
	format   string
	err      error
	requests []*imggen.GenerateRequest
}

// NewImageProvider creates a mock image provider returning a tiny PNG.
func NewImageProvider() *ImageProvider {
	return &ImageProvider{name: "mock-image", data: TinyPNG(), format: "png"}
}

// WithImage sets the canned image bytes and format.
func (p *ImageProvider) WithImage(data []byte, format string) *ImageProvider {
	p.data = data
	p.format = format
	return p
}

// WithError makes every call fail with err.
func (p *ImageProvider) WithError(err error) *ImageProvider {
	p.err = err
	return p
}

func (p *ImageProvider) Generate(ctx context.Context, req *imggen.GenerateRequest) (*imggen.GenerateResponse, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.requests = append(p.requests, req)
	if p.err != nil {
		return nil, p.err
	}
	return &imggen.GenerateResponse{
		Provider:  p.name,
		Model:     req.Model,
		ImageData: p.data,
		Format:    p.format,
		CreatedAt: time.Now(),
	}, nil
}

func (p *ImageProvider) Name() string { return p.name }

// Calls returns the number of recorded calls.
func (p *ImageProvider) Calls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.requests)
}

// Requests returns the recorded requests.
func (p *ImageProvider) Requests() []*imggen.GenerateRequest {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]*imggen.GenerateRequest(nil), p.requests...)
}

// --- video composition ---

// Composer is a mock video.Composer.
type Composer struct {
	mu       sync.Mutex
	name     string
	videoRef string
	duration float64
	err      error
	requests []*video.ComposeRequest
}

// NewComposer creates a mock composer. Callers usually point WithVideoRef
// at a real temp file so editor validation passes.
func NewComposer() *Composer {
	return &Composer{name: "mock-composer", videoRef: "mock-video.mp4", duration: 60}
}

// WithVideoRef sets the returned video ref and duration.
func (p *Composer) WithVideoRef(ref string, duration float64) *Composer {
	p.videoRef = ref
	p.duration = duration
	return p
}

// WithError makes every call fail with err.
func (p *Composer) WithError(err error) *Composer {
	p.err = err
	return p
}

func (p *Composer) Compose(ctx context.Context, req *video.ComposeRequest) (*video.ComposeResponse, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.requests = append(p.requests, req)
	if p.err != nil {
		return nil, p.err
	}
	return &video.ComposeResponse{
		Provider:  p.name,
		VideoRef:  p.videoRef,
		Duration:  p.duration,
		Format:    "mp4",
		CreatedAt: time.Now(),
	}, nil
}

func (p *Composer) Name() string { return p.name }

// Calls returns the number of recorded calls.
func (p *Composer) Calls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.requests)
}

// Requests returns the recorded requests.
func (p *Composer) Requests() []*video.ComposeRequest {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]*video.ComposeRequest(nil), p.requests...)
}

// TinyPNG returns a minimal decodable PNG.
func TinyPNG() []byte {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		panic(err)
	}
	return buf.Bytes()
}
