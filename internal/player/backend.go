package player

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"
)

// outputRate is the speaker sample rate; sounds are resampled to it.
const outputRate = beep.SampleRate(44100)

// ErrUnsupportedFormat is returned for files with an unknown extension.
var ErrUnsupportedFormat = errors.New("unsupported format")

// Backend plays sounds through the system speaker.
type Backend struct {
	post Poster

	initOnce sync.Once
	initErr  error
}

// NewBackend creates a speaker-backed Media. Completion callbacks are
// delivered through post.
func NewBackend(post Poster) *Backend {
	return &Backend{post: post}
}

// Load decodes path in the background.
func (b *Backend) Load(ctx context.Context, path string, done func(Handle, error)) {
	go func() {
		h, err := b.open(ctx, path)
		if err != nil {
			b.post.Post(func() { done(nil, err) })
			return
		}
		b.post.Post(func() { done(h, nil) })
	}()
}

func (b *Backend) open(ctx context.Context, path string) (*beepHandle, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := b.initSpeaker(); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}

	streamer, format, err := openStream(path)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		streamer.Close()
		return nil, err
	}

	var src beep.Streamer = streamer
	if format.SampleRate != outputRate {
		src = beep.Resample(4, format.SampleRate, outputRate, streamer)
	}

	return &beepHandle{
		post:     b.post,
		streamer: streamer,
		format:   format,
		ctrl:     &beep.Ctrl{Streamer: src, Paused: false},
	}, nil
}

func (b *Backend) initSpeaker() error {
	b.initOnce.Do(func() {
		b.initErr = speaker.Init(outputRate, outputRate.N(time.Second/10))
	})
	return b.initErr
}

// openFile is replaced in tests.
var openFile = func(path string) (io.ReadSeekCloser, error) { return os.Open(path) }

// openStream decodes path. The streamer owns the file: closing it closes
// the file.
func openStream(path string) (beep.StreamSeekCloser, beep.Format, error) {
	f, err := openFile(path)
	if err != nil {
		return nil, beep.Format{}, err
	}
	streamer, format, err := decode(f, path)
	if err != nil {
		f.Close()
		return nil, beep.Format{}, err
	}
	return streamer, format, nil
}

func decode(f io.ReadSeekCloser, path string) (beep.StreamSeekCloser, beep.Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".ogg":
		return vorbis.Decode(f)
	case ".mp3":
		return mp3.Decode(f)
	case ".flac":
		return flac.Decode(f)
	case ".wav":
		return wav.Decode(f)
	default:
		return nil, beep.Format{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
}

// beepHandle is a decoded sound owned by the speaker while started.
type beepHandle struct {
	post     Poster
	streamer beep.StreamSeekCloser
	format   beep.Format
	ctrl     *beep.Ctrl
	closed   atomic.Bool
}

func (h *beepHandle) Start(onEnd func(err error)) {
	speaker.Play(beep.Seq(h.ctrl, beep.Callback(func() {
		if h.closed.Load() {
			return
		}
		err := h.streamer.Err()
		// The callback runs under the speaker lock; hand off so the owner
		// can call back into the speaker without deadlocking.
		go h.post.Post(func() {
			if h.closed.Load() {
				return
			}
			onEnd(err)
		})
	})))
}

func (h *beepHandle) Pause() {
	speaker.Lock()
	h.ctrl.Paused = true
	speaker.Unlock()
}

func (h *beepHandle) Resume() {
	speaker.Lock()
	h.ctrl.Paused = false
	speaker.Unlock()
}

func (h *beepHandle) Rewind() error {
	speaker.Lock()
	defer speaker.Unlock()
	return h.streamer.Seek(0)
}

func (h *beepHandle) Position() time.Duration {
	speaker.Lock()
	defer speaker.Unlock()
	return h.format.SampleRate.D(h.streamer.Position())
}

func (h *beepHandle) Duration() time.Duration {
	return h.format.SampleRate.D(h.streamer.Len())
}

func (h *beepHandle) Close() error {
	if h.closed.Swap(true) {
		return nil
	}
	speaker.Clear()
	return h.streamer.Close()
}
