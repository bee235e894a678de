package player

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDecode_UnsupportedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sound.aiff")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	_, _, err = decode(f, path)

	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("decode() error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestBackend_Load_CancelledContext(t *testing.T) {
	results := make(chan error, 1)
	b := NewBackend(PosterFunc(func(fn func()) { fn() }))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	b.Load(ctx, "/does/not/matter.ogg", func(h Handle, err error) {
		if h != nil {
			h.Close()
		}
		results <- err
	})

	select {
	case err := <-results:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Load() error = %v, want context.Canceled", err)
		}
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for load result")
	}
}

// countingFile counts Close calls on an opened sound file.
type countingFile struct {
	*os.File
	closes *int
}

func (f countingFile) Close() error {
	*f.closes++
	return f.File.Close()
}

func countCloses(t *testing.T) *int {
	t.Helper()
	closes := new(int)
	orig := openFile
	openFile = func(path string) (io.ReadSeekCloser, error) {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		return countingFile{File: f, closes: closes}, nil
	}
	t.Cleanup(func() { openFile = orig })
	return closes
}

// writeWAV writes a short 16-bit mono PCM file.
func writeWAV(t *testing.T, path string, samples int) {
	t.Helper()
	const rate, bits, channels = 44100, 16, 1
	data := make([]byte, samples*bits/8)
	var b bytes.Buffer
	b.WriteString("RIFF")
	_ = binary.Write(&b, binary.LittleEndian, uint32(36+len(data)))
	b.WriteString("WAVEfmt ")
	for _, v := range []any{
		uint32(16), uint16(1), uint16(channels), uint32(rate),
		uint32(rate * channels * bits / 8), uint16(channels * bits / 8), uint16(bits),
	} {
		_ = binary.Write(&b, binary.LittleEndian, v)
	}
	b.WriteString("data")
	_ = binary.Write(&b, binary.LittleEndian, uint32(len(data)))
	b.Write(data)
	if err := os.WriteFile(path, b.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestOpenStream_ClosesFileOnce(t *testing.T) {
	closes := countCloses(t)
	path := filepath.Join(t.TempDir(), "click.wav")
	writeWAV(t, path, 441)

	streamer, format, err := openStream(path)
	if err != nil {
		t.Fatalf("openStream() error = %v", err)
	}
	if format.SampleRate != 44100 || streamer.Len() != 441 {
		t.Errorf("decoded %d samples at %d Hz, want 441 at 44100", streamer.Len(), format.SampleRate)
	}
	if err := streamer.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	if *closes != 1 {
		t.Errorf("file closed %d times, want 1", *closes)
	}
}

func TestOpenStream_ClosesFileOnDecodeError(t *testing.T) {
	closes := countCloses(t)
	path := filepath.Join(t.TempDir(), "click.aiff")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, _, err := openStream(path); !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("openStream() error = %v, want ErrUnsupportedFormat", err)
	}
	if *closes != 1 {
		t.Errorf("file closed %d times, want 1", *closes)
	}
}
