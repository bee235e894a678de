//go:build windows

package stderr

import "os"

// Capture is a pass-through on Windows, where the audio stack does not write
// to the console.
type Capture struct {
	lines chan string
}

// Start returns a capture that never produces lines.
func Start() (*Capture, error) {
	return &Capture{lines: make(chan string)}, nil
}

// Lines never delivers anything until Close.
func (c *Capture) Lines() <-chan string {
	return c.lines
}

// WriteOriginal writes msg to stderr.
func (c *Capture) WriteOriginal(msg string) {
	_, _ = os.Stderr.WriteString(msg)
}

// Close releases the capture.
func (c *Capture) Close() {
	close(c.lines)
}
