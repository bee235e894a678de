//go:build !windows

// Package stderr redirects file descriptor 2 while the TUI owns the
// terminal. The audio stack (oto over ALSA) writes diagnostics straight to
// fd 2, which would otherwise tear through the rendered screen.
package stderr

import (
	"bufio"
	"os"
	"strings"
	"syscall"
)

// Capture holds the redirected descriptor until Close restores it.
type Capture struct {
	orig  int
	read  *os.File
	write *os.File
	lines chan string
}

// Start redirects fd 2 into a pipe. On failure nothing is redirected and
// output keeps going to the terminal.
func Start() (*Capture, error) {
	r, w, err := os.Pipe()
	if err != nil {
		return nil, err
	}

	orig, err := syscall.Dup(int(os.Stderr.Fd()))
	if err != nil {
		r.Close()
		w.Close()
		return nil, err
	}

	if err := syscall.Dup2(int(w.Fd()), int(os.Stderr.Fd())); err != nil {
		syscall.Close(orig)
		r.Close()
		w.Close()
		return nil, err
	}

	c := &Capture{orig: orig, read: r, write: w, lines: make(chan string, 100)}
	go c.pump()
	return c, nil
}

func (c *Capture) pump() {
	defer close(c.lines)
	scanner := bufio.NewScanner(c.read)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		select {
		case c.lines <- line:
		default:
			// Nobody is reading; drop rather than block the writer.
		}
	}
}

// Lines delivers captured lines. It is closed after Close.
func (c *Capture) Lines() <-chan string {
	return c.lines
}

// WriteOriginal writes msg to the real stderr, bypassing the capture.
func (c *Capture) WriteOriginal(msg string) {
	_, _ = syscall.Write(c.orig, []byte(msg))
}

// Close restores the original stderr.
func (c *Capture) Close() {
	_ = syscall.Dup2(c.orig, int(os.Stderr.Fd()))
	_ = syscall.Close(c.orig)
	c.write.Close()
	c.read.Close()
}
