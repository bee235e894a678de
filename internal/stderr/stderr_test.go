//go:build !windows

package stderr

import (
	"fmt"
	"os"
	"testing"
	"time"
)

func TestCapture_ForwardsLines(t *testing.T) {
	c, err := Start()
	if err != nil {
		t.Skipf("stderr capture unavailable: %v", err)
	}

	fmt.Fprintln(os.Stderr, "ALSA lib pcm.c: underrun")
	fmt.Fprintln(os.Stderr, "   ")

	select {
	case line := <-c.Lines():
		if line != "ALSA lib pcm.c: underrun" {
			t.Errorf("line = %q, want the ALSA message", line)
		}
	case <-time.After(2 * time.Second):
		t.Error("no line captured")
	}

	c.Close()

	// Closing the pipe ends the pump, which closes Lines.
	select {
	case _, ok := <-c.Lines():
		if ok {
			t.Error("unexpected extra line after blank input")
		}
	case <-time.After(2 * time.Second):
		t.Error("Lines not closed after Close")
	}
}
