package errmsg

import (
	"errors"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpCatalogLoad,
			err:      nil,
			expected: "",
		},
		{
			name:     "formats error with operation",
			op:       OpCatalogLoad,
			err:      errors.New("file not found"),
			expected: "Failed to load sound catalog: file not found",
		},
		{
			name:     "queue operation",
			op:       OpQueueSelect,
			err:      errors.New("queue index out of range"),
			expected: "Failed to select queue item: queue index out of range",
		},
		{
			name:     "sequential operation",
			op:       OpSequentialGo,
			err:      errors.New("category has no sounds"),
			expected: "Failed to start sequential play: category has no sounds",
		},
		{
			name:     "playback operation",
			op:       OpPlaybackStart,
			err:      errors.New("no audio device"),
			expected: "Failed to start playback: no audio device",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Format(tt.op, tt.err)
			if result != tt.expected {
				t.Errorf("Format(%q, %v) = %q, want %q", tt.op, tt.err, result, tt.expected)
			}
		})
	}
}

func TestFormatWith(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		context  string
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpPlaybackStart,
			context:  "cave1.ogg",
			err:      nil,
			expected: "",
		},
		{
			name:     "formats error with context",
			op:       OpPlaybackStart,
			context:  "cave1.ogg",
			err:      errors.New("unsupported audio format"),
			expected: "Failed to start playback 'cave1.ogg': unsupported audio format",
		},
		{
			name:     "empty context falls back to Format",
			op:       OpPlaybackStart,
			context:  "",
			err:      errors.New("unsupported audio format"),
			expected: "Failed to start playback: unsupported audio format",
		},
		{
			name:     "scan with path context",
			op:       OpCatalogScan,
			context:  "/home/user/sounds",
			err:      errors.New("directory not found"),
			expected: "Failed to scan sound directory '/home/user/sounds': directory not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatWith(tt.op, tt.context, tt.err)
			if result != tt.expected {
				t.Errorf("FormatWith(%q, %q, %v) = %q, want %q", tt.op, tt.context, tt.err, result, tt.expected)
			}
		})
	}
}

func TestOpConstants(t *testing.T) {
	// Verify that Op constants are non-empty and produce valid messages
	ops := []Op{
		OpCatalogLoad, OpCatalogReload, OpCatalogScan, OpManifestWrite,
		OpQueueLoad, OpQueueSave, OpQueueAdd, OpQueueMove, OpQueueRemove, OpQueueSelect,
		OpSequentialGo,
		OpPlaybackStart,
		OpFavoriteToggle,
		OpInitialize, OpConfigLoad, OpStateOpen,
	}

	testErr := errors.New("test error")

	for _, op := range ops {
		t.Run(string(op), func(t *testing.T) {
			if op == "" {
				t.Error("Op constant should not be empty")
			}

			result := Format(op, testErr)
			expected := "Failed to " + string(op) + ": test error"
			if result != expected {
				t.Errorf("Format = %q, want %q", result, expected)
			}
		})
	}
}
