package keymap

import (
	"slices"
	"testing"
)

var sample = []Binding{
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
	{ActionPlayPause, []string{" ", "space"}, "Play/pause", "playback"},
	{ActionNextTrack, []string{"n", "pgdown"}, "Next sound", "playback"},
	{ActionSelect, []string{"enter"}, "Play now", "browser"},
	{ActionSelect, []string{"enter"}, "Play item", "queue"},
	{ActionDelete, []string{"d", "delete"}, "Remove item", "queue"},
	{ActionDelete, []string{"d"}, "Remove", "browser"},
}

func TestNewResolver(t *testing.T) {
	r := NewResolver(sample)

	if len(r.actions) != 9 {
		t.Errorf("indexed %d keys, want 9", len(r.actions))
	}
	if len(r.keys) != 5 {
		t.Errorf("indexed %d actions, want 5", len(r.keys))
	}
}

func TestResolver_Resolve(t *testing.T) {
	r := NewResolver(sample)

	tests := []struct {
		key  string
		want Action
	}{
		{"q", ActionQuit},
		{"ctrl+c", ActionQuit},
		{" ", ActionPlayPause},
		{"space", ActionPlayPause},
		{"enter", ActionSelect},
		{"delete", ActionDelete},
		{"x", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := r.Resolve(tt.key); got != tt.want {
			t.Errorf("Resolve(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestResolver_KeysFor(t *testing.T) {
	r := NewResolver(sample)

	tests := []struct {
		action Action
		want   []string
	}{
		{ActionQuit, []string{"q", "ctrl+c"}},
		{ActionSelect, []string{"enter"}},
		{ActionDelete, []string{"d", "delete"}},
		{ActionFavorite, nil},
	}
	for _, tt := range tests {
		if got := r.KeysFor(tt.action); !slices.Equal(got, tt.want) {
			t.Errorf("KeysFor(%q) = %v, want %v", tt.action, got, tt.want)
		}
	}
}

func TestResolver_Label(t *testing.T) {
	r := NewResolver(sample)

	tests := []struct {
		action Action
		want   string
	}{
		{ActionPlayPause, "space"},
		{ActionNextTrack, "n, PgDn"},
		{ActionSelect, "enter"},
		{ActionFavorite, ""},
	}
	for _, tt := range tests {
		if got := r.Label(tt.action); got != tt.want {
			t.Errorf("Label(%q) = %q, want %q", tt.action, got, tt.want)
		}
	}
}

func TestResolver_DefaultBindings(t *testing.T) {
	r := NewResolver(Bindings)

	for key, want := range map[string]Action{
		"f": ActionFavorite,
		"a": ActionAdd,
		"P": ActionSequential,
		"u": ActionUndo,
		" ": ActionPlayPause,
	} {
		if got := r.Resolve(key); got != want {
			t.Errorf("Resolve(%q) = %q, want %q", key, got, want)
		}
	}
}
