package keymap

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "playback", "browser", "queue"
}

// Bindings contains every key binding, used for dispatch and help generation.
var Bindings = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit application", "global"},
	{ActionSwitchFocus, []string{"tab"}, "Switch focus", "global"},
	{ActionSearch, []string{"/"}, "Search sounds", "global"},
	{ActionHelp, []string{"?"}, "Show help", "global"},

	// Playback
	{ActionPlayPause, []string{" ", "space"}, "Play/pause", "playback"},
	{ActionStop, []string{"s"}, "Stop", "playback"},
	{ActionRewind, []string{"r"}, "Restart sound", "playback"},
	{ActionNextTrack, []string{"n", "pgdown"}, "Next sound", "playback"},
	{ActionPrevTrack, []string{"p", "pgup"}, "Previous sound", "playback"},
	{ActionToggleLoop, []string{"l"}, "Toggle queue loop", "playback"},

	// Browser
	{ActionMoveUp, []string{"k", "up"}, "Move up", "browser"},
	{ActionMoveDown, []string{"j", "down"}, "Move down", "browser"},
	{ActionPrevCategory, []string{"h", "left"}, "Previous category", "browser"},
	{ActionNextCategory, []string{"right"}, "Next category", "browser"},
	{ActionJumpStart, []string{"g", "home"}, "First sound", "browser"},
	{ActionJumpEnd, []string{"G", "end"}, "Last sound", "browser"},
	{ActionSelect, []string{"enter"}, "Play now", "browser"},
	{ActionAdd, []string{"a"}, "Add to queue", "browser"},
	{ActionSequential, []string{"P"}, "Play category in order", "browser"},
	{ActionFavorite, []string{"f"}, "Toggle favorite", "browser"},
	{ActionExport, []string{"e"}, "Save a copy of the sound", "browser"},
	{ActionClearQuery, []string{"esc"}, "Clear search", "browser"},

	// Queue panel
	{ActionSelect, []string{"enter"}, "Play item", "queue"},
	{ActionDelete, []string{"d", "delete"}, "Remove item", "queue"},
	{ActionMoveItemDown, []string{"J", "shift+j"}, "Move item down", "queue"},
	{ActionMoveItemUp, []string{"K", "shift+k"}, "Move item up", "queue"},
	{ActionUndo, []string{"u", "ctrl+z"}, "Undo queue change", "queue"},
	{ActionRedo, []string{"ctrl+r"}, "Redo queue change", "queue"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range Bindings {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}
