// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit        Action = "quit"
	ActionSwitchFocus Action = "switch_focus"
	ActionSearch      Action = "search"
	ActionHelp        Action = "help"

	// Playback actions
	ActionPlayPause  Action = "play_pause"
	ActionStop       Action = "stop"
	ActionRewind     Action = "rewind"
	ActionNextTrack  Action = "next_track"
	ActionPrevTrack  Action = "prev_track"
	ActionToggleLoop Action = "toggle_loop"

	// Navigation actions
	ActionMoveUp       Action = "move_up"
	ActionMoveDown     Action = "move_down"
	ActionPrevCategory Action = "prev_category"
	ActionNextCategory Action = "next_category"
	ActionJumpStart    Action = "jump_start"
	ActionJumpEnd      Action = "jump_end"

	// Selection/activation actions
	ActionSelect     Action = "select"      // enter - play now
	ActionAdd        Action = "add"         // a - add to queue
	ActionSequential Action = "sequential"  // P - play category in order
	ActionFavorite   Action = "favorite"    // f - toggle favorite
	ActionExport     Action = "export"      // e - save a copy of the sound
	ActionDelete     Action = "delete"      // d/delete - remove from queue
	ActionClearQuery Action = "clear_query" // esc

	// Queue-specific actions
	ActionMoveItemUp   Action = "move_item_up"   // shift+k
	ActionMoveItemDown Action = "move_item_down" // shift+j
	ActionUndo         Action = "undo"           // u, ctrl+z
	ActionRedo         Action = "redo"           // ctrl+r
)
