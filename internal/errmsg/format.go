// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Catalog operations
	OpCatalogLoad   Op = "load sound catalog"
	OpCatalogReload Op = "reload sound catalog"
	OpCatalogScan   Op = "scan sound directory"
	OpManifestWrite Op = "write manifest"

	// Queue operations
	OpQueueLoad    Op = "load queue"
	OpQueueSave    Op = "save queue"
	OpQueueAdd     Op = "add to queue"
	OpQueueMove    Op = "move queue item"
	OpQueueRemove  Op = "remove queue item"
	OpQueueSelect  Op = "select queue item"
	OpSequentialGo Op = "start sequential play"

	// Playback operations
	OpPlaybackStart Op = "start playback"

	// Favorites
	OpFavoriteToggle Op = "update favorites"

	// Sound files
	OpSoundExport Op = "save sound"

	// Initialization
	OpInitialize Op = "initialize application"
	OpConfigLoad Op = "load configuration"
	OpStateOpen  Op = "open state database"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}
