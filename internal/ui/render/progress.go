package render

import (
	"strings"
	"time"
)

const (
	filledBlock = "▓"
	emptyBlock  = "░"
)

// ProgressBar renders "1:23 ▓▓▓░░░ 4:56" in width columns. Below three
// bar cells only the times are shown.
func ProgressBar(position, duration time.Duration, width int) string {
	pos := Duration(position)
	dur := Duration(duration)
	barWidth := width - len(pos) - len(dur) - 2
	if barWidth < 3 {
		return pos + " / " + dur
	}

	var ratio float64
	if duration > 0 {
		ratio = float64(position) / float64(duration)
	}
	filled := min(max(int(float64(barWidth)*ratio), 0), barWidth)
	return pos + " " + strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, barWidth-filled) + " " + dur
}
