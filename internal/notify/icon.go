//go:build linux

package notify

import "github.com/llehouerou/mcsounds/internal/mpris"

// iconFor picks the notification icon for a sound: its category cover when
// the sound directory has one, DefaultIcon otherwise.
func iconFor(soundPath string) string {
	if cover := mpris.FindCoverArt(soundPath); cover != "" {
		return cover
	}
	return DefaultIcon
}
