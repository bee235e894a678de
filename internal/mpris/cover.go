//go:build linux

package mpris

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
)

var coverNames = []string{"cover", "folder", "icon"}

var coverExts = []string{".png", ".jpg", ".jpeg"}

// coverCandidates lists the images that may illustrate a sound, best first:
// an image sharing the sound's base name, then a cover in its category
// directory, then one at the sound library root.
func coverCandidates(soundPath string) []string {
	dir := filepath.Dir(soundPath)
	stem := strings.TrimSuffix(filepath.Base(soundPath), filepath.Ext(soundPath))

	var out []string
	for _, ext := range coverExts {
		out = append(out, filepath.Join(dir, stem+ext))
	}
	for _, d := range []string{dir, filepath.Dir(dir)} {
		for _, name := range coverNames {
			for _, ext := range coverExts {
				out = append(out, filepath.Join(d, name+ext))
			}
		}
	}
	return out
}

// FindCoverArt returns the first existing cover for soundPath, or "".
func FindCoverArt(soundPath string) string {
	cover, _ := lo.Find(coverCandidates(soundPath), func(p string) bool {
		info, err := os.Stat(p)
		return err == nil && !info.IsDir()
	})
	return cover
}
