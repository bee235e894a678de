// Package export saves copies of sound files outside the sound library.
package export

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"

	"github.com/llehouerou/mcsounds/internal/catalog"
)

// maxCopies bounds the "name (N).ext" probing when the destination name is
// taken.
const maxCopies = 999

// DefaultDir is where sounds are saved when no destination is given.
func DefaultDir() string {
	return xdg.UserDirs.Download
}

// Sound copies track's file to dest and returns the path written.
//
// dest is a file path when it carries the sound's extension and is not an
// existing directory; otherwise it is a directory, created if missing, that
// receives the sound under its own file name. An empty dest selects
// DefaultDir. Existing files are never overwritten: the copy is numbered
// instead.
func Sound(track catalog.Track, dest string) (string, error) {
	src, err := os.Open(track.Path)
	if err != nil {
		return "", fmt.Errorf("open sound: %w", err)
	}
	defer src.Close()

	target := Target(track, dest)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return "", fmt.Errorf("create directory: %w", err)
	}
	dst, path, err := create(target)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(path)
		return "", fmt.Errorf("copy: %w", err)
	}
	if err := dst.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

// Target resolves the path Sound writes to before collision numbering.
func Target(track catalog.Track, dest string) string {
	if dest == "" {
		dest = DefaultDir()
	}
	ext := filepath.Ext(track.Path)
	if ext != "" && strings.EqualFold(filepath.Ext(dest), ext) && !isDir(dest) {
		return dest
	}
	return filepath.Join(dest, sanitizeFilename(filepath.Base(track.Path)))
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// create opens a new file at path, or at "stem (N).ext" when path is taken.
func create(path string) (*os.File, string, error) {
	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(path, ext)
	for n := 1; n <= maxCopies; n++ {
		candidate := path
		if n > 1 {
			candidate = fmt.Sprintf("%s (%d)%s", stem, n, ext)
		}
		f, err := os.OpenFile(candidate, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if err == nil {
			return f, candidate, nil
		}
		if !errors.Is(err, fs.ErrExist) {
			return nil, "", fmt.Errorf("create destination: %w", err)
		}
	}
	return nil, "", fmt.Errorf("create destination: %d copies of %s already exist", maxCopies, filepath.Base(path))
}

var unsafeChars = strings.NewReplacer(
	"/", "-", "\\", "-", ":", "-", "*", "-", "?", "-",
	"\"", "-", "<", "-", ">", "-", "|", "-",
)

// sanitizeFilename replaces characters that FAT and NTFS reject.
func sanitizeFilename(name string) string {
	return unsafeChars.Replace(name)
}
