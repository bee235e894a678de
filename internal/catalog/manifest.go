package catalog

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// ManifestFileName is the default manifest name inside a sound directory.
const ManifestFileName = "manifest.json"

// Manifest is the on-disk description of a sound library.
type Manifest struct {
	Categories []string `json:"categories"`
	Sounds     []Track  `json:"sounds"`
}

// soundExtensions lists the file types picked up by Scan.
var soundExtensions = map[string]bool{
	".ogg":  true,
	".mp3":  true,
	".flac": true,
	".wav":  true,
}

// IsSoundFile reports whether path has a playable extension.
func IsSoundFile(path string) bool {
	return soundExtensions[strings.ToLower(filepath.Ext(path))]
}

// LoadManifest reads a manifest and builds a catalog from it.
// Relative track paths are resolved against the manifest's directory.
func LoadManifest(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", path, err)
	}

	dir := filepath.Dir(path)
	for i := range m.Sounds {
		p := filepath.FromSlash(m.Sounds[i].Path)
		if p != "" && !filepath.IsAbs(p) {
			m.Sounds[i].Path = filepath.Join(dir, p)
		}
	}
	return New(m.Categories, m.Sounds), nil
}

// Scan walks root and describes every sound file below it. The category of
// a file is the first directory under root; its ID is the relative path
// without extension, with separators replaced by underscores. Paths are
// stored relative to root. Files directly in root are skipped.
func Scan(root string) (Manifest, error) {
	var sounds []Track
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() || !IsSoundFile(path) {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		category, _, nested := strings.Cut(rel, "/")
		if !nested {
			return nil
		}
		sounds = append(sounds, Track{
			ID:       strings.ReplaceAll(strings.TrimSuffix(rel, filepath.Ext(rel)), "/", "_"),
			Name:     d.Name(),
			Path:     rel,
			Category: category,
		})
		return nil
	})
	if err != nil {
		return Manifest{}, fmt.Errorf("scan %s: %w", root, err)
	}

	c := New(nil, sounds)
	return Manifest{Categories: c.Categories(), Sounds: c.Tracks()}, nil
}

// WriteManifest writes m as indented JSON, replacing path atomically.
func WriteManifest(path string, m Manifest) error {
	if m.Sounds == nil {
		m.Sounds = []Track{}
	}
	if m.Categories == nil {
		m.Categories = []string{}
	}
	slices.Sort(m.Categories)

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("write manifest: %w", err)
	}
	return nil
}
