package catalog

import (
	"slices"
	"strings"

	"github.com/samber/lo"
)

// Catalog is an immutable snapshot of tracks indexed by category.
type Catalog struct {
	tracks     []Track
	categories []string
	byID       map[string]int
	byCategory map[string][]Track
}

// Empty returns a catalog with no tracks.
func Empty() *Catalog {
	return New(nil, nil)
}

// New builds a catalog from tracks. When categories is empty, the sorted
// set of track categories is used. Tracks with a duplicate ID are dropped
// (first occurrence wins).
func New(categories []string, tracks []Track) *Catalog {
	c := &Catalog{
		tracks:     make([]Track, 0, len(tracks)),
		byID:       make(map[string]int, len(tracks)),
		byCategory: make(map[string][]Track),
	}
	for _, t := range tracks {
		if t.ID == "" {
			continue
		}
		if _, dup := c.byID[t.ID]; dup {
			continue
		}
		c.byID[t.ID] = len(c.tracks)
		c.tracks = append(c.tracks, t)
		c.byCategory[t.Category] = append(c.byCategory[t.Category], t)
	}

	if len(categories) > 0 {
		c.categories = lo.Uniq(lo.Filter(categories, func(s string, _ int) bool {
			return s != "" && s != FavoritesCategory
		}))
	} else {
		c.categories = lo.Uniq(lo.Map(c.tracks, func(t Track, _ int) string { return t.Category }))
		slices.Sort(c.categories)
	}
	return c
}

// Len returns the number of tracks.
func (c *Catalog) Len() int {
	return len(c.tracks)
}

// Tracks returns a copy of all tracks in catalog order.
func (c *Catalog) Tracks() []Track {
	return slices.Clone(c.tracks)
}

// Categories returns a copy of the category names.
func (c *Catalog) Categories() []string {
	return slices.Clone(c.categories)
}

// Lookup returns the track with the given ID.
func (c *Catalog) Lookup(id string) (Track, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Track{}, false
	}
	return c.tracks[i], true
}

// Has reports whether id is in the catalog.
func (c *Catalog) Has(id string) bool {
	_, ok := c.byID[id]
	return ok
}

// IDs returns every track ID in catalog order.
func (c *Catalog) IDs() []string {
	return lo.Map(c.tracks, func(t Track, _ int) string { return t.ID })
}

// InCategory returns the tracks of a category in catalog order.
func (c *Catalog) InCategory(category string) []Track {
	return slices.Clone(c.byCategory[category])
}

// Resolve maps IDs to tracks, skipping unknown IDs.
func (c *Catalog) Resolve(ids []string) []Track {
	out := make([]Track, 0, len(ids))
	for _, id := range ids {
		if t, ok := c.Lookup(id); ok {
			out = append(out, t)
		}
	}
	return out
}

// Query selects tracks for a browser tab.
type Query struct {
	// Term matches case-insensitively against name or category.
	Term string
	// Category restricts results to one category. FavoritesCategory
	// selects tracks whose ID is in Favorites instead.
	Category  string
	Favorites map[string]struct{}
}

// Filter returns the tracks matching q in catalog order.
func (c *Catalog) Filter(q Query) []Track {
	term := strings.ToLower(strings.TrimSpace(q.Term))
	return lo.Filter(c.tracks, func(t Track, _ int) bool {
		if term != "" &&
			!strings.Contains(strings.ToLower(t.Name), term) &&
			!strings.Contains(strings.ToLower(t.Category), term) {
			return false
		}
		switch q.Category {
		case "":
			return true
		case FavoritesCategory:
			_, ok := q.Favorites[t.ID]
			return ok
		default:
			return t.Category == q.Category
		}
	})
}
