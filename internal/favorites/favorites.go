// Package favorites keeps the persisted set of favorited sound IDs.
package favorites

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"github.com/llehouerou/mcsounds/internal/observer"
)

// StorageKey is the key the favorite list is stored under.
const StorageKey = "favorites"

// Storage is a string key-value store.
type Storage interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}

// Set is a set of sound IDs.
type Set map[string]struct{}

// Has reports whether id is in the set.
func (s Set) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// Sorted returns the IDs in lexical order.
func (s Set) Sorted() []string {
	ids := lo.Keys(map[string]struct{}(s))
	slices.Sort(ids)
	return ids
}

func (s Set) clone() Set {
	c := make(Set, len(s))
	for id := range s {
		c[id] = struct{}{}
	}
	return c
}

// Store is the single owner of the favorite set. Every mutation is
// persisted, then reported to subscribers with a fresh copy of the set.
// A Store is not safe for concurrent use.
type Store struct {
	storage   Storage
	logger    zerolog.Logger
	set       Set
	listeners observer.Listeners[Set]
}

// New creates an empty store. Call Initialize to load persisted favorites.
func New(storage Storage, logger zerolog.Logger) *Store {
	return &Store{
		storage: storage,
		logger:  logger.With().Str("component", "favorites").Logger(),
		set:     make(Set),
	}
}

// Initialize loads the persisted favorites, replacing the in-memory set.
// Unreadable or corrupt data is logged and leaves the set empty.
func (s *Store) Initialize() {
	s.set = make(Set)

	raw, ok, err := s.storage.Get(StorageKey)
	if err != nil {
		s.logger.Warn().Err(err).Msg("failed to read favorites")
		return
	}
	if !ok || raw == "" {
		return
	}

	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		s.logger.Warn().Err(err).Msg("ignoring corrupt favorites data")
		return
	}
	for _, id := range ids {
		if id != "" {
			s.set[id] = struct{}{}
		}
	}
	s.logger.Debug().Int("count", len(s.set)).Msg("favorites loaded")
}

// Toggle flips the membership of id and returns the new membership.
func (s *Store) Toggle(id string) bool {
	if s.set.Has(id) {
		delete(s.set, id)
	} else {
		s.set[id] = struct{}{}
	}
	s.changed()
	return s.set.Has(id)
}

// Add marks id as a favorite. It does nothing if it already is one.
func (s *Store) Add(id string) {
	if s.set.Has(id) {
		return
	}
	s.set[id] = struct{}{}
	s.changed()
}

// Remove unmarks id. It does nothing if id is not a favorite.
func (s *Store) Remove(id string) {
	if !s.set.Has(id) {
		return
	}
	delete(s.set, id)
	s.changed()
}

// IsFavorite reports whether id is a favorite.
func (s *Store) IsFavorite(id string) bool {
	return s.set.Has(id)
}

// Favorites returns a copy of the set.
func (s *Store) Favorites() Set {
	return s.set.clone()
}

// List returns the favorite IDs, sorted.
func (s *Store) List() []string {
	return s.set.Sorted()
}

// Len returns the number of favorites.
func (s *Store) Len() int {
	return len(s.set)
}

// Subscribe registers fn to receive the set after every mutation.
// The returned function unsubscribes and may be called more than once.
func (s *Store) Subscribe(fn func(Set)) func() {
	return s.listeners.Subscribe(fn)
}

// Prune drops every favorite for which valid returns false and returns how
// many were dropped.
func (s *Store) Prune(valid func(id string) bool) int {
	removed := 0
	for id := range s.set {
		if !valid(id) {
			delete(s.set, id)
			removed++
		}
	}
	if removed > 0 {
		s.logger.Debug().Int("removed", removed).Msg("pruned favorites")
		s.changed()
	}
	return removed
}

func (s *Store) changed() {
	if err := s.persist(); err != nil {
		s.logger.Warn().Err(err).Msg("failed to save favorites")
	}
	s.listeners.Emit(s.set.clone())
}

func (s *Store) persist() error {
	data, err := json.Marshal(s.set.Sorted())
	if err != nil {
		return fmt.Errorf("encode favorites: %w", err)
	}
	if err := s.storage.Set(StorageKey, string(data)); err != nil {
		return fmt.Errorf("store favorites: %w", err)
	}
	return nil
}
