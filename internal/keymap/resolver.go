package keymap

import (
	"strings"

	"github.com/samber/lo"
)

// keyLabels spells out keys that are invisible or cryptic in help text.
var keyLabels = map[string]string{
	" ":      "space",
	"pgup":   "PgUp",
	"pgdown": "PgDn",
}

// Resolver maps key strings to actions. A key has one action across all
// contexts; the app decides which handler runs it from the focused panel.
type Resolver struct {
	actions map[string]Action
	keys    map[Action][]string
}

// NewResolver indexes bindings in both directions.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{
		actions: make(map[string]Action),
		keys:    make(map[Action][]string),
	}
	for _, b := range bindings {
		for _, key := range b.Keys {
			r.actions[key] = b.Action
		}
		r.keys[b.Action] = lo.Uniq(append(r.keys[b.Action], b.Keys...))
	}
	return r
}

// Resolve returns the action bound to key, or "" if none is.
func (r *Resolver) Resolve(key string) Action {
	return r.actions[key]
}

// KeysFor returns the keys bound to action in binding order.
func (r *Resolver) KeysFor(action Action) []string {
	return r.keys[action]
}

// Label renders the keys of action for the help screen, e.g. "space" or
// "n, PgDn". Literal spaces collapse into the "space" alias.
func (r *Resolver) Label(action Action) string {
	labels := lo.Uniq(lo.Map(r.keys[action], func(k string, _ int) string {
		if l, ok := keyLabels[k]; ok {
			return l
		}
		return k
	}))
	return strings.Join(labels, ", ")
}
