package playlist

import (
	"slices"

	"github.com/llehouerou/mcsounds/internal/catalog"
)

// trackList is the ordered storage behind a Queue.
type trackList []catalog.Track

func (l trackList) valid(i int) bool { return i >= 0 && i < len(l) }

func (l trackList) at(i int) (catalog.Track, bool) {
	if !l.valid(i) {
		return catalog.Track{}, false
	}
	return l[i], true
}

func (l trackList) indexOf(id string) int {
	return slices.IndexFunc(l, func(t catalog.Track) bool { return t.ID == id })
}

// clone never returns nil.
func (l trackList) clone() []catalog.Track {
	return append(make([]catalog.Track, 0, len(l)), l...)
}

func (l *trackList) removeAt(i int) bool {
	if !l.valid(i) {
		return false
	}
	*l = slices.Delete(*l, i, i+1)
	return true
}

func (l *trackList) move(from, to int) bool {
	if !l.valid(from) || !l.valid(to) {
		return false
	}
	if from != to {
		t := (*l)[from]
		*l = slices.Insert(slices.Delete(*l, from, from+1), to, t)
	}
	return true
}
