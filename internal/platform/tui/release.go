package tui

import (
	"sort"
	"time"

	"github.com/vovakirdan/cargobug/internal/core"
)

// releaseTracker turns the terminal's press-only key stream into press and
// release edges. A key is pressed on its first message and released once no
// message (including auto-repeat) has arrived for the hold window.
type releaseTracker struct {
	hold time.Duration
	seen map[core.Key]time.Time
}

func newReleaseTracker(hold time.Duration) *releaseTracker {
	return &releaseTracker{
		hold: hold,
		seen: make(map[core.Key]time.Time),
	}
}

// Press records k at now. It reports true for a new press edge and false
// for an auto-repeat of a held key.
func (r *releaseTracker) Press(k core.Key, now time.Time) bool {
	_, held := r.seen[k]
	r.seen[k] = now
	return !held
}

// Expire returns the keys whose hold window ended at or before now, in key
// order, and forgets them.
func (r *releaseTracker) Expire(now time.Time) []core.Key {
	var out []core.Key
	for k, t := range r.seen {
		if now.Sub(t) >= r.hold {
			out = append(out, k)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	for _, k := range out {
		delete(r.seen, k)
	}
	return out
}
