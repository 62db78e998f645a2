package tui

import (
	"sync"

	"tableflip.dev/diario/pkg/journal"
)

// regions caches the rendered text of each region. The journal marks regions
// stale through Render; View rebuilds only those.
type regions struct {
	mu    sync.Mutex
	views map[journal.Region]string
	stale map[journal.Region]bool
}

func newRegions() *regions {
	return &regions{views: map[journal.Region]string{}, stale: map[journal.Region]bool{}}
}

// Render implements journal.Renderer.
func (r *regions) Render(rs ...journal.Region) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, region := range rs {
		r.stale[region] = true
	}
}

// invalidate marks every cached region stale, after a resize.
func (r *regions) invalidate() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for region := range r.views {
		r.stale[region] = true
	}
}

// get returns the cached text of region, building it when stale or missing.
func (r *regions) get(region journal.Region, build func() string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.views[region]; ok && !r.stale[region] {
		return s
	}
	s := build()
	r.views[region] = s
	delete(r.stale, region)
	return s
}
