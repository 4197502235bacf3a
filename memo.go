package warp

import (
	"strconv"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Memo caches smoothed paths by chain identity. Two structurally equal
// chains with different identities are smoothed separately; since smoothing
// is deterministic they produce equal paths.
//
// A Memo is safe for concurrent use. Concurrent requests for the same chain
// share one computation.
type Memo struct {
	cfg Config

	mu    sync.Mutex
	paths map[uint64]*Path
	group singleflight.Group
}

// NewMemo returns an empty memo that smooths with cfg.
func NewMemo(cfg Config) *Memo {
	return &Memo{cfg: cfg, paths: make(map[uint64]*Path)}
}

// Path returns the smoothed path of c, computing it on first use.
func (m *Memo) Path(c *Chain) *Path {
	m.mu.Lock()
	p, ok := m.paths[c.id]
	m.mu.Unlock()
	if ok {
		return p
	}

	v, _, _ := m.group.Do(strconv.FormatUint(c.id, 10), func() (any, error) {
		p := Smooth(c, m.cfg)
		m.mu.Lock()
		defer m.mu.Unlock()
		if prev, ok := m.paths[c.id]; ok {
			return prev, nil
		}
		m.paths[c.id] = p
		return p, nil
	})
	return v.(*Path)
}

// Forget drops the cached path of c, typically after c has been replaced by
// an edit.
func (m *Memo) Forget(c *Chain) {
	m.mu.Lock()
	delete(m.paths, c.id)
	m.mu.Unlock()
}

// Len returns the number of cached paths.
func (m *Memo) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.paths)
}
